package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/fadilefdika/Doctor-AI/internal/app"
)

func main() {
	// Optional in production; containers inject env directly.
	_ = godotenv.Load()

	a, err := app.New()
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		a.Log.Fatal("Server failed", "error", err)
	}
}
