package app

import (
	"github.com/fadilefdika/Doctor-AI/internal/platform/envutil"
)

type Config struct {
	Port        string
	Environment string
}

func LoadConfig() Config {
	return Config{
		Port:        envutil.String("PORT", "8001"),
		Environment: envutil.String("APP_ENV", "development"),
	}
}
