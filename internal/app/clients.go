package app

import (
	"fmt"

	"github.com/fadilefdika/Doctor-AI/internal/platform/logger"
	"github.com/fadilefdika/Doctor-AI/internal/platform/openai"
	"github.com/fadilefdika/Doctor-AI/internal/platform/supabase"
)

// Clients are the long-lived external-service handles, one per provider,
// each safe for concurrent use and injected downward from here. No package
// holds its own singleton.
type Clients struct {
	Identity   supabase.Client
	Completion openai.Client
}

func wireClients(log *logger.Logger) (Clients, error) {
	log.Info("Wiring external clients...")
	identity, err := supabase.NewClient(log)
	if err != nil {
		return Clients{}, fmt.Errorf("init identity client: %w", err)
	}
	completion, err := openai.NewClient(log)
	if err != nil {
		return Clients{}, fmt.Errorf("init completion client: %w", err)
	}
	return Clients{Identity: identity, Completion: completion}, nil
}
