package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvAddr      = "PAYE_ADDR"
	EnvStage     = "PAYE_ENV"
	EnvRulesFile = "PAYE_RULES_FILE"

	DefaultAddr  = ":8080"
	StageDev     = "development"
	StageProd    = "production"
	defaultStage = StageDev
)

// ServerConfig configures `paye serve`
type ServerConfig struct {
	Addr      string
	Stage     string
	RulesFile string
}

// IsProduction reports whether the server runs with production logging
func (c ServerConfig) IsProduction() bool {
	return c.Stage == StageProd
}

// LoadServerConfig reads server settings from the environment. When envFiles
// are given (or a .env exists in the working directory) they are loaded first;
// variables already set in the process win.
func LoadServerConfig(envFiles ...string) (ServerConfig, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		// a missing default .env is fine, a missing explicit file is not
		if len(envFiles) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return ServerConfig{}, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	cfg := ServerConfig{
		Addr:      getEnvWithDefault(EnvAddr, DefaultAddr),
		Stage:     getEnvWithDefault(EnvStage, defaultStage),
		RulesFile: os.Getenv(EnvRulesFile),
	}
	if cfg.Stage != StageDev && cfg.Stage != StageProd {
		return ServerConfig{}, fmt.Errorf("%s must be %q or %q, got %q", EnvStage, StageDev, StageProd, cfg.Stage)
	}
	return cfg, nil
}

func getEnvWithDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
