package config

import (
	"log/slog"
	"os"

	"github.com/subosito/gotenv"
)

func LoadEnv(env string) {
	envFile := "config/envs/.env." + env
	if err := gotenv.Load(envFile); err != nil {
		slog.Warn("No .env file found, using OS environment")
	}
}

// AppConfig holds the runtime settings shared by every textsense binary.
type AppConfig struct {
	ArtifactDir string
	HistoryDB   string
	Addr        string
}

func GetAppConfig() AppConfig {
	cfg := AppConfig{
		ArtifactDir: os.Getenv("TEXTSENSE_ARTIFACT_DIR"),
		HistoryDB:   os.Getenv("TEXTSENSE_HISTORY_DB"),
		Addr:        os.Getenv("TEXTSENSE_ADDR"),
	}
	if cfg.ArtifactDir == "" {
		cfg.ArtifactDir = "artifacts"
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	return cfg
}
