package main

import (
	"os"

	"github.com/spacesedan/textsense/config"
	"github.com/spacesedan/textsense/internal/logging"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
