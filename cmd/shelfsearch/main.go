package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	// A local .env may carry SHELFSEARCH_* settings during development.
	_ = godotenv.Load()

	logger := newLogger()

	if err := newRootCmd(logger).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the stderr console logger; stdout is reserved for
// command output. LOG_LEVEL selects the level, defaulting to warn so
// normal runs stay quiet.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if parsed, err := zerolog.ParseLevel(raw); err == nil {
			level = parsed
		}
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
