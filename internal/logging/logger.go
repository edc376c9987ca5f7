package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LevelEnv is the environment variable that sets the log level.
const LevelEnv = "BUILDMETA_LOG_LEVEL"

// Init initializes the global logger with configuration from environment variables.
// BUILDMETA_LOG_LEVEL controls the log level: debug, info, warn, error (default: warn).
// Logs go to stderr so stdout carries only resolved values.
func Init() {
	InitWriter(os.Stderr, os.Getenv(LevelEnv))
}

// InitWriter configures the global logger to write console output to w.
func InitWriter(w io.Writer, level string) {
	zerolog.SetGlobalLevel(ParseLevel(level))
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, NoColor: true})
}

// ParseLevel maps a level name to a zerolog level, defaulting to warn.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}
