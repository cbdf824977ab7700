package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/janhq/avatar-cockpit/internal/config"
)

// New creates the process logger writing to stdout and installs it as the
// zerolog global logger.
func New(cfg *config.Config) zerolog.Logger {
	base := NewWithWriter(cfg, os.Stdout)
	log.Logger = base
	return base
}

// NewWithWriter builds a logger on w. LOG_FORMAT=json emits one JSON object
// per line; anything else uses the human-readable console writer.
func NewWithWriter(cfg *config.Config, w io.Writer) zerolog.Logger {
	if !strings.EqualFold(cfg.LogFormat, "json") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).
		Level(parseLevel(cfg.LogLevel)).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Logger()
}

func parseLevel(raw string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil || raw == "" {
		return zerolog.InfoLevel
	}
	return level
}
