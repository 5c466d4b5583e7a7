package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

func New(serviceName, level, format string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	lvl := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(level)); err == nil {
		lvl = parsed
	}

	var out = zerolog.New(os.Stdout)
	if format == "console" {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	return out.
		Level(lvl).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()
}
