package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds logger configuration.
type Config struct {
	Level   string
	Pretty  bool
	Output  io.Writer
	Service string
}

// Setup configures the global zerolog logger. Packages log through
// rs/zerolog/log after this runs.
func Setup(cfg Config) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	l := zerolog.New(out).Level(level).With().Timestamp()
	if cfg.Service != "" {
		l = l.Str("service", cfg.Service)
	}
	log.Logger = l.Logger()
}
