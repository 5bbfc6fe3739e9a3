package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

// Config is the environment surface of the logger.
type Config struct {
	Level  string `env:"LOG_LEVEL" envDefault:""`  // Level overrides the environment preset level (debug, info, warn, error).
	Format string `env:"LOG_FORMAT" envDefault:""` // Format overrides the environment preset format (json, text).
}

// Options converts cfg into logger options. Empty fields are skipped so they
// do not override a preset applied earlier.
func (c Config) Options() ([]Option, error) {
	var opts []Option

	if c.Level != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
			return nil, fmt.Errorf("logger: invalid level %q: %w", c.Level, err)
		}
		opts = append(opts, WithLevel(lvl))
	}

	if c.Format != "" {
		f := Format(strings.ToLower(c.Format))
		if f != FormatJSON && f != FormatText {
			return nil, fmt.Errorf("logger: invalid format %q", c.Format)
		}
		opts = append(opts, WithFormat(f))
	}

	return opts, nil
}
