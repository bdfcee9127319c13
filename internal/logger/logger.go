package logger

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New creates a console logger writing to w at the named level.
// Development builds get caller information on every line.
func New(level string, env string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    env == "production",
	}

	ctx := zerolog.New(output).
		Level(lvl).
		With().
		Timestamp().
		Str("app", "passgen")

	if env != "production" {
		ctx = ctx.Caller()
	}

	return ctx.Logger(), nil
}
