package middleware

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/vaultpass/passgen/internal/handler"
)

// Logger returns middleware that logs every command with its duration and outcome.
// Command arguments are never logged, since they may hold a password.
func Logger(log zerolog.Logger) handler.Middleware {
	return func(next handler.Command) handler.Command {
		return func(ctx context.Context, w io.Writer, args string) error {
			start := time.Now()
			err := next(ctx, w, args)

			name, _ := handler.CommandFromContext(ctx)
			ev := log.Debug()
			if err != nil {
				ev = log.Warn().Err(err)
			}
			ev.Str("command", name).
				Dur("duration", time.Since(start)).
				Msg("command handled")

			return err
		}
	}
}
