package middleware

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/vaultpass/passgen/internal/handler"
)

var ErrPanic = errors.New("command panicked")

// Recover returns middleware that turns a panicking command into an error
// so the shell keeps running.
func Recover(log zerolog.Logger) handler.Middleware {
	return func(next handler.Command) handler.Command {
		return func(ctx context.Context, w io.Writer, args string) (err error) {
			defer func() {
				if rec := recover(); rec != nil {
					name, _ := handler.CommandFromContext(ctx)
					log.Error().Str("command", name).Interface("panic", rec).Msg("command panicked")
					err = fmt.Errorf("%w: %v", ErrPanic, rec)
				}
			}()
			return next(ctx, w, args)
		}
	}
}
