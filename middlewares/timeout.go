package middlewares

import (
	"context"
	"errors"
	"time"

	"github.com/noorus/mediacms/internal"
)

// DefaultTimeout is the default request timeout.
const DefaultTimeout = 30 * time.Second

// Timeout bounds every request with a deadline on the request context.
//
// The handler runs on the request goroutine; database calls observe the
// deadline and return early. If the deadline has passed when the handler
// returns and nothing was written, the result is a TimeoutError.
func Timeout(timeout time.Duration) internal.Middleware {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			ctx, cancel := context.WithTimeout(c.Context(), timeout)
			defer cancel()
			c.SetContext(ctx)

			err := next(c)
			if !errors.Is(ctx.Err(), context.DeadlineExceeded) || c.Written() {
				return err
			}

			c.Logger().WarnContext(c, "request timeout", "timeout", timeout.String())
			return &TimeoutError{Duration: timeout, Err: err}
		}
	}
}
