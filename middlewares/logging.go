package middlewares

import (
	"log/slog"
	"time"

	"github.com/noorus/mediacms/internal"
)

// RequestLogger writes one log line per request once the response is done.
// Server errors are logged at error level, client errors at warn.
func RequestLogger() internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status()
			level := slog.LevelInfo
			switch {
			case err != nil || status >= 500:
				level = slog.LevelError
			case status >= 400:
				level = slog.LevelWarn
			}

			r := c.Request()
			c.Logger().Log(c.Context(), level, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int64("bytes", c.Response().Size()),
				slog.Duration("duration", time.Since(start)),
				slog.String("remote_addr", r.RemoteAddr),
			)
			return err
		}
	}
}
