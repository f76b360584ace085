package logger

import "log/slog"

// NewNope creates a logger that discards everything.
// The kernel uses it until a real logger is configured.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
