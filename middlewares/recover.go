package middlewares

import (
	"net/http"
	"runtime"

	"github.com/noorus/mediacms/internal"
)

type recoverConfig struct {
	stackSize int
	noStack   bool
}

// RecoverOption configures Recover.
type RecoverOption func(*recoverConfig)

// WithRecoverStackSize caps the captured stack trace at n bytes (default 4 KiB).
func WithRecoverStackSize(n int) RecoverOption {
	return func(cfg *recoverConfig) {
		if n > 0 {
			cfg.stackSize = n
		}
	}
}

// WithRecoverDisablePrintStack skips stack capture entirely.
func WithRecoverDisablePrintStack() RecoverOption {
	return func(cfg *recoverConfig) { cfg.noStack = true }
}

// Recover turns a panic into a PanicError for the error handler, which
// renders it as a 500. http.ErrAbortHandler is re-raised for net/http.
func Recover(opts ...RecoverOption) internal.Middleware {
	cfg := recoverConfig{stackSize: 4 << 10}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) (err error) {
			defer func() {
				if v := recover(); v != nil {
					err = cfg.recovered(c, v)
				}
			}()
			return next(c)
		}
	}
}

func (cfg recoverConfig) recovered(c internal.Context, v any) *PanicError {
	if v == http.ErrAbortHandler {
		panic(v)
	}

	pe := &PanicError{Value: v}
	attrs := []any{"panic", v}
	if !cfg.noStack {
		buf := make([]byte, cfg.stackSize)
		pe.Stack = buf[:runtime.Stack(buf, false)]
		attrs = append(attrs, "stack", string(pe.Stack))
	}
	c.Logger().ErrorContext(c, "panic recovered", attrs...)
	return pe
}
