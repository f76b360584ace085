package middlewares

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/noorus/mediacms/internal"
	"github.com/noorus/mediacms/pkg/logger"
)

type requestIDKey struct{}

// RequestIDHeader carries the id back to the client.
const RequestIDHeader = "X-Request-ID"

type requestIDConfig struct {
	generate func() string
	headers  []string
}

// RequestIDOption configures RequestID.
type RequestIDOption func(*requestIDConfig)

// WithRequestIDHeaders replaces the inbound headers trusted to carry an
// upstream id. Defaults to X-Request-ID, then X-Correlation-ID.
func WithRequestIDHeaders(headers ...string) RequestIDOption {
	return func(cfg *requestIDConfig) { cfg.headers = headers }
}

// WithRequestIDGenerator replaces uuid.NewString for fresh ids.
func WithRequestIDGenerator(gen func() string) RequestIDOption {
	return func(cfg *requestIDConfig) {
		if gen != nil {
			cfg.generate = gen
		}
	}
}

// RequestID tags the request with an id, reusing an upstream one when a
// trusted header carries it, and echoes it in X-Request-ID.
func RequestID(opts ...RequestIDOption) internal.Middleware {
	cfg := requestIDConfig{
		generate: uuid.NewString,
		headers:  []string{RequestIDHeader, "X-Correlation-ID"},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var sources []internal.ExtractorSource
	for _, h := range cfg.headers {
		sources = append(sources, internal.FromHeader(h))
	}
	upstream := internal.NewExtractor(sources...)

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			id, ok := upstream.Extract(c)
			if !ok {
				id = cfg.generate()
			}
			c.Set(requestIDKey{}, id)
			c.SetHeader(RequestIDHeader, id)
			return next(c)
		}
	}
}

// GetRequestID returns the id set by RequestID, or "".
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestIDExtractor feeds the request id into every log record written
// with the request context.
func RequestIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		id := GetRequestID(ctx)
		return slog.String("request_id", id), id != ""
	}
}
