package internal

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/noorus/mediacms/pkg/logger"
)

// Context is what handlers and middleware see of a request.
// It satisfies context.Context through the current request context,
// so it can be handed directly to services and repositories.
type Context interface {
	context.Context

	Request() *http.Request
	// Response is the recording writer; Status and Size reflect what was sent.
	Response() *ResponseWriter
	Logger() *slog.Logger

	// Context returns the current request context. SetContext replaces it,
	// e.g. to install a deadline for everything downstream.
	Context() context.Context
	SetContext(ctx context.Context)

	// Param returns a chi URL parameter, or "" when the route has none.
	Param(name string) string
	Query(name string) string
	Header(name string) string
	SetHeader(name, value string)

	// Set and Get store request-scoped values in the request context.
	Set(key, value any)
	Get(key any) any

	String(code int, s string) error
	JSON(code int, v any) error
	NoContent(code int) error

	// Written reports whether a status line has gone out.
	Written() bool
}

type requestContext struct {
	r   *http.Request
	w   *ResponseWriter
	log *slog.Logger
}

// NewContext wraps w and r. A nil logger discards output.
func NewContext(w http.ResponseWriter, r *http.Request, log *slog.Logger) Context {
	if log == nil {
		log = logger.NewNope()
	}
	return &requestContext{r: r, w: NewResponseWriter(w), log: log}
}

func (c *requestContext) Deadline() (time.Time, bool) { return c.r.Context().Deadline() }
func (c *requestContext) Done() <-chan struct{} { return c.r.Context().Done() }
func (c *requestContext) Err() error { return c.r.Context().Err() }
func (c *requestContext) Value(key any) any { return c.r.Context().Value(key) }

func (c *requestContext) Request() *http.Request { return c.r }
func (c *requestContext) Response() *ResponseWriter { return c.w }
func (c *requestContext) Logger() *slog.Logger { return c.log }
func (c *requestContext) Context() context.Context { return c.r.Context() }
func (c *requestContext) Param(name string) string { return chi.URLParam(c.r, name) }
func (c *requestContext) Query(name string) string { return c.r.URL.Query().Get(name) }
func (c *requestContext) Header(name string) string { return c.r.Header.Get(name) }
func (c *requestContext) SetHeader(name, val string) { c.w.Header().Set(name, val) }
func (c *requestContext) Get(key any) any { return c.r.Context().Value(key) }
func (c *requestContext) Written() bool { return c.w.Written() }

func (c *requestContext) SetContext(ctx context.Context) {
	if ctx != nil {
		c.r = c.r.WithContext(ctx)
	}
}

func (c *requestContext) Set(key, value any) {
	c.SetContext(context.WithValue(c.r.Context(), key, value))
}

func (c *requestContext) String(code int, s string) error {
	c.w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.w.WriteHeader(code)
	_, err := c.w.Write([]byte(s))
	return err
}

func (c *requestContext) JSON(code int, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.w.Header().Set("Content-Type", "application/json; charset=utf-8")
	c.w.WriteHeader(code)
	_, err = c.w.Write(body)
	return err
}

func (c *requestContext) NoContent(code int) error {
	c.w.WriteHeader(code)
	return nil
}

// ContextValue returns the value stored under key with Set, or T's zero value.
func ContextValue[T any](c Context, key any) T {
	v, _ := c.Get(key).(T)
	return v
}
