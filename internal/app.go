package internal

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/noorus/mediacms/pkg/health"
	"github.com/noorus/mediacms/pkg/logger"
)

// App is the HTTP application: a chi mux, global middleware, handlers and
// the error handler that renders whatever they return.
// All configuration happens in New; the App is immutable afterwards.
type App struct {
	mux          *chi.Mux
	logger       *slog.Logger
	errorHandler ErrorHandler
	middlewares  []Middleware
	handlers     []Handler
	static       map[string]http.Handler
	health       *healthConfig
}

// New builds an App from opts and registers every route.
func New(opts ...Option) *App {
	a := &App{
		mux:    chi.NewRouter(),
		logger: logger.NewNope(),
		static: make(map[string]http.Handler),
	}
	for _, opt := range opts {
		opt(a)
	}

	for _, mw := range a.middlewares {
		a.mux.Use(a.global(mw))
	}

	a.mux.NotFound(a.serve(func(c Context) error {
		return ErrNotFound("no route for " + c.Request().URL.Path)
	}))
	a.mux.MethodNotAllowed(a.serve(func(c Context) error {
		return ErrMethodNotAllowed(c.Request().Method + " is not allowed here")
	}))

	for pattern, h := range a.static {
		a.mux.Handle(pattern+"*", h)
	}

	if a.health != nil {
		a.mux.Get(a.health.livenessPath, health.LivenessHandler())
		a.mux.Get(a.health.readinessPath,
			health.ReadinessHandler(a.health.checks, health.WithLogger(a.logger)))
	}

	r := &router{mux: a.mux, app: a}
	for _, h := range a.handlers {
		h.Routes(r)
	}
	return a
}

// Router exposes the mux so tests can drive the App without a listener.
func (a *App) Router() chi.Router {
	return a.mux
}

func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}

// serve turns a HandlerFunc into an http.HandlerFunc.
func (a *App) serve(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := NewContext(w, r, a.logger)
		if err := h(c); err != nil {
			a.fail(c, err)
		}
	}
}

// global adapts Middleware to chi so it wraps every route, including
// static files, health probes and the 404/405 fallbacks.
// An error returned by the middleware itself is rendered at its own layer.
func (a *App) global(mw Middleware) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		inner := func(c Context) error {
			next.ServeHTTP(c.Response(), c.Request())
			return nil
		}
		return a.serve(mw(inner))
	}
}

func (a *App) fail(c Context, err error) {
	if c.Written() {
		a.logger.WarnContext(c, "error after response was written", slog.Any("error", err))
		return
	}
	if a.errorHandler == nil {
		code := http.StatusInternalServerError
		if he := AsHTTPError(err); he != nil {
			code = he.Code
		}
		http.Error(c.Response(), http.StatusText(code), code)
		return
	}
	if herr := a.errorHandler(c, err); herr != nil {
		a.logger.ErrorContext(c, "error handler failed", slog.Any("error", herr))
	}
}
