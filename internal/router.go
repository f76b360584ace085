package internal

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Router is the route declaration surface passed to Handler.Routes.
// Per-route middleware runs inside the global middleware, in the order given.
type Router interface {
	Handle(method, path string, h HandlerFunc, mw ...Middleware)
	GET(path string, h HandlerFunc, mw ...Middleware)
	POST(path string, h HandlerFunc, mw ...Middleware)
	PUT(path string, h HandlerFunc, mw ...Middleware)
	DELETE(path string, h HandlerFunc, mw ...Middleware)

	// Route scopes fn under a path prefix.
	Route(prefix string, fn func(r Router))
	// Use adds middleware to every route declared on this router afterwards.
	Use(mw ...Middleware)
}

type router struct {
	mux chi.Router
	app *App
	mw  []Middleware
}

func (r *router) Handle(method, path string, h HandlerFunc, mw ...Middleware) {
	all := append(append([]Middleware(nil), r.mw...), mw...)
	r.mux.Method(method, path, r.app.serve(chain(h, all)))
}

func (r *router) GET(path string, h HandlerFunc, mw ...Middleware) {
	r.Handle(http.MethodGet, path, h, mw...)
}

func (r *router) POST(path string, h HandlerFunc, mw ...Middleware) {
	r.Handle(http.MethodPost, path, h, mw...)
}

func (r *router) PUT(path string, h HandlerFunc, mw ...Middleware) {
	r.Handle(http.MethodPut, path, h, mw...)
}

func (r *router) DELETE(path string, h HandlerFunc, mw ...Middleware) {
	r.Handle(http.MethodDelete, path, h, mw...)
}

func (r *router) Route(prefix string, fn func(Router)) {
	r.mux.Route(prefix, func(sub chi.Router) {
		fn(&router{mux: sub, app: r.app, mw: append([]Middleware(nil), r.mw...)})
	})
}

func (r *router) Use(mw ...Middleware) {
	r.mw = append(r.mw, mw...)
}
