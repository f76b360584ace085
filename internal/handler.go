package internal

// Handler declares a group of routes. Each content section is one Handler.
type Handler interface {
	Routes(r Router)
}

// HandlerFunc serves a request. A returned error goes to the app's
// ErrorHandler unless the response has already started.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc. It may short-circuit by returning an
// error without calling next.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler renders an error returned from a handler or middleware.
type ErrorHandler func(Context, error) error

// chain applies mw so that mw[0] runs first.
func chain(h HandlerFunc, mw []Middleware) HandlerFunc {
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	return h
}
