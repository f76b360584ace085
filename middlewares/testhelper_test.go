package middlewares_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/noorus/mediacms/internal"
)

// newTestContext builds a Context for driving a middleware directly.
func newTestContext(w http.ResponseWriter, r *http.Request) internal.Context {
	return internal.NewContext(w, r, nil)
}

func newLoggingContext(log *slog.Logger, r *http.Request) internal.Context {
	return internal.NewContext(httptest.NewRecorder(), r, log)
}
