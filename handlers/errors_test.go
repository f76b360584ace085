package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/noorus/mediacms"
	"github.com/noorus/mediacms/handlers"
	"github.com/noorus/mediacms/middlewares"
	"github.com/noorus/mediacms/pkg/content"
)

type failingHandler struct {
	err error
}

func (h failingHandler) Routes(r mediacms.Router) {
	r.GET("/", func(mediacms.Context) error { return h.err })
}

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		name string
		body string
		code int
	}{
		{name: "invalid id", err: content.ErrInvalidID, code: http.StatusBadRequest},
		{name: "empty update", err: content.ErrEmptyUpdate, code: http.StatusBadRequest},
		{name: "not found", err: content.ErrNotFound, code: http.StatusNotFound},
		{name: "timeout", err: &middlewares.TimeoutError{Duration: time.Second}, code: http.StatusServiceUnavailable},
		{name: "deadline", err: context.DeadlineExceeded, code: http.StatusServiceUnavailable},
		{name: "panic", err: &middlewares.PanicError{Value: "x"}, code: http.StatusInternalServerError, body: "Internal Server Error: something went wrong"},
		{name: "http error", err: &mediacms.HTTPError{Code: http.StatusRequestEntityTooLarge, Message: "too big"}, code: http.StatusRequestEntityTooLarge, body: "Request Entity Too Large: too big"},
		{name: "storage", err: errors.New("boom"), code: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			app := mediacms.New(
				mediacms.WithErrorHandler(handlers.ErrorHandler),
				mediacms.WithHandlers(failingHandler{err: tc.err}),
			)
			rec := httptest.NewRecorder()
			app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tc.code, rec.Code)
			if tc.body != "" {
				assert.Equal(t, tc.body, rec.Body.String())
			}
		})
	}
}
