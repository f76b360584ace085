package middlewares_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noorus/mediacms/internal"
	"github.com/noorus/mediacms/middlewares"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("recovers from panic and returns PanicError", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		handler := middlewares.Recover()(func(c internal.Context) error {
			panic("test panic")
		})

		err := handler(ctx)
		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		require.Equal(t, "test panic", pe.Value)
		require.NotEmpty(t, pe.Stack)
		require.Equal(t, "panic: test panic", err.Error())
	})

	t.Run("passes through handler errors", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		want := errors.New("boom")

		err := middlewares.Recover()(func(c internal.Context) error {
			return want
		})(ctx)
		require.ErrorIs(t, err, want)

		_, ok := middlewares.AsPanicError(err)
		require.False(t, ok)
	})

	t.Run("omits stack when disabled", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		err := middlewares.Recover(middlewares.WithRecoverDisablePrintStack())(func(c internal.Context) error {
			panic(42)
		})(ctx)

		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		require.Equal(t, 42, pe.Value)
		require.Nil(t, pe.Stack)
	})

	t.Run("caps stack size", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		err := middlewares.Recover(middlewares.WithRecoverStackSize(64))(func(c internal.Context) error {
			panic("small")
		})(ctx)

		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		require.LessOrEqual(t, len(pe.Stack), 64)
	})
	t.Run("re-raises http.ErrAbortHandler", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		handler := middlewares.Recover()(func(c internal.Context) error {
			panic(http.ErrAbortHandler)
		})

		require.PanicsWithValue(t, http.ErrAbortHandler, func() { _ = handler(ctx) })
	})
}
