package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noorus/mediacms/pkg/health"
)

func get(t *testing.T, h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestLivenessHandler(t *testing.T) {
	t.Parallel()

	rec := get(t, health.LivenessHandler(), "/health/live")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestReadinessHandler(t *testing.T) {
	t.Parallel()

	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	t.Run("all healthy", func(t *testing.T) {
		t.Parallel()

		rec := get(t, health.ReadinessHandler(health.Checks{"db": ok}), "/health/ready")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("no checks", func(t *testing.T) {
		t.Parallel()

		rec := get(t, health.ReadinessHandler(nil), "/health/ready")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("failing check names itself", func(t *testing.T) {
		t.Parallel()

		rec := get(t, health.ReadinessHandler(health.Checks{"db": down, "cache": ok}), "/health/ready")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "Service Unavailable: db", rec.Body.String())
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		rec := get(t, health.ReadinessHandler(health.Checks{"db": down}), "/health/ready?format=json")
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var resp health.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, health.StatusUnhealthy, resp.Status)
		assert.Equal(t, "connection refused", resp.Checks["db"].Error)
	})

	t.Run("slow check times out", func(t *testing.T) {
		t.Parallel()

		slow := func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}
		h := health.ReadinessHandler(health.Checks{"db": slow}, health.WithTimeout(10*time.Millisecond))

		rec := get(t, h, "/health/ready?format=json")
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "check timeout")
	})
}
