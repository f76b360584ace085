package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/noorus/mediacms"
	"github.com/noorus/mediacms/handlers"
	"github.com/noorus/mediacms/middlewares"
	"github.com/noorus/mediacms/pkg/content"
)

type fixture struct {
	intros   *mockIntros
	iframes  *mockList
	sections *mockList
	app      *mediacms.App
}

func newFixture(t *testing.T, opts ...handlers.MediaOption) *fixture {
	t.Helper()

	f := &fixture{
		intros:   &mockIntros{},
		iframes:  &mockList{},
		sections: &mockList{},
	}
	f.app = mediacms.New(
		mediacms.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
		mediacms.WithErrorHandler(handlers.ErrorHandler),
		mediacms.WithHandlers(handlers.NewMedia(f.intros, f.iframes, f.sections, opts...)),
	)

	t.Cleanup(func() {
		f.intros.AssertExpectations(t)
		f.iframes.AssertExpectations(t)
		f.sections.AssertExpectations(t)
	})
	return f
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.app.ServeHTTP(rec, req)
	return rec
}

func formRequest(method, path string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func multipartRequest(t *testing.T, method, path string, fields map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestMedia_UpdateIntro(t *testing.T) {
	t.Parallel()

	t.Run("writes the text", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.intros.On("UpdateText", mock.Anything, "Hello choir").Return(nil).Once()

		rec := f.do(multipartRequest(t, http.MethodPut, "/media/intro", map[string]string{"text": "Hello choir"}))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK!", rec.Body.String())
	})

	t.Run("missing field", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		rec := f.do(formRequest(http.MethodPut, "/media/intro", url.Values{"other": {"x"}}))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Bad Request: missing form field text", rec.Body.String())
	})

	t.Run("intro row missing", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.intros.On("UpdateText", mock.Anything, "x").Return(content.ErrNotFound).Once()

		rec := f.do(formRequest(http.MethodPut, "/media/intro", url.Values{"text": {"x"}}))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMedia_UpdateIframes(t *testing.T) {
	t.Parallel()

	t.Run("keys are 1-based ids", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		want := map[content.Position]string{0: "<iframe one>", 2: "<iframe three>"}
		f.iframes.On("UpdateMany", mock.Anything, want).Return(nil).Once()

		rec := f.do(multipartRequest(t, http.MethodPut, "/media/iframes", map[string]string{
			"1": "<iframe one>",
			"3": "<iframe three>",
		}))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK!", rec.Body.String())
	})

	t.Run("non-numeric key", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		rec := f.do(formRequest(http.MethodPut, "/media/iframes", url.Values{"abc": {"x"}}))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.iframes.On("UpdateMany", mock.Anything, map[content.Position]string{}).Return(content.ErrEmptyUpdate).Once()

		rec := f.do(formRequest(http.MethodPut, "/media/iframes", url.Values{}))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMedia_UpdateIframe(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.iframes.On("Update", mock.Anything, content.Position(2), "<iframe x>").Return(nil).Once()

	rec := f.do(formRequest(http.MethodPut, "/media/iframes/3", url.Values{"content": {"<iframe x>"}}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK!", rec.Body.String())
}

func TestMedia_Create(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		path string
		svc  func(f *fixture) *mockList
	}{
		{"/media/iframes", func(f *fixture) *mockList { return f.iframes }},
		{"/media/sections", func(f *fixture) *mockList { return f.sections }},
	} {
		t.Run(tc.path, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			tc.svc(f).On("Create", mock.Anything).Return(content.Entry{ID: uuid.New()}, nil).Once()

			// The body is ignored, even a file.
			var buf bytes.Buffer
			w := multipart.NewWriter(&buf)
			fw, err := w.CreateFormFile("file", "a.png")
			require.NoError(t, err)
			_, _ = fw.Write([]byte("png"))
			require.NoError(t, w.Close())
			req := httptest.NewRequest(http.MethodPost, tc.path, &buf)
			req.Header.Set("Content-Type", w.FormDataContentType())

			rec := f.do(req)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "OK", rec.Body.String())
		})
	}
}

func TestMedia_Delete(t *testing.T) {
	t.Parallel()

	t.Run("deletes at id-1", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.sections.On("Delete", mock.Anything, content.Position(0)).Return(nil).Once()

		rec := f.do(httptest.NewRequest(http.MethodDelete, "/media/sections/1", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK!", rec.Body.String())
	})

	t.Run("beyond the end is 404", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.iframes.On("Delete", mock.Anything, content.Position(6)).
			Return(fmt.Errorf("%w: iframe 7", content.ErrNotFound)).Once()

		rec := f.do(httptest.NewRequest(http.MethodDelete, "/media/iframes/7", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Not Found: no entry with that id", rec.Body.String())
	})

	t.Run("malformed ids are 400", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		for _, id := range []string{"abc", "0", "-2"} {
			rec := f.do(httptest.NewRequest(http.MethodDelete, "/media/iframes/"+id, nil))
			assert.Equal(t, http.StatusBadRequest, rec.Code, id)
		}
	})
}

func TestMedia_UpdateSection(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.sections.On("Update", mock.Anything, content.Position(1), "<h2>New</h2>").Return(nil).Once()

	rec := f.do(multipartRequest(t, http.MethodPut, "/media/sections/2", map[string]string{"content": "<h2>New</h2>"}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK!", rec.Body.String())
}

func TestMedia_Read(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	key := uuid.New()

	f := newFixture(t)
	f.iframes.On("List", mock.Anything).Return([]content.Entry{
		{ID: key, Position: 0, Content: "<iframe a>", UpdatedAt: now},
	}, nil).Once()
	f.intros.On("Get", mock.Anything).Return(content.Entry{Position: 3, Content: "intro"}, nil).Once()

	rec := f.do(httptest.NewRequest(http.MethodGet, "/media/iframes", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.EqualValues(t, 1, got[0]["id"])
	assert.Equal(t, key.String(), got[0]["key"])
	assert.Equal(t, "<iframe a>", got[0]["content"])

	rec = f.do(httptest.NewRequest(http.MethodGet, "/media/intro", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":4`)
}

func TestMedia_StorageFailure(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.sections.On("List", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	rec := f.do(httptest.NewRequest(http.MethodGet, "/media/sections", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestMedia_MountPath(t *testing.T) {
	t.Parallel()

	f := newFixture(t, handlers.WithMountPath("/api/media"))
	f.sections.On("Delete", mock.Anything, content.Position(0)).Return(nil).Once()

	rec := f.do(httptest.NewRequest(http.MethodDelete, "/api/media/sections/1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(httptest.NewRequest(http.MethodDelete, "/media/sections/1", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
