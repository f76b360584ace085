package middlewares

import (
	"errors"
	"mime"
	"net/http"

	"github.com/noorus/mediacms/internal"
)

// DefaultMaxBodySize caps form bodies at 1 MiB.
const DefaultMaxBodySize int64 = 1 << 20

type formBodyKey struct{}

// UploadConfig configures the upload middleware.
type UploadConfig struct {
	MaxBodySize int64
}

// UploadOption configures UploadConfig.
type UploadOption func(*UploadConfig)

// WithMaxBodySize limits the request body; larger bodies are rejected with 413.
func WithMaxBodySize(n int64) UploadOption {
	return func(cfg *UploadConfig) {
		if n > 0 {
			cfg.MaxBodySize = n
		}
	}
}

// Upload parses text form submissions before the handler runs.
//
// Both multipart/form-data and application/x-www-form-urlencoded bodies are
// accepted. Fields end up in a map read with FormBody, keeping the first value
// of each key. Any file part is rejected with 400. Other content types leave
// an empty body.
func Upload(opts ...UploadOption) internal.Middleware {
	cfg := &UploadConfig{MaxBodySize: DefaultMaxBodySize}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			body, err := parseForm(c, cfg.MaxBodySize)
			if err != nil {
				return err
			}

			c.Set(formBodyKey{}, body)
			return next(c)
		}
	}
}

// FormBody returns the fields parsed by Upload. It is never nil.
func FormBody(c internal.Context) map[string]string {
	if v, ok := c.Get(formBodyKey{}).(map[string]string); ok {
		return v
	}
	return map[string]string{}
}

func parseForm(c internal.Context, maxBytes int64) (map[string]string, error) {
	r := c.Request()
	body := map[string]string{}

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return body, nil
	}

	r.Body = http.MaxBytesReader(c.Response(), r.Body, maxBytes)

	var values map[string][]string
	switch mediaType {
	case "multipart/form-data":
		// Everything stays in memory up to the body limit.
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			return nil, formError(err)
		}
		defer func() { _ = r.MultipartForm.RemoveAll() }()

		if len(r.MultipartForm.File) > 0 {
			return nil, internal.ErrBadRequest("file uploads are not accepted", internal.WithError(ErrUnexpectedFile))
		}
		values = r.MultipartForm.Value
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, formError(err)
		}
		values = r.PostForm
	default:
		return body, nil
	}

	for k, v := range values {
		if len(v) > 0 {
			body[k] = v[0]
		}
	}
	return body, nil
}

func formError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return internal.ErrRequestTooLarge("request body too large", internal.WithError(err))
	}
	return internal.ErrBadRequest("malformed form body", internal.WithError(errors.Join(ErrMalformedForm, err)))
}
