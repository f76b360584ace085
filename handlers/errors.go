package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/noorus/mediacms"
	"github.com/noorus/mediacms/middlewares"
	"github.com/noorus/mediacms/pkg/content"
)

// ErrorHandler renders handler errors as "<Status Text>: <message>".
// Server errors are logged and their cause is not exposed.
func ErrorHandler(c mediacms.Context, err error) error {
	he := toHTTPError(err)
	if he.StatusCode() >= http.StatusInternalServerError {
		c.Logger().ErrorContext(c, "request failed", "status", he.StatusCode(), "error", err)
	}

	return c.String(he.StatusCode(), he.StatusText()+": "+he.Message)
}

func toHTTPError(err error) *mediacms.HTTPError {
	if he := mediacms.AsHTTPError(err); he != nil {
		return he
	}

	code, msg := http.StatusInternalServerError, "something went wrong"
	switch {
	case errors.Is(err, content.ErrInvalidID):
		code, msg = http.StatusBadRequest, "id must be a positive integer"
	case errors.Is(err, content.ErrEmptyUpdate):
		code, msg = http.StatusBadRequest, "no fields to update"
	case errors.Is(err, content.ErrNotFound):
		code, msg = http.StatusNotFound, "no entry with that id"
	case isTimeout(err):
		code, msg = http.StatusServiceUnavailable, "request timed out"
	}
	return &mediacms.HTTPError{Code: code, Message: msg, Err: err}
}

func isTimeout(err error) bool {
	if _, ok := middlewares.AsTimeoutError(err); ok {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
