package logger

import "errors"

// ErrSentryFlushTimeout is returned when buffered events were not delivered before shutdown.
var ErrSentryFlushTimeout = errors.New("logger: sentry flush timed out")
