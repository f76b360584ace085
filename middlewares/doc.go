// Package middlewares provides the HTTP middleware used by the media API.
//
// # Request ID
//
// RequestID assigns a UUID to each request unless an upstream proxy already
// sent one in X-Request-ID or X-Correlation-ID. Pair it with
// RequestIDExtractor so every log line carries request_id:
//
//	app := mediacms.New(
//	    mediacms.WithCustomLogger(logger.New(middlewares.RequestIDExtractor())),
//	    mediacms.WithMiddleware(middlewares.RequestID()),
//	)
//
// # Recover and Timeout
//
// Recover converts panics into *PanicError. Timeout installs a deadline on
// the request context and reports *TimeoutError when it expires before a
// response is written. Both errors go to the app's error handler.
//
// # Request logging
//
// RequestLogger logs method, path, status, size and duration once the
// handler returns.
//
// # Upload
//
// Upload is a route-level middleware that parses text form bodies
// (multipart or urlencoded) into a map read with FormBody:
//
//	r.PUT("/intro", h.updateIntro, middlewares.Upload(middlewares.WithMaxBodySize(1<<20)))
//
// File parts are rejected with 400 and oversized bodies with 413.
package middlewares
