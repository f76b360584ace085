// Package mediacms is the HTTP backend for the media page of a small CMS.
//
// It stores three kinds of page content in PostgreSQL (the intro text, a
// list of embedded iframes and a list of sections) and exposes them under
// /media for the page editor.
//
// The root package is a thin kernel over chi: an [App] built from options,
// handlers that declare routes on a [Router], and [HandlerFunc]s that return
// errors instead of writing them. Errors flow to the [ErrorHandler]:
//
//	app := mediacms.New(
//	    mediacms.WithCustomLogger(log),
//	    mediacms.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.RequestLogger(),
//	        middlewares.Recover(),
//	        middlewares.Timeout(30*time.Second),
//	    ),
//	    mediacms.WithErrorHandler(handlers.ErrorHandler),
//	    mediacms.WithHandlers(handlers.NewMedia(intros, iframes, sections)),
//	    mediacms.WithHealthChecks(
//	        mediacms.WithReadinessCheck("db", db.Healthcheck(pool)),
//	    ),
//	)
//
//	if err := app.Run(":8080", mediacms.ShutdownHook(db.Shutdown(pool))); err != nil {
//	    log.Error("server stopped", "error", err)
//	}
//
// Storage lives in pkg/content, the pool and schema bootstrap in pkg/db,
// and the binaries in cmd/mediacms and cmd/seed.
package mediacms
