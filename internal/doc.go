// Package internal holds the HTTP kernel behind package mediacms.
// Import "github.com/noorus/mediacms" instead; it re-exports the public API.
//
// Handlers return errors instead of writing failure responses. The App hands
// every non-nil error to the configured ErrorHandler unless the response has
// already started. Unmatched routes and methods take the same path as
// 404 and 405 HTTPErrors.
//
//	func (h *Media) deleteSection(c mediacms.Context) error {
//	    pos, err := content.ParseID(c.Param("id"))
//	    if err != nil {
//	        return err
//	    }
//	    if err := h.sections.Delete(c, pos); err != nil {
//	        return err
//	    }
//	    return c.String(http.StatusOK, "OK!")
//	}
//
// Global middleware wraps every route through chi, so each layer sees its
// own Context and renders its own errors. Route middleware runs inside it.
package internal
