// Package content stores the editable pieces of the media page: the intro
// text, the embedded iframes and the free-form sections.
//
// Each kind lives in its own table. Rows are addressed by Position, the
// 0-based place of the row in insertion order; route identifiers are 1-based
// and are converted with ParseID. Every positional statement resolves the
// position to the row's stable key inside the same SQL statement.
//
//	repo := content.NewRepository(pool)
//	iframes := content.NewIframes(repo)
//
//	pos, err := content.ParseID(chi.URLParam(r, "id"))
//	if err != nil {
//	    return err // content.ErrInvalidID
//	}
//	if err := iframes.Update(ctx, pos, body); errors.Is(err, content.ErrNotFound) {
//	    // no row at pos
//	}
//
// The schema ships with the package; apply it at startup with
//
//	db.Migrate(ctx, pool, content.Migrations(), "", log)
package content
