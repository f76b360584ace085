package content

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/noorus/mediacms/pkg/db"
)

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx, so the repository runs
// the same way inside and outside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// kindQueries holds the statements for one table.
// Every positional statement resolves the position to the row's key in a
// subquery, so each operation is a single round trip.
type kindQueries struct {
	insert string
	update string
	delete string
	get    string
	list   string
	count  string
}

var queries = buildQueries()

func buildQueries() map[Kind]kindQueries {
	qs := make(map[Kind]kindQueries, len(Kinds))
	for _, k := range Kinds {
		t := k.Table()
		at := fmt.Sprintf("(SELECT id FROM %s ORDER BY seq OFFSET $1 LIMIT 1)", t)
		qs[k] = kindQueries{
			insert: fmt.Sprintf("INSERT INTO %s (id, content) VALUES ($1, $2) RETURNING created_at, updated_at", t),
			update: fmt.Sprintf("UPDATE %s SET content = $2, updated_at = now() WHERE id = %s", t, at),
			delete: fmt.Sprintf("DELETE FROM %s WHERE id = %s", t, at),
			get:    fmt.Sprintf("SELECT id, content, created_at, updated_at FROM %s ORDER BY seq OFFSET $1 LIMIT 1", t),
			list:   fmt.Sprintf("SELECT id, content, created_at, updated_at FROM %s ORDER BY seq", t),
			count:  fmt.Sprintf("SELECT count(*) FROM %s", t),
		}
	}
	return qs
}

func queriesFor(kind Kind) (kindQueries, error) {
	q, ok := queries[kind]
	if !ok {
		return kindQueries{}, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
	return q, nil
}

// Repository is the table-agnostic CRUD layer over the content tables.
// It holds no state besides the database handle.
type Repository struct {
	db DBTX
}

// NewRepository creates a repository on the given pool or transaction.
func NewRepository(db DBTX) *Repository {
	return &Repository{db: db}
}

// Create appends a row with empty content to the kind's table.
func (r *Repository) Create(ctx context.Context, kind Kind) (Entry, error) {
	return r.Insert(ctx, kind, "")
}

// Insert appends a row with the given content and returns it with its new key.
func (r *Repository) Insert(ctx context.Context, kind Kind, content string) (Entry, error) {
	q, err := queriesFor(kind)
	if err != nil {
		return Entry{}, err
	}

	e := Entry{ID: uuid.New(), Kind: kind, Content: content}
	if err := r.db.QueryRow(ctx, q.insert, e.ID, content).Scan(&e.CreatedAt, &e.UpdatedAt); err != nil {
		return Entry{}, fmt.Errorf("content: insert %s: %w", kind, err)
	}
	return e, nil
}

// Update overwrites the content of the row at pos.
// Writing the same content twice leaves the same stored value.
func (r *Repository) Update(ctx context.Context, kind Kind, pos Position, content string) error {
	q, err := queriesFor(kind)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, q.update, int64(pos), content)
	if err != nil {
		return fmt.Errorf("content: update %s %d: %w", kind, pos.ID(), err)
	}
	if tag.RowsAffected() == 0 {
		return notFound(kind, pos)
	}
	return nil
}

// UpdateMany applies several positional updates in one transaction.
// A missing position rolls back the whole batch.
func (r *Repository) UpdateMany(ctx context.Context, kind Kind, updates map[Position]string) error {
	if len(updates) == 0 {
		return ErrEmptyUpdate
	}
	if _, err := queriesFor(kind); err != nil {
		return err
	}

	return db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		txRepo := NewRepository(tx)
		for _, pos := range slices.Sorted(maps.Keys(updates)) {
			if err := txRepo.Update(ctx, kind, pos, updates[pos]); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the row at pos.
func (r *Repository) Delete(ctx context.Context, kind Kind, pos Position) error {
	q, err := queriesFor(kind)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, q.delete, int64(pos))
	if err != nil {
		return fmt.Errorf("content: delete %s %d: %w", kind, pos.ID(), err)
	}
	if tag.RowsAffected() == 0 {
		return notFound(kind, pos)
	}
	return nil
}

// Get returns the row at pos.
func (r *Repository) Get(ctx context.Context, kind Kind, pos Position) (Entry, error) {
	q, err := queriesFor(kind)
	if err != nil {
		return Entry{}, err
	}

	e := Entry{Kind: kind, Position: pos}
	err = r.db.QueryRow(ctx, q.get, int64(pos)).Scan(&e.ID, &e.Content, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Entry{}, notFound(kind, pos)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("content: get %s %d: %w", kind, pos.ID(), err)
	}
	return e, nil
}

// List returns every row of the kind in position order.
func (r *Repository) List(ctx context.Context, kind Kind) ([]Entry, error) {
	q, err := queriesFor(kind)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, q.list)
	if err != nil {
		return nil, fmt.Errorf("content: list %s: %w", kind, err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e := Entry{Kind: kind, Position: Position(len(entries))}
		if err := rows.Scan(&e.ID, &e.Content, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("content: scan %s: %w", kind, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("content: list %s: %w", kind, err)
	}
	return entries, nil
}

// Count returns the number of rows of the kind.
func (r *Repository) Count(ctx context.Context, kind Kind) (int, error) {
	q, err := queriesFor(kind)
	if err != nil {
		return 0, err
	}

	var n int
	if err := r.db.QueryRow(ctx, q.count).Scan(&n); err != nil {
		return 0, fmt.Errorf("content: count %s: %w", kind, err)
	}
	return n, nil
}

func notFound(kind Kind, pos Position) error {
	return fmt.Errorf("%w: %s %d", ErrNotFound, kind, pos.ID())
}
