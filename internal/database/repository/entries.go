package repository

import (
	"context"
	"database/sql"
	"time"
)

// Entry is one row shown by the entry source, grouped by day.
type Entry struct {
	ID        string
	Day       string // YYYY-MM-DD
	Title     string
	Detail    string
	Kind      string
	CreatedAt time.Time
}

// EntryRepo handles entries.
type EntryRepo struct {
	db *sql.DB
}

func NewEntryRepo(db *sql.DB) *EntryRepo {
	return &EntryRepo{db: db}
}

func (r *EntryRepo) Upsert(ctx context.Context, e Entry) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO entries(id, day, title, detail, kind)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 day=excluded.day,
	 title=excluded.title,
	 detail=excluded.detail,
	 kind=excluded.kind;
	`, e.ID, e.Day, e.Title, e.Detail, e.Kind)
	return err
}

func (r *EntryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
	return err
}

// List returns all entries ordered newest day first, oldest entry first
// within a day. The entry source slices this into sections.
func (r *EntryRepo) List(ctx context.Context) ([]Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, day, title, detail, kind, created_at
	FROM entries
	ORDER BY day DESC, created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Day, &e.Title, &e.Detail, &e.Kind, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Count returns the number of stored entries.
func (r *EntryRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&n)
	return n, err
}
