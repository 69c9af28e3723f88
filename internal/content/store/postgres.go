package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"folio/pkg/platform/sentinel"
)

// Postgres persists documents in a single JSONB table keyed by (kind, id).
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// EnsureSchema creates the documents table and its list index when they do
// not exist yet.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS documents (
			kind       TEXT NOT NULL,
			id         UUID NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			sort_at    TIMESTAMPTZ NOT NULL,
			doc        JSONB NOT NULL,
			PRIMARY KEY (kind, id)
		)
	`)
	if err != nil {
		return fmt.Errorf("ensure documents schema: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS documents_kind_sort_at_idx
			ON documents (kind, sort_at DESC)
	`)
	if err != nil {
		return fmt.Errorf("ensure documents index: %w", err)
	}
	return nil
}

func (s *Postgres) Save(ctx context.Context, rec Record) error {
	query := `
		INSERT INTO documents (kind, id, created_at, sort_at, doc)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (kind, id) DO UPDATE SET
			sort_at = EXCLUDED.sort_at,
			doc     = EXCLUDED.doc
	`
	_, err := s.db.ExecContext(ctx, query,
		rec.Kind, rec.ID, rec.CreatedAt, rec.SortAt, []byte(rec.Doc))
	if err != nil {
		return fmt.Errorf("save %s document: %w", rec.Kind, err)
	}
	return nil
}

func (s *Postgres) Find(ctx context.Context, kind string, id uuid.UUID) (Record, error) {
	query := `SELECT kind, id, created_at, sort_at, doc FROM documents WHERE kind = $1 AND id = $2`
	var rec Record
	var doc []byte
	err := s.db.QueryRowContext(ctx, query, kind, id).
		Scan(&rec.Kind, &rec.ID, &rec.CreatedAt, &rec.SortAt, &doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, sentinel.ErrNotFound
		}
		return Record{}, fmt.Errorf("find %s document: %w", kind, err)
	}
	rec.Doc = doc
	return rec, nil
}

func (s *Postgres) List(ctx context.Context, kind string) ([]Record, error) {
	query := `
		SELECT kind, id, created_at, sort_at, doc
		FROM documents
		WHERE kind = $1
		ORDER BY sort_at DESC, id
	`
	rows, err := s.db.QueryContext(ctx, query, kind)
	if err != nil {
		return nil, fmt.Errorf("list %s documents: %w", kind, err)
	}
	defer rows.Close()

	out := make([]Record, 0)
	for rows.Next() {
		var rec Record
		var doc []byte
		if err := rows.Scan(&rec.Kind, &rec.ID, &rec.CreatedAt, &rec.SortAt, &doc); err != nil {
			return nil, fmt.Errorf("scan %s document: %w", kind, err)
		}
		rec.Doc = doc
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s documents: %w", kind, err)
	}
	return out, nil
}

func (s *Postgres) Delete(ctx context.Context, kind string, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE kind = $1 AND id = $2`, kind, id)
	if err != nil {
		return fmt.Errorf("delete %s document: %w", kind, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s document: %w", kind, err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
