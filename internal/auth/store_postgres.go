package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"folio/pkg/platform/sentinel"
)

// PostgresUserStore persists accounts in PostgreSQL.
type PostgresUserStore struct {
	db *sql.DB
}

func NewPostgresUserStore(db *sql.DB) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

// EnsureSchema creates the users table when it does not exist yet.
func (s *PostgresUserStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id            UUID PRIMARY KEY,
			username      TEXT NOT NULL UNIQUE,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role          TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("ensure users schema: %w", err)
	}
	return nil
}

func (s *PostgresUserStore) Save(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			username      = EXCLUDED.username,
			email         = EXCLUDED.email,
			password_hash = EXCLUDED.password_hash,
			role          = EXCLUDED.role
	`
	_, err := s.db.ExecContext(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.Role, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

func (s *PostgresUserStore) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.findOne(ctx, `SELECT id, username, email, password_hash, role, created_at FROM users WHERE id = $1`, id)
}

func (s *PostgresUserStore) FindByUsername(ctx context.Context, username string) (*User, error) {
	return s.findOne(ctx, `SELECT id, username, email, password_hash, role, created_at FROM users WHERE lower(username) = lower($1)`, username)
}

func (s *PostgresUserStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	return s.findOne(ctx, `SELECT id, username, email, password_hash, role, created_at FROM users WHERE lower(email) = lower($1)`, email)
}

func (s *PostgresUserStore) findOne(ctx context.Context, query string, arg any) (*User, error) {
	var user User
	err := s.db.QueryRowContext(ctx, query, arg).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	// 23505 is unique_violation.
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
