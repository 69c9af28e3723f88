package auth

import (
	"context"

	"github.com/google/uuid"
)

// UserStore abstracts account persistence. Lookup misses return
// sentinel.ErrNotFound; duplicate username/email on Save returns
// sentinel.ErrConflict.
type UserStore interface {
	Save(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}
