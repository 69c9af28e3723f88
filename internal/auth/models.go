package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is the admin account record. PasswordHash never leaves this package;
// handlers receive the Public projection.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// PublicUser is the client-safe projection of a User.
type PublicUser struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}
}

// RegisterRequest is the inbound registration payload.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the inbound login payload. Identifier matches either
// username or email.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResult carries an issued token and the account it belongs to.
type TokenResult struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}
