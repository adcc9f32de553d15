package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an application user created on first OAuth sign-in
// or by the demo seeder.
type User struct {
	ID         uuid.UUID
	Username   string
	Email      *string // unique when present; GitHub may withhold it
	Image      string
	ExternalID string // OAuth provider subject, unique
	Role       UserRole
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PublicUser is the subset of user fields safe to expose through the API.
// ExternalID never leaves the server.
type PublicUser struct {
	ID        uuid.UUID
	Username  string
	Email     *string
	Image     string
	Role      UserRole
	CreatedAt time.Time
}

// Public strips the fields that must not be surfaced to clients.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Image:     u.Image,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
