// Package token implements refresh token persistence using PostgreSQL.
package token

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/echospace/echospace-backend/internal/adapter/postgres"
	"github.com/echospace/echospace-backend/internal/domain"
)

const tokenColumns = `id, user_id, token_hash, expires_at, created_at, revoked_at`

const (
	createSQL = `
		INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + tokenColumns

	getByHashSQL = `SELECT ` + tokenColumns + ` FROM refresh_tokens WHERE token_hash = $1`

	revokeSQL = `UPDATE refresh_tokens SET revoked_at = $2 WHERE id = $1 AND revoked_at IS NULL`

	revokeAllByUserSQL = `UPDATE refresh_tokens SET revoked_at = $2 WHERE user_id = $1 AND revoked_at IS NULL`

	deleteExpiredSQL = `DELETE FROM refresh_tokens WHERE expires_at < $1 OR revoked_at IS NOT NULL`
)

// Repo provides refresh token persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new refresh token repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a new refresh token row.
func (r *Repo) Create(ctx context.Context, t *domain.RefreshToken) (*domain.RefreshToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, createSQL, t.ID, t.UserID, t.TokenHash, t.ExpiresAt, t.CreatedAt)

	created, err := scanToken(row)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", t.ID.String())
	}

	return created, nil
}

// GetByHash returns the token row matching the given SHA-256 hash.
func (r *Repo) GetByHash(ctx context.Context, hash string) (*domain.RefreshToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	t, err := scanToken(q.QueryRow(ctx, getByHashSQL, hash))
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", "by_hash")
	}

	return t, nil
}

// Revoke marks a single token as revoked. Revoking an already revoked token
// is a no-op.
func (r *Repo) Revoke(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, revokeSQL, id, time.Now()); err != nil {
		return postgres.MapError(err, "refresh_token", id.String())
	}

	return nil
}

// RevokeAllByUser marks every active token of the user as revoked.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, revokeAllByUserSQL, userID, time.Now()); err != nil {
		return postgres.MapError(err, "refresh_token", userID.String())
	}

	return nil
}

// DeleteExpired removes tokens that expired before the given time, along
// with revoked tokens, and returns the number of rows deleted.
func (r *Repo) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deleteExpiredSQL, before)
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", "expired")
	}

	return tag.RowsAffected(), nil
}

func scanToken(row pgx.Row) (*domain.RefreshToken, error) {
	var t domain.RefreshToken

	err := row.Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt, &t.RevokedAt)
	if err != nil {
		return nil, fmt.Errorf("scan refresh token: %w", err)
	}

	return &t, nil
}
