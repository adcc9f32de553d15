// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/echospace/echospace-backend/internal/adapter/postgres"
	"github.com/echospace/echospace-backend/internal/domain"
)

const userColumns = `id, username, email, image, external_id, role, created_at, updated_at`

const (
	getByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	getByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	getByExternalIDSQL = `SELECT ` + userColumns + ` FROM users WHERE external_id = $1`

	createSQL = `
		INSERT INTO users (id, username, email, image, external_id, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING ` + userColumns

	updateRoleSQL = `
		UPDATE users SET role = $2, updated_at = $3 WHERE id = $1
		RETURNING ` + userColumns

	listSQL = `SELECT ` + userColumns + ` FROM users ORDER BY created_at ASC`

	upsertByExternalIDSQL = `
		INSERT INTO users (id, username, email, image, external_id, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		ON CONFLICT (external_id) DO UPDATE
		SET username = EXCLUDED.username,
		    email = EXCLUDED.email,
		    image = EXCLUDED.image,
		    role = EXCLUDED.role,
		    updated_at = EXCLUDED.updated_at
		RETURNING ` + userColumns
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}

	return u, nil
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}

	return u, nil
}

// GetByExternalID returns a user by the OAuth provider subject.
func (r *Repo) GetByExternalID(ctx context.Context, externalID string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, getByExternalIDSQL, externalID))
	if err != nil {
		return nil, postgres.MapError(err, "user", externalID)
	}

	return u, nil
}

// Create inserts a new user and returns the persisted row.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, createSQL,
		u.ID, u.Username, u.Email, u.Image, u.ExternalID, u.Role.String(), u.CreatedAt)

	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ExternalID)
	}

	return created, nil
}

// UpdateRole changes the user's role and returns the updated row.
func (r *Repo) UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, updateRoleSQL, id, role.String(), time.Now()))
	if err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}

	return u, nil
}

// List returns all users ordered by creation time ascending.
func (r *Repo) List(ctx context.Context) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listSQL)
	if err != nil {
		return nil, postgres.MapError(err, "user", "list")
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, postgres.MapError(err, "user", "list")
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "user", "list")
	}

	return users, nil
}

// UpsertByExternalID inserts the user or refreshes its mutable fields when a
// row with the same external_id already exists. Used by the seeder.
func (r *Repo) UpsertByExternalID(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, upsertByExternalIDSQL,
		u.ID, u.Username, u.Email, u.Image, u.ExternalID, u.Role.String(), u.CreatedAt)

	upserted, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ExternalID)
	}

	return upserted, nil
}

// scanUser reads one user row in userColumns order.
func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var role string

	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Image, &u.ExternalID, &role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}

	u.Role = domain.UserRole(role)
	return &u, nil
}
