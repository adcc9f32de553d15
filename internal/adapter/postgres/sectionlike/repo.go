// Package sectionlike implements the section like repository using PostgreSQL.
package sectionlike

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/echospace/echospace-backend/internal/adapter/postgres"
	"github.com/echospace/echospace-backend/internal/domain"
)

const (
	// ON CONFLICT DO NOTHING makes a duplicate like a silent no-op.
	insertSQL = `
		INSERT INTO section_likes (id, user_id, section_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, section_id) DO NOTHING`

	countBySectionSQL = `SELECT COUNT(*) FROM section_likes WHERE section_id = $1`

	deleteBySeedUsersSQL = `
		DELETE FROM section_likes
		WHERE user_id = ANY($1)
		   OR section_id IN (SELECT id FROM sections WHERE user_id = ANY($1))`
)

// Repo provides section like persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new section like repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Insert records a like. Returns false without error when the user already
// liked the section.
func (r *Repo) Insert(ctx context.Context, l *domain.SectionLike) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, insertSQL, l.ID, l.UserID, l.SectionID, l.CreatedAt)
	if err != nil {
		return false, postgres.MapError(err, "section_like", l.SectionID.String())
	}

	return tag.RowsAffected() > 0, nil
}

// CountBySection returns the number of likes on a section.
func (r *Repo) CountBySection(ctx context.Context, sectionID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, countBySectionSQL, sectionID).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "section_like", sectionID.String())
	}

	return count, nil
}

// CreateBatch inserts likes in a single round trip, skipping duplicates.
// Used by the seeder.
func (r *Repo) CreateBatch(ctx context.Context, likes []domain.SectionLike) error {
	if len(likes) == 0 {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	batch := &pgx.Batch{}
	for _, l := range likes {
		batch.Queue(insertSQL, l.ID, l.UserID, l.SectionID, l.CreatedAt)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for range likes {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "section_like", "batch")
		}
	}

	return nil
}

// DeleteBySeedUsers removes likes made by the given users or on their
// sections. Used by the seeder reset.
func (r *Repo) DeleteBySeedUsers(ctx context.Context, userIDs []uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, deleteBySeedUsersSQL, userIDs); err != nil {
		return postgres.MapError(err, "section_like", "delete_by_users")
	}

	return nil
}
