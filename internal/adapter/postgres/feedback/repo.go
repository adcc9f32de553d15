// Package feedback implements the Feedback repository using PostgreSQL.
package feedback

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/echospace/echospace-backend/internal/adapter/postgres"
	"github.com/echospace/echospace-backend/internal/domain"
)

const feedbackColumns = `id, user_id, section_id, comment, anonymous, created_at`

const (
	createSQL = `
		INSERT INTO feedback (id, user_id, section_id, comment, anonymous, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + feedbackColumns

	listBySectionSQL = `
		SELECT f.id, f.user_id, f.section_id, f.comment, f.anonymous, f.created_at,
		       u.username, u.email, u.image, u.role, u.created_at
		FROM feedback f
		JOIN users u ON u.id = f.user_id
		WHERE f.section_id = $1
		ORDER BY f.created_at ASC`

	deleteBySeedUsersSQL = `
		DELETE FROM feedback
		WHERE user_id = ANY($1)
		   OR section_id IN (SELECT id FROM sections WHERE user_id = ANY($1))`
)

// Repo provides feedback persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new feedback repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a new feedback row.
func (r *Repo) Create(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, createSQL,
		f.ID, f.UserID, f.SectionID, f.Comment, f.Anonymous, f.CreatedAt)

	var created domain.Feedback
	err := row.Scan(&created.ID, &created.UserID, &created.SectionID,
		&created.Comment, &created.Anonymous, &created.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "feedback", f.SectionID.String())
	}

	return &created, nil
}

// ListBySection returns all feedback on a section with author fields,
// oldest first. Anonymity scrubbing happens in the service layer.
func (r *Repo) ListBySection(ctx context.Context, sectionID uuid.UUID) ([]domain.FeedbackWithAuthor, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listBySectionSQL, sectionID)
	if err != nil {
		return nil, postgres.MapError(err, "feedback", sectionID.String())
	}
	defer rows.Close()

	result := make([]domain.FeedbackWithAuthor, 0)
	for rows.Next() {
		var fw domain.FeedbackWithAuthor
		var author domain.PublicUser
		var role string

		err := rows.Scan(
			&fw.ID, &fw.Feedback.UserID, &fw.SectionID, &fw.Comment, &fw.Anonymous, &fw.Feedback.CreatedAt,
			&author.Username, &author.Email, &author.Image, &role, &author.CreatedAt,
		)
		if err != nil {
			return nil, postgres.MapError(fmt.Errorf("scan feedback row: %w", err), "feedback", sectionID.String())
		}

		author.ID = fw.Feedback.UserID
		author.Role = domain.UserRole(role)
		fw.Author = &author
		result = append(result, fw)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "feedback", sectionID.String())
	}

	return result, nil
}

// CreateBatch inserts feedback rows in a single round trip. Used by the seeder.
func (r *Repo) CreateBatch(ctx context.Context, items []domain.Feedback) error {
	if len(items) == 0 {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	batch := &pgx.Batch{}
	for _, f := range items {
		batch.Queue(createSQL, f.ID, f.UserID, f.SectionID, f.Comment, f.Anonymous, f.CreatedAt)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for range items {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "feedback", "batch")
		}
	}

	return nil
}

// DeleteBySeedUsers removes feedback written by the given users or left on
// their sections. Used by the seeder reset.
func (r *Repo) DeleteBySeedUsers(ctx context.Context, userIDs []uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, deleteBySeedUsersSQL, userIDs); err != nil {
		return postgres.MapError(err, "feedback", "delete_by_users")
	}

	return nil
}
