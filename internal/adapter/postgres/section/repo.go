// Package section implements the Section repository using PostgreSQL.
package section

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/echospace/echospace-backend/internal/adapter/postgres"
	"github.com/echospace/echospace-backend/internal/domain"
)

const sectionColumns = `id, user_id, category, topic, date, created_at`

const (
	createSQL = `
		INSERT INTO sections (id, user_id, category, topic, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + sectionColumns

	getByIDSQL = `SELECT ` + sectionColumns + ` FROM sections WHERE id = $1`

	deleteByUserIDsSQL = `DELETE FROM sections WHERE user_id = ANY($1)`
)

// Repo provides section persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new section repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a new section and returns the persisted row.
func (r *Repo) Create(ctx context.Context, s *domain.Section) (*domain.Section, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, createSQL,
		s.ID, s.UserID, s.Category.String(), s.Topic, s.Date, s.CreatedAt)

	created, err := scanSection(row)
	if err != nil {
		return nil, postgres.MapError(err, "section", s.ID.String())
	}

	return created, nil
}

// GetByID returns a section by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Section, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	s, err := scanSection(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "section", id.String())
	}

	return s, nil
}

// Search returns sections matching the filter, joined with presenter fields
// and like/feedback counts, ordered by date ascending.
func (r *Repo) Search(ctx context.Context, f SearchFilter) ([]domain.SectionWithUser, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := buildSearchQuery(f)
	if err != nil {
		return nil, fmt.Errorf("build search query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "section", "search")
	}
	defer rows.Close()

	result := make([]domain.SectionWithUser, 0)
	for rows.Next() {
		var sw domain.SectionWithUser
		var category, role string

		err := rows.Scan(
			&sw.ID, &sw.Section.UserID, &category, &sw.Topic, &sw.Date, &sw.Section.CreatedAt,
			&sw.User.Username, &sw.User.Email, &sw.User.Image, &role, &sw.User.CreatedAt,
			&sw.LikeCount, &sw.FeedbackCount,
		)
		if err != nil {
			return nil, postgres.MapError(fmt.Errorf("scan section row: %w", err), "section", "search")
		}

		sw.Category = domain.SectionCategory(category)
		sw.User.ID = sw.Section.UserID
		sw.User.Role = domain.UserRole(role)
		result = append(result, sw)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "section", "search")
	}

	return result, nil
}

// CreateBatch inserts sections in a single round trip. Used by the seeder.
func (r *Repo) CreateBatch(ctx context.Context, sections []domain.Section) error {
	if len(sections) == 0 {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	batch := &pgx.Batch{}
	for _, s := range sections {
		batch.Queue(createSQL, s.ID, s.UserID, s.Category.String(), s.Topic, s.Date, s.CreatedAt)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for range sections {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "section", "batch")
		}
	}

	return nil
}

// DeleteByUserIDs removes all sections presented by the given users.
// Dependent likes and feedback go with them via ON DELETE CASCADE.
func (r *Repo) DeleteByUserIDs(ctx context.Context, userIDs []uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, deleteByUserIDsSQL, userIDs); err != nil {
		return postgres.MapError(err, "section", "delete_by_users")
	}

	return nil
}

func scanSection(row pgx.Row) (*domain.Section, error) {
	var s domain.Section
	var category string

	err := row.Scan(&s.ID, &s.UserID, &category, &s.Topic, &s.Date, &s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("scan section: %w", err)
	}

	s.Category = domain.SectionCategory(category)
	return &s, nil
}
