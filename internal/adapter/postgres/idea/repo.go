// Package idea implements the improvement idea repositories using PostgreSQL:
// ideas themselves plus their likes and comments.
package idea

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/echospace/echospace-backend/internal/adapter/postgres"
	"github.com/echospace/echospace-backend/internal/domain"
)

const ideaColumns = `id, user_id, category, title, description, anonymous, created_at`

const (
	createSQL = `
		INSERT INTO ideas (id, user_id, category, title, description, anonymous, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + ideaColumns

	getByIDSQL = `SELECT ` + ideaColumns + ` FROM ideas WHERE id = $1`

	deleteByUserIDsSQL = `DELETE FROM ideas WHERE user_id = ANY($1)`
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides idea persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new idea repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a new idea and returns the persisted row.
func (r *Repo) Create(ctx context.Context, i *domain.Idea) (*domain.Idea, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, createSQL,
		i.ID, i.UserID, i.Category.String(), i.Title, i.Description, i.Anonymous, i.CreatedAt)

	created, err := scanIdea(row)
	if err != nil {
		return nil, postgres.MapError(err, "idea", i.ID.String())
	}

	return created, nil
}

// GetByID returns an idea by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	i, err := scanIdea(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "idea", id.String())
	}

	return i, nil
}

// List returns ideas newest first with author fields and like/comment counts,
// optionally restricted to one category.
func (r *Repo) List(ctx context.Context, category *domain.IdeaCategory) ([]domain.IdeaWithAuthor, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	qb := psql.Select(
		"i.id", "i.user_id", "i.category", "i.title", "i.description", "i.anonymous", "i.created_at",
		"u.username", "u.email", "u.image", "u.role", "u.created_at",
		"(SELECT COUNT(*) FROM idea_likes il WHERE il.idea_id = i.id) AS like_count",
		"(SELECT COUNT(*) FROM idea_comments ic WHERE ic.idea_id = i.id) AS comment_count",
	).
		From("ideas i").
		Join("users u ON u.id = i.user_id")

	if category != nil {
		qb = qb.Where(squirrel.Eq{"i.category": category.String()})
	}

	sql, args, err := qb.OrderBy("i.created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build idea list query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "idea", "list")
	}
	defer rows.Close()

	result := make([]domain.IdeaWithAuthor, 0)
	for rows.Next() {
		var iw domain.IdeaWithAuthor
		var author domain.PublicUser
		var cat, role string

		err := rows.Scan(
			&iw.ID, &iw.Idea.UserID, &cat, &iw.Title, &iw.Description, &iw.Anonymous, &iw.Idea.CreatedAt,
			&author.Username, &author.Email, &author.Image, &role, &author.CreatedAt,
			&iw.LikeCount, &iw.CommentCount,
		)
		if err != nil {
			return nil, postgres.MapError(fmt.Errorf("scan idea row: %w", err), "idea", "list")
		}

		iw.Category = domain.IdeaCategory(cat)
		author.ID = iw.Idea.UserID
		author.Role = domain.UserRole(role)
		iw.Author = &author
		result = append(result, iw)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "idea", "list")
	}

	return result, nil
}

// CreateBatch inserts ideas in a single round trip. Used by the seeder.
func (r *Repo) CreateBatch(ctx context.Context, ideas []domain.Idea) error {
	if len(ideas) == 0 {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	batch := &pgx.Batch{}
	for _, i := range ideas {
		batch.Queue(createSQL, i.ID, i.UserID, i.Category.String(), i.Title, i.Description, i.Anonymous, i.CreatedAt)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for range ideas {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "idea", "batch")
		}
	}

	return nil
}

// DeleteByUserIDs removes all ideas authored by the given users.
// Dependent likes and comments go with them via ON DELETE CASCADE.
func (r *Repo) DeleteByUserIDs(ctx context.Context, userIDs []uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, deleteByUserIDsSQL, userIDs); err != nil {
		return postgres.MapError(err, "idea", "delete_by_users")
	}

	return nil
}

func scanIdea(row pgx.Row) (*domain.Idea, error) {
	var i domain.Idea
	var category string

	err := row.Scan(&i.ID, &i.UserID, &category, &i.Title, &i.Description, &i.Anonymous, &i.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("scan idea: %w", err)
	}

	i.Category = domain.IdeaCategory(category)
	return &i, nil
}
