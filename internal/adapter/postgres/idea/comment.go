package idea

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/echospace/echospace-backend/internal/adapter/postgres"
	"github.com/echospace/echospace-backend/internal/domain"
)

const commentColumns = `id, user_id, idea_id, comment, created_at`

const (
	createCommentSQL = `
		INSERT INTO idea_comments (id, user_id, idea_id, comment, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + commentColumns

	listCommentsByIdeaSQL = `
		SELECT c.id, c.user_id, c.idea_id, c.comment, c.created_at,
		       u.username, u.email, u.image, u.role, u.created_at
		FROM idea_comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.idea_id = $1
		ORDER BY c.created_at ASC`

	deleteCommentsBySeedUsersSQL = `
		DELETE FROM idea_comments
		WHERE user_id = ANY($1)
		   OR idea_id IN (SELECT id FROM ideas WHERE user_id = ANY($1))`
)

// CommentRepo provides idea comment persistence backed by PostgreSQL.
type CommentRepo struct {
	db postgres.Querier
}

// NewCommentRepo creates a new idea comment repository.
func NewCommentRepo(db postgres.Querier) *CommentRepo {
	return &CommentRepo{db: db}
}

// Create inserts a new comment row.
func (r *CommentRepo) Create(ctx context.Context, c *domain.IdeaComment) (*domain.IdeaComment, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, createCommentSQL, c.ID, c.UserID, c.IdeaID, c.Comment, c.CreatedAt)

	var created domain.IdeaComment
	err := row.Scan(&created.ID, &created.UserID, &created.IdeaID, &created.Comment, &created.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "idea_comment", c.IdeaID.String())
	}

	return &created, nil
}

// ListByIdea returns all comments on an idea with commenter fields,
// oldest first.
func (r *CommentRepo) ListByIdea(ctx context.Context, ideaID uuid.UUID) ([]domain.IdeaCommentWithAuthor, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listCommentsByIdeaSQL, ideaID)
	if err != nil {
		return nil, postgres.MapError(err, "idea_comment", ideaID.String())
	}
	defer rows.Close()

	result := make([]domain.IdeaCommentWithAuthor, 0)
	for rows.Next() {
		var cw domain.IdeaCommentWithAuthor
		var role string

		err := rows.Scan(
			&cw.ID, &cw.IdeaComment.UserID, &cw.IdeaID, &cw.Comment, &cw.IdeaComment.CreatedAt,
			&cw.Author.Username, &cw.Author.Email, &cw.Author.Image, &role, &cw.Author.CreatedAt,
		)
		if err != nil {
			return nil, postgres.MapError(fmt.Errorf("scan comment row: %w", err), "idea_comment", ideaID.String())
		}

		cw.Author.ID = cw.IdeaComment.UserID
		cw.Author.Role = domain.UserRole(role)
		result = append(result, cw)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "idea_comment", ideaID.String())
	}

	return result, nil
}

// CreateBatch inserts comments in a single round trip. Used by the seeder.
func (r *CommentRepo) CreateBatch(ctx context.Context, comments []domain.IdeaComment) error {
	if len(comments) == 0 {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	batch := &pgx.Batch{}
	for _, c := range comments {
		batch.Queue(createCommentSQL, c.ID, c.UserID, c.IdeaID, c.Comment, c.CreatedAt)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for range comments {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "idea_comment", "batch")
		}
	}

	return nil
}

// DeleteBySeedUsers removes comments written by the given users or left on
// their ideas. Used by the seeder reset.
func (r *CommentRepo) DeleteBySeedUsers(ctx context.Context, userIDs []uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, deleteCommentsBySeedUsersSQL, userIDs); err != nil {
		return postgres.MapError(err, "idea_comment", "delete_by_users")
	}

	return nil
}
