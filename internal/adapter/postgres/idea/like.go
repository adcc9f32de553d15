package idea

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/echospace/echospace-backend/internal/adapter/postgres"
	"github.com/echospace/echospace-backend/internal/domain"
)

const (
	insertLikeSQL = `
		INSERT INTO idea_likes (id, user_id, idea_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, idea_id) DO NOTHING`

	countLikesSQL = `SELECT COUNT(*) FROM idea_likes WHERE idea_id = $1`

	deleteLikesBySeedUsersSQL = `
		DELETE FROM idea_likes
		WHERE user_id = ANY($1)
		   OR idea_id IN (SELECT id FROM ideas WHERE user_id = ANY($1))`
)

// LikeRepo provides idea like persistence backed by PostgreSQL.
type LikeRepo struct {
	db postgres.Querier
}

// NewLikeRepo creates a new idea like repository.
func NewLikeRepo(db postgres.Querier) *LikeRepo {
	return &LikeRepo{db: db}
}

// Insert records a like. Returns false without error when the user already
// liked the idea.
func (r *LikeRepo) Insert(ctx context.Context, l *domain.IdeaLike) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, insertLikeSQL, l.ID, l.UserID, l.IdeaID, l.CreatedAt)
	if err != nil {
		return false, postgres.MapError(err, "idea_like", l.IdeaID.String())
	}

	return tag.RowsAffected() > 0, nil
}

// CountByIdea returns the number of likes on an idea.
func (r *LikeRepo) CountByIdea(ctx context.Context, ideaID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, countLikesSQL, ideaID).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "idea_like", ideaID.String())
	}

	return count, nil
}

// CreateBatch inserts likes in a single round trip, skipping duplicates.
// Used by the seeder.
func (r *LikeRepo) CreateBatch(ctx context.Context, likes []domain.IdeaLike) error {
	if len(likes) == 0 {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	batch := &pgx.Batch{}
	for _, l := range likes {
		batch.Queue(insertLikeSQL, l.ID, l.UserID, l.IdeaID, l.CreatedAt)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for range likes {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "idea_like", "batch")
		}
	}

	return nil
}

// DeleteBySeedUsers removes likes made by the given users or on their ideas.
// Used by the seeder reset.
func (r *LikeRepo) DeleteBySeedUsers(ctx context.Context, userIDs []uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, deleteLikesBySeedUsersSQL, userIDs); err != nil {
		return postgres.MapError(err, "idea_like", "delete_by_users")
	}

	return nil
}
