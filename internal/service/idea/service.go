// Package idea implements improvement ideas with likes and comments.
package idea

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/echospace/echospace-backend/internal/domain"
	"github.com/echospace/echospace-backend/pkg/ctxutil"
)

// ideaRepo defines the idea repository interface needed by the service.
type ideaRepo interface {
	Create(ctx context.Context, i *domain.Idea) (*domain.Idea, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Idea, error)
	List(ctx context.Context, category *domain.IdeaCategory) ([]domain.IdeaWithAuthor, error)
}

// likeRepo defines the idea like repository interface needed by the service.
type likeRepo interface {
	Insert(ctx context.Context, l *domain.IdeaLike) (bool, error)
	CountByIdea(ctx context.Context, ideaID uuid.UUID) (int, error)
}

// commentRepo defines the idea comment repository interface needed by the service.
type commentRepo interface {
	Create(ctx context.Context, c *domain.IdeaComment) (*domain.IdeaComment, error)
	ListByIdea(ctx context.Context, ideaID uuid.UUID) ([]domain.IdeaCommentWithAuthor, error)
}

// Service implements idea operations.
type Service struct {
	log      *slog.Logger
	ideas    ideaRepo
	likes    likeRepo
	comments commentRepo
}

// NewService creates a new idea service instance.
func NewService(logger *slog.Logger, ideas ideaRepo, likes likeRepo, comments commentRepo) *Service {
	return &Service{
		log:      logger.With("service", "idea"),
		ideas:    ideas,
		likes:    likes,
		comments: comments,
	}
}

// requireUser returns the authenticated principal or ErrUnauthorized.
func requireUser(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}
