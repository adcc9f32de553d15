// Package section implements session scheduling, search, feedback, and likes.
package section

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	sectionrepo "github.com/echospace/echospace-backend/internal/adapter/postgres/section"
	"github.com/echospace/echospace-backend/internal/domain"
	"github.com/echospace/echospace-backend/pkg/ctxutil"
)

// sectionRepo defines the section repository interface needed by the service.
type sectionRepo interface {
	Create(ctx context.Context, s *domain.Section) (*domain.Section, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Section, error)
	Search(ctx context.Context, f sectionrepo.SearchFilter) ([]domain.SectionWithUser, error)
}

// userRepo defines the user repository interface needed by the service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// feedbackRepo defines the feedback repository interface needed by the service.
type feedbackRepo interface {
	Create(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error)
	ListBySection(ctx context.Context, sectionID uuid.UUID) ([]domain.FeedbackWithAuthor, error)
}

// likeRepo defines the section like repository interface needed by the service.
type likeRepo interface {
	Insert(ctx context.Context, l *domain.SectionLike) (bool, error)
	CountBySection(ctx context.Context, sectionID uuid.UUID) (int, error)
}

// Service implements section operations.
type Service struct {
	log      *slog.Logger
	sections sectionRepo
	users    userRepo
	feedback feedbackRepo
	likes    likeRepo
}

// NewService creates a new section service instance.
func NewService(
	logger *slog.Logger,
	sections sectionRepo,
	users userRepo,
	feedback feedbackRepo,
	likes likeRepo,
) *Service {
	return &Service{
		log:      logger.With("service", "section"),
		sections: sections,
		users:    users,
		feedback: feedback,
		likes:    likes,
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

// requireAdmin distinguishes the anonymous caller (Unauthorized) from the
// authenticated non-admin (Forbidden).
func requireAdmin(ctx context.Context) error {
	if _, err := requireUser(ctx); err != nil {
		return err
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}
