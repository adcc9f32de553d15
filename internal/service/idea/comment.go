package idea

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/echospace/echospace-backend/internal/domain"
)

// AddComment leaves a comment on an idea on behalf of the principal.
// Comments are always attributed, even on anonymous ideas.
func (s *Service) AddComment(ctx context.Context, ideaID uuid.UUID, input CommentInput) (*domain.IdeaComment, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ideas.GetByID(ctx, ideaID); err != nil {
		return nil, fmt.Errorf("idea.AddComment get idea: %w", err)
	}

	created, err := s.comments.Create(ctx, &domain.IdeaComment{
		ID:        uuid.New(),
		UserID:    userID,
		IdeaID:    ideaID,
		Comment:   input.Comment,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("idea.AddComment: %w", err)
	}

	return created, nil
}

// ListComments returns all comments on an idea, oldest first.
func (s *Service) ListComments(ctx context.Context, ideaID uuid.UUID) ([]domain.IdeaCommentWithAuthor, error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}

	if _, err := s.ideas.GetByID(ctx, ideaID); err != nil {
		return nil, fmt.Errorf("idea.ListComments get idea: %w", err)
	}

	items, err := s.comments.ListByIdea(ctx, ideaID)
	if err != nil {
		return nil, fmt.Errorf("idea.ListComments: %w", err)
	}

	return items, nil
}
