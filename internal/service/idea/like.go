package idea

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/echospace/echospace-backend/internal/domain"
)

// LikeResult reports the like state after a like attempt.
type LikeResult struct {
	Liked     bool // false when the user had already liked the idea
	LikeCount int
}

// Like records the principal's like on an idea. Liking twice is a no-op
// that still reports the current count.
func (s *Service) Like(ctx context.Context, ideaID uuid.UUID) (*LikeResult, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.ideas.GetByID(ctx, ideaID); err != nil {
		return nil, fmt.Errorf("idea.Like get idea: %w", err)
	}

	inserted, err := s.likes.Insert(ctx, &domain.IdeaLike{
		ID:        uuid.New(),
		UserID:    userID,
		IdeaID:    ideaID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("idea.Like: %w", err)
	}

	count, err := s.likes.CountByIdea(ctx, ideaID)
	if err != nil {
		return nil, fmt.Errorf("idea.Like count: %w", err)
	}

	return &LikeResult{Liked: inserted, LikeCount: count}, nil
}
