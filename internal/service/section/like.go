package section

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/echospace/echospace-backend/internal/domain"
)

// LikeResult reports the like state after a like attempt.
type LikeResult struct {
	Liked     bool // false when the user had already liked the section
	LikeCount int
}

// Like records the principal's like on a section. Liking twice is a no-op
// that still reports the current count.
func (s *Service) Like(ctx context.Context, sectionID uuid.UUID) (*LikeResult, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.sections.GetByID(ctx, sectionID); err != nil {
		return nil, fmt.Errorf("section.Like get section: %w", err)
	}

	inserted, err := s.likes.Insert(ctx, &domain.SectionLike{
		ID:        uuid.New(),
		UserID:    userID,
		SectionID: sectionID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("section.Like: %w", err)
	}

	count, err := s.likes.CountBySection(ctx, sectionID)
	if err != nil {
		return nil, fmt.Errorf("section.Like count: %w", err)
	}

	return &LikeResult{Liked: inserted, LikeCount: count}, nil
}
