package section

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/echospace/echospace-backend/internal/domain"
	"github.com/echospace/echospace-backend/pkg/ctxutil"
)

// AddFeedback leaves a comment on a section on behalf of the principal.
func (s *Service) AddFeedback(ctx context.Context, sectionID uuid.UUID, input FeedbackInput) (*domain.Feedback, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.sections.GetByID(ctx, sectionID); err != nil {
		return nil, fmt.Errorf("section.AddFeedback get section: %w", err)
	}

	created, err := s.feedback.Create(ctx, &domain.Feedback{
		ID:        uuid.New(),
		UserID:    userID,
		SectionID: sectionID,
		Comment:   input.Comment,
		Anonymous: input.Anonymous,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("section.AddFeedback: %w", err)
	}

	return created, nil
}

// ListFeedback returns all feedback on a section. Entries marked anonymous
// are scrubbed for non-admin callers: the author never leaves the server.
func (s *Service) ListFeedback(ctx context.Context, sectionID uuid.UUID) ([]domain.FeedbackWithAuthor, error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}

	if _, err := s.sections.GetByID(ctx, sectionID); err != nil {
		return nil, fmt.Errorf("section.ListFeedback get section: %w", err)
	}

	items, err := s.feedback.ListBySection(ctx, sectionID)
	if err != nil {
		return nil, fmt.Errorf("section.ListFeedback: %w", err)
	}

	if !ctxutil.IsAdminCtx(ctx) {
		for idx := range items {
			if items[idx].Anonymous {
				items[idx].Author = nil
				items[idx].Feedback.UserID = uuid.Nil
			}
		}
	}

	return items, nil
}
