package idea

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/echospace/echospace-backend/internal/domain"
	"github.com/echospace/echospace-backend/pkg/ctxutil"
)

// List returns ideas, newest first, optionally filtered by category.
// Anonymous ideas are scrubbed for non-admin callers: the author never
// leaves the server.
func (s *Service) List(ctx context.Context, category *string) ([]domain.IdeaWithAuthor, error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}

	var filter *domain.IdeaCategory
	if category != nil && *category != "" {
		c := domain.IdeaCategory(*category)
		if !c.IsValid() {
			return nil, domain.NewValidationError("category", "must be one of: TECHNICAL, COMMUNICATION, PROBLEM, ENVIRONMENT, OTHER")
		}
		filter = &c
	}

	items, err := s.ideas.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("idea.List: %w", err)
	}

	if !ctxutil.IsAdminCtx(ctx) {
		for idx := range items {
			if items[idx].Anonymous {
				items[idx].Author = nil
				items[idx].Idea.UserID = uuid.Nil
			}
		}
	}

	return items, nil
}
