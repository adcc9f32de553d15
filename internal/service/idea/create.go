package idea

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/echospace/echospace-backend/internal/domain"
)

// Create submits a new improvement idea on behalf of the principal.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Idea, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	parsed, err := input.Validate()
	if err != nil {
		return nil, err
	}

	created, err := s.ideas.Create(ctx, &domain.Idea{
		ID:          uuid.New(),
		UserID:      userID,
		Category:    parsed.Category,
		Title:       parsed.Title,
		Description: parsed.Description,
		Anonymous:   parsed.Anonymous,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("idea.Create: %w", err)
	}

	s.log.InfoContext(ctx, "idea submitted",
		slog.String("idea_id", created.ID.String()),
		slog.String("category", created.Category.String()),
		slog.Bool("anonymous", created.Anonymous))

	return created, nil
}
