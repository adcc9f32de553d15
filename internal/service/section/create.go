package section

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/echospace/echospace-backend/internal/domain"
)

// Create schedules a new section for the given presenter. Admin only.
// The presenter must exist; the category must be a known value.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.SectionWithUser, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	parsed, err := input.Validate()
	if err != nil {
		return nil, err
	}

	presenter, err := s.users.GetByID(ctx, parsed.UserID)
	if err != nil {
		return nil, fmt.Errorf("section.Create get presenter: %w", err)
	}

	created, err := s.sections.Create(ctx, &domain.Section{
		ID:        uuid.New(),
		UserID:    presenter.ID,
		Category:  parsed.Category,
		Topic:     parsed.Topic,
		Date:      parsed.Date,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("section.Create: %w", err)
	}

	s.log.InfoContext(ctx, "section scheduled",
		slog.String("section_id", created.ID.String()),
		slog.String("presenter_id", presenter.ID.String()),
		slog.String("category", created.Category.String()))

	return &domain.SectionWithUser{
		Section: *created,
		User:    presenter.Public(),
	}, nil
}
