package section

import (
	"context"
	"fmt"

	sectionrepo "github.com/echospace/echospace-backend/internal/adapter/postgres/section"
	"github.com/echospace/echospace-backend/internal/domain"
)

// AdminSearch returns sections matching the filter with the presenter's full
// public profile. Admin only.
func (s *Service) AdminSearch(ctx context.Context, input SearchInput) ([]domain.SectionWithUser, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	return s.search(ctx, input)
}

// Search returns sections matching the filter for any authenticated user.
// The email predicate is an admin concern and is ignored here.
func (s *Service) Search(ctx context.Context, input SearchInput) ([]domain.SectionWithUser, error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}

	input.Email = nil
	return s.search(ctx, input)
}

func (s *Service) search(ctx context.Context, input SearchInput) ([]domain.SectionWithUser, error) {
	filter := sectionrepo.SearchFilter{
		Topic:    input.Topic,
		Username: input.Username,
		Email:    input.Email,
		Category: input.Category,
	}

	// Bad date strings are rejected up front instead of silently matching
	// nothing or everything.
	if input.Date != nil {
		day, ok := parseDate(*input.Date)
		if !ok {
			return nil, domain.NewValidationError("date", "unparseable date")
		}
		filter.Day = &day
	}

	result, err := s.sections.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("section.Search: %w", err)
	}

	return result, nil
}
