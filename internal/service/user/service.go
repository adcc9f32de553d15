// Package user implements user administration operations.
package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/echospace/echospace-backend/internal/domain"
	"github.com/echospace/echospace-backend/pkg/ctxutil"
)

// userRepo defines the user repository interface needed by the user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error)
}

// Service implements user administration operations.
type Service struct {
	log   *slog.Logger
	users userRepo
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
	}
}

// GetByID returns a single user. Available to any authenticated caller.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.GetByID: %w", err)
	}

	return u, nil
}

// ListUsers returns all users ordered by creation time. Admin only.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.ListUsers: %w", err)
	}

	return users, nil
}

// SetUserRole changes a user's role. Admin only; an admin cannot change
// their own role, which would allow locking the last admin out.
func (s *Service) SetUserRole(ctx context.Context, userID uuid.UUID, role domain.UserRole) (*domain.User, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "must be one of: USER, ADMIN")
	}

	callerID, _ := ctxutil.UserIDFromCtx(ctx)
	if callerID == userID {
		return nil, domain.NewValidationError("userId", "cannot change own role")
	}

	updated, err := s.users.UpdateRole(ctx, userID, role)
	if err != nil {
		return nil, fmt.Errorf("user.SetUserRole: %w", err)
	}

	s.log.InfoContext(ctx, "user role changed",
		slog.String("user_id", userID.String()),
		slog.String("role", role.String()),
		slog.String("changed_by", callerID.String()))

	return updated, nil
}

// requireAdmin distinguishes the anonymous caller (Unauthorized) from the
// authenticated non-admin (Forbidden).
func requireAdmin(ctx context.Context) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}
