package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/echospace/echospace-backend/internal/auth"
	"github.com/echospace/echospace-backend/internal/domain"
)

// fallbackUsername is used when GitHub reports no display name or login.
const fallbackUsername = "Unknown User"

// Login exchanges a GitHub authorization code for access/refresh tokens.
// First sign-in creates the user with role USER; any persistence failure
// rejects the sign-in rather than proceeding with a partial account.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	identity, err := s.oauth.VerifyCode(ctx, input.Code)
	if err != nil {
		return nil, fmt.Errorf("auth.Login oauth verification: %w", err)
	}

	user, err := s.users.GetByExternalID(ctx, identity.ProviderID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if user == nil {
		user, err = s.registerUser(ctx, identity)
		if err != nil {
			return nil, err
		}

		s.log.InfoContext(ctx, "user registered via github",
			slog.String("user_id", user.ID.String()))
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()))

	return result, nil
}

// registerUser creates a user row from the OAuth identity.
func (s *Service) registerUser(ctx context.Context, identity *auth.OAuthIdentity) (*domain.User, error) {
	username := fallbackUsername
	if identity.Name != nil && *identity.Name != "" {
		username = *identity.Name
	}

	now := time.Now()
	newUser := &domain.User{
		ID:         uuid.New(),
		Username:   username,
		Email:      identity.Email,
		Image:      derefOrEmpty(identity.AvatarURL),
		ExternalID: identity.ProviderID,
		Role:       domain.UserRoleUser,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	user, err := s.users.Create(ctx, newUser)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			// Concurrent first sign-in: the row exists now, use it.
			if existing, retryErr := s.users.GetByExternalID(ctx, identity.ProviderID); retryErr == nil {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("auth.Login create user: %w", err)
	}

	return user, nil
}
