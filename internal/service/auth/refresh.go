package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/echospace/echospace-backend/internal/auth"
	"github.com/echospace/echospace-backend/internal/domain"
)

// Refresh performs token rotation and returns new access/refresh tokens.
// The user is re-resolved by email so role changes propagate to active
// sessions on the next refresh; users without an email fall back to the
// stored user id. Unknown, revoked, or expired tokens return ErrUnauthorized.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash := auth.HashToken(input.RefreshToken)

	token, err := s.tokens.GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh token reuse attempted")
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	}

	if token.IsRevoked() || token.IsExpired(time.Now()) {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.resolveUser(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh for deleted user",
				slog.String("user_id", token.UserID.String()))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}

	if err := s.tokens.Revoke(ctx, token.ID); err != nil {
		return nil, fmt.Errorf("auth.Refresh revoke token: %w", err)
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh issue tokens: %w", err)
	}
	return result, nil
}

// resolveUser loads the token's user, preferring the email lookup so that a
// role change lands in the new access token.
func (s *Service) resolveUser(ctx context.Context, token *domain.RefreshToken) (*domain.User, error) {
	byID, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		return nil, err
	}

	if byID.Email == nil {
		return byID, nil
	}

	byEmail, err := s.users.GetByEmail(ctx, *byID.Email)
	if err != nil {
		// The email row vanished between lookups; the id row is still valid.
		if errors.Is(err, domain.ErrNotFound) {
			return byID, nil
		}
		return nil, err
	}

	return byEmail, nil
}
