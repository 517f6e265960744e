package services

import (
	"context"
	"time"

	"github.com/hisabline/party_ledger_app/internal/core/domain"
	"github.com/hisabline/party_ledger_app/internal/dto"
)

// UserSvcFacade defines user account operations for the session layer.
type UserSvcFacade interface {
	// Register creates a new local user with a bcrypt password hash.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// AuthenticateLocal verifies an email/password pair.
	AuthenticateLocal(ctx context.Context, email, password string) (*domain.User, error)

	// AuthenticateGoogle verifies a Google/Firebase ID token and returns
	// the matching user, creating one on first sign-in.
	AuthenticateGoogle(ctx context.Context, idToken string) (*domain.User, error)

	// UpdateRefreshToken stores the hashed rotating refresh token.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiry time.Time) error

	// ClearRefreshToken invalidates the stored refresh token.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// TokenSvcFacade issues and validates session tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a JWT access token for the user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken creates a rotating refresh token; the caller
	// persists its hash via the user service.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateAndParseRefreshToken checks a presented refresh token
	// against the stored hash and returns the user when it matches.
	ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshToken string) (*domain.User, error)
}
