package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hisabline/party_ledger_app/internal/apperrors"
	"github.com/hisabline/party_ledger_app/internal/core/domain"
	portsrepo "github.com/hisabline/party_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/hisabline/party_ledger_app/internal/core/ports/services"
	"github.com/hisabline/party_ledger_app/internal/dto"
	"github.com/hisabline/party_ledger_app/internal/platform/config"
	"github.com/hisabline/party_ledger_app/internal/utils"
	"google.golang.org/api/idtoken"
)

// userService handles user accounts for both local and Google sign-in.
type userService struct {
	BaseService
	repo portsrepo.UserRepositoryFacade
	cfg  *config.Config
}

// NewUserService creates a new user service.
func NewUserService(repo portsrepo.UserRepositoryFacade, cfg *config.Config) portssvc.UserSvcFacade {
	return &userService{
		repo: repo,
		cfg:  cfg,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// Register creates a new local user with a bcrypt password hash.
func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	existing, err := s.repo.FindUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing user", slog.String("email", req.Email))
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email %s is already registered: %w", req.Email, apperrors.ErrDuplicate)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		AuthProvider: domain.ProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	user.CreatedBy = user.UserID
	user.LastUpdatedBy = user.UserID

	if err := s.repo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("email", req.Email))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindUserByID(ctx, userID)
}

// AuthenticateLocal verifies an email/password pair.
func (s *userService) AuthenticateLocal(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	if user.AuthProvider != domain.ProviderLocal || user.PasswordHash == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// AuthenticateGoogle verifies a Google ID token, creating the user on first
// sign-in.
func (s *userService) AuthenticateGoogle(ctx context.Context, idTokenString string) (*domain.User, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured in the application")
	}

	payload, err := idtoken.Validate(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		s.LogDebug(ctx, "Google ID token validation failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("google ID token validation failed: %w", apperrors.ErrUnauthorized)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, fmt.Errorf("google ID token is missing an email claim: %w", apperrors.ErrUnauthorized)
	}

	user, err := s.repo.FindUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	name, _ := payload.Claims["name"].(string)
	if name == "" {
		name = email
	}

	now := time.Now()
	newUser := domain.User{
		UserID:       uuid.NewString(),
		Name:         name,
		Email:        email,
		AuthProvider: domain.ProviderGoogle,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	newUser.CreatedBy = newUser.UserID
	newUser.LastUpdatedBy = newUser.UserID

	if err := s.repo.SaveUser(ctx, newUser); err != nil {
		s.LogError(ctx, err, "Failed to save user on first google sign-in", slog.String("email", email))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.LogInfo(ctx, "User created from google sign-in", slog.String("user_id", newUser.UserID))
	return &newUser, nil
}

// UpdateRefreshToken stores the hashed rotating refresh token.
func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiry time.Time) error {
	return s.repo.UpdateRefreshToken(ctx, userID, refreshTokenHash, expiry)
}

// ClearRefreshToken invalidates the stored refresh token.
func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	return s.repo.ClearRefreshToken(ctx, userID)
}
