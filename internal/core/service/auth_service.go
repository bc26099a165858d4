package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/lokeshec23/Track-Me/internal/api/metrics"
	"github.com/lokeshec23/Track-Me/internal/core/domain"
	"github.com/lokeshec23/Track-Me/internal/core/ports"
)

// AuthService implements registration, login and account-profile updates.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

// Register creates a new account with a bcrypt-hashed password. The email
// must not belong to an existing user.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Theme:        domain.ThemeLight,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.UsersRegisteredTotal.Inc()
	s.logger.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and issues a bearer token. A missing user
// and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return &ports.LoginResult{AccessToken: token, User: user}, nil
}

// CompleteOnboarding stores the onboarding profile and flips the onboarded
// flag.
func (s *AuthService) CompleteOnboarding(ctx context.Context, userID string, profile *domain.OnboardingProfile) (*domain.User, error) {
	updated, err := s.users.UpdateOnboarding(ctx, userID, profile)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", userID).Msg("onboarding completed")
	return updated, nil
}

// UpdateTheme persists the user's theme preference.
func (s *AuthService) UpdateTheme(ctx context.Context, userID, theme string) error {
	return s.users.UpdateTheme(ctx, userID, theme)
}
