package ports

import (
	"context"

	"github.com/lokeshec23/Track-Me/internal/core/domain"
)

// LoginResult is what a successful login hands back to the transport layer.
type LoginResult struct {
	AccessToken string
	User        *domain.User
}

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	CompleteOnboarding(ctx context.Context, userID string, profile *domain.OnboardingProfile) (*domain.User, error)
	UpdateTheme(ctx context.Context, userID, theme string) error
}
