package ports

import (
	"context"

	"github.com/lokeshec23/Track-Me/internal/core/domain"
)

// UserRepository defines the interface for user credential persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateOnboarding(ctx context.Context, id string, profile *domain.OnboardingProfile) (*domain.User, error)
	UpdateTheme(ctx context.Context, id, theme string) error
}
