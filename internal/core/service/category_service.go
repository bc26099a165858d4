package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lokeshec23/Track-Me/internal/api/metrics"
	"github.com/lokeshec23/Track-Me/internal/core/domain"
	"github.com/lokeshec23/Track-Me/internal/core/ports"
)

// CategoryService unions the built-in default categories with the user's
// custom ones and manages the custom set.
type CategoryService struct {
	repo   ports.CategoryRepository
	logger zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, logger zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, logger: logger}
}

// List returns default expense categories, then default income categories,
// then the owner's custom categories, in that order.
func (s *CategoryService) List(ctx context.Context, ownerID string) ([]domain.Category, error) {
	custom, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	all := make([]domain.Category, 0, len(domain.DefaultExpenseCategories)+len(domain.DefaultIncomeCategories)+len(custom))
	all = append(all, domain.DefaultExpenseCategories...)
	all = append(all, domain.DefaultIncomeCategories...)
	all = append(all, custom...)
	return all, nil
}

func (s *CategoryService) Create(ctx context.Context, ownerID string, draft domain.CategoryDraft) (*domain.Category, error) {
	created, err := s.repo.Insert(ctx, &domain.Category{
		UserID:   ownerID,
		Name:     draft.Name,
		Icon:     draft.Icon,
		Color:    draft.Color,
		Type:     draft.Type,
		IsCustom: true,
	})
	if err != nil {
		return nil, err
	}
	metrics.ResourcesCreatedTotal.WithLabelValues("category").Inc()
	return created, nil
}

// Delete removes a custom category. Default category ids never resolve
// against the custom set, so deleting one always fails.
func (s *CategoryService) Delete(ctx context.Context, ownerID, id string) error {
	return s.repo.DeleteByOwner(ctx, ownerID, id)
}
