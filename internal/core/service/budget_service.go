package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lokeshec23/Track-Me/internal/api/metrics"
	"github.com/lokeshec23/Track-Me/internal/core/domain"
	"github.com/lokeshec23/Track-Me/internal/core/ports"
)

// BudgetService implements owner-scoped budget CRUD. Updates are merges:
// only fields present in the patch overwrite stored values.
type BudgetService struct {
	repo   ports.BudgetRepository
	logger zerolog.Logger
}

func NewBudgetService(repo ports.BudgetRepository, logger zerolog.Logger) *BudgetService {
	return &BudgetService{repo: repo, logger: logger}
}

func (s *BudgetService) List(ctx context.Context, ownerID string) ([]domain.Budget, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *BudgetService) Create(ctx context.Context, ownerID string, draft domain.BudgetDraft) (*domain.Budget, error) {
	period := draft.Period
	if period == "" {
		period = domain.PeriodMonthly
	}
	threshold := domain.DefaultAlertThreshold
	if draft.AlertThreshold != nil {
		threshold = *draft.AlertThreshold
	}

	created, err := s.repo.Insert(ctx, &domain.Budget{
		UserID:         ownerID,
		CategoryID:     draft.CategoryID,
		Amount:         draft.Amount,
		Period:         period,
		StartDate:      draft.StartDate,
		AlertThreshold: threshold,
	})
	if err != nil {
		return nil, err
	}
	metrics.ResourcesCreatedTotal.WithLabelValues("budget").Inc()
	return created, nil
}

func (s *BudgetService) Update(ctx context.Context, ownerID, id string, patch domain.BudgetPatch) (*domain.Budget, error) {
	return s.repo.Patch(ctx, ownerID, id, patch)
}

func (s *BudgetService) Delete(ctx context.Context, ownerID, id string) error {
	return s.repo.DeleteByOwner(ctx, ownerID, id)
}
