package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lokeshec23/Track-Me/internal/api/metrics"
	"github.com/lokeshec23/Track-Me/internal/core/domain"
	"github.com/lokeshec23/Track-Me/internal/core/ports"
)

// RecurringService implements owner-scoped recurring-rule CRUD. Rules are
// stored schedules only; nothing here generates transactions from them.
type RecurringService struct {
	repo   ports.RecurringRepository
	logger zerolog.Logger
}

func NewRecurringService(repo ports.RecurringRepository, logger zerolog.Logger) *RecurringService {
	return &RecurringService{repo: repo, logger: logger}
}

func (s *RecurringService) List(ctx context.Context, ownerID string) ([]domain.RecurringRule, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *RecurringService) Create(ctx context.Context, ownerID string, draft domain.RecurringDraft) (*domain.RecurringRule, error) {
	active := true
	if draft.IsActive != nil {
		active = *draft.IsActive
	}

	created, err := s.repo.Insert(ctx, &domain.RecurringRule{
		UserID:      ownerID,
		Type:        draft.Type,
		Amount:      draft.Amount,
		CategoryID:  draft.CategoryID,
		Description: draft.Description,
		Frequency:   draft.Frequency,
		StartDate:   draft.StartDate,
		EndDate:     draft.EndDate,
		IsActive:    active,
	})
	if err != nil {
		return nil, err
	}
	metrics.ResourcesCreatedTotal.WithLabelValues("recurring").Inc()
	return created, nil
}

func (s *RecurringService) Update(ctx context.Context, ownerID, id string, patch domain.RecurringPatch) (*domain.RecurringRule, error) {
	return s.repo.Patch(ctx, ownerID, id, patch)
}

func (s *RecurringService) Delete(ctx context.Context, ownerID, id string) error {
	return s.repo.DeleteByOwner(ctx, ownerID, id)
}
