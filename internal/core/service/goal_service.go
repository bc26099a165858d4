package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lokeshec23/Track-Me/internal/api/metrics"
	"github.com/lokeshec23/Track-Me/internal/core/domain"
	"github.com/lokeshec23/Track-Me/internal/core/ports"
)

// GoalService implements owner-scoped goal CRUD with merge-style updates.
type GoalService struct {
	repo   ports.GoalRepository
	logger zerolog.Logger
}

func NewGoalService(repo ports.GoalRepository, logger zerolog.Logger) *GoalService {
	return &GoalService{repo: repo, logger: logger}
}

func (s *GoalService) List(ctx context.Context, ownerID string) ([]domain.Goal, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *GoalService) Create(ctx context.Context, ownerID string, draft domain.GoalDraft) (*domain.Goal, error) {
	goal := &domain.Goal{
		UserID:        ownerID,
		Name:          draft.Name,
		TargetAmount:  draft.TargetAmount,
		CurrentAmount: draft.CurrentAmount,
		Deadline:      draft.Deadline,
		Category:      draft.Category,
		Icon:          draft.Icon,
		Color:         draft.Color,
	}
	if goal.Category == "" {
		goal.Category = domain.DefaultGoalCategory
	}
	if goal.Icon == "" {
		goal.Icon = domain.DefaultGoalIcon
	}
	if goal.Color == "" {
		goal.Color = domain.DefaultGoalColor
	}

	created, err := s.repo.Insert(ctx, goal)
	if err != nil {
		return nil, err
	}
	metrics.ResourcesCreatedTotal.WithLabelValues("goal").Inc()
	return created, nil
}

func (s *GoalService) Update(ctx context.Context, ownerID, id string, patch domain.GoalPatch) (*domain.Goal, error) {
	return s.repo.Patch(ctx, ownerID, id, patch)
}

func (s *GoalService) Delete(ctx context.Context, ownerID, id string) error {
	return s.repo.DeleteByOwner(ctx, ownerID, id)
}
