package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lokeshec23/Track-Me/internal/core/domain"
)

type stubBudgetRepo struct {
	byID   map[string]*domain.Budget
	nextID int
}

func newStubBudgetRepo() *stubBudgetRepo {
	return &stubBudgetRepo{byID: make(map[string]*domain.Budget)}
}

func (r *stubBudgetRepo) ListByOwner(_ context.Context, ownerID string) ([]domain.Budget, error) {
	out := []domain.Budget{}
	for _, b := range r.byID {
		if b.UserID == ownerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *stubBudgetRepo) Insert(_ context.Context, b *domain.Budget) (*domain.Budget, error) {
	r.nextID++
	created := *b
	created.ID = fmt.Sprintf("budget-%d", r.nextID)
	r.byID[created.ID] = &created
	out := created
	return &out, nil
}

func (r *stubBudgetRepo) Patch(_ context.Context, ownerID, id string, patch domain.BudgetPatch) (*domain.Budget, error) {
	b, ok := r.byID[id]
	if !ok || b.UserID != ownerID {
		return nil, domain.ErrBudgetNotFound
	}
	if patch.CategoryID != nil {
		b.CategoryID = *patch.CategoryID
	}
	if patch.Amount != nil {
		b.Amount = *patch.Amount
	}
	if patch.Period != nil {
		b.Period = *patch.Period
	}
	if patch.StartDate != nil {
		b.StartDate = *patch.StartDate
	}
	if patch.AlertThreshold != nil {
		b.AlertThreshold = *patch.AlertThreshold
	}
	out := *b
	return &out, nil
}

func (r *stubBudgetRepo) DeleteByOwner(_ context.Context, ownerID, id string) error {
	b, ok := r.byID[id]
	if !ok || b.UserID != ownerID {
		return domain.ErrBudgetNotFound
	}
	delete(r.byID, id)
	return nil
}

func TestBudgetService_Create_AppliesDefaults(t *testing.T) {
	repo := newStubBudgetRepo()
	svc := NewBudgetService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), "user-a", domain.BudgetDraft{
		CategoryID: "food",
		Amount:     500,
		StartDate:  "2024-01-01",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Period != domain.PeriodMonthly {
		t.Fatalf("expected default period %q, got %q", domain.PeriodMonthly, created.Period)
	}
	if created.AlertThreshold != domain.DefaultAlertThreshold {
		t.Fatalf("expected default threshold %d, got %d", domain.DefaultAlertThreshold, created.AlertThreshold)
	}
	if created.UserID != "user-a" {
		t.Fatalf("owner not stamped, got %q", created.UserID)
	}
}

func TestBudgetService_Create_ExplicitZeroThreshold(t *testing.T) {
	repo := newStubBudgetRepo()
	svc := NewBudgetService(repo, zerolog.Nop())

	zero := 0
	created, err := svc.Create(context.Background(), "user-a", domain.BudgetDraft{
		CategoryID:     "food",
		Amount:         500,
		Period:         domain.PeriodYearly,
		StartDate:      "2024-01-01",
		AlertThreshold: &zero,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	// An explicit zero is a real value, not an omission.
	if created.AlertThreshold != 0 {
		t.Fatalf("expected threshold 0, got %d", created.AlertThreshold)
	}
	if created.Period != domain.PeriodYearly {
		t.Fatalf("expected yearly period, got %q", created.Period)
	}
}

func TestBudgetService_Update_MergesOnlyProvidedFields(t *testing.T) {
	repo := newStubBudgetRepo()
	svc := NewBudgetService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), "user-a", domain.BudgetDraft{
		CategoryID: "food", Amount: 500, StartDate: "2024-01-01",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	amount := 750.0
	updated, err := svc.Update(context.Background(), "user-a", created.ID, domain.BudgetPatch{Amount: &amount})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Amount != 750 {
		t.Fatalf("amount not updated: %v", updated.Amount)
	}
	if updated.CategoryID != "food" || updated.Period != domain.PeriodMonthly {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestBudgetService_Update_OtherOwnerNotFound(t *testing.T) {
	repo := newStubBudgetRepo()
	svc := NewBudgetService(repo, zerolog.Nop())

	theirs, err := svc.Create(context.Background(), "user-b", domain.BudgetDraft{
		CategoryID: "food", Amount: 500, StartDate: "2024-01-01",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	amount := 1.0
	if _, err := svc.Update(context.Background(), "user-a", theirs.ID, domain.BudgetPatch{Amount: &amount}); err != domain.ErrBudgetNotFound {
		t.Fatalf("expected ErrBudgetNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), "user-a", theirs.ID); err != domain.ErrBudgetNotFound {
		t.Fatalf("expected ErrBudgetNotFound on delete, got %v", err)
	}
}
