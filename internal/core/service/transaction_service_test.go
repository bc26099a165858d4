package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lokeshec23/Track-Me/internal/core/domain"
)

type stubTransactionRepo struct {
	byID    map[string]*domain.Transaction
	nextID  int
	failOn  int // 1-based insert ordinal that fails; 0 disables
	inserts int
}

func newStubTransactionRepo() *stubTransactionRepo {
	return &stubTransactionRepo{byID: make(map[string]*domain.Transaction)}
}

func (r *stubTransactionRepo) ListByOwner(_ context.Context, ownerID string) ([]domain.Transaction, error) {
	out := []domain.Transaction{}
	for _, t := range r.byID {
		if t.UserID == ownerID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *stubTransactionRepo) Insert(_ context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	r.inserts++
	if r.failOn != 0 && r.inserts == r.failOn {
		return nil, errors.New("write failed")
	}
	r.nextID++
	created := *t
	created.ID = fmt.Sprintf("txn-%d", r.nextID)
	r.byID[created.ID] = &created
	return &created, nil
}

func (r *stubTransactionRepo) Replace(_ context.Context, ownerID, id string, draft domain.TransactionDraft) (*domain.Transaction, error) {
	t, ok := r.byID[id]
	if !ok || t.UserID != ownerID {
		return nil, domain.ErrTransactionNotFound
	}
	t.Amount = draft.Amount
	t.Description = draft.Description
	t.CategoryID = draft.CategoryID
	t.Date = draft.Date
	t.Type = draft.Type
	t.PaymentMode = draft.PaymentMode
	out := *t
	return &out, nil
}

func (r *stubTransactionRepo) DeleteByOwner(_ context.Context, ownerID, id string) error {
	t, ok := r.byID[id]
	if !ok || t.UserID != ownerID {
		return domain.ErrTransactionNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubTransactionRepo) FindBySyncKey(_ context.Context, ownerID, key string) ([]domain.Transaction, error) {
	out := []domain.Transaction{}
	for _, t := range r.byID {
		if t.UserID == ownerID && t.SyncKey == key {
			out = append(out, *t)
		}
	}
	return out, nil
}

type stubSyncGuard struct {
	seen map[string]bool
}

func newStubSyncGuard() *stubSyncGuard {
	return &stubSyncGuard{seen: make(map[string]bool)}
}

func (g *stubSyncGuard) Seen(_ context.Context, ownerID, key string) (bool, error) {
	return g.seen[ownerID+":"+key], nil
}

func (g *stubSyncGuard) Mark(_ context.Context, ownerID, key string) error {
	g.seen[ownerID+":"+key] = true
	return nil
}

func TestTransactionService_Create_StampsOwnerAndDefaults(t *testing.T) {
	repo := newStubTransactionRepo()
	svc := NewTransactionService(repo, nil, zerolog.Nop())

	created, err := svc.Create(context.Background(), "user-a", domain.TransactionDraft{
		Amount:     100,
		CategoryID: "food",
		Date:       "2023-10-27",
		Type:       domain.TypeExpense,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
	if created.UserID != "user-a" {
		t.Fatalf("owner not stamped, got %q", created.UserID)
	}
	if created.PaymentMode != domain.DefaultPaymentMode {
		t.Fatalf("expected default payment mode, got %q", created.PaymentMode)
	}
}

func TestTransactionService_Update_OtherOwnersResourceNotFound(t *testing.T) {
	repo := newStubTransactionRepo()
	svc := NewTransactionService(repo, nil, zerolog.Nop())

	theirs, err := svc.Create(context.Background(), "user-b", domain.TransactionDraft{
		Amount: 50, CategoryID: "transport", Date: "2023-10-27", Type: domain.TypeExpense,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	draft := domain.TransactionDraft{Amount: 1, CategoryID: "food", Date: "2023-10-28", Type: domain.TypeExpense}

	// Exists but owned by someone else, and does not exist at all: both NotFound.
	if _, err := svc.Update(context.Background(), "user-a", theirs.ID, draft); !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound for foreign resource, got %v", err)
	}
	if _, err := svc.Update(context.Background(), "user-a", "txn-missing", draft); !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound for missing resource, got %v", err)
	}
	if err := svc.Delete(context.Background(), "user-a", theirs.ID); !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound on delete, got %v", err)
	}
}

func TestTransactionService_Update_ReplacesAllEditableFields(t *testing.T) {
	repo := newStubTransactionRepo()
	svc := NewTransactionService(repo, nil, zerolog.Nop())

	created, err := svc.Create(context.Background(), "user-a", domain.TransactionDraft{
		Amount: 100, Description: "groceries", CategoryID: "food", Date: "2023-10-27", Type: domain.TypeExpense,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Description omitted in the update: a full replace clears it.
	updated, err := svc.Update(context.Background(), "user-a", created.ID, domain.TransactionDraft{
		Amount: 200, CategoryID: "shopping", Date: "2023-10-28", Type: domain.TypeExpense,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Description != "" {
		t.Fatalf("expected description replaced with empty, got %q", updated.Description)
	}
	if updated.Amount != 200 || updated.CategoryID != "shopping" {
		t.Fatalf("fields not replaced: %+v", updated)
	}
}

func TestTransactionService_Sync_InsertsIndependently(t *testing.T) {
	repo := newStubTransactionRepo()
	repo.failOn = 2
	svc := NewTransactionService(repo, nil, zerolog.Nop())

	drafts := []domain.TransactionDraft{
		{Amount: 1, CategoryID: "food", Date: "2024-01-01", Type: domain.TypeExpense},
		{Amount: 2, CategoryID: "food", Date: "2024-01-02", Type: domain.TypeExpense},
		{Amount: 3, CategoryID: "food", Date: "2024-01-03", Type: domain.TypeExpense},
	}

	result, err := svc.Sync(context.Background(), "user-a", drafts, "")
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	// Item 2 fails; items 1 and 3 stay inserted.
	if len(result.IDs) != 2 {
		t.Fatalf("expected 2 synced ids, got %d", len(result.IDs))
	}
	if result.Replayed {
		t.Fatalf("unexpected replay")
	}
}

func TestTransactionService_Sync_IdempotentReplay(t *testing.T) {
	repo := newStubTransactionRepo()
	guard := newStubSyncGuard()
	svc := NewTransactionService(repo, guard, zerolog.Nop())

	drafts := []domain.TransactionDraft{
		{Amount: 10, CategoryID: "food", Date: "2024-01-01", Type: domain.TypeExpense},
		{Amount: 20, CategoryID: "food", Date: "2024-01-02", Type: domain.TypeExpense},
	}

	first, err := svc.Sync(context.Background(), "user-a", drafts, "batch-1")
	if err != nil {
		t.Fatalf("first sync failed: %v", err)
	}
	if first.Replayed || len(first.IDs) != 2 {
		t.Fatalf("unexpected first result: %+v", first)
	}

	second, err := svc.Sync(context.Background(), "user-a", drafts, "batch-1")
	if err != nil {
		t.Fatalf("second sync failed: %v", err)
	}
	if !second.Replayed {
		t.Fatalf("expected replay on second sync")
	}
	if len(second.IDs) != 2 {
		t.Fatalf("expected previously stored ids, got %v", second.IDs)
	}

	all, _ := repo.ListByOwner(context.Background(), "user-a")
	if len(all) != 2 {
		t.Fatalf("replay inserted duplicates: %d stored", len(all))
	}
}

func TestTransactionService_Sync_DifferentUsersSameKey(t *testing.T) {
	repo := newStubTransactionRepo()
	guard := newStubSyncGuard()
	svc := NewTransactionService(repo, guard, zerolog.Nop())

	drafts := []domain.TransactionDraft{{Amount: 5, CategoryID: "food", Date: "2024-01-01", Type: domain.TypeExpense}}

	if _, err := svc.Sync(context.Background(), "user-a", drafts, "batch-1"); err != nil {
		t.Fatalf("sync a failed: %v", err)
	}
	result, err := svc.Sync(context.Background(), "user-b", drafts, "batch-1")
	if err != nil {
		t.Fatalf("sync b failed: %v", err)
	}
	if result.Replayed {
		t.Fatalf("keys must be scoped per user")
	}
}
