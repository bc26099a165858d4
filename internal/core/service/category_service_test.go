package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lokeshec23/Track-Me/internal/core/domain"
)

type stubCategoryRepo struct {
	byID   map[string]*domain.Category
	nextID int
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{byID: make(map[string]*domain.Category)}
}

func (r *stubCategoryRepo) ListByOwner(_ context.Context, ownerID string) ([]domain.Category, error) {
	out := []domain.Category{}
	for _, c := range r.byID {
		if c.UserID == ownerID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubCategoryRepo) Insert(_ context.Context, c *domain.Category) (*domain.Category, error) {
	r.nextID++
	created := *c
	created.ID = fmt.Sprintf("cat-%d", r.nextID)
	r.byID[created.ID] = &created
	out := created
	return &out, nil
}

func (r *stubCategoryRepo) DeleteByOwner(_ context.Context, ownerID, id string) error {
	c, ok := r.byID[id]
	if !ok || c.UserID != ownerID {
		return domain.ErrCategoryNotDeletable
	}
	delete(r.byID, id)
	return nil
}

func TestCategoryService_List_DefaultsFirst(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo, zerolog.Nop())

	if _, err := svc.Create(context.Background(), "user-a", domain.CategoryDraft{
		Name: "Pets", Icon: "🐾", Color: "#a16207", Type: domain.TypeExpense,
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	all, err := svc.List(context.Background(), "user-a")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	wantLen := len(domain.DefaultExpenseCategories) + len(domain.DefaultIncomeCategories) + 1
	if len(all) != wantLen {
		t.Fatalf("expected %d categories, got %d", wantLen, len(all))
	}
	if all[0].ID != "food" {
		t.Fatalf("expected defaults first, got %q", all[0].ID)
	}
	last := all[len(all)-1]
	if last.Name != "Pets" || !last.IsCustom {
		t.Fatalf("expected custom category last, got %+v", last)
	}
}

func TestCategoryService_Create_StampsCustom(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), "user-a", domain.CategoryDraft{
		Name: "Pets", Icon: "🐾", Color: "#a16207", Type: domain.TypeExpense,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !created.IsCustom {
		t.Fatalf("expected IsCustom stamped true")
	}
	if created.UserID != "user-a" {
		t.Fatalf("owner not stamped, got %q", created.UserID)
	}
}

func TestCategoryService_Delete_DefaultCategoryFails(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo, zerolog.Nop())

	// "food" is a built-in id that never exists in the custom set.
	if err := svc.Delete(context.Background(), "user-a", "food"); err != domain.ErrCategoryNotDeletable {
		t.Fatalf("expected ErrCategoryNotDeletable, got %v", err)
	}
}

func TestCategoryService_Delete_CustomCategory(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), "user-a", domain.CategoryDraft{
		Name: "Pets", Icon: "🐾", Color: "#a16207", Type: domain.TypeExpense,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), "user-b", created.ID); err != domain.ErrCategoryNotDeletable {
		t.Fatalf("expected failure for other owner, got %v", err)
	}
	if err := svc.Delete(context.Background(), "user-a", created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
}
