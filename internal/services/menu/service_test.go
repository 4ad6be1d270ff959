package menu

import (
	"context"
	"errors"
	"testing"

	"qr-menu/internal/logger"
	"qr-menu/internal/models"
)

func newTestService() (*Service, *MemoryStore) {
	store := NewMemoryStore()
	return NewService(store, NopPublisher{}, logger.New("menu-service-test")), store
}

func TestServiceCreateItemDefaultsImage(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	item, err := svc.CreateItem(ctx, &models.ItemRequest{
		Name: "Latte", Size: "M", Price: "4.5", Category: "DRINK",
	}, "req_test")
	if err != nil {
		t.Fatalf("CreateItem returned error: %v", err)
	}

	if item.Category != models.CategoryDrink {
		t.Errorf("stored category = %q, want DRINK", item.Category)
	}
	if item.Image != models.CategoryDrink.DefaultImage() {
		t.Errorf("image = %q, want drink default", item.Image)
	}
	if !item.IsActive {
		t.Error("created item must be active")
	}
	if item.CreatedAt == nil || item.UpdatedAt == nil {
		t.Error("timestamps not set on create")
	}
}

func TestServiceCreateItemInvalidCategory(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService()

	_, err := svc.CreateItem(ctx, &models.ItemRequest{
		Name: "Cola", Size: "M", Price: "2", Category: "SODA",
	}, "req_test")
	if !errors.Is(err, models.ErrInvalidCategory) {
		t.Fatalf("error = %v, want ErrInvalidCategory", err)
	}

	items, _ := store.List(ctx, nil)
	if len(items) != 0 {
		t.Errorf("store changed on failed create: %d items", len(items))
	}
}

func TestServiceUpdateItem(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.CreateItem(ctx, &models.ItemRequest{
		Name: "Latte", Size: "M", Price: "4.5", Category: "DRINK",
	}, "req_test")
	if err != nil {
		t.Fatalf("CreateItem returned error: %v", err)
	}

	updated, err := svc.UpdateItem(ctx, created.ID, &models.ItemRequest{
		Name: "Flat White", Size: "L", Price: "5", Category: "DRINK",
	}, "req_test")
	if err != nil {
		t.Fatalf("UpdateItem returned error: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("id changed: %d -> %d", created.ID, updated.ID)
	}
	if updated.Name != "Flat White" || updated.Size != "L" || updated.Price != "5" {
		t.Errorf("fields not replaced: %+v", updated)
	}
	if !updated.IsActive {
		t.Error("active flag lost on update")
	}
}

func TestServiceUpdateItemNotFound(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.UpdateItem(context.Background(), 99, &models.ItemRequest{
		Name: "Latte", Size: "M", Price: "4.5", Category: "DRINK",
	}, "req_test")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestServiceListMenuByCategory(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	svc.CreateItem(ctx, &models.ItemRequest{Name: "D1", Size: "M", Price: "2", Category: "DRINK"}, "req_test")
	svc.CreateItem(ctx, &models.ItemRequest{Name: "F1", Size: "M", Price: "4", Category: "FOOD"}, "req_test")

	items, err := svc.ListMenuByCategory(ctx, "DRINK")
	if err != nil {
		t.Fatalf("ListMenuByCategory returned error: %v", err)
	}
	if len(items) != 1 || items[0].Name != "D1" {
		t.Errorf("unexpected items: %+v", items)
	}

	if _, err := svc.ListMenuByCategory(ctx, "SODA"); !errors.Is(err, models.ErrInvalidCategory) {
		t.Fatalf("error = %v, want ErrInvalidCategory", err)
	}
}

func TestServiceListMenuSeparated(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	reqs := []models.ItemRequest{
		{Name: "D1", Size: "M", Price: "2", Category: "DRINK"},
		{Name: "F1", Size: "M", Price: "4", Category: "FOOD"},
		{Name: "D2", Size: "L", Price: "3", Category: "DRINK"},
		{Name: "F2", Size: "M", Price: "5", Category: "FOOD"},
		{Name: "F3", Size: "L", Price: "6", Category: "FOOD"},
		{Name: "S1", Size: "Set", Price: "12", Category: "FOOD_SET"},
	}
	for i := range reqs {
		if _, err := svc.CreateItem(ctx, &reqs[i], "req_test"); err != nil {
			t.Fatalf("CreateItem returned error: %v", err)
		}
	}

	resp, err := svc.ListMenuSeparated(ctx)
	if err != nil {
		t.Fatalf("ListMenuSeparated returned error: %v", err)
	}
	if len(resp.Drinks) != 2 || len(resp.Foods) != 3 || len(resp.FoodSets) != 1 {
		t.Errorf("buckets = %d/%d/%d, want 2/3/1",
			len(resp.Drinks), len(resp.Foods), len(resp.FoodSets))
	}
	if total := len(resp.Drinks) + len(resp.Foods) + len(resp.FoodSets); total != 6 {
		t.Errorf("total = %d, want 6", total)
	}
}

func TestServiceDeleteItem(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService()

	created, _ := svc.CreateItem(ctx, &models.ItemRequest{
		Name: "Latte", Size: "M", Price: "4.5", Category: "DRINK",
	}, "req_test")

	deleted, err := svc.DeleteItem(ctx, created.ID, "req_test")
	if err != nil {
		t.Fatalf("DeleteItem returned error: %v", err)
	}
	if deleted.ID != created.ID {
		t.Errorf("deleted id = %d, want %d", deleted.ID, created.ID)
	}

	items, _ := store.List(ctx, nil)
	if len(items) != 0 {
		t.Errorf("store not empty after delete: %d items", len(items))
	}

	if _, err := svc.DeleteItem(ctx, created.ID, "req_test"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete error = %v, want ErrNotFound", err)
	}
}
