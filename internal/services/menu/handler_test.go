package menu

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"qr-menu/internal/logger"
	"qr-menu/internal/models"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T) (*gin.Engine, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	ctx := context.Background()
	for _, item := range []models.MenuItem{
		testItem("Drink 1", models.CategoryDrink),
		testItem("Drink 2", models.CategoryDrink),
		testItem("Food 1", models.CategoryFood),
	} {
		if _, err := store.Create(ctx, item); err != nil {
			t.Fatalf("seeding store: %v", err)
		}
	}
	service := NewService(store, NopPublisher{}, logger.New("menu-handler-test"))
	return NewHandler(service, logger.New("menu-handler-test")).Routes(), store
}

func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		buf, _ := json.Marshal(body)
		reader = bytes.NewReader(buf)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) models.Envelope {
	t.Helper()
	var env models.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decoding envelope: %v (body %s)", err, rec.Body.String())
	}
	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			t.Fatalf("decoding data: %v", err)
		}
	}
	return env
}

func TestGetMenu(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/menu", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp models.MenuResponse
	env := decodeEnvelope(t, rec, &resp)
	if !env.Success {
		t.Error("envelope success = false")
	}
	if env.Timestamp == "" {
		t.Error("envelope timestamp missing")
	}
	if len(resp.Items) != 3 {
		t.Errorf("items = %d, want 3", len(resp.Items))
	}
}

func TestGetMenuByCategory(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/menu/DRINK", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp models.MenuResponse
	decodeEnvelope(t, rec, &resp)
	if len(resp.Items) != 2 {
		t.Errorf("items = %d, want 2", len(resp.Items))
	}
	for _, item := range resp.Items {
		if item.Category != models.CategoryDrink {
			t.Errorf("unexpected category %q", item.Category)
		}
	}
}

func TestGetMenuByCategoryUnknown(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/menu/SODA", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	env := decodeEnvelope(t, rec, nil)
	if env.Success {
		t.Error("envelope success = true on error")
	}
	if env.Message == "" {
		t.Error("error envelope has no message")
	}
}

func TestGetMenuSeparated(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/menu-separated", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp models.MenuByCategoryResponse
	decodeEnvelope(t, rec, &resp)
	if len(resp.Drinks) != 2 || len(resp.Foods) != 1 || len(resp.FoodSets) != 0 {
		t.Errorf("buckets = %d/%d/%d, want 2/1/0",
			len(resp.Drinks), len(resp.Foods), len(resp.FoodSets))
	}
}

func TestAddItem(t *testing.T) {
	router, store := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/items", models.ItemRequest{
		Name: "Latte", Size: "M", Price: "4.5", Category: "DRINK",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}

	var item models.MenuItem
	decodeEnvelope(t, rec, &item)
	if item.ID != 4 {
		t.Errorf("id = %d, want 4", item.ID)
	}
	if item.Image != models.CategoryDrink.DefaultImage() {
		t.Errorf("image = %q, want drink default", item.Image)
	}

	items, _ := store.List(context.Background(), nil)
	if len(items) != 4 {
		t.Errorf("store has %d items, want 4", len(items))
	}
}

func TestAddItemInvalidCategory(t *testing.T) {
	router, store := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/items", models.ItemRequest{
		Name: "Cola", Size: "M", Price: "2", Category: "SODA",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	items, _ := store.List(context.Background(), nil)
	if len(items) != 3 {
		t.Errorf("store changed on rejected create: %d items", len(items))
	}
}

func TestAddItemMissingFields(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/items", models.ItemRequest{
		Size: "M", Price: "2", Category: "DRINK",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUpdateItem(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodPut, "/api/items/1", models.ItemRequest{
		Name: "Iced Tea", Size: "L", Price: "3", Category: "DRINK",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	var item models.MenuItem
	decodeEnvelope(t, rec, &item)
	if item.ID != 1 || item.Name != "Iced Tea" {
		t.Errorf("unexpected item: %+v", item)
	}
}

func TestUpdateItemNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodPut, "/api/items/99", models.ItemRequest{
		Name: "Iced Tea", Size: "L", Price: "3", Category: "DRINK",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestDeleteItem(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodDelete, "/api/items/2", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp models.DeleteItemResponse
	decodeEnvelope(t, rec, &resp)
	if resp.Item.ID != 2 {
		t.Errorf("deleted item id = %d, want 2", resp.Item.ID)
	}

	rec = doRequest(router, http.MethodDelete, "/api/items/2", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", rec.Code)
	}
}

func TestDeleteItemBadID(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodDelete, "/api/items/abc", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestTestEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/test", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp models.TestResponse
	decodeEnvelope(t, rec, &resp)
	if resp.Message == "" || len(resp.Endpoints) == 0 {
		t.Errorf("unexpected test payload: %+v", resp)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
