package menu

import (
	"context"
	"fmt"
	"time"

	"qr-menu/internal/logger"
	"qr-menu/internal/models"
)

// EventPublisher broadcasts menu changes to interested consumers.
type EventPublisher interface {
	PublishMenuEvent(ctx context.Context, event string, item models.MenuItem) error
}

// NopPublisher is used when no message broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishMenuEvent(context.Context, string, models.MenuItem) error {
	return nil
}

// Service implements the menu operations on top of a Store.
type Service struct {
	store  Store
	events EventPublisher
	logger *logger.Logger
}

// NewService creates a new menu service.
func NewService(store Store, events EventPublisher, log *logger.Logger) *Service {
	return &Service{
		store:  store,
		events: events,
		logger: log,
	}
}

// ListMenu returns every item in insertion order.
func (s *Service) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	return s.store.List(ctx, nil)
}

// ListMenuByCategory returns items in the category named by the wire-case
// token. An unknown token fails with models.ErrInvalidCategory.
func (s *Service) ListMenuByCategory(ctx context.Context, category string) ([]models.MenuItem, error) {
	cat, err := models.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	return s.store.List(ctx, &cat)
}

// ListMenuSeparated partitions the menu into its three category buckets,
// preserving relative order within each bucket.
func (s *Service) ListMenuSeparated(ctx context.Context) (*models.MenuByCategoryResponse, error) {
	items, err := s.store.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	resp := &models.MenuByCategoryResponse{
		Drinks:   []models.MenuItem{},
		Foods:    []models.MenuItem{},
		FoodSets: []models.MenuItem{},
	}
	for _, item := range items {
		switch item.Category {
		case models.CategoryDrink:
			resp.Drinks = append(resp.Drinks, item)
		case models.CategoryFood:
			resp.Foods = append(resp.Foods, item)
		case models.CategoryFoodSet:
			resp.FoodSets = append(resp.FoodSets, item)
		}
	}
	return resp, nil
}

// CreateItem validates the request, applies the category default image when
// none is given, and appends the new item to the store.
func (s *Service) CreateItem(ctx context.Context, req *models.ItemRequest, requestID string) (models.MenuItem, error) {
	cat, err := ValidateItemRequest(req)
	if err != nil {
		return models.MenuItem{}, err
	}

	now := time.Now().UTC()
	item := models.MenuItem{
		Name:        req.Name,
		Size:        req.Size,
		Price:       req.Price,
		Image:       req.Image,
		Category:    cat,
		Description: req.Description,
		IsActive:    true,
		CreatedAt:   &now,
		UpdatedAt:   &now,
	}
	if item.Image == "" {
		item.Image = cat.DefaultImage()
	}

	created, err := s.store.Create(ctx, item)
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("create menu item: %w", err)
	}

	s.publish(ctx, "menu.created", created, requestID)
	return created, nil
}

// UpdateItem validates the request and fully replaces the editable fields of
// the item with the given id. The item keeps its id, position and active flag.
func (s *Service) UpdateItem(ctx context.Context, id int, req *models.ItemRequest, requestID string) (models.MenuItem, error) {
	cat, err := ValidateItemRequest(req)
	if err != nil {
		return models.MenuItem{}, err
	}

	now := time.Now().UTC()
	item := models.MenuItem{
		Name:        req.Name,
		Size:        req.Size,
		Price:       req.Price,
		Image:       req.Image,
		Category:    cat,
		Description: req.Description,
		UpdatedAt:   &now,
	}
	if item.Image == "" {
		item.Image = cat.DefaultImage()
	}

	updated, err := s.store.Update(ctx, id, item)
	if err != nil {
		return models.MenuItem{}, err
	}

	s.publish(ctx, "menu.updated", updated, requestID)
	return updated, nil
}

// DeleteItem hard-removes the item with the given id and returns it.
func (s *Service) DeleteItem(ctx context.Context, id int, requestID string) (models.MenuItem, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return models.MenuItem{}, err
	}

	s.publish(ctx, "menu.deleted", deleted, requestID)
	return deleted, nil
}

// HealthCheck reports whether the store backend is reachable.
func (s *Service) HealthCheck(ctx context.Context) bool {
	return s.store.Ping(ctx) == nil
}

// publish sends a menu change event. Publishing failures are logged and never
// fail the request that caused them.
func (s *Service) publish(ctx context.Context, event string, item models.MenuItem, requestID string) {
	if err := s.events.PublishMenuEvent(ctx, event, item); err != nil {
		s.logger.Error("event_publish_failed", requestID,
			fmt.Sprintf("Failed to publish %s for item %d", event, item.ID), err)
	}
}
