package client

import (
	"encoding/json"
	"fmt"

	"qr-menu/internal/models"
)

// TransformMenuItem converts a wire item into its display form: lowercase
// category, image defaulted per category when empty.
func TransformMenuItem(item models.MenuItem) models.DisplayMenuItem {
	image := item.Image
	if image == "" {
		image = item.Category.DefaultImage()
	}
	return models.DisplayMenuItem{
		ID:          item.ID,
		Name:        item.Name,
		Size:        item.Size,
		Price:       item.Price,
		Image:       image,
		Category:    item.Category.Display(),
		Description: item.Description,
	}
}

// TransformMenuItems converts wire items to display items, dropping inactive
// ones and preserving relative order.
func TransformMenuItems(items []models.MenuItem) []models.DisplayMenuItem {
	out := make([]models.DisplayMenuItem, 0, len(items))
	for _, item := range items {
		if !item.IsActive {
			continue
		}
		out = append(out, TransformMenuItem(item))
	}
	return out
}

// Unwrap enforces the response envelope: it decodes the payload into out on
// success and fails with RequestFailedError otherwise. It performs no I/O.
func Unwrap(env *models.Envelope, out interface{}) error {
	if !env.Success {
		message := env.Message
		if message == "" {
			message = "API request failed"
		}
		return &RequestFailedError{Message: message}
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}
