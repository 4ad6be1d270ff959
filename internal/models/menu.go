package models

import (
	"encoding/json"
	"time"
)

// MenuItem is the wire/storage form of a sellable item.
type MenuItem struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Size        string     `json:"size"`
	Price       string     `json:"price"`
	Image       string     `json:"image,omitempty"`
	Category    Category   `json:"category"`
	Description string     `json:"description,omitempty"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// DisplayMenuItem is the presentation form: lowercase category and an image
// that is never empty.
type DisplayMenuItem struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Size        string          `json:"size"`
	Price       string          `json:"price"`
	Image       string          `json:"image"`
	Category    DisplayCategory `json:"category"`
	Description string          `json:"description,omitempty"`
}

// ItemRequest is the body for create and update calls. Update is a full
// replacement of this field set; there is no partial-merge variant.
type ItemRequest struct {
	Name        string `json:"name" validate:"required"`
	Size        string `json:"size" validate:"required"`
	Price       string `json:"price" validate:"required"`
	Image       string `json:"image,omitempty"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description,omitempty"`
}

// MenuResponse is the payload for menu listings.
type MenuResponse struct {
	Items []MenuItem `json:"items"`
}

// MenuByCategoryResponse partitions the menu into its three category buckets.
type MenuByCategoryResponse struct {
	Drinks   []MenuItem `json:"drinks"`
	Foods    []MenuItem `json:"foods"`
	FoodSets []MenuItem `json:"foodSets"`
}

// DeleteItemResponse confirms a removal and carries the removed item.
type DeleteItemResponse struct {
	Message string   `json:"message"`
	Item    MenuItem `json:"item"`
}

// TestResponse is the liveness payload for the diagnostic endpoint.
type TestResponse struct {
	Message   string   `json:"message"`
	Timestamp string   `json:"timestamp"`
	Endpoints []string `json:"endpoints"`
}

// Envelope wraps every API payload: {success, data, message, timestamp}.
// Errors carry success=false and a message, with no data.
type Envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data,omitempty"`
	Message   string          `json:"message,omitempty"`
	Timestamp string          `json:"timestamp"`
}
