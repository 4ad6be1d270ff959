package models

import (
	"errors"
	"fmt"
	"strings"
)

// Category is the wire/storage form of a menu category, always uppercase.
type Category string

const (
	CategoryDrink   Category = "DRINK"
	CategoryFood    Category = "FOOD"
	CategoryFoodSet Category = "FOOD_SET"
)

// DisplayCategory is the lowercase form used in UI state.
type DisplayCategory string

const (
	DisplayDrink   DisplayCategory = "drink"
	DisplayFood    DisplayCategory = "food"
	DisplayFoodSet DisplayCategory = "food_set"
)

// ErrInvalidCategory marks a category token outside the enumerated set.
var ErrInvalidCategory = errors.New("invalid category")

// Per-category placeholder images, used whenever an item has none of its own.
const (
	drinkDefaultImage   = "https://api.builder.io/api/v1/image/assets/TEMP/2e811b0fa84092c929b579286fded5e620c45c19?width=347"
	foodDefaultImage    = "https://api.builder.io/api/v1/image/assets/TEMP/977e1ee7cf4be018cd9e90c67e54df15c36e50b0?width=347"
	foodSetDefaultImage = "https://api.builder.io/api/v1/image/assets/TEMP/c90a4be31f7a0a49d8a304b2b5cfa13f61bd24e5?width=347"
)

// Categories returns the closed set of wire-form categories.
func Categories() []Category {
	return []Category{CategoryDrink, CategoryFood, CategoryFoodSet}
}

// ParseCategory validates a wire-case category token.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryDrink, CategoryFood, CategoryFoodSet:
		return Category(s), nil
	default:
		return "", fmt.Errorf("%w: %q must be one of DRINK, FOOD, FOOD_SET", ErrInvalidCategory, s)
	}
}

// Display converts the wire form to the lowercase display form.
// All case and underscore handling lives here; callers must not
// case-fold category tokens on their own.
func (c Category) Display() DisplayCategory {
	return DisplayCategory(strings.ToLower(string(c)))
}

// Wire converts the display form back to the uppercase wire form.
func (d DisplayCategory) Wire() Category {
	return Category(strings.ToUpper(string(d)))
}

// DefaultImage returns the stable placeholder URL for the category.
func (c Category) DefaultImage() string {
	switch c {
	case CategoryDrink:
		return drinkDefaultImage
	case CategoryFoodSet:
		return foodSetDefaultImage
	default:
		return foodDefaultImage
	}
}
