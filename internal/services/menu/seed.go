package menu

import (
	"fmt"
	"strconv"
	"time"

	"qr-menu/internal/models"
)

// SeedItems returns the mock menu used until a real database is wired in:
// seven drinks, eight foods and three food sets, all active, with the
// category default imagery.
func SeedItems() []models.MenuItem {
	now := time.Now().UTC()
	items := make([]models.MenuItem, 0, 18)

	for i := 0; i < 7; i++ {
		size := "M"
		if i%2 == 1 {
			size = "L"
		}
		items = append(items, seedItem(len(items)+1, fmt.Sprintf("Drink %d", i+1), size,
			strconv.Itoa(2+i%3), models.CategoryDrink, now))
	}

	for i := 0; i < 8; i++ {
		size := "M"
		if i%2 == 1 {
			size = "L"
		}
		items = append(items, seedItem(len(items)+1, fmt.Sprintf("Food %d", i+1), size,
			strconv.Itoa(4+i%4), models.CategoryFood, now))
	}

	for i := 0; i < 3; i++ {
		items = append(items, seedItem(len(items)+1, fmt.Sprintf("Set %d", i+1), "Set",
			strconv.Itoa(9+i), models.CategoryFoodSet, now))
	}

	return items
}

func seedItem(id int, name, size, price string, category models.Category, now time.Time) models.MenuItem {
	return models.MenuItem{
		ID:        id,
		Name:      name,
		Size:      size,
		Price:     price,
		Image:     category.DefaultImage(),
		Category:  category,
		IsActive:  true,
		CreatedAt: &now,
		UpdatedAt: &now,
	}
}
