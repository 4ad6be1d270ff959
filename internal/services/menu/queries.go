package menu

// Menu item queries. Insertion order is id order.
const (
	listItemsSQL = `
		SELECT id, name, size, price, image, category, description, is_active, created_at, updated_at
		FROM menu_items
		ORDER BY id`

	listItemsByCategorySQL = `
		SELECT id, name, size, price, image, category, description, is_active, created_at, updated_at
		FROM menu_items
		WHERE category = $1
		ORDER BY id`

	insertItemSQL = `
		INSERT INTO menu_items (id, name, size, price, image, category, description, is_active, created_at, updated_at)
		VALUES ((SELECT COALESCE(MAX(id), 0) + 1 FROM menu_items), $1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	updateItemSQL = `
		UPDATE menu_items
		SET name = $1, size = $2, price = $3, image = $4, category = $5, description = $6, updated_at = $7
		WHERE id = $8
		RETURNING id, name, size, price, image, category, description, is_active, created_at, updated_at`

	deleteItemSQL = `
		DELETE FROM menu_items
		WHERE id = $1
		RETURNING id, name, size, price, image, category, description, is_active, created_at, updated_at`
)
