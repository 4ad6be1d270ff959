package menu

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"qr-menu/internal/database"
	"qr-menu/internal/models"
)

// PostgresStore is the persistent Store implementation behind the same seam
// as MemoryStore.
type PostgresStore struct {
	db *database.DB
}

// NewPostgresStore creates a store backed by the given database.
func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) List(ctx context.Context, filter *models.Category) ([]models.MenuItem, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if filter != nil {
		rows, err = s.db.Query(ctx, listItemsByCategorySQL, string(*filter))
	} else {
		rows, err = s.db.Query(ctx, listItemsSQL)
	}
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()

	items := make([]models.MenuItem, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *PostgresStore) Create(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	createdAt := timeOrNow(item.CreatedAt)
	updatedAt := timeOrNow(item.UpdatedAt)

	err := s.db.QueryRow(ctx, insertItemSQL,
		item.Name, item.Size, item.Price, item.Image, string(item.Category),
		item.Description, item.IsActive, createdAt, updatedAt,
	).Scan(&item.ID)
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("insert menu item: %w", err)
	}

	item.CreatedAt = &createdAt
	item.UpdatedAt = &updatedAt
	return item, nil
}

func (s *PostgresStore) Update(ctx context.Context, id int, item models.MenuItem) (models.MenuItem, error) {
	updatedAt := timeOrNow(item.UpdatedAt)

	row := s.db.QueryRow(ctx, updateItemSQL,
		item.Name, item.Size, item.Price, item.Image, string(item.Category),
		item.Description, updatedAt, id,
	)
	updated, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.MenuItem{}, ErrNotFound
		}
		return models.MenuItem{}, fmt.Errorf("update menu item: %w", err)
	}
	return updated, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id int) (models.MenuItem, error) {
	deleted, err := scanItem(s.db.QueryRow(ctx, deleteItemSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.MenuItem{}, ErrNotFound
		}
		return models.MenuItem{}, fmt.Errorf("delete menu item: %w", err)
	}
	return deleted, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func scanItem(row pgx.Row) (models.MenuItem, error) {
	var (
		item      models.MenuItem
		category  string
		createdAt time.Time
		updatedAt time.Time
	)
	err := row.Scan(&item.ID, &item.Name, &item.Size, &item.Price, &item.Image,
		&category, &item.Description, &item.IsActive, &createdAt, &updatedAt)
	if err != nil {
		return models.MenuItem{}, err
	}
	item.Category = models.Category(category)
	item.CreatedAt = &createdAt
	item.UpdatedAt = &updatedAt
	return item, nil
}

func timeOrNow(t *time.Time) time.Time {
	if t != nil {
		return *t
	}
	return time.Now().UTC()
}
