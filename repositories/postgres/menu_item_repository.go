package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/littlelemon/restaurant-backend/models"
	"github.com/littlelemon/restaurant-backend/repositories"
	"go.uber.org/zap"
)

// MenuItemRepository implements the repositories.MenuItemRepository interface
type MenuItemRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewMenuItemRepository creates a new menu item repository
func NewMenuItemRepository(db *DB, logger *zap.Logger) repositories.MenuItemRepository {
	return &MenuItemRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new menu item and fills in its generated ID
func (r *MenuItemRepository) Create(ctx context.Context, item *models.MenuItem) error {
	query := `
		INSERT INTO menu_items (title, price, featured)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		item.Title,
		item.Price,
		item.Featured,
	).Scan(&item.ID)

	if err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}

	r.logger.Debug("menu item created", zap.Int64("id", item.ID))
	return nil
}

// GetByID retrieves a menu item by ID
func (r *MenuItemRepository) GetByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	query := `
		SELECT id, title, price, featured
		FROM menu_items
		WHERE id = $1
	`

	item := &models.MenuItem{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID,
		&item.Title,
		&item.Price,
		&item.Featured,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("menu item %d: %w", id, repositories.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}

	return item, nil
}

// List retrieves all menu items
func (r *MenuItemRepository) List(ctx context.Context) ([]*models.MenuItem, error) {
	query := `
		SELECT id, title, price, featured
		FROM menu_items
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	var items []*models.MenuItem
	for rows.Next() {
		item := &models.MenuItem{}
		err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Price,
			&item.Featured,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating menu item rows: %w", err)
	}

	return items, nil
}

// Update updates a menu item
func (r *MenuItemRepository) Update(ctx context.Context, item *models.MenuItem) error {
	query := `
		UPDATE menu_items
		SET title = $2,
		    price = $3,
		    featured = $4
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.Title,
		item.Price,
		item.Featured,
	)

	if err != nil {
		return fmt.Errorf("failed to update menu item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("menu item %d: %w", item.ID, repositories.ErrNotFound)
	}

	r.logger.Debug("menu item updated", zap.Int64("id", item.ID))
	return nil
}

// Delete deletes a menu item
func (r *MenuItemRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM menu_items WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("menu item %d: %w", id, repositories.ErrNotFound)
	}

	r.logger.Debug("menu item deleted", zap.Int64("id", id))
	return nil
}
