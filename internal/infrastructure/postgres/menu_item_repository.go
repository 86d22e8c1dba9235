package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dumplinghouse/storefront-api/internal/domain"
	"github.com/dumplinghouse/storefront-api/internal/domain/entity"
	"github.com/dumplinghouse/storefront-api/internal/domain/repository"
)

var _ repository.MenuItemRepository = (*MenuItemRepo)(nil)

// MenuItemRepo implementación del puerto MenuItemRepository sobre PostgreSQL (usable con pool o tx).
type MenuItemRepo struct {
	q Querier
}

// NewMenuItemRepository construye el adaptador de persistencia para el menú. Pasar pool o tx (Querier).
func NewMenuItemRepository(q Querier) *MenuItemRepo {
	return &MenuItemRepo{q: q}
}

const menuItemColumns = `id, name, description, price, image, image_scale, image_position_x, image_position_y,
		category, is_popular, is_vegetarian, disabled, position, created_at, updated_at`

// Create persiste un plato nuevo.
func (r *MenuItemRepo) Create(ctx context.Context, item *entity.MenuItem) error {
	query := `
		INSERT INTO menu_items (` + menuItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Name, item.Description, item.Price, item.Image,
		item.ImageScale, item.ImagePositionX, item.ImagePositionY,
		item.Category, item.IsPopular, item.IsVegetarian, item.Disabled,
		item.Position, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert menu item: %w", err)
	}
	return nil
}

// GetByID obtiene un plato por ID; nil si no existe.
func (r *MenuItemRepo) GetByID(ctx context.Context, id string) (*entity.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE id = $1`
	var it entity.MenuItem
	err := r.q.QueryRow(ctx, query, id).Scan(
		&it.ID, &it.Name, &it.Description, &it.Price, &it.Image,
		&it.ImageScale, &it.ImagePositionX, &it.ImagePositionY,
		&it.Category, &it.IsPopular, &it.IsVegetarian, &it.Disabled,
		&it.Position, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return &it, nil
}

// List devuelve el menú completo en orden de inserción (columna position).
func (r *MenuItemRepo) List(ctx context.Context) ([]*entity.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items ORDER BY position ASC, created_at ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()

	var out []*entity.MenuItem
	for rows.Next() {
		var it entity.MenuItem
		if err := rows.Scan(
			&it.ID, &it.Name, &it.Description, &it.Price, &it.Image,
			&it.ImageScale, &it.ImagePositionX, &it.ImagePositionY,
			&it.Category, &it.IsPopular, &it.IsVegetarian, &it.Disabled,
			&it.Position, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		out = append(out, &it)
	}
	return out, rows.Err()
}

// Update reescribe todos los campos editables del plato.
func (r *MenuItemRepo) Update(ctx context.Context, item *entity.MenuItem) error {
	query := `
		UPDATE menu_items SET
			name = $2, description = $3, price = $4, image = $5,
			image_scale = $6, image_position_x = $7, image_position_y = $8,
			category = $9, is_popular = $10, is_vegetarian = $11,
			disabled = $12, updated_at = $13
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		item.ID, item.Name, item.Description, item.Price, item.Image,
		item.ImageScale, item.ImagePositionX, item.ImagePositionY,
		item.Category, item.IsPopular, item.IsVegetarian,
		item.Disabled, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update menu item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra el plato definitivamente.
func (r *MenuItemRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountByCategory cuenta los platos asignados a una categoría.
func (r *MenuItemRepo) CountByCategory(ctx context.Context, category string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM menu_items WHERE category = $1`, category).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count menu items by category: %w", err)
	}
	return n, nil
}
