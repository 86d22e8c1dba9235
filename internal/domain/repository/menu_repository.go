package repository

import (
	"context"

	"github.com/dumplinghouse/storefront-api/internal/domain/entity"
)

// MenuItemRepository define el puerto de persistencia para MenuItem (DIP).
// List preserva el orden de inserción (columna position); el renderer no
// reordena.
type MenuItemRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	GetByID(ctx context.Context, id string) (*entity.MenuItem, error)
	List(ctx context.Context) ([]*entity.MenuItem, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	Delete(ctx context.Context, id string) error
	CountByCategory(ctx context.Context, category string) (int, error)
}

// CategoryRepository define el puerto de persistencia para Category.
// "Todos" nunca se persiste; la capa de aplicación la antepone.
type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
	Create(ctx context.Context, cat *entity.Category) error
	Delete(ctx context.Context, name string) error
}
