package usecase

import (
	"context"
	"time"

	"github.com/dumplinghouse/storefront-api/internal/application/dto"
	"github.com/dumplinghouse/storefront-api/internal/domain"
	"github.com/dumplinghouse/storefront-api/internal/domain/entity"
	"github.com/dumplinghouse/storefront-api/internal/domain/repository"
)

// CategoryUseCase casos de uso de la barra de categorías. "Todos" es
// virtual: nunca se persiste, no puede crearse ni borrarse y siempre
// encabeza el listado.
type CategoryUseCase struct {
	categories repository.CategoryRepository
	menu       repository.MenuItemRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categories repository.CategoryRepository, menu repository.MenuItemRepository) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, menu: menu}
}

// List devuelve la barra completa en orden, con "Todos" antepuesta.
func (uc *CategoryUseCase) List(ctx context.Context) (*dto.CategoryListResponse, error) {
	list, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(list)+1)
	names = append(names, entity.CategoryAll)
	for _, c := range list {
		names = append(names, c.Name)
	}
	return &dto.CategoryListResponse{Categories: names}, nil
}

// Create crea una categoría nueva al final de la barra.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryListResponse, error) {
	if in.Name == entity.CategoryAll {
		return nil, domain.ErrReservedCategory
	}
	existing, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range existing {
		if c.Name == in.Name {
			return nil, domain.ErrDuplicate
		}
	}
	cat := &entity.Category{
		Name:      in.Name,
		Position:  len(existing),
		CreatedAt: time.Now(),
	}
	if err := uc.categories.Create(ctx, cat); err != nil {
		return nil, err
	}
	return uc.List(ctx)
}

// Delete borra una categoría. Rechaza "Todos" y cualquier categoría que
// todavía tenga platos asignados.
func (uc *CategoryUseCase) Delete(ctx context.Context, name string) error {
	if name == entity.CategoryAll {
		return domain.ErrReservedCategory
	}
	inUse, err := uc.menu.CountByCategory(ctx, name)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return domain.ErrCategoryInUse
	}
	return uc.categories.Delete(ctx, name)
}
