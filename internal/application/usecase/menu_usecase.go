package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dumplinghouse/storefront-api/internal/application/dto"
	"github.com/dumplinghouse/storefront-api/internal/domain"
	"github.com/dumplinghouse/storefront-api/internal/domain/entity"
	"github.com/dumplinghouse/storefront-api/internal/domain/repository"
)

// MenuUseCase casos de uso CRUD para los platos del menú. Deshabilitar un
// plato lo saca del sitio público pero lo conserva en el inventario del
// panel; el borrado sí es definitivo.
type MenuUseCase struct {
	repo repository.MenuItemRepository
}

// NewMenuUseCase construye el caso de uso.
func NewMenuUseCase(repo repository.MenuItemRepository) *MenuUseCase {
	return &MenuUseCase{repo: repo}
}

// Create crea un plato nuevo al final del menú.
func (uc *MenuUseCase) Create(ctx context.Context, in dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error) {
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	item := &entity.MenuItem{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Description:    in.Description,
		Price:          in.Price,
		Image:          in.Image,
		ImageScale:     in.ImageScale,
		ImagePositionX: in.ImagePositionX,
		ImagePositionY: in.ImagePositionY,
		Category:       in.Category,
		IsPopular:      in.IsPopular,
		IsVegetarian:   in.IsVegetarian,
		Position:       len(existing),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toMenuItemResponse(item), nil
}

// GetByID obtiene un plato por ID.
func (uc *MenuUseCase) GetByID(ctx context.Context, id string) (*dto.MenuItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toMenuItemResponse(item), nil
}

// List lista el menú completo en orden de inserción, incluidos los platos
// deshabilitados (vista de administración).
func (uc *MenuUseCase) List(ctx context.Context) (*dto.MenuItemListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MenuItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toMenuItemResponse(it))
	}
	return &dto.MenuItemListResponse{Items: items}, nil
}

// ListPublic entrega el read model del menú al renderer del sitio, en
// orden de inserción; el filtrado de deshabilitados lo hace el renderer.
func (uc *MenuUseCase) ListPublic(ctx context.Context) ([]entity.MenuItem, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]entity.MenuItem, 0, len(list))
	for _, it := range list {
		items = append(items, *it)
	}
	return items, nil
}

// Update actualiza un plato (campos presentes únicamente).
func (uc *MenuUseCase) Update(ctx context.Context, id string, in dto.UpdateMenuItemRequest) (*dto.MenuItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.Price = *in.Price
	}
	if in.Image != nil {
		item.Image = *in.Image
	}
	if in.ImageScale != nil {
		item.ImageScale = *in.ImageScale
	}
	if in.ImagePositionX != nil {
		item.ImagePositionX = in.ImagePositionX
	}
	if in.ImagePositionY != nil {
		item.ImagePositionY = in.ImagePositionY
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.IsPopular != nil {
		item.IsPopular = *in.IsPopular
	}
	if in.IsVegetarian != nil {
		item.IsVegetarian = *in.IsVegetarian
	}
	if in.Disabled != nil {
		item.Disabled = *in.Disabled
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return toMenuItemResponse(item), nil
}

// ToggleDisabled invierte la disponibilidad del plato.
func (uc *MenuUseCase) ToggleDisabled(ctx context.Context, id string) (*dto.MenuItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	item.Disabled = !item.Disabled
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return toMenuItemResponse(item), nil
}

// Delete elimina un plato definitivamente.
func (uc *MenuUseCase) Delete(ctx context.Context, id string) error {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toMenuItemResponse(it *entity.MenuItem) *dto.MenuItemResponse {
	if it == nil {
		return nil
	}
	return &dto.MenuItemResponse{
		ID:             it.ID,
		Name:           it.Name,
		Description:    it.Description,
		Price:          it.Price,
		Image:          it.Image,
		ImageScale:     it.ImageScale,
		ImagePositionX: it.ImagePositionX,
		ImagePositionY: it.ImagePositionY,
		Category:       it.Category,
		IsPopular:      it.IsPopular,
		IsVegetarian:   it.IsVegetarian,
		Disabled:       it.Disabled,
		Position:       it.Position,
		CreatedAt:      it.CreatedAt,
		UpdatedAt:      it.UpdatedAt,
	}
}
