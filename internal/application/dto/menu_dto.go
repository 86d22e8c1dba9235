package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMenuItemRequest entrada para crear un plato del menú. La imagen
// lleva sus compañeras de transformación opcionales (misma semántica que
// los slots del sitio).
type CreateMenuItemRequest struct {
	Name           string          `json:"name" validate:"required,min=1,max=200"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	Image          string          `json:"image"`
	ImageScale     float64         `json:"imageScale"`
	ImagePositionX *float64        `json:"imagePositionX"`
	ImagePositionY *float64        `json:"imagePositionY"`
	Category       string          `json:"category" validate:"required,min=1,max=100"`
	IsPopular      bool            `json:"isPopular"`
	IsVegetarian   bool            `json:"isVegetarian"`
}

// UpdateMenuItemRequest entrada para actualizar un plato (campos opcionales).
type UpdateMenuItemRequest struct {
	Name           *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description    *string          `json:"description"`
	Price          *decimal.Decimal `json:"price"`
	Image          *string          `json:"image"`
	ImageScale     *float64         `json:"imageScale"`
	ImagePositionX *float64         `json:"imagePositionX"`
	ImagePositionY *float64         `json:"imagePositionY"`
	Category       *string          `json:"category" validate:"omitempty,min=1,max=100"`
	IsPopular      *bool            `json:"isPopular"`
	IsVegetarian   *bool            `json:"isVegetarian"`
	Disabled       *bool            `json:"disabled"`
}

// MenuItemResponse salida de un plato (vista de administración: incluye
// los deshabilitados).
type MenuItemResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	Image          string          `json:"image"`
	ImageScale     float64         `json:"imageScale,omitempty"`
	ImagePositionX *float64        `json:"imagePositionX,omitempty"`
	ImagePositionY *float64        `json:"imagePositionY,omitempty"`
	Category       string          `json:"category"`
	IsPopular      bool            `json:"isPopular"`
	IsVegetarian   bool            `json:"isVegetarian"`
	Disabled       bool            `json:"disabled"`
	Position       int             `json:"position"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// MenuItemListResponse lista completa del menú en orden de inserción.
type MenuItemListResponse struct {
	Items []MenuItemResponse `json:"items"`
}

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// CategoryListResponse barra de categorías en orden, "Todos" siempre
// primera.
type CategoryListResponse struct {
	Categories []string `json:"categories"`
}
