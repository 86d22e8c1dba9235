package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem representa un plato del menú. Disabled lo excluye del listado
// público pero lo conserva en el inventario del panel de administración.
// La imagen lleva sus propias compañeras de transformación (misma semántica
// que los slots del SiteConfig: escala 0 = sin definir, posición nil = 50).
type MenuItem struct {
	ID             string
	Name           string
	Description    string
	Price          decimal.Decimal // no negativo
	Image          string          // URL o data URI
	ImageScale     float64
	ImagePositionX *float64
	ImagePositionY *float64
	Category       string // debe existir en categories o ser "Todos"
	IsPopular      bool
	IsVegetarian   bool
	Disabled       bool
	Position       int // orden de inserción, preservado en los listados
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
