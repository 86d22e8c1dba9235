package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// AnalyticsRepository consultas read-only para el resumen del panel de
// operador. No accede a entidades completas; solo agregados.
type AnalyticsRepository interface {
	GetSalesTotal(ctx context.Context) (decimal.Decimal, error)
	CountOrdersByStatus(ctx context.Context, status string) (int, error)
	CountMenuItems(ctx context.Context) (int, error)
}
