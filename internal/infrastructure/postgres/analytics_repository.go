package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/dumplinghouse/storefront-api/internal/domain/entity"
	"github.com/dumplinghouse/storefront-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el resumen del panel.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetSalesTotal suma el total de los pedidos entregados.
func (r *AnalyticsRepo) GetSalesTotal(ctx context.Context) (decimal.Decimal, error) {
	const query = `SELECT COALESCE(SUM(total), 0) FROM orders WHERE status = $1`
	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, entity.OrderDelivered).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sales total: %w", err)
	}
	return total, nil
}

// CountOrdersByStatus cuenta pedidos en un estado dado.
func (r *AnalyticsRepo) CountOrdersByStatus(ctx context.Context, status string) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE status = $1`, status).Scan(&n); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

// CountMenuItems cuenta los platos del inventario, incluidos los
// deshabilitados.
func (r *AnalyticsRepo) CountMenuItems(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count menu items: %w", err)
	}
	return n, nil
}
