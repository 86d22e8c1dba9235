package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dumplinghouse/storefront-api/internal/application/dto"
	"github.com/dumplinghouse/storefront-api/internal/domain/entity"
	"github.com/dumplinghouse/storefront-api/internal/domain/repository"
)

// DashboardUseCase arma el resumen del panel de operador. Las tres
// consultas son independientes y se lanzan en paralelo.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary devuelve los KPIs del panel.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type salesResult struct {
		total decimal.Decimal
		err   error
	}
	type countResult struct {
		n   int
		err error
	}

	salesChan := make(chan salesResult, 1)
	pendingChan := make(chan countResult, 1)
	itemsChan := make(chan countResult, 1)

	go func() {
		total, err := uc.analyticsRepo.GetSalesTotal(ctx)
		salesChan <- salesResult{total, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountOrdersByStatus(ctx, entity.OrderPending)
		pendingChan <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountMenuItems(ctx)
		itemsChan <- countResult{n, err}
	}()

	sales := <-salesChan
	pending := <-pendingChan
	items := <-itemsChan

	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: ventas: %w", sales.err)
	}
	if pending.err != nil {
		return nil, fmt.Errorf("dashboard: pedidos pendientes: %w", pending.err)
	}
	if items.err != nil {
		return nil, fmt.Errorf("dashboard: platos: %w", items.err)
	}

	return &dto.DashboardSummaryDTO{
		TotalSales:    sales.total.Round(2),
		PendingOrders: pending.n,
		MenuItems:     items.n,
	}, nil
}
