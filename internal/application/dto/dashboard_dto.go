package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/admin/dashboard/summary.
// Los KPIs que el operador ve al entrar al panel.
type DashboardSummaryDTO struct {
	TotalSales    decimal.Decimal `json:"totalSales"`    // ingresos acumulados de pedidos entregados
	PendingOrders int             `json:"pendingOrders"` // pedidos esperando preparación
	MenuItems     int             `json:"menuItems"`     // platos en el inventario (incluye deshabilitados)
}
