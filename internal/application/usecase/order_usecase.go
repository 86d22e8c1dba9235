package usecase

import (
	"context"
	"time"

	"github.com/dumplinghouse/storefront-api/internal/application/dto"
	"github.com/dumplinghouse/storefront-api/internal/domain"
	"github.com/dumplinghouse/storefront-api/internal/domain/entity"
	"github.com/dumplinghouse/storefront-api/internal/domain/repository"
)

// OrderUseCase gestión de pedidos del panel de operador. Los pedidos solo
// avanzan por transiciones legales de estado; no hay borrado.
type OrderUseCase struct {
	repo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// List lista pedidos paginados, más reciente primero.
func (uc *OrderUseCase) List(ctx context.Context, limit, offset int) (*dto.OrderListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// GetByID obtiene un pedido por ID.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(order), nil
}

// UpdateStatus aplica una transición de estado. Una transición ilegal
// (saltarse preparación, revivir un cancelado) se rechaza.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if !order.CanTransition(in.Status) {
		return nil, domain.ErrInvalidTransition
	}
	now := time.Now()
	if err := uc.repo.UpdateStatus(ctx, id, in.Status, now); err != nil {
		return nil, err
	}
	order.Status = in.Status
	order.UpdatedAt = now
	return toOrderResponse(order), nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
			Image:    it.Image,
		})
	}
	return &dto.OrderResponse{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		Items:         items,
		Total:         o.Total,
		Status:        o.Status,
		DeliveryType:  o.DeliveryType,
		PaymentMethod: o.PaymentMethod,
		Address:       o.Address,
		Phone:         o.Phone,
		ScheduledTime: o.ScheduledTime,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
