package repository

import (
	"context"
	"time"

	"github.com/dumplinghouse/storefront-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order.
// No hay Delete: los pedidos nunca se borran en el flujo normal.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error
}

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	List(ctx context.Context) ([]*entity.Customer, error)
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)
	SetBlocked(ctx context.Context, email string, blocked bool, updatedAt time.Time) error
}
