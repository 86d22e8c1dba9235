package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido.
const (
	OrderPending   = "pending"
	OrderPreparing = "preparing"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// Tipos de entrega.
const (
	DeliveryTypeDelivery = "delivery"
	DeliveryTypePickup   = "pickup"
)

// OrderItem es la línea de un pedido, congelada al momento de ordenar.
// No referencia al MenuItem vivo: ediciones posteriores del menú nunca
// alteran pedidos históricos.
type OrderItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Image    string          `json:"image"`
}

// Order representa un pedido. Nace en pending desde el checkout y solo
// muta por transiciones de estado del operador; nunca se borra en el flujo
// normal.
type Order struct {
	ID            string
	CustomerName  string
	Items         []OrderItem
	Total         decimal.Decimal
	Status        string
	DeliveryType  string // delivery | pickup
	PaymentMethod string
	Address       string
	Phone         string
	ScheduledTime string // hora opcional, ej. "14:30"
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CanTransition indica si el pedido admite pasar al estado destino.
// pending → preparing → delivered; pending y preparing pueden cancelarse.
// delivered y cancelled son terminales.
func (o *Order) CanTransition(to string) bool {
	switch o.Status {
	case OrderPending:
		return to == OrderPreparing || to == OrderCancelled
	case OrderPreparing:
		return to == OrderDelivered || to == OrderCancelled
	}
	return false
}
