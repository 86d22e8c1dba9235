package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutLineRequest línea del carrito en el checkout. Solo referencia el
// plato por ID; precio y nombre se congelan del menú vivo en el servidor.
type CheckoutLineRequest struct {
	MenuItemID string `json:"menuItemId" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,min=1"`
}

// CheckoutRequest entrada del checkout público.
type CheckoutRequest struct {
	CustomerName  string                `json:"customerName" validate:"required,min=1,max=200"`
	Phone         string                `json:"phone"`
	DeliveryType  string                `json:"deliveryType" validate:"required,oneof=delivery pickup"`
	Address       string                `json:"address"`
	PaymentMethod string                `json:"paymentMethod"`
	ScheduledTime string                `json:"scheduledTime"`
	Lines         []CheckoutLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// OrderItemResponse línea congelada de un pedido.
type OrderItemResponse struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Image    string          `json:"image,omitempty"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID            string              `json:"id"`
	CustomerName  string              `json:"customerName"`
	Items         []OrderItemResponse `json:"items"`
	Total         decimal.Decimal     `json:"total"`
	Status        string              `json:"status"`
	DeliveryType  string              `json:"deliveryType"`
	PaymentMethod string              `json:"paymentMethod,omitempty"`
	Address       string              `json:"address,omitempty"`
	Phone         string              `json:"phone,omitempty"`
	ScheduledTime string              `json:"scheduledTime,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// CheckoutResponse resultado del checkout: el pedido creado más el enlace
// de WhatsApp prearmado con el resumen.
type CheckoutResponse struct {
	Order       OrderResponse `json:"order"`
	WhatsAppURL string        `json:"whatsappUrl"`
}

// OrderListResponse lista paginada de pedidos, más reciente primero.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// UpdateOrderStatusRequest cambio de estado de un pedido por el operador.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending preparing delivered cancelled"`
}
