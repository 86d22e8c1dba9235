package usecase

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dumplinghouse/storefront-api/internal/application/dto"
	appcfg "github.com/dumplinghouse/storefront-api/internal/application/siteconfig"
	"github.com/dumplinghouse/storefront-api/internal/domain"
	"github.com/dumplinghouse/storefront-api/internal/domain/entity"
	"github.com/dumplinghouse/storefront-api/internal/domain/repository"
)

// CheckoutUseCase convierte un carrito en un pedido persistido. Los
// precios y nombres se congelan del menú vivo en el servidor: el cliente
// solo manda IDs y cantidades, nunca precios.
type CheckoutUseCase struct {
	orders repository.OrderRepository
	menu   repository.MenuItemRepository
	store  *appcfg.Store
}

// NewCheckoutUseCase construye el caso de uso.
func NewCheckoutUseCase(orders repository.OrderRepository, menu repository.MenuItemRepository, store *appcfg.Store) *CheckoutUseCase {
	return &CheckoutUseCase{orders: orders, menu: menu, store: store}
}

// Checkout crea el pedido en pending y arma el enlace de WhatsApp con el
// resumen. Un carrito vacío, un plato inexistente o uno deshabilitado
// rechazan el pedido completo.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, in dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if len(in.Lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	items := make([]entity.OrderItem, 0, len(in.Lines))
	total := decimal.Zero
	for _, line := range in.Lines {
		if line.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		menuItem, err := uc.menu.GetByID(ctx, line.MenuItemID)
		if err != nil {
			return nil, err
		}
		if menuItem == nil {
			return nil, domain.ErrNotFound
		}
		if menuItem.Disabled {
			return nil, domain.ErrInvalidInput
		}
		items = append(items, entity.OrderItem{
			Name:     menuItem.Name,
			Price:    menuItem.Price,
			Quantity: line.Quantity,
			Image:    menuItem.Image,
		})
		total = total.Add(menuItem.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	now := time.Now()
	order := &entity.Order{
		ID:            uuid.New().String(),
		CustomerName:  in.CustomerName,
		Items:         items,
		Total:         total,
		Status:        entity.OrderPending,
		DeliveryType:  in.DeliveryType,
		PaymentMethod: in.PaymentMethod,
		Address:       in.Address,
		Phone:         in.Phone,
		ScheduledTime: in.ScheduledTime,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	return &dto.CheckoutResponse{
		Order:       *toOrderResponse(order),
		WhatsAppURL: uc.whatsAppURL(order),
	}, nil
}

// whatsAppURL arma el enlace wa.me con el resumen del pedido hacia el
// teléfono de contacto del config vivo.
func (uc *CheckoutUseCase) whatsAppURL(order *entity.Order) string {
	var b strings.Builder
	b.WriteString("¡Hola! Quisiera hacer el siguiente pedido:\n\n")
	for _, it := range order.Items {
		lineTotal := it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		b.WriteString(it.Name)
		b.WriteString(" x")
		b.WriteString(decimal.NewFromInt(int64(it.Quantity)).String())
		b.WriteString(" - $")
		b.WriteString(lineTotal.StringFixed(2))
		b.WriteString("\n")
	}
	b.WriteString("\nTotal: $")
	b.WriteString(order.Total.StringFixed(2))
	b.WriteString("\n\nGracias.")

	phone := digitsOnly(uc.store.Live().ContactPhone)
	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(b.String())
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
