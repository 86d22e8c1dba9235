package usecase

import (
	"context"
	"fmt"

	appcfg "github.com/dumplinghouse/storefront-api/internal/application/siteconfig"
	"github.com/dumplinghouse/storefront-api/internal/domain"
	"github.com/dumplinghouse/storefront-api/internal/domain/entity"
	"github.com/dumplinghouse/storefront-api/internal/domain/repository"
	model "github.com/dumplinghouse/storefront-api/internal/domain/siteconfig"
)

// ReceiptGenerator puerto hacia el generador de comprobantes PDF.
type ReceiptGenerator interface {
	GenerateOrderReceipt(ctx context.Context, order *entity.Order, site model.SiteConfig) ([]byte, error)
}

// ReceiptUseCase arma el comprobante de un pedido con la marca del sitio
// publicado.
type ReceiptUseCase struct {
	orders repository.OrderRepository
	gen    ReceiptGenerator
	store  *appcfg.Store
}

func NewReceiptUseCase(orders repository.OrderRepository, gen ReceiptGenerator, store *appcfg.Store) *ReceiptUseCase {
	return &ReceiptUseCase{orders: orders, gen: gen, store: store}
}

// OrderReceipt genera el PDF del pedido indicado.
func (uc *ReceiptUseCase) OrderReceipt(ctx context.Context, id string) ([]byte, error) {
	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener pedido: %w", err)
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return uc.gen.GenerateOrderReceipt(ctx, order, uc.store.Live())
}
