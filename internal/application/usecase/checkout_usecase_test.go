package usecase_test

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dumplinghouse/storefront-api/internal/application/dto"
	appcfg "github.com/dumplinghouse/storefront-api/internal/application/siteconfig"
	"github.com/dumplinghouse/storefront-api/internal/application/usecase"
	"github.com/dumplinghouse/storefront-api/internal/domain"
	model "github.com/dumplinghouse/storefront-api/internal/domain/siteconfig"
	"github.com/dumplinghouse/storefront-api/pkg/logger"
)

type memConfigRepo struct {
	raw []byte
}

func (m *memConfigRepo) Get(_ context.Context) ([]byte, error) { return m.raw, nil }

func (m *memConfigRepo) Put(_ context.Context, _ model.SiteConfig) error { return nil }

func liveStore(t *testing.T, raw string) *appcfg.Store {
	t.Helper()
	store := appcfg.NewStore(&memConfigRepo{raw: []byte(raw)}, nil, logger.Nop(), time.Second)
	store.Initialize(context.Background())
	return store
}

func checkoutFixture(t *testing.T) (*usecase.CheckoutUseCase, *memOrderRepo, []string) {
	t.Helper()
	menuRepo := newMemMenuRepo()
	menuUC := usecase.NewMenuUseCase(menuRepo)

	gyoza, err := menuUC.Create(context.Background(), dto.CreateMenuItemRequest{
		Name: "Gyoza", Price: decimal.NewFromInt(120), Category: "Vapor",
	})
	require.NoError(t, err)
	baozi, err := menuUC.Create(context.Background(), dto.CreateMenuItemRequest{
		Name: "Baozi", Price: decimal.NewFromFloat(85.50), Category: "Vapor",
	})
	require.NoError(t, err)

	orders := newMemOrderRepo()
	store := liveStore(t, `{"contactPhone":"+52 644 198 9061"}`)
	return usecase.NewCheckoutUseCase(orders, menuRepo, store), orders, []string{gyoza.ID, baozi.ID}
}

func TestCheckout_CongelaLineasYCalculaElTotal(t *testing.T) {
	uc, orders, ids := checkoutFixture(t)

	resp, err := uc.Checkout(context.Background(), dto.CheckoutRequest{
		CustomerName: "Ana",
		DeliveryType: "pickup",
		Lines: []dto.CheckoutLineRequest{
			{MenuItemID: ids[0], Quantity: 2},
			{MenuItemID: ids[1], Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "pending", resp.Order.Status, "todo pedido nace pendiente")
	require.Len(t, resp.Order.Items, 2)
	assert.Equal(t, "Gyoza", resp.Order.Items[0].Name)
	assert.Equal(t, 2, resp.Order.Items[0].Quantity)
	assert.True(t, resp.Order.Total.Equal(decimal.NewFromFloat(325.50)),
		"total esperado 325.50, fue %s", resp.Order.Total)
	assert.Len(t, orders.seq, 1, "el pedido queda persistido")
}

func TestCheckout_CarritoVacio(t *testing.T) {
	uc, _, _ := checkoutFixture(t)

	_, err := uc.Checkout(context.Background(), dto.CheckoutRequest{
		CustomerName: "Ana",
		DeliveryType: "pickup",
	})

	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestCheckout_PlatoInexistenteRechazaElPedidoCompleto(t *testing.T) {
	uc, orders, ids := checkoutFixture(t)

	_, err := uc.Checkout(context.Background(), dto.CheckoutRequest{
		CustomerName: "Ana",
		DeliveryType: "pickup",
		Lines: []dto.CheckoutLineRequest{
			{MenuItemID: ids[0], Quantity: 1},
			{MenuItemID: "no-existe", Quantity: 1},
		},
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, orders.seq, "nada se persiste si una línea es inválida")
}

func TestCheckout_PlatoDeshabilitadoSeRechaza(t *testing.T) {
	menuRepo := newMemMenuRepo()
	menuUC := usecase.NewMenuUseCase(menuRepo)
	created, err := menuUC.Create(context.Background(), dto.CreateMenuItemRequest{
		Name: "Gyoza", Price: decimal.NewFromInt(120), Category: "Vapor",
	})
	require.NoError(t, err)
	_, err = menuUC.ToggleDisabled(context.Background(), created.ID)
	require.NoError(t, err)

	uc := usecase.NewCheckoutUseCase(newMemOrderRepo(), menuRepo, liveStore(t, `{}`))
	_, err = uc.Checkout(context.Background(), dto.CheckoutRequest{
		CustomerName: "Ana",
		DeliveryType: "pickup",
		Lines:        []dto.CheckoutLineRequest{{MenuItemID: created.ID, Quantity: 1}},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCheckout_EnlaceDeWhatsAppConResumen(t *testing.T) {
	uc, _, ids := checkoutFixture(t)

	resp, err := uc.Checkout(context.Background(), dto.CheckoutRequest{
		CustomerName: "Ana",
		DeliveryType: "delivery",
		Lines:        []dto.CheckoutLineRequest{{MenuItemID: ids[0], Quantity: 2}},
	})
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(resp.WhatsAppURL, "https://wa.me/526441989061?text="),
		"el teléfono del enlace solo lleva dígitos, fue %s", resp.WhatsAppURL)

	parsed, err := url.Parse(resp.WhatsAppURL)
	require.NoError(t, err)
	text := parsed.Query().Get("text")
	assert.Contains(t, text, "¡Hola! Quisiera hacer el siguiente pedido:")
	assert.Contains(t, text, "Gyoza x2 - $240.00")
	assert.Contains(t, text, "Total: $240.00")
	assert.Contains(t, text, "Gracias.")
}

func TestCheckout_PrecioDelServidorNoDelCliente(t *testing.T) {
	// El DTO de línea ni siquiera admite precio: el total sale siempre del
	// menú vivo. Este test fija esa decisión.
	uc, _, ids := checkoutFixture(t)

	resp, err := uc.Checkout(context.Background(), dto.CheckoutRequest{
		CustomerName: "Ana",
		DeliveryType: "pickup",
		Lines:        []dto.CheckoutLineRequest{{MenuItemID: ids[0], Quantity: 1}},
	})
	require.NoError(t, err)

	assert.True(t, resp.Order.Items[0].Price.Equal(decimal.NewFromInt(120)))
}
