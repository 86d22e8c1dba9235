package http

import (
	"github.com/gofiber/fiber/v2"

	appcfg "github.com/dumplinghouse/storefront-api/internal/application/siteconfig"
	"github.com/dumplinghouse/storefront-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store       *appcfg.Store
	Manager     *appcfg.Manager
	MenuUC      *usecase.MenuUseCase
	CategoryUC  *usecase.CategoryUseCase
	CheckoutUC  *usecase.CheckoutUseCase
	OrderUC     *usecase.OrderUseCase
	ReceiptUC   *usecase.ReceiptUseCase
	CustomerUC  *usecase.CustomerUseCase
	DashboardUC *usecase.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Sitio público (sin token)
	siteHandler := NewSiteHandler(deps.Store, deps.MenuUC, deps.CategoryUC)
	api.Get("/site", siteHandler.GetPage)

	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	api.Get("/categories", categoryHandler.List)

	orderHandler := NewOrderHandler(deps.CheckoutUC, deps.OrderUC, deps.ReceiptUC)
	api.Post("/orders", orderHandler.Checkout)

	// Panel de operador (requiere Bearer Token con rol seller)
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret), RequireRole(RoleSeller))

	// Editor del sitio (borrador, vista previa y publicación)
	siteConfigHandler := NewSiteConfigHandler(deps.Manager, deps.MenuUC, deps.CategoryUC)
	siteConfig := admin.Group("/site-config")
	siteConfig.Get("/draft", siteConfigHandler.GetDraft)
	siteConfig.Patch("/draft", siteConfigHandler.PatchDraft)
	siteConfig.Post("/draft/discard", siteConfigHandler.DiscardDraft)
	siteConfig.Get("/preview", siteConfigHandler.GetPreview)
	siteConfig.Post("/publish", siteConfigHandler.Publish)
	siteConfig.Get("/publish/status", siteConfigHandler.PublishStatus)

	// Menú (protegido)
	menuHandler := NewMenuHandler(deps.MenuUC)
	menu := admin.Group("/menu")
	menu.Post("/", menuHandler.Create)
	menu.Get("/", menuHandler.List)
	menu.Get("/:id", menuHandler.GetByID)
	menu.Put("/:id", menuHandler.Update)
	menu.Post("/:id/toggle", menuHandler.Toggle)
	menu.Delete("/:id", menuHandler.Delete)

	// Categorías (protegido)
	categories := admin.Group("/categories")
	categories.Post("/", categoryHandler.Create)
	categories.Delete("/:name", categoryHandler.Delete)

	// Pedidos (protegido)
	orders := admin.Group("/orders")
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)
	orders.Get("/:id/receipt", orderHandler.Receipt)

	// Clientes (protegido)
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers := admin.Group("/customers")
	customers.Get("/", customerHandler.List)
	customers.Patch("/:email/blocked", customerHandler.SetBlocked)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	admin.Get("/dashboard/summary", dashboardHandler.Summary)
}
