package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/afero"

	appcfg "github.com/dumplinghouse/storefront-api/internal/application/siteconfig"
	"github.com/dumplinghouse/storefront-api/internal/application/usecase"
	"github.com/dumplinghouse/storefront-api/internal/infrastructure/mirror"
	infrapdf "github.com/dumplinghouse/storefront-api/internal/infrastructure/pdf"
	"github.com/dumplinghouse/storefront-api/internal/infrastructure/postgres"
	httpRouter "github.com/dumplinghouse/storefront-api/internal/interfaces/http"
	"github.com/dumplinghouse/storefront-api/pkg/config"
	"github.com/dumplinghouse/storefront-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	menuRepo := postgres.NewMenuItemRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	siteConfigRepo := postgres.NewSiteConfigRepository(pool)

	// Espejo local del config publicado (solo informativo; los fallos se
	// registran pero no invalidan la publicación).
	var siteMirror appcfg.Mirror
	if cfg.Site.MirrorPath != "" {
		siteMirror = mirror.New(afero.NewOsFs(), cfg.Site.MirrorPath)
	}

	// El store carga el config publicado antes de aceptar tráfico; si la
	// carga falla el sitio sirve los valores por defecto.
	store := appcfg.NewStore(siteConfigRepo, siteMirror, log,
		time.Duration(cfg.Site.PublishTimeoutSec)*time.Second)
	store.Initialize(ctx)

	manager := appcfg.NewManager(store,
		time.Duration(cfg.Site.StatusWindowSec)*time.Second, nil)

	menuUC := usecase.NewMenuUseCase(menuRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, menuRepo)
	checkoutUC := usecase.NewCheckoutUseCase(orderRepo, menuRepo, store)
	orderUC := usecase.NewOrderUseCase(orderRepo)
	receiptUC := usecase.NewReceiptUseCase(orderRepo, infrapdf.NewReceiptGenerator(), store)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	dashboardUC := usecase.NewDashboardUseCase(analyticsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Storefront API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:       store,
		Manager:     manager,
		MenuUC:      menuUC,
		CategoryUC:  categoryUC,
		CheckoutUC:  checkoutUC,
		OrderUC:     orderUC,
		ReceiptUC:   receiptUC,
		CustomerUC:  customerUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
