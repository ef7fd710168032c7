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

	"github.com/jhoicas/ventas-flow/internal/application/auth"
	appbilling "github.com/jhoicas/ventas-flow/internal/application/billing"
	"github.com/jhoicas/ventas-flow/internal/application/sales"
	appstock "github.com/jhoicas/ventas-flow/internal/application/stock"
	infrapdf "github.com/jhoicas/ventas-flow/internal/infrastructure/pdf"
	"github.com/jhoicas/ventas-flow/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/ventas-flow/internal/interfaces/http"
	"github.com/jhoicas/ventas-flow/pkg/config"
	"github.com/jhoicas/ventas-flow/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
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

	orderRepo := postgres.NewOrderRepository(pool)
	deliveryRepo := postgres.NewDeliveryRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	journalRepo := postgres.NewJournalRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	partnerRepo := postgres.NewPartnerRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	configParamRepo := postgres.NewConfigParamRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Servicios base del workflow: orden, despacho y contabilidad.
	orderSvc := sales.NewBaseOrderService(orderRepo, txRunner)
	pickingSvc := appstock.NewPickingService(deliveryRepo, txRunner)
	accountingSvc := appbilling.NewAccountingService(invoiceRepo, paymentRepo, journalRepo)

	workflow := sales.NewAutoWorkflow(
		orderSvc, pickingSvc, accountingSvc,
		warehouseRepo, partnerRepo,
		nil, // política de lotes default: grupo completo
		log,
	)
	limitGuard := sales.NewLimitGuard(configParamRepo)
	confirmUC := sales.NewConfirmOrderUseCase(orderRepo, userRepo, limitGuard, orderSvc, workflow, log)
	orderEntryUC := sales.NewOrderEntryUseCase(orderRepo, partnerRepo, warehouseRepo)
	managerRefUC := sales.NewManagerReferenceUseCase(orderRepo, userRepo)
	settingsUC := sales.NewSettingsUseCase(configParamRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	invoicePDFUC := appbilling.NewPDFUseCase(invoiceRepo, partnerRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Ventas Flow API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		OrderEntry:   orderEntryUC,
		ConfirmOrder: confirmUC,
		ManagerRef:   managerRefUC,
		SettingsUC:   settingsUC,
		InvoicePDF:   invoicePDFUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
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
