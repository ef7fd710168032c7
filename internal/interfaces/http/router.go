package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-flow/internal/application/auth"
	"github.com/jhoicas/ventas-flow/internal/application/billing"
	"github.com/jhoicas/ventas-flow/internal/application/sales"
	"github.com/jhoicas/ventas-flow/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OrderEntry   *sales.OrderEntryUseCase
	ConfirmOrder *sales.ConfirmOrderUseCase
	ManagerRef   *sales.ManagerReferenceUseCase
	SettingsUC   *sales.SettingsUseCase
	InvoicePDF   *billing.PDFUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login es público; el alta de usuarios queda para admin.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin), authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Orders (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderEntry, deps.ConfirmOrder, deps.ManagerRef)
	orders.Post("/", orderHandler.Create)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Post("/:id/confirm", orderHandler.Confirm)
	orders.Patch("/:id/manager-reference", orderHandler.SetManagerReference)

	// Settings (protegido, solo admin)
	settings := protected.Group("/settings", RequireRole(entity.RoleAdmin))
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/order-limit", settingsHandler.GetOrderLimit)
	settings.Put("/order-limit", settingsHandler.SetOrderLimit)

	// Invoices (protegido)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoicePDF)
	invoices.Get("/:id/pdf", invoiceHandler.GetPDF)
}
