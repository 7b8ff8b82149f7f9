package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/asistec/taller-api/internal/application/analytics"
	"github.com/asistec/taller-api/internal/application/auth"
	"github.com/asistec/taller-api/internal/application/sales"
	"github.com/asistec/taller-api/internal/application/stock"
	"github.com/asistec/taller-api/internal/application/usecase"
	"github.com/asistec/taller-api/internal/application/workshop"
	"github.com/asistec/taller-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	ProductUC   *usecase.ProductUseCase
	ClientUC    *usecase.ClientUseCase
	ServiceUC   *usecase.ServiceUseCase
	StockUC     *stock.UseCase
	SalesUC     *sales.UseCase
	WorkshopUC  *workshop.UseCase
	DashboardUC *appanalytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público; logout y me tras el middleware)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (protegido; alta y toggle solo master/gerente)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", RequireRole(entity.RoleMaster, entity.RoleGerente), userHandler.Create)
	users.Get("/", userHandler.List)
	users.Patch("/:id/toggle", RequireRole(entity.RoleMaster, entity.RoleGerente), userHandler.ToggleActive)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Patch("/:id/toggle", productHandler.ToggleActive)

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Patch("/:id/toggle", clientHandler.ToggleActive)

	// Services (protegido, catálogo fijo solo lectura)
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	protected.Get("/services", serviceHandler.List)

	// Stock (protegido)
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Get("/", stockHandler.Summary)
	stockGroup.Post("/entries", stockHandler.RegisterEntry)
	stockGroup.Post("/removals", stockHandler.Remove)
	stockGroup.Get("/movements", stockHandler.Movements)

	// Sales (protegido)
	saleHandler := NewSaleHandler(deps.SalesUC)
	salesGroup := protected.Group("/sales")
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	serviceSales := protected.Group("/service-sales")
	serviceSales.Post("/", saleHandler.CreateServiceSale)
	serviceSales.Get("/", saleHandler.ListServiceSales)

	// Service orders (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.WorkshopUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Post("/:id/technician", orderHandler.AssignTechnician)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)
}
