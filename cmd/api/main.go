package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	appanalytics "github.com/asistec/taller-api/internal/application/analytics"
	"github.com/asistec/taller-api/internal/application/auth"
	"github.com/asistec/taller-api/internal/application/sales"
	"github.com/asistec/taller-api/internal/application/stock"
	"github.com/asistec/taller-api/internal/application/usecase"
	"github.com/asistec/taller-api/internal/application/workshop"
	"github.com/asistec/taller-api/internal/infrastructure/memory"
	httpRouter "github.com/asistec/taller-api/internal/interfaces/http"
	"github.com/asistec/taller-api/pkg/config"
	"github.com/asistec/taller-api/pkg/logger"
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

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	// Todo el estado vive en memoria: cada arranque re-siembra datos de ejemplo.
	stores := memory.NewSeededStores(cfg.Seed.Value)
	log.Info().Str("master_email", memory.MasterEmail).Msg("tiendas en memoria sembradas")

	session := auth.NewSession()
	authUC := auth.NewAuthUseCase(stores.Users, session, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(stores.Users)
	productUC := usecase.NewProductUseCase(stores.Products)
	clientUC := usecase.NewClientUseCase(stores.Clients)
	serviceUC := usecase.NewServiceUseCase(stores.Services)
	stockUC := stock.NewUseCase(stores.Stock, stores.Movements, stores.Products)
	salesUC := sales.NewUseCase(stores.Sales, stores.ServiceSales, stores.Clients, stores.Products, stores.Services)
	workshopUC := workshop.NewUseCase(stores.Orders, stores.Clients, stores.Users)
	dashboardUC := appanalytics.NewDashboardUseCase(
		stores.Clients, stores.Products, stores.Stock,
		stores.Sales, stores.ServiceSales, stores.Orders,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		ProductUC:   productUC,
		ClientUC:    clientUC,
		ServiceUC:   serviceUC,
		StockUC:     stockUC,
		SalesUC:     salesUC,
		WorkshopUC:  workshopUC,
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
