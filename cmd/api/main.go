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
	"github.com/tu-usuario/cerveceria-api/internal/application/access"
	"github.com/tu-usuario/cerveceria-api/internal/application/auth"
	"github.com/tu-usuario/cerveceria-api/internal/application/reports"
	"github.com/tu-usuario/cerveceria-api/internal/application/usecase"
	"github.com/tu-usuario/cerveceria-api/internal/domain/repository"
	"github.com/tu-usuario/cerveceria-api/internal/infrastructure/memory"
	infrapdf "github.com/tu-usuario/cerveceria-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/cerveceria-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/cerveceria-api/internal/interfaces/http"
	"github.com/tu-usuario/cerveceria-api/pkg/config"
	"github.com/tu-usuario/cerveceria-api/pkg/logger"
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
	latency := cfg.Mock.Latency()

	// Tablas mock en memoria (el origen de datos por defecto)
	directory, err := memory.NewUserDirectory(latency)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar directorio de usuarios")
	}
	saleRepo := memory.NewSaleRepository(latency)
	purchaseRepo := memory.NewPurchaseRepository(latency)
	barrelRepo := memory.NewBarrelRepository(latency)
	lotRepo := memory.NewLotRepository(latency)
	contractRepo := memory.NewContractRepository(latency)
	employeeRepo := memory.NewEmployeeRepository(latency)
	supplierRepo := memory.NewSupplierRepository(latency)

	// Alta de barriles: contra la tabla `barril` del backend gestionado si hay
	// DATABASE_URL; si no, contra la tabla mock.
	var barrelCreator repository.BarrelCreator = barrelRepo
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		barrelCreator = postgres.NewBarrelRepository(pool)
		log.Info().Msg("altas de barriles contra PostgreSQL")
	} else {
		log.Info().Msg("sin DATABASE_URL: altas de barriles en memoria")
	}

	authUC := auth.NewAuthUseCase(directory, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	salesUC := usecase.NewSalesUseCase(saleRepo)
	purchasesUC := usecase.NewPurchasesUseCase(purchaseRepo)
	barrelsUC := usecase.NewBarrelsUseCase(barrelRepo, barrelCreator)
	lotsUC := usecase.NewLotsUseCase(lotRepo, barrelRepo)
	contractsUC := usecase.NewContractsUseCase(contractRepo)
	availabilityUC := usecase.NewAvailabilityUseCase(barrelRepo)
	directoryUC := usecase.NewDirectoryUseCase(employeeRepo, supplierRepo)
	reportsUC := reports.NewReportUseCase(saleRepo, purchaseRepo, infrapdf.NewMarotoReportGenerator())

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
		Title:    "Cervecería Ops API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		SalesUC:        salesUC,
		PurchasesUC:    purchasesUC,
		BarrelsUC:      barrelsUC,
		LotsUC:         lotsUC,
		ContractsUC:    contractsUC,
		AvailabilityUC: availabilityUC,
		DirectoryUC:    directoryUC,
		ReportsUC:      reportsUC,
		Policy:         access.DefaultPolicy(),
		JWTSecret:      cfg.JWT.Secret,
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
