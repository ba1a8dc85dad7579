package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cerveceria-api/internal/application/access"
	"github.com/tu-usuario/cerveceria-api/internal/application/auth"
	"github.com/tu-usuario/cerveceria-api/internal/application/reports"
	"github.com/tu-usuario/cerveceria-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	SalesUC        *usecase.SalesUseCase
	PurchasesUC    *usecase.PurchasesUseCase
	BarrelsUC      *usecase.BarrelsUseCase
	LotsUC         *usecase.LotsUseCase
	ContractsUC    *usecase.ContractsUseCase
	AvailabilityUC *usecase.AvailabilityUseCase
	DirectoryUC    *usecase.DirectoryUseCase
	ReportsUC      *reports.ReportUseCase
	Policy         access.Policy
	JWTSecret      string
}

// Router registra las rutas de la API. Toda ruta de recurso pasa por
// AuthMiddleware (sesión) y RequireResource (política rol → recurso).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público; logout y me requieren sesión)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Dashboard: navegación según roles
	dashboardHandler := NewDashboardHandler(deps.Policy)
	protected.Get("/dashboard",
		RequireResource(deps.Policy, access.ResourceDashboard),
		dashboardHandler.Navigation)

	// Ventas (admin y vendedor; el alcance acota por vendedor aguas abajo)
	salesHandler := NewSalesHandler(deps.SalesUC)
	protected.Get("/ventas",
		RequireResource(deps.Policy, access.ResourceVentas),
		salesHandler.List)

	// Compras (solo admin)
	purchasesHandler := NewPurchasesHandler(deps.PurchasesUC)
	protected.Get("/compras",
		RequireResource(deps.Policy, access.ResourceCompras),
		purchasesHandler.List)

	// Barriles (todos los roles)
	barrelsHandler := NewBarrelsHandler(deps.BarrelsUC)
	barriles := protected.Group("/barriles", RequireResource(deps.Policy, access.ResourceBarriles))
	barriles.Get("/", barrelsHandler.List)
	barriles.Post("/", barrelsHandler.Create)

	// Lotes (todos los roles)
	lotsHandler := NewLotsHandler(deps.LotsUC)
	protected.Get("/lotes/:id",
		RequireResource(deps.Policy, access.ResourceLote),
		lotsHandler.GetByID)

	// Contratos (todos los roles; el alcance acota por RUT aguas abajo)
	contractsHandler := NewContractsHandler(deps.ContractsUC)
	protected.Get("/contratos",
		RequireResource(deps.Policy, access.ResourceContrato),
		contractsHandler.List)

	// Estado de cervezas (todos los roles)
	availabilityHandler := NewAvailabilityHandler(deps.AvailabilityUC)
	protected.Get("/estado-cerveza",
		RequireResource(deps.Policy, access.ResourceEstadoCerveza),
		availabilityHandler.List)

	// Directorios para los selectores de filtros de informes
	directoryHandler := NewDirectoryHandler(deps.DirectoryUC)
	protected.Get("/directorio/empleados",
		RequireResource(deps.Policy, access.ResourceInformeVentas),
		directoryHandler.Employees)
	protected.Get("/directorio/proveedores",
		RequireResource(deps.Policy, access.ResourceInformeCompras),
		directoryHandler.Suppliers)

	// Informes PDF
	reportsHandler := NewReportsHandler(deps.ReportsUC)
	protected.Get("/informes/ventas",
		RequireResource(deps.Policy, access.ResourceInformeVentas),
		reportsHandler.SalesPDF)
	protected.Get("/informes/compras",
		RequireResource(deps.Policy, access.ResourceInformeCompras),
		reportsHandler.PurchasesPDF)
}
