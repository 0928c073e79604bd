package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/erp-api/internal/application/auth"
	"github.com/jhoicas/erp-api/internal/application/bootstrap"
	"github.com/jhoicas/erp-api/internal/application/usecase"
)

// Permisos exigidos por las rutas de consulta.
const (
	PermSettingsView   = "settings.view"
	PermAccountingView = "accounting.view"
	PermWarehousesView = "inventory.warehouses.view"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ServiceName   string
	Status        *bootstrap.Status
	AuthUC        *auth.AuthUseCase
	RoleUC        *usecase.RoleUseCase
	AccountUC     *usecase.AccountUseCase
	CompanyUC     *usecase.CompanyUseCase
	WarehouseUC   *usecase.WarehouseUseCase
	PermissionSvc *usecase.PermissionService
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	health := NewHealthHandler(deps.ServiceName, deps.Status)
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	roleHandler := NewRoleHandler(deps.RoleUC)
	protected.Get("/roles", RequirePermission(PermSettingsView, deps.PermissionSvc), roleHandler.List)

	accountHandler := NewAccountHandler(deps.AccountUC)
	protected.Get("/accounts", RequirePermission(PermAccountingView, deps.PermissionSvc), accountHandler.List)

	companyHandler := NewCompanyHandler(deps.CompanyUC)
	protected.Get("/company", RequirePermission(PermSettingsView, deps.PermissionSvc), companyHandler.Get)

	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	protected.Get("/warehouses", RequirePermission(PermWarehousesView, deps.PermissionSvc), warehouseHandler.List)
}
