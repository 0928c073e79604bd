// Package app es la fábrica de la aplicación: abre la persistencia, arma los casos de uso,
// ejecuta la carga inicial y expone el servidor HTTP. No hay estado global de paquete.
package app

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/erp-api/internal/application/auth"
	"github.com/jhoicas/erp-api/internal/application/bootstrap"
	"github.com/jhoicas/erp-api/internal/application/usecase"
	"github.com/jhoicas/erp-api/internal/domain/repository"
	httpRouter "github.com/jhoicas/erp-api/internal/interfaces/http"
	"github.com/jhoicas/erp-api/pkg/config"
	"github.com/jhoicas/erp-api/pkg/logger"
)

// App aplicación armada a partir de la configuración.
type App struct {
	cfg     *config.Config
	log     *logger.Logger
	backend *backend
	seeder  *bootstrap.Seeder
	status  *bootstrap.Status
	fiber   *fiber.App
}

// New abre la base de datos y construye repositorios, seeder, casos de uso y router.
// No ejecuta la carga inicial: eso lo hace Bootstrap.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	if log == nil {
		log = logger.Nop()
	}
	if _, known := config.ProfileFor(cfg.App.Env); !known {
		log.Warn().Str("env", cfg.App.Env).Msg("perfil desconocido; se usan los valores de development")
	}

	be, err := openBackend(ctx, cfg.DB, cfg.App.LogLevel, log)
	if err != nil {
		return nil, err
	}
	log.Info().Str("driver", be.driver).Msg("base de datos configurada")

	status := bootstrap.NewStatus()
	seeder := bootstrap.NewSeeder(be.store, bootstrap.Options{
		AdminPassword: cfg.Seed.AdminPassword,
		AdminLanguage: cfg.Seed.AdminLanguage,
	}, log, status)

	permissionSvc := usecase.NewPermissionService(be.roles)
	authUC := auth.NewAuthUseCase(be.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	fiberApp := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 10,
		IdleTimeout:           time.Second * 60,
		EnablePrintRoutes:     cfg.App.Debug,
		DisableStartupMessage: !cfg.App.Debug,
	})
	fiberApp.Use(recover.New())

	httpRouter.Router(fiberApp, httpRouter.RouterDeps{
		ServiceName:   cfg.App.Name,
		Status:        status,
		AuthUC:        authUC,
		RoleUC:        usecase.NewRoleUseCase(be.roles),
		AccountUC:     usecase.NewAccountUseCase(be.accounts),
		CompanyUC:     usecase.NewCompanyUseCase(be.company),
		WarehouseUC:   usecase.NewWarehouseUseCase(be.stores),
		PermissionSvc: permissionSvc,
		JWTSecret:     cfg.JWT.Secret,
	})

	return &App{
		cfg:     cfg,
		log:     log,
		backend: be,
		seeder:  seeder,
		status:  status,
		fiber:   fiberApp,
	}, nil
}

// Bootstrap ejecuta la carga inicial con la política configurada. Un error de carga queda
// registrado en el log y en la señal de readiness; la aplicación sigue arrancando.
func (a *App) Bootstrap(ctx context.Context) bootstrap.Result {
	if !a.cfg.Seed.Enabled {
		res := bootstrap.Result{Outcome: bootstrap.OutcomeDisabled}
		a.status.Record(res)
		a.log.Info().Msg("carga inicial desactivada (SEED_ON_STARTUP=false)")
		return res
	}
	policy, err := bootstrap.ParsePolicy(a.cfg.Seed.Policy)
	if err != nil {
		policy = bootstrap.PolicyAll
	}
	res, _ := a.seeder.Run(ctx, policy)
	return res
}

// InitDB crea el esquema y completa los datos que falten grupo por grupo (comando init-db).
func (a *App) InitDB(ctx context.Context) (bootstrap.Result, error) {
	return a.seeder.Run(ctx, bootstrap.PolicyEach)
}

// Ready informa si la última carga dejó la base utilizable.
func (a *App) Ready() bool { return a.status.Ready() }

// EnsureSchema crea las tablas que falten sin cargar datos.
func (a *App) EnsureSchema(ctx context.Context) error {
	return a.backend.store.EnsureSchema(ctx)
}

// Stats cuenta las filas de las tablas de la carga inicial.
func (a *App) Stats(ctx context.Context) (repository.Stats, error) {
	return a.backend.stats(ctx)
}

// Store devuelve el handle de persistencia (*gorm.DB o *pgxpool.Pool).
func (a *App) Store() any { return a.backend.handle }

// Fiber devuelve la aplicación HTTP.
func (a *App) Fiber() *fiber.App { return a.fiber }

// Listen bloquea sirviendo HTTP en la dirección configurada.
func (a *App) Listen() error {
	return a.fiber.Listen(a.cfg.HTTP.Addr())
}

// Shutdown detiene el servidor HTTP esperando las peticiones en curso.
func (a *App) Shutdown(ctx context.Context) error {
	return a.fiber.ShutdownWithContext(ctx)
}

// Close libera la conexión a la base de datos.
func (a *App) Close() {
	a.backend.close()
}
