// Package bootstrap deja utilizable una base de datos recién creada: crea el esquema y
// carga una sola vez la empresa, sucursal, catálogo de permisos, roles, usuario
// administrador, unidades, bodega y plan de cuentas.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/erp-api/internal/domain"
	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/rbac"
	"github.com/jhoicas/erp-api/internal/domain/repository"
	"github.com/jhoicas/erp-api/pkg/logger"
	"github.com/jhoicas/erp-api/pkg/password"
)

// Policy define la granularidad de la verificación de idempotencia.
type Policy string

const (
	// PolicyAll: si existe alguna empresa no se carga nada (arranque de la aplicación).
	PolicyAll Policy = "all"
	// PolicyEach: cada grupo se verifica por separado y solo se insertan los faltantes (init-db).
	PolicyEach Policy = "each"
)

// ParsePolicy convierte el valor de configuración en Policy.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyAll, PolicyEach:
		return Policy(s), nil
	}
	return "", fmt.Errorf("%w: política de carga %q", domain.ErrInvalidInput, s)
}

// Outcome resultado de una ejecución del Seeder.
type Outcome string

const (
	OutcomeSeeded   Outcome = "seeded"   // se cargó el conjunto completo
	OutcomePartial  Outcome = "partial"  // PolicyEach completó solo los grupos faltantes
	OutcomeSkipped  Outcome = "skipped"  // nada que hacer (o lo hizo otro proceso)
	OutcomeDisabled Outcome = "disabled" // carga desactivada por configuración
	OutcomeFailed   Outcome = "failed"
)

// Result resumen de una ejecución. Created cuenta filas insertadas por grupo
// y solo es distinto de vacío si la transacción hizo Commit.
type Result struct {
	Policy   Policy         `json:"policy,omitempty"`
	Outcome  Outcome        `json:"outcome"`
	Created  map[string]int `json:"created,omitempty"`
	Duration time.Duration  `json:"duration"`
	Error    string         `json:"error,omitempty"`
}

// Options parámetros del Seeder. Los campos func permiten fijar reloj, IDs y hash en tests.
// AdminLanguage vacío equivale a AdminLanguage por defecto ("ar").
type Options struct {
	AdminPassword string
	AdminLanguage string
	Now           func() time.Time
	NewID         func() string
	HashPassword  func(plain string) (string, error)
}

// Seeder ejecuta la carga inicial sobre un Store.
type Seeder struct {
	store  Store
	opts   Options
	log    *logger.Logger
	status *Status
}

// NewSeeder construye el Seeder. status puede ser nil.
func NewSeeder(store Store, opts Options, log *logger.Logger, status *Status) *Seeder {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.HashPassword == nil {
		opts.HashPassword = password.Hash
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Seeder{store: store, opts: opts, log: log.Named("bootstrap"), status: status}
}

// Run crea el esquema y carga los datos por defecto según la política.
// Todo el lote va en una transacción: ante error se hace Rollback y no queda nada a medias.
// Una violación de unicidad solo cuenta como omitida si una relectura confirma que el
// conjunto completo ya está en la base; si no, son datos previos en conflicto y la carga falla.
func (s *Seeder) Run(ctx context.Context, policy Policy) (Result, error) {
	start := s.opts.Now()
	res := Result{Policy: policy}

	err := s.run(ctx, policy, &res)
	res.Duration = time.Since(start)

	switch {
	case err == nil:
		s.logResult(res)
	case errors.Is(err, domain.ErrDuplicate) && s.alreadySeeded(ctx):
		res.Outcome = OutcomeSkipped
		res.Created = nil
		s.log.Warn().Err(err).Str("policy", string(policy)).
			Msg("datos iniciales cargados por otro proceso; se omite la carga")
		err = nil
	default:
		res.Outcome = OutcomeFailed
		res.Created = nil
		res.Error = err.Error()
		s.log.Error().Err(err).Str("policy", string(policy)).
			Msg("error inicializando la base de datos")
	}

	if s.status != nil {
		s.status.Record(res)
	}
	return res, err
}

// alreadySeeded relee en una transacción nueva si el conjunto completo de datos iniciales existe.
func (s *Seeder) alreadySeeded(ctx context.Context) bool {
	complete := false
	err := s.store.RunSeed(ctx, func(repo repository.SeedRepository) error {
		stats, err := repo.Stats(ctx)
		if err != nil {
			return err
		}
		admin, err := repo.FindUserByUsername(ctx, AdminUsername)
		if err != nil {
			return err
		}
		complete = admin != nil && isComplete(stats)
		return nil
	})
	return err == nil && complete
}

func isComplete(s repository.Stats) bool {
	return s.Companies > 0 && s.Branches > 0 &&
		s.Permissions >= len(rbac.Catalog()) && s.Roles >= len(rbac.RoleDefinitions()) &&
		s.Users > 0 && s.Units > 0 && s.Warehouses > 0 && s.Accounts > 0
}

func (s *Seeder) run(ctx context.Context, policy Policy, res *Result) error {
	if _, err := ParsePolicy(string(policy)); err != nil {
		return err
	}
	lang, err := ParseLanguage(s.opts.AdminLanguage)
	if err != nil {
		return err
	}
	if err := s.store.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	s.log.Debug().Msg("esquema verificado")

	return s.store.RunSeed(ctx, func(repo repository.SeedRepository) error {
		stats, err := repo.Stats(ctx)
		if err != nil {
			return fmt.Errorf("verificar datos existentes: %w", err)
		}
		if policy == PolicyAll && stats.Companies > 0 {
			res.Outcome = OutcomeSkipped
			return nil
		}

		created := map[string]int{}
		if err := s.seed(ctx, repo, stats, lang, created); err != nil {
			return err
		}
		res.Created = created
		res.Outcome = outcomeFor(created)
		return nil
	})
}

// seed inserta cada grupo que falte. Las referencias (empresa, sucursal, rol) se toman
// de la fila recién creada o de la existente, nunca de un ID supuesto.
func (s *Seeder) seed(ctx context.Context, repo repository.SeedRepository, stats repository.Stats, lang string, created map[string]int) error {
	d := defaults{now: s.opts.Now(), newID: s.opts.NewID, language: lang}

	company, err := s.ensureCompany(ctx, repo, d, stats, created)
	if err != nil {
		return err
	}
	branch, err := s.ensureBranch(ctx, repo, d, stats, company, created)
	if err != nil {
		return err
	}
	perms, err := s.ensurePermissions(ctx, repo, d, created)
	if err != nil {
		return err
	}
	adminRole, err := s.ensureRoles(ctx, repo, d, perms, created)
	if err != nil {
		return err
	}
	if err := s.ensureAdmin(ctx, repo, d, branch, adminRole, created); err != nil {
		return err
	}

	if stats.Units == 0 {
		units := d.units()
		if err := repo.CreateUnits(ctx, units); err != nil {
			return fmt.Errorf("crear unidades: %w", err)
		}
		created["units"] = len(units)
	}
	if stats.Warehouses == 0 {
		if err := repo.CreateWarehouse(ctx, d.warehouse(branch.ID)); err != nil {
			return fmt.Errorf("crear bodega: %w", err)
		}
		created["warehouses"] = 1
	}
	if stats.Accounts == 0 {
		accounts := d.accounts()
		if err := repo.CreateAccounts(ctx, accounts); err != nil {
			return fmt.Errorf("crear plan de cuentas: %w", err)
		}
		created["accounts"] = len(accounts)
	}
	return nil
}

func (s *Seeder) ensureCompany(ctx context.Context, repo repository.SeedRepository, d defaults, stats repository.Stats, created map[string]int) (*entity.Company, error) {
	if stats.Companies > 0 {
		c, err := repo.FirstCompany(ctx)
		if err != nil {
			return nil, fmt.Errorf("leer empresa: %w", err)
		}
		if c != nil {
			return c, nil
		}
	}
	c := d.company()
	if err := repo.CreateCompany(ctx, c); err != nil {
		return nil, fmt.Errorf("crear empresa: %w", err)
	}
	created["companies"] = 1
	return c, nil
}

func (s *Seeder) ensureBranch(ctx context.Context, repo repository.SeedRepository, d defaults, stats repository.Stats, company *entity.Company, created map[string]int) (*entity.Branch, error) {
	if stats.Branches > 0 {
		b, err := repo.FirstBranch(ctx)
		if err != nil {
			return nil, fmt.Errorf("leer sucursal: %w", err)
		}
		if b != nil {
			return b, nil
		}
	}
	b := d.branch(company.ID)
	if err := repo.CreateBranch(ctx, b); err != nil {
		return nil, fmt.Errorf("crear sucursal: %w", err)
	}
	created["branches"] = 1
	return b, nil
}

// ensurePermissions sincroniza el catálogo: agrega los nombres que falten y devuelve
// todos los permisos con ID (los existentes más los nuevos).
func (s *Seeder) ensurePermissions(ctx context.Context, repo repository.SeedRepository, d defaults, created map[string]int) ([]*entity.Permission, error) {
	existing, err := repo.ListPermissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("leer permisos: %w", err)
	}
	have := make(map[string]bool, len(existing))
	for _, p := range existing {
		have[p.Name] = true
	}

	var missing []*entity.Permission
	for _, e := range rbac.Catalog() {
		if have[e.Name] {
			continue
		}
		missing = append(missing, &entity.Permission{
			ID:        d.newID(),
			Name:      e.Name,
			NameAr:    e.NameAr,
			Module:    e.Module,
			CreatedAt: d.now,
		})
	}
	if len(missing) > 0 {
		if err := repo.CreatePermissions(ctx, missing); err != nil {
			return nil, fmt.Errorf("crear permisos: %w", err)
		}
		created["permissions"] = len(missing)
	}
	return append(existing, missing...), nil
}

// ensureRoles deja cada rol base con su conjunto derivado: crea los que falten y, en los
// existentes, enlaza los permisos del catálogo que aún no tengan. Devuelve el rol admin.
func (s *Seeder) ensureRoles(ctx context.Context, repo repository.SeedRepository, d defaults, perms []*entity.Permission, created map[string]int) (*entity.Role, error) {
	var admin *entity.Role
	for _, def := range rbac.RoleDefinitions() {
		want := def.Derive(perms)
		role, err := repo.FindRoleByName(ctx, def.Name)
		if err != nil {
			return nil, fmt.Errorf("leer rol %s: %w", def.Name, err)
		}

		if role == nil {
			role = &entity.Role{
				ID:          d.newID(),
				Name:        def.Name,
				NameAr:      def.NameAr,
				Description: def.Description,
				Permissions: want,
				CreatedAt:   d.now,
				UpdatedAt:   d.now,
			}
			if err := repo.CreateRole(ctx, role); err != nil {
				return nil, fmt.Errorf("crear rol %s: %w", def.Name, err)
			}
			created["roles"]++
		} else {
			var missing []*entity.Permission
			for _, p := range want {
				if !role.HasPermission(p.Name) {
					missing = append(missing, p)
				}
			}
			if len(missing) > 0 {
				if err := repo.AddRolePermissions(ctx, role.ID, missing); err != nil {
					return nil, fmt.Errorf("enlazar permisos del rol %s: %w", def.Name, err)
				}
				created[groupRoleLinks] += len(missing)
			}
		}

		if def.Name == entity.RoleAdmin {
			admin = role
		}
	}
	return admin, nil
}

func (s *Seeder) ensureAdmin(ctx context.Context, repo repository.SeedRepository, d defaults, branch *entity.Branch, role *entity.Role, created map[string]int) error {
	existing, err := repo.FindUserByUsername(ctx, AdminUsername)
	if err != nil {
		return fmt.Errorf("leer usuario admin: %w", err)
	}
	if existing != nil {
		return nil
	}
	hash, err := s.opts.HashPassword(s.opts.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash de contraseña admin: %w", err)
	}
	if err := repo.CreateUser(ctx, d.admin(branch.ID, role.ID, hash)); err != nil {
		return fmt.Errorf("crear usuario admin: %w", err)
	}
	created["users"] = 1
	return nil
}

// seedGroups grupos que componen el conjunto completo de datos iniciales.
var seedGroups = []string{"companies", "branches", "permissions", "roles", "users", "units", "warehouses", "accounts"}

// groupRoleLinks cuenta los enlaces rol-permiso agregados a roles existentes.
const groupRoleLinks = "role_permissions"

func outcomeFor(created map[string]int) Outcome {
	n := 0
	for _, g := range seedGroups {
		if created[g] > 0 {
			n++
		}
	}
	switch {
	case n == len(seedGroups):
		return OutcomeSeeded
	case n > 0 || created[groupRoleLinks] > 0:
		return OutcomePartial
	default:
		return OutcomeSkipped
	}
}

func (s *Seeder) logResult(res Result) {
	if res.Outcome == OutcomeSkipped {
		s.log.Info().Str("policy", string(res.Policy)).
			Msg("la base de datos ya tiene datos iniciales; no se carga nada")
		return
	}
	ev := s.log.Info().Str("policy", string(res.Policy)).Str("outcome", string(res.Outcome)).Dur("duration", res.Duration)
	for _, g := range append(seedGroups, groupRoleLinks) {
		if n := res.Created[g]; n > 0 {
			ev = ev.Int(g, n)
		}
	}
	ev.Msg("datos iniciales cargados")
}
