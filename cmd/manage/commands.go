package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jhoicas/erp-api/internal/app"
	"github.com/jhoicas/erp-api/internal/application/bootstrap"
	"github.com/jhoicas/erp-api/internal/domain/repository"
	"github.com/jhoicas/erp-api/pkg/config"
	"github.com/jhoicas/erp-api/pkg/logger"
)

// defaultTimeout límite de las operaciones de CLI contra la base de datos.
const defaultTimeout = 2 * time.Minute

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	headerColor  = color.New(color.FgBlue, color.Bold)
)

var noColor bool

// openApp carga la configuración y construye la aplicación.
func openApp(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	return app.New(ctx, cfg, log)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "manage",
		Short:         "Comandos de administración del ERP",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Desactivar colores en la salida")

	root.AddCommand(newServeCmd())
	root.AddCommand(newInitDBCmd())
	root.AddCommand(newShellCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Ejecuta la carga inicial y sirve la API HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			a.Bootstrap(ctx)
			return a.Serve(ctx)
		},
	}
}

func newInitDBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-db",
		Short: "Crea el esquema y completa los datos iniciales que falten",
		Long: `Crea las tablas si no existen y verifica por separado cada grupo de datos
iniciales (empresa, sucursal, permisos, roles, administrador, unidades, bodega,
plan de cuentas), insertando solo lo que falte. Se puede ejecutar varias veces.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), defaultTimeout)
			defer cancel()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.InitDB(ctx)
			if err != nil {
				errorColor.Fprintln(cmd.ErrOrStderr(), "✗ la inicialización falló")
				return err
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func newShellCmd() *cobra.Command {
	var outputJSON bool
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Muestra el contexto de introspección (db y entidades) con el conteo de filas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), defaultTimeout)
			defer cancel()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.EnsureSchema(ctx); err != nil {
				return fmt.Errorf("crear esquema: %w", err)
			}
			stats, err := a.Stats(ctx)
			if err != nil {
				return fmt.Errorf("leer conteos: %w", err)
			}
			bindings := bootstrap.ShellContext(a.Store())
			if outputJSON {
				return writeShellJSON(cmd.OutOrStdout(), bindings, stats)
			}
			printShell(cmd.OutOrStdout(), bindings, stats)
			return nil
		},
	}
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Salida en formato JSON")
	return cmd
}

func printResult(w io.Writer, res bootstrap.Result) {
	switch res.Outcome {
	case bootstrap.OutcomeSkipped:
		successColor.Fprintln(w, "✓ la base de datos ya estaba inicializada")
	default:
		successColor.Fprintf(w, "✓ base de datos inicializada (%s)\n", res.Outcome)
	}
	for _, g := range []string{"companies", "branches", "permissions", "roles", "users", "units", "warehouses", "accounts", "role_permissions"} {
		if n := res.Created[g]; n > 0 {
			fmt.Fprintf(w, "  %-12s +%d\n", g, n)
		}
	}
}

// countFor asocia cada binding de entidad con su conteo de filas.
func countFor(name string, s repository.Stats) (int, bool) {
	switch name {
	case "User":
		return s.Users, true
	case "Role":
		return s.Roles, true
	case "Permission":
		return s.Permissions, true
	case "Company":
		return s.Companies, true
	case "Branch":
		return s.Branches, true
	case "Unit":
		return s.Units, true
	case "Warehouse":
		return s.Warehouses, true
	case "Account":
		return s.Accounts, true
	}
	return 0, false
}

func printShell(w io.Writer, bindings []bootstrap.ShellBinding, stats repository.Stats) {
	headerColor.Fprintln(w, "Contexto de shell")
	for _, b := range bindings {
		if n, ok := countFor(b.Name, stats); ok {
			fmt.Fprintf(w, "  %-12s %T (%d filas)\n", b.Name, b.Value, n)
			continue
		}
		fmt.Fprintf(w, "  %-12s %T\n", b.Name, b.Value)
	}
}

type shellEntry struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Rows *int   `json:"rows,omitempty"`
}

func writeShellJSON(w io.Writer, bindings []bootstrap.ShellBinding, stats repository.Stats) error {
	out := make([]shellEntry, 0, len(bindings))
	for _, b := range bindings {
		e := shellEntry{Name: b.Name, Type: fmt.Sprintf("%T", b.Value)}
		if n, ok := countFor(b.Name, stats); ok {
			e.Rows = &n
		}
		out = append(out, e)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
