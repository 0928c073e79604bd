package config

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App  AppConfig
	DB   DBConfig
	JWT  JWTConfig
	HTTP HTTPConfig
	Seed SeedConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // perfil seleccionado: development, testing, production
	Name     string
	Debug    bool
	LogLevel string
}

// DBConfig configuración de la base de datos.
// Si DatabaseURL no está vacío, se usa como connection string completo.
// Acepta postgres://... o sqlite://ruta/al/archivo.db (archivo local).
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int // tamaño máximo del pool de PostgreSQL
}

// Drivers soportados por la fábrica de la aplicación.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Driver deduce el motor a partir del esquema de DatabaseURL.
func (c DBConfig) Driver() string {
	u := strings.ToLower(c.DatabaseURL)
	if strings.HasPrefix(u, "sqlite:") || strings.HasPrefix(u, "file:") {
		return DriverSQLite
	}
	return DriverPostgres
}

// SQLitePath devuelve la ruta del archivo SQLite ("sqlite:///abs/erp.db" -> "/abs/erp.db",
// "sqlite://instance/erp.db" -> "instance/erp.db"). ":memory:" se conserva tal cual.
func (c DBConfig) SQLitePath() string {
	raw := c.DatabaseURL
	for _, prefix := range []string{"sqlite://", "sqlite:", "file:"} {
		if len(raw) >= len(prefix) && strings.EqualFold(raw[:len(prefix)], prefix) {
			raw = raw[len(prefix):]
			break
		}
	}
	if i := strings.Index(raw, "?"); i >= 0 {
		raw = raw[:i]
	}
	if raw == "" || raw == ":memory:" {
		return ":memory:"
	}
	return filepath.Clean(raw)
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SeedConfig controla la carga de datos iniciales al arrancar.
type SeedConfig struct {
	Enabled       bool
	Policy        string // "all" (una sola verificación) o "each" (por entidad)
	AdminPassword string
	AdminLanguage string // etiqueta BCP 47, se valida al cargar los datos
}

// Políticas de idempotencia aceptadas en SEED_POLICY.
const (
	SeedPolicyAll  = "all"
	SeedPolicyEach = "each"
)

// devJWTSecret solo se usa fuera de producción cuando JWT_SECRET no está definido.
const devJWTSecret = "dev-only-jwt-secret-change-me"

// ErrMissingJWTSecret se devuelve en producción si JWT_SECRET está vacío.
var ErrMissingJWTSecret = errors.New("config: JWT_SECRET es obligatorio en producción")

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. El perfil se toma de APP_ENV (o ENVIRONMENT) y aporta los valores por defecto.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	env := SelectProfile(func(key string) (string, bool) {
		if v.IsSet(key) {
			return v.GetString(key), true
		}
		return "", false
	})
	profile, _ := ProfileFor(env)

	cfg := &Config{
		App: AppConfig{
			Env:      env,
			Name:     getString(v, "APP_NAME", "erp-api"),
			Debug:    getBool(v, "APP_DEBUG", profile.Debug),
			LogLevel: getString(v, "LOG_LEVEL", profile.LogLevel),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", profile.DatabaseURL),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "erp"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    getInt(v, "DB_MAX_CONNS", 5),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "erp-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 5000),
		},
		Seed: SeedConfig{
			Enabled:       getBool(v, "SEED_ON_STARTUP", true),
			Policy:        strings.ToLower(getString(v, "SEED_POLICY", SeedPolicyAll)),
			AdminPassword: getString(v, "ADMIN_PASSWORD", "admin123"),
			AdminLanguage: getString(v, "ADMIN_LANGUAGE", "ar"),
		},
	}

	if cfg.JWT.Secret == "" {
		if env == ProfileProduction {
			return nil, ErrMissingJWTSecret
		}
		cfg.JWT.Secret = devJWTSecret
	}
	if cfg.Seed.Policy != SeedPolicyAll && cfg.Seed.Policy != SeedPolicyEach {
		return nil, fmt.Errorf("config: SEED_POLICY inválido %q (use %q o %q)", cfg.Seed.Policy, SeedPolicyAll, SeedPolicyEach)
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
