package config

import "strings"

// Perfiles de configuración conocidos.
const (
	ProfileDevelopment = "development"
	ProfileTesting     = "testing"
	ProfileProduction  = "production"
)

// Profile valores por defecto asociados a un perfil.
type Profile struct {
	Name        string
	Debug       bool
	LogLevel    string
	DatabaseURL string // vacío = construir desde DB_HOST, DB_PORT, etc.
}

var profiles = map[string]Profile{
	ProfileDevelopment: {
		Name:        ProfileDevelopment,
		Debug:       true,
		LogLevel:    "debug",
		DatabaseURL: "sqlite://instance/erp.db",
	},
	ProfileTesting: {
		Name:        ProfileTesting,
		LogLevel:    "warn",
		DatabaseURL: "sqlite://:memory:",
	},
	ProfileProduction: {
		Name:     ProfileProduction,
		LogLevel: "info",
	},
}

// SelectProfile devuelve el nombre del perfil leyendo APP_ENV y, si no está, ENVIRONMENT.
// Sin variable (o vacía) el perfil es development. Nunca falla.
func SelectProfile(lookup func(key string) (string, bool)) string {
	for _, key := range []string{"APP_ENV", "ENVIRONMENT"} {
		if v, ok := lookup(key); ok {
			if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
				return v
			}
		}
	}
	return ProfileDevelopment
}

// ProfileFor devuelve los valores por defecto del perfil. Para nombres desconocidos
// devuelve los de development con known=false.
func ProfileFor(name string) (p Profile, known bool) {
	p, known = profiles[name]
	if !known {
		p = profiles[ProfileDevelopment]
		p.Name = name
	}
	return p, known
}
