package entity

import "time"

// User representa un usuario del sistema (pertenece a una Branch y tiene un Role).
type User struct {
	ID           string
	Username     string
	Email        string
	FullName     string
	PasswordHash string // bcrypt, nunca la contraseña en claro
	IsActive     bool
	IsAdmin      bool
	Language     string // etiqueta BCP 47, ej. "ar"
	BranchID     string
	RoleID       string
	RoleName     string // solo lectura, resuelto por el repositorio
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
