package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// User representa un usuario de la aplicación (auth con bcrypt + JWT).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | editor
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
