package model

import "time"

// Roles válidos para User. El registro siempre asigna RoleUser.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User representa un usuario del sistema. Los campos de identidad (ID,
// Username) son inmutables tras el registro; Role y Email se cambian solo
// vía actualización explícita. Posee cero o más productos (por referencia).
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // bcrypt hash, nunca sale en respuestas
	Role         string    `json:"role"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
