package dto

import "time"

// RegisterRequest entrada para registro (password en texto, se hashea en el use case).
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=8"`
	Email    string `json:"email" validate:"required,email"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateUserRequest actualización explícita de role/email (la identidad es inmutable).
type UpdateUserRequest struct {
	Role  *string `json:"role" validate:"omitempty,oneof=user admin"`
	Email *string `json:"email" validate:"omitempty,email"`
}
