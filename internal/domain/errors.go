package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrProductNotFound    = errors.New("producto no encontrado")
	ErrEventNotFound      = errors.New("evento no encontrado")
	ErrCategoryNotFound   = errors.New("categoría no encontrada")
	ErrDuplicateUser      = errors.New("el username ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// ErrDataIntegrity: una relación obligatoria (category/user de un producto)
	// no resuelve. Es un error de integridad de datos, no un "not found" de
	// negocio: se loggea en error y sale como 500 genérico.
	ErrDataIntegrity = errors.New("integridad de datos violada")
)
