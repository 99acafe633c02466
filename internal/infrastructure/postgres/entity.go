package postgres

import "time"

// Entidades de persistencia: el reflejo fila-a-fila de las tablas, separado
// de los agregados de dominio. La traducción entre ambos mundos vive en
// mapper.go y es siempre explícita.

// UserEntity fila de la tabla users.
type UserEntity struct {
	ID           string
	Name         string
	Username     string
	PasswordHash string
	Role         string
	Email        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CategoryEntity fila de la tabla categories.
type CategoryEntity struct {
	ID   string
	Name string
}

// ProductEntity fila de la tabla products más sus relaciones cargadas.
// Category y User se cargan por JOIN; Events con una consulta aparte.
type ProductEntity struct {
	ID         string
	Name       string
	QRCode     string
	CategoryID string
	UserID     string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Category *CategoryEntity
	User     *UserEntity
	Events   []*EventEntity
}

// EventEntity fila de la tabla events. ProductID es la columna FK; Product
// es el puntero al padre que se reconstruye solo transitoriamente durante el
// persist (para que la sincronización de la colección conozca a su dueño) y
// se descarta después. Nunca se usa para re-serializar el padre.
type EventEntity struct {
	ID              string
	Title           string
	Type            string
	DurationValue   *int
	DurationUnit    string
	IsRecurring     bool
	RecurrenceUnit  string
	StartDate       time.Time
	EndDate         *time.Time
	ProductID       string
	IsAllDay        bool
	BackgroundColor string
	BorderColor     string
	TextColor       string

	Product *ProductEntity
}
