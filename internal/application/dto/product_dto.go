package dto

import "time"

// ProductCreationRequest entrada para crear un producto con eventos iniciales
// opcionales. El userId viene del path, nunca del body.
type ProductCreationRequest struct {
	Name     string                 `json:"name" validate:"required,min=1,max=100"`
	QRCode   string                 `json:"qrCode" validate:"omitempty,max=255"`
	Category string                 `json:"category" validate:"required,uuid"`
	Events   []EventCreationRequest `json:"events"`
}

// ProductResponse salida del agregado producto con sus eventos.
type ProductResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	QRCode    string           `json:"qrCode,omitempty"`
	Category  CategoryResponse `json:"category"`
	User      UserResponse     `json:"user"`
	Events    []EventResponse  `json:"events"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
