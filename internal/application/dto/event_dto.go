package dto

import "time"

// EventCreationRequest entrada para crear un evento. Date vacío = hoy.
// ProductID se ignora cuando el evento viene anidado en la creación de un
// producto (se usa el del producto padre).
type EventCreationRequest struct {
	Name            string     `json:"name" validate:"required,min=1,max=100"`
	Type            string     `json:"type" validate:"required,oneof=duration single"`
	DurationValue   *int       `json:"durationValue" validate:"omitempty,min=1"`
	DurationUnit    string     `json:"durationUnit" validate:"omitempty,oneof=days weeks months years"`
	IsRecurring     bool       `json:"isRecurring"`
	RecurrenceUnit  string     `json:"recurrenceUnit" validate:"omitempty,oneof=weeks months years"`
	Date            *time.Time `json:"date"`
	IsAllDay        bool       `json:"isAllDay"`
	ProductID       string     `json:"productId"`
	BackgroundColor string     `json:"backgroundColor"`
	BorderColor     string     `json:"borderColor"`
	TextColor       string     `json:"textColor"`
}

// UpdateEventRequest actualización parcial (PATCH): solo los campos presentes
// se aplican; el resto conserva su valor. El productId del evento nunca se
// altera por esta vía aunque el payload lo traiga.
type UpdateEventRequest struct {
	Title           *string    `json:"title"`
	Type            *string    `json:"type" validate:"omitempty,oneof=duration single"`
	DurationValue   *int       `json:"durationValue" validate:"omitempty,min=1"`
	DurationUnit    *string    `json:"durationUnit" validate:"omitempty,oneof=days weeks months years"`
	IsRecurring     *bool      `json:"isRecurring"`
	RecurrenceUnit  *string    `json:"recurrenceUnit" validate:"omitempty,oneof=weeks months years"`
	StartDate       *time.Time `json:"startDate"`
	IsAllDay        *bool      `json:"isAllDay"`
	BackgroundColor *string    `json:"backgroundColor"`
	BorderColor     *string    `json:"borderColor"`
	TextColor       *string    `json:"textColor"`
}

// EventResponse salida de un evento. La referencia al producto es solo su id.
type EventResponse struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Type            string     `json:"type"`
	DurationValue   *int       `json:"durationValue,omitempty"`
	DurationUnit    string     `json:"durationUnit,omitempty"`
	IsRecurring     bool       `json:"isRecurring"`
	RecurrenceUnit  string     `json:"recurrenceUnit,omitempty"`
	StartDate       time.Time  `json:"startDate"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	ProductID       string     `json:"productId"`
	IsAllDay        bool       `json:"isAllDay"`
	BackgroundColor string     `json:"backgroundColor,omitempty"`
	BorderColor     string     `json:"borderColor,omitempty"`
	TextColor       string     `json:"textColor,omitempty"`
}
