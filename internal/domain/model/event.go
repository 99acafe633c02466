package model

import "time"

// Tipos de evento.
const (
	EventTypeDuration = "duration"
	EventTypeSingle   = "single"
)

// Event representa un evento programado de un producto. La referencia al
// producto es débil (solo ProductID, nunca un puntero al Product): eso rompe
// el ciclo Product↔Event en la serialización y en el recorrido del grafo.
// Un evento no puede sobrevivir a su producto.
type Event struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Type            string     `json:"type"` // duration | single
	DurationValue   *int       `json:"durationValue,omitempty"`
	DurationUnit    string     `json:"durationUnit,omitempty"` // days, weeks, months, years
	IsRecurring     bool       `json:"isRecurring"`
	RecurrenceUnit  string     `json:"recurrenceUnit,omitempty"` // weeks, months, years
	StartDate       time.Time  `json:"startDate"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	ProductID       string     `json:"productId"`
	IsAllDay        bool       `json:"isAllDay"`
	BackgroundColor string     `json:"backgroundColor,omitempty"`
	BorderColor     string     `json:"borderColor,omitempty"`
	TextColor       string     `json:"textColor,omitempty"`
}
