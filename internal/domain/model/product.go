package model

import "time"

// Product representa un recurso rastreado con su calendario de eventos.
// El producto posee sus eventos en exclusiva (composición): borrar el
// producto borra los eventos, y quitar un evento de la lista lo elimina
// al persistir (orphan removal explícito en la capa postgres).
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	QRCode    string    `json:"qrCode,omitempty"`
	Category  Category  `json:"category"`
	User      User      `json:"user"`
	Events    []Event   `json:"events"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AddEvent agrega un evento a la colección poseída.
func (p *Product) AddEvent(ev Event) {
	p.Events = append(p.Events, ev)
}

// RemoveEvent quita el evento con ese id de la colección. Al persistir el
// producto, el evento quitado se borra de la base (orphan removal).
func (p *Product) RemoveEvent(eventID string) {
	out := p.Events[:0]
	for _, ev := range p.Events {
		if ev.ID != eventID {
			out = append(out, ev)
		}
	}
	p.Events = out
}
