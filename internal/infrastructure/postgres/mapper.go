package postgres

import (
	"fmt"

	"github.com/matimeline/eventmanager-api/internal/domain"
	"github.com/matimeline/eventmanager-api/internal/domain/model"
)

// Mapeo explícito entidad↔dominio. El recorrido rompe el ciclo
// Product↔Event: hacia dominio cada evento lleva solo el productId; hacia
// entidad el puntero al padre se adjunta de forma transitoria para que la
// sincronización de la colección (cascade/orphan removal explícitos) sepa a
// qué producto pertenece cada fila.

func userToDomain(e *UserEntity) *model.User {
	if e == nil {
		return nil
	}
	return &model.User{
		ID:           e.ID,
		Name:         e.Name,
		Username:     e.Username,
		PasswordHash: e.PasswordHash,
		Role:         e.Role,
		Email:        e.Email,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func userToEntity(u *model.User) *UserEntity {
	return &UserEntity{
		ID:           u.ID,
		Name:         u.Name,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		Email:        u.Email,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func categoryToDomain(e *CategoryEntity) *model.Category {
	if e == nil {
		return nil
	}
	return &model.Category{ID: e.ID, Name: e.Name}
}

func categoryToEntity(c *model.Category) *CategoryEntity {
	return &CategoryEntity{ID: c.ID, Name: c.Name}
}

// eventToDomain mapea el evento con la referencia débil al producto:
// solo el id, nunca el agregado completo.
func eventToDomain(e *EventEntity) model.Event {
	return model.Event{
		ID:              e.ID,
		Title:           e.Title,
		Type:            e.Type,
		DurationValue:   e.DurationValue,
		DurationUnit:    e.DurationUnit,
		IsRecurring:     e.IsRecurring,
		RecurrenceUnit:  e.RecurrenceUnit,
		StartDate:       e.StartDate,
		EndDate:         e.EndDate,
		ProductID:       e.ProductID,
		IsAllDay:        e.IsAllDay,
		BackgroundColor: e.BackgroundColor,
		BorderColor:     e.BorderColor,
		TextColor:       e.TextColor,
	}
}

// eventToEntity mapea el evento hacia la fila. Si parent no es nil, el evento
// queda colgado del padre (puntero transitorio + FK tomada del padre); si es
// nil se respeta el ProductID que el evento ya trae (guardado suelto).
func eventToEntity(ev *model.Event, parent *ProductEntity) *EventEntity {
	productID := ev.ProductID
	if parent != nil {
		productID = parent.ID
	}
	return &EventEntity{
		ID:              ev.ID,
		Title:           ev.Title,
		Type:            ev.Type,
		DurationValue:   ev.DurationValue,
		DurationUnit:    ev.DurationUnit,
		IsRecurring:     ev.IsRecurring,
		RecurrenceUnit:  ev.RecurrenceUnit,
		StartDate:       ev.StartDate,
		EndDate:         ev.EndDate,
		ProductID:       productID,
		IsAllDay:        ev.IsAllDay,
		BackgroundColor: ev.BackgroundColor,
		BorderColor:     ev.BorderColor,
		TextColor:       ev.TextColor,
		Product:         parent,
	}
}

// productToDomain mapea hoja-a-raíz: primero categoría y usuario, después
// los eventos poseídos (cada uno con su productId, sin puntero de vuelta).
// Una relación obligatoria sin resolver es corrupción de datos, no un
// not-found de negocio.
func productToDomain(e *ProductEntity) (*model.Product, error) {
	category := categoryToDomain(e.Category)
	if category == nil {
		return nil, fmt.Errorf("producto %s sin categoría resoluble (%s): %w", e.ID, e.CategoryID, domain.ErrDataIntegrity)
	}
	user := userToDomain(e.User)
	if user == nil {
		return nil, fmt.Errorf("producto %s sin usuario resoluble (%s): %w", e.ID, e.UserID, domain.ErrDataIntegrity)
	}
	events := make([]model.Event, 0, len(e.Events))
	for _, ev := range e.Events {
		events = append(events, eventToDomain(ev))
	}
	return &model.Product{
		ID:        e.ID,
		Name:      e.Name,
		QRCode:    e.QRCode,
		Category:  *category,
		User:      *user,
		Events:    events,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}, nil
}

// productToEntity arma el cascarón, adjunta categoría y usuario como
// entidades, y cuelga cada evento con el puntero al padre para el persist.
func productToEntity(p *model.Product) *ProductEntity {
	entity := &ProductEntity{
		ID:         p.ID,
		Name:       p.Name,
		QRCode:     p.QRCode,
		CategoryID: p.Category.ID,
		UserID:     p.User.ID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
		Category:   categoryToEntity(&p.Category),
		User:       userToEntity(&p.User),
	}
	entity.Events = make([]*EventEntity, 0, len(p.Events))
	for i := range p.Events {
		entity.Events = append(entity.Events, eventToEntity(&p.Events[i], entity))
	}
	return entity
}

// orphanEventIDs calcula los eventos huérfanos de la colección poseída:
// ids que están en la base pero ya no en el agregado. Es la versión explícita
// del orphan removal del ORM original.
func orphanEventIDs(existing []string, current []*EventEntity) []string {
	keep := make(map[string]struct{}, len(current))
	for _, ev := range current {
		keep[ev.ID] = struct{}{}
	}
	var orphans []string
	for _, id := range existing {
		if _, ok := keep[id]; !ok {
			orphans = append(orphans, id)
		}
	}
	return orphans
}
