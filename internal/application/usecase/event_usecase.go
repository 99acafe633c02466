package usecase

import (
	"time"

	"github.com/matimeline/eventmanager-api/internal/application/dto"
	"github.com/matimeline/eventmanager-api/internal/domain"
	"github.com/matimeline/eventmanager-api/internal/domain/model"
	"github.com/matimeline/eventmanager-api/internal/domain/repository"
)

// EventUseCase casos de uso de eventos. Las rutas de eventos no llevan userId
// en el path, así que la propiedad se verifica aquí contra el dueño del
// producto: actorID debe ser el usuario del producto del evento.
type EventUseCase struct {
	eventRepo   repository.EventRepository
	productRepo repository.ProductRepository
}

// NewEventUseCase construye el caso de uso.
func NewEventUseCase(eventRepo repository.EventRepository, productRepo repository.ProductRepository) *EventUseCase {
	return &EventUseCase{eventRepo: eventRepo, productRepo: productRepo}
}

// Create crea un evento sobre un producto que el actor posee.
func (uc *EventUseCase) Create(actorID string, in dto.EventCreationRequest) (*dto.EventResponse, error) {
	product, err := uc.ownedProduct(actorID, in.ProductID)
	if err != nil {
		return nil, err
	}
	ev, err := buildEvent(in, product.ID, time.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.eventRepo.Save(ev); err != nil {
		return nil, err
	}
	return toEventResponse(ev), nil
}

// Update aplica una actualización parcial: solo los campos presentes en el
// payload cambian, el resto conserva su valor previo, y el ProductID original
// se re-adjunta siempre (un PATCH jamás mueve el evento de producto).
func (uc *EventUseCase) Update(actorID, eventID string, in dto.UpdateEventRequest) (*dto.EventResponse, error) {
	ev, err := uc.eventRepo.FindByID(eventID)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, domain.ErrEventNotFound
	}
	if _, err := uc.ownedProduct(actorID, ev.ProductID); err != nil {
		return nil, err
	}
	merged, err := MergeEventUpdate(ev, in)
	if err != nil {
		return nil, err
	}
	if err := uc.eventRepo.Save(merged); err != nil {
		return nil, err
	}
	return toEventResponse(merged), nil
}

// Delete elimina un evento de un producto que el actor posee.
func (uc *EventUseCase) Delete(actorID, eventID string) error {
	ev, err := uc.eventRepo.FindByID(eventID)
	if err != nil {
		return err
	}
	if ev == nil {
		return domain.ErrEventNotFound
	}
	if _, err := uc.ownedProduct(actorID, ev.ProductID); err != nil {
		return err
	}
	return uc.eventRepo.Delete(eventID)
}

// FindByProductID lista los eventos de un producto; sin eventos es not found
// (comportamiento del listado anidado).
func (uc *EventUseCase) FindByProductID(productID string) ([]dto.EventResponse, error) {
	events, err := uc.eventRepo.FindByProductID(productID)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, domain.ErrEventNotFound
	}
	items := make([]dto.EventResponse, 0, len(events))
	for _, ev := range events {
		items = append(items, *toEventResponse(ev))
	}
	return items, nil
}

// ownedProduct resuelve el producto y verifica que actorID sea su dueño.
func (uc *EventUseCase) ownedProduct(actorID, productID string) (*model.Product, error) {
	product, err := uc.productRepo.FindByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if product.User.ID != actorID {
		return nil, domain.ErrForbidden
	}
	return product, nil
}

// MergeEventUpdate fusiona el payload parcial sobre el evento existente.
// Devuelve una copia: los campos ausentes retienen el valor previo, el
// ProductID nunca cambia, y la fecha de fin se recalcula cuando cambian el
// tipo, la duración o la fecha de inicio.
func MergeEventUpdate(ev *model.Event, in dto.UpdateEventRequest) (*model.Event, error) {
	merged := *ev

	if in.Title != nil {
		merged.Title = *in.Title
	}
	if in.Type != nil {
		merged.Type = *in.Type
	}
	if in.DurationValue != nil {
		merged.DurationValue = in.DurationValue
	}
	if in.DurationUnit != nil {
		merged.DurationUnit = *in.DurationUnit
	}
	if in.IsRecurring != nil {
		merged.IsRecurring = *in.IsRecurring
	}
	if in.RecurrenceUnit != nil {
		merged.RecurrenceUnit = *in.RecurrenceUnit
	}
	if in.StartDate != nil {
		merged.StartDate = *in.StartDate
	}
	if in.IsAllDay != nil {
		merged.IsAllDay = *in.IsAllDay
	}
	if in.BackgroundColor != nil {
		merged.BackgroundColor = *in.BackgroundColor
	}
	if in.BorderColor != nil {
		merged.BorderColor = *in.BorderColor
	}
	if in.TextColor != nil {
		merged.TextColor = *in.TextColor
	}

	// El payload permite campos arbitrarios, pero el evento no cambia de producto.
	merged.ProductID = ev.ProductID

	if in.Type != nil || in.DurationValue != nil || in.DurationUnit != nil || in.StartDate != nil {
		endDate, err := calculateEndDate(merged.Type, merged.DurationValue, merged.DurationUnit, merged.StartDate)
		if err != nil {
			return nil, err
		}
		merged.EndDate = endDate
	}

	return &merged, nil
}

func toEventResponse(ev *model.Event) *dto.EventResponse {
	if ev == nil {
		return nil
	}
	return &dto.EventResponse{
		ID:              ev.ID,
		Title:           ev.Title,
		Type:            ev.Type,
		DurationValue:   ev.DurationValue,
		DurationUnit:    ev.DurationUnit,
		IsRecurring:     ev.IsRecurring,
		RecurrenceUnit:  ev.RecurrenceUnit,
		StartDate:       ev.StartDate,
		EndDate:         ev.EndDate,
		ProductID:       ev.ProductID,
		IsAllDay:        ev.IsAllDay,
		BackgroundColor: ev.BackgroundColor,
		BorderColor:     ev.BorderColor,
		TextColor:       ev.TextColor,
	}
}
