package repository

import "github.com/matimeline/eventmanager-api/internal/domain/model"

// EventRepository define el puerto de persistencia para Event.
// FindByID devuelve (nil, nil) cuando el evento no existe.
type EventRepository interface {
	Save(event *model.Event) error
	FindByID(id string) (*model.Event, error)
	FindByProductID(productID string) ([]*model.Event, error)
	ExistsByID(id string) (bool, error)
	Delete(id string) error
}
