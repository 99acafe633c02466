package repository

import "github.com/matimeline/eventmanager-api/internal/domain/model"

// UserRepository define el puerto de persistencia para User (DIP).
// Los Find* devuelven (nil, nil) cuando el usuario no existe.
type UserRepository interface {
	Create(user *model.User) error
	FindByID(id string) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	Update(user *model.User) error
	ExistsByID(id string) (bool, error)
	Delete(id string) error
}
