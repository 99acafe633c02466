package repository

import "github.com/matimeline/eventmanager-api/internal/domain/model"

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(category *model.Category) error
	FindByID(id string) (*model.Category, error)
	List() ([]*model.Category, error)
	ExistsByID(id string) (bool, error)
	Delete(id string) error
}
