package repository

import "github.com/matimeline/eventmanager-api/internal/domain/model"

// ProductRepository define el puerto de persistencia para el agregado
// Product (producto + colección de eventos poseída).
//
// Save persiste el agregado completo: upsert del producto y sincronización
// de la colección de eventos (borrar los quitados, upsert de los presentes),
// todo en una transacción. Delete arrastra los eventos (cascade).
type ProductRepository interface {
	Save(product *model.Product) error
	FindByID(id string) (*model.Product, error)
	ListByUser(userID string) ([]*model.Product, error)
	ExistsByID(id string) (bool, error)
	Delete(id string) error
}
