package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/matimeline/eventmanager-api/internal/domain/model"
	"github.com/matimeline/eventmanager-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una categoría nueva.
func (r *CategoryRepo) Create(category *model.Category) error {
	e := categoryToEntity(category)
	_, err := r.q.Exec(context.Background(), `INSERT INTO categories (id, name) VALUES ($1, $2)`, e.ID, e.Name)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// FindByID obtiene una categoría por ID. (nil, nil) si no existe.
func (r *CategoryRepo) FindByID(id string) (*model.Category, error) {
	var e CategoryEntity
	err := r.q.QueryRow(context.Background(), `SELECT id, name FROM categories WHERE id = $1`, id).Scan(&e.ID, &e.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return categoryToDomain(&e), nil
}

// List lista todas las categorías ordenadas por nombre.
func (r *CategoryRepo) List() ([]*model.Category, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*model.Category
	for rows.Next() {
		var e CategoryEntity
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, categoryToDomain(&e))
	}
	return list, rows.Err()
}

// ExistsByID indica si la categoría existe.
func (r *CategoryRepo) ExistsByID(id string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(), `SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists category: %w", err)
	}
	return exists, nil
}

// Delete elimina una categoría por ID.
func (r *CategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
