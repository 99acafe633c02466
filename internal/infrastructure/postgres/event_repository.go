package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/matimeline/eventmanager-api/internal/domain/model"
	"github.com/matimeline/eventmanager-api/internal/domain/repository"
)

var _ repository.EventRepository = (*EventRepo)(nil)

// EventRepo implementación del puerto EventRepository sobre PostgreSQL.
// Opera sobre eventos sueltos (creación directa, PATCH, borrado); la
// sincronización de la colección completa vive en ProductRepo.Save.
type EventRepo struct {
	q Querier
}

// NewEventRepository construye el adaptador de persistencia para eventos. Pasar pool o tx (Querier).
func NewEventRepository(q Querier) *EventRepo {
	return &EventRepo{q: q}
}

// Save upserta un evento individual.
func (r *EventRepo) Save(event *model.Event) error {
	return upsertEvent(context.Background(), r.q, eventToEntity(event, nil))
}

// FindByID obtiene un evento por ID. (nil, nil) si no existe.
func (r *EventRepo) FindByID(id string) (*model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	rows, err := r.q.Query(context.Background(), query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("get event: %w", err)
		}
		return nil, nil
	}
	e, err := scanEvent(rows)
	if err != nil {
		return nil, err
	}
	ev := eventToDomain(e)
	return &ev, nil
}

// FindByProductID lista los eventos de un producto ordenados por fecha de inicio.
func (r *EventRepo) FindByProductID(productID string) ([]*model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE product_id = $1 ORDER BY start_date`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()
	var list []*model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		ev := eventToDomain(e)
		list = append(list, &ev)
	}
	return list, rows.Err()
}

// ExistsByID indica si el evento existe.
func (r *EventRepo) ExistsByID(id string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(), `SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists event: %w", err)
	}
	return exists, nil
}

// Delete elimina un evento por ID.
func (r *EventRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
