package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/matimeline/eventmanager-api/internal/domain"
	"github.com/matimeline/eventmanager-api/internal/domain/model"
	"github.com/matimeline/eventmanager-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// Persiste el agregado completo: el producto y su colección de eventos
// poseída se sincronizan en una sola transacción (reemplazo explícito del
// cascade/orphanRemoval del ORM original).
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador de persistencia para productos.
// Requiere el pool (no un Querier) porque Save abre su propia transacción.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// Save upserta el producto y sincroniza sus eventos: borra los que ya no
// están en el agregado (orphan removal) y upserta los presentes.
func (r *ProductRepo) Save(product *model.Product) error {
	ctx := context.Background()
	e := productToEntity(product)

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	upsertProduct := `
		INSERT INTO products (id, name, qr_code, category_id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, qr_code = EXCLUDED.qr_code,
			category_id = EXCLUDED.category_id, updated_at = EXCLUDED.updated_at`
	if _, err := tx.Exec(ctx, upsertProduct,
		e.ID, e.Name, e.QRCode, e.CategoryID, e.UserID, e.CreatedAt, e.UpdatedAt,
	); err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("producto %s con relación inexistente: %w", e.ID, domain.ErrDataIntegrity)
		}
		return fmt.Errorf("upsert product: %w", err)
	}

	// Ids actualmente en la base para esta colección poseída.
	rows, err := tx.Query(ctx, `SELECT id FROM events WHERE product_id = $1`, e.ID)
	if err != nil {
		return fmt.Errorf("select event ids: %w", err)
	}
	var existing []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("scan event id: %w", err)
		}
		existing = append(existing, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate event ids: %w", err)
	}

	// Orphan removal: fuera del agregado = fuera de la base.
	if orphans := orphanEventIDs(existing, e.Events); len(orphans) > 0 {
		if _, err := tx.Exec(ctx, `DELETE FROM events WHERE id = ANY($1)`, orphans); err != nil {
			return fmt.Errorf("delete orphan events: %w", err)
		}
	}

	for _, ev := range e.Events {
		if err := upsertEvent(ctx, tx, ev); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// FindByID carga el agregado: producto con categoría y usuario por JOIN,
// eventos con consulta aparte. (nil, nil) si el producto no existe.
func (r *ProductRepo) FindByID(id string) (*model.Product, error) {
	entities, err := r.query(`WHERE p.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(entities) == 0 {
		return nil, nil
	}
	return productToDomain(entities[0])
}

// ListByUser carga todos los agregados producto del usuario.
func (r *ProductRepo) ListByUser(userID string) ([]*model.Product, error) {
	entities, err := r.query(`WHERE p.user_id = $1 ORDER BY p.created_at`, userID)
	if err != nil {
		return nil, err
	}
	list := make([]*model.Product, 0, len(entities))
	for _, e := range entities {
		p, err := productToDomain(e)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, nil
}

// ExistsByID indica si el producto existe.
func (r *ProductRepo) ExistsByID(id string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(context.Background(), `SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists product: %w", err)
	}
	return exists, nil
}

// Delete elimina el producto; los eventos caen por ON DELETE CASCADE.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// query carga filas de producto con categoría y usuario (LEFT JOIN para que
// una relación rota llegue como nil y el mapper la reporte como integridad),
// y después cuelga los eventos de cada producto.
func (r *ProductRepo) query(where string, args ...any) ([]*ProductEntity, error) {
	ctx := context.Background()
	query := `
		SELECT p.id, p.name, p.qr_code, p.category_id, p.user_id, p.created_at, p.updated_at,
		       c.id, c.name,
		       u.id, u.name, u.username, u.password_hash, u.role, u.email, u.created_at, u.updated_at
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		LEFT JOIN users u ON u.id = p.user_id ` + where
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var entities []*ProductEntity
	for rows.Next() {
		var (
			p        ProductEntity
			category CategoryEntity
			user     UserEntity
			catID    *string
			userID   *string
		)
		err := rows.Scan(
			&p.ID, &p.Name, &p.QRCode, &p.CategoryID, &p.UserID, &p.CreatedAt, &p.UpdatedAt,
			&catID, &category.Name,
			&userID, &user.Name, &user.Username, &user.PasswordHash, &user.Role, &user.Email,
			&user.CreatedAt, &user.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if catID != nil {
			category.ID = *catID
			p.Category = &category
		}
		if userID != nil {
			user.ID = *userID
			p.User = &user
		}
		entities = append(entities, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	if err := r.attachEvents(ctx, entities); err != nil {
		return nil, err
	}
	return entities, nil
}

// attachEvents carga en una sola consulta los eventos de todos los productos
// dados y los agrupa por product_id.
func (r *ProductRepo) attachEvents(ctx context.Context, entities []*ProductEntity) error {
	if len(entities) == 0 {
		return nil
	}
	ids := make([]string, 0, len(entities))
	byID := make(map[string]*ProductEntity, len(entities))
	for _, e := range entities {
		ids = append(ids, e.ID)
		byID[e.ID] = e
	}
	query := `
		SELECT ` + eventColumns + `
		FROM events WHERE product_id = ANY($1) ORDER BY start_date`
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return err
		}
		if parent, ok := byID[ev.ProductID]; ok {
			parent.Events = append(parent.Events, ev)
		}
	}
	return rows.Err()
}

// upsertEvent inserta o actualiza la fila de un evento dentro de la tx del agregado.
func upsertEvent(ctx context.Context, q Querier, ev *EventEntity) error {
	query := `
		INSERT INTO events (id, title, type, duration_value, duration_unit, is_recurring, recurrence_unit,
		                    start_date, end_date, product_id, is_all_day, background_color, border_color, text_color)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title, type = EXCLUDED.type,
			duration_value = EXCLUDED.duration_value, duration_unit = EXCLUDED.duration_unit,
			is_recurring = EXCLUDED.is_recurring, recurrence_unit = EXCLUDED.recurrence_unit,
			start_date = EXCLUDED.start_date, end_date = EXCLUDED.end_date,
			is_all_day = EXCLUDED.is_all_day, background_color = EXCLUDED.background_color,
			border_color = EXCLUDED.border_color, text_color = EXCLUDED.text_color`
	_, err := q.Exec(ctx, query,
		ev.ID, ev.Title, ev.Type, ev.DurationValue, ev.DurationUnit, ev.IsRecurring, ev.RecurrenceUnit,
		ev.StartDate, ev.EndDate, ev.ProductID, ev.IsAllDay, ev.BackgroundColor, ev.BorderColor, ev.TextColor,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("evento %s sin producto existente (%s): %w", ev.ID, ev.ProductID, domain.ErrDataIntegrity)
		}
		return fmt.Errorf("upsert event: %w", err)
	}
	return nil
}

const eventColumns = `id, title, type, duration_value, duration_unit, is_recurring, recurrence_unit,
	start_date, end_date, product_id, is_all_day, background_color, border_color, text_color`

// scanEvent mapea la fila actual de rows a una EventEntity.
func scanEvent(rows pgx.Rows) (*EventEntity, error) {
	var ev EventEntity
	err := rows.Scan(
		&ev.ID, &ev.Title, &ev.Type, &ev.DurationValue, &ev.DurationUnit, &ev.IsRecurring, &ev.RecurrenceUnit,
		&ev.StartDate, &ev.EndDate, &ev.ProductID, &ev.IsAllDay, &ev.BackgroundColor, &ev.BorderColor, &ev.TextColor,
	)
	if err != nil {
		return nil, fmt.Errorf("scan event: %w", err)
	}
	return &ev, nil
}
