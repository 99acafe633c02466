package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/matimeline/eventmanager-api/internal/domain"
	"github.com/matimeline/eventmanager-api/internal/domain/model"
	"github.com/matimeline/eventmanager-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, name, username, password_hash, role, email, created_at, updated_at`

// Create persiste un nuevo usuario. Username duplicado → ErrDuplicateUser.
func (r *UserRepo) Create(user *model.User) error {
	e := userToEntity(user)
	query := `
		INSERT INTO users (id, name, username, password_hash, role, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Name, e.Username, e.PasswordHash, e.Role, e.Email, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateUser
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindByID obtiene un usuario por ID. (nil, nil) si no existe.
func (r *UserRepo) FindByID(id string) (*model.User, error) {
	return r.findOne(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// FindByUsername obtiene un usuario por username. (nil, nil) si no existe.
func (r *UserRepo) FindByUsername(username string) (*model.User, error) {
	return r.findOne(`SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (r *UserRepo) findOne(query string, arg any) (*model.User, error) {
	var e UserEntity
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&e.ID, &e.Name, &e.Username, &e.PasswordHash, &e.Role, &e.Email, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return userToDomain(&e), nil
}

// Update actualiza role, email y demás campos mutables del usuario.
func (r *UserRepo) Update(user *model.User) error {
	e := userToEntity(user)
	query := `
		UPDATE users SET name = $2, password_hash = $3, role = $4, email = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Name, e.PasswordHash, e.Role, e.Email, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// ExistsByID indica si el usuario existe.
func (r *UserRepo) ExistsByID(id string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(), `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists user: %w", err)
	}
	return exists, nil
}

// Delete elimina un usuario por ID.
func (r *UserRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
