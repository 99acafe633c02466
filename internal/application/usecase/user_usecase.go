package usecase

import (
	"time"

	"github.com/matimeline/eventmanager-api/internal/application/auth"
	"github.com/matimeline/eventmanager-api/internal/application/dto"
	"github.com/matimeline/eventmanager-api/internal/domain"
	"github.com/matimeline/eventmanager-api/internal/domain/repository"
)

// UserUseCase lectura y actualización explícita de usuarios. La identidad
// (ID, Username) es inmutable; solo role y email admiten cambio.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID obtiene un usuario por ID. (nil, nil) si no existe.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return auth.ToUserResponse(user), nil
}

// Update aplica la actualización explícita de role/email.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}
