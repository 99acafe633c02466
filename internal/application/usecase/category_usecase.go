package usecase

import (
	"github.com/google/uuid"

	"github.com/matimeline/eventmanager-api/internal/application/dto"
	"github.com/matimeline/eventmanager-api/internal/domain"
	"github.com/matimeline/eventmanager-api/internal/domain/model"
	"github.com/matimeline/eventmanager-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría nueva.
func (uc *CategoryUseCase) Create(in dto.CategoryCreationRequest) (*dto.CategoryResponse, error) {
	category := &model.Category{
		ID:   uuid.New().String(),
		Name: in.Name,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List lista todas las categorías.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// GetByID obtiene una categoría por ID. (nil, nil) si no existe.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return toCategoryResponse(category), nil
}

// Delete elimina una categoría por ID.
func (uc *CategoryUseCase) Delete(id string) error {
	exists, err := uc.repo.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrCategoryNotFound
	}
	return uc.repo.Delete(id)
}

func toCategoryResponse(c *model.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name}
}
