package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/matimeline/eventmanager-api/internal/application/auth"
	"github.com/matimeline/eventmanager-api/internal/application/dto"
	"github.com/matimeline/eventmanager-api/internal/domain"
	"github.com/matimeline/eventmanager-api/internal/domain/model"
	"github.com/matimeline/eventmanager-api/internal/domain/repository"
)

// ProductUseCase casos de uso del agregado producto + eventos poseídos.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, userRepo repository.UserRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, categoryRepo: categoryRepo, userRepo: userRepo}
}

// Create crea el producto del usuario con sus eventos iniciales. La categoría
// y el usuario deben existir; los eventos reciben UUID del servidor, fecha de
// inicio hoy si no viene, y fecha de fin derivada de la duración.
func (uc *ProductUseCase) Create(userID string, in dto.ProductCreationRequest) (*dto.ProductResponse, error) {
	category, err := uc.categoryRepo.FindByID(in.Category)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}
	user, err := uc.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	now := time.Now()
	product := &model.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		QRCode:    in.QRCode,
		Category:  *category,
		User:      *user,
		Events:    []model.Event{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, evReq := range in.Events {
		ev, err := buildEvent(evReq, product.ID, now)
		if err != nil {
			return nil, err
		}
		product.AddEvent(*ev)
	}

	if err := uc.productRepo.Save(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista los productos del usuario, cada uno con su lista de eventos
// (posiblemente vacía): un producto recién creado sin eventos también aparece.
func (uc *ProductUseCase) List(userID string) ([]dto.ProductResponse, error) {
	list, err := uc.productRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// GetByID obtiene el agregado producto por ID. (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Delete elimina el producto y, por cascada, todos sus eventos.
func (uc *ProductUseCase) Delete(id string) error {
	exists, err := uc.productRepo.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrProductNotFound
	}
	return uc.productRepo.Delete(id)
}

// buildEvent materializa un evento de creación bajo el producto padre.
func buildEvent(in dto.EventCreationRequest, productID string, now time.Time) (*model.Event, error) {
	startDate := now
	if in.Date != nil {
		startDate = *in.Date
	}
	endDate, err := calculateEndDate(in.Type, in.DurationValue, in.DurationUnit, startDate)
	if err != nil {
		return nil, err
	}
	return &model.Event{
		ID:              uuid.New().String(),
		Title:           in.Name,
		Type:            in.Type,
		DurationValue:   in.DurationValue,
		DurationUnit:    in.DurationUnit,
		IsRecurring:     in.IsRecurring,
		RecurrenceUnit:  in.RecurrenceUnit,
		StartDate:       startDate,
		EndDate:         endDate,
		ProductID:       productID,
		IsAllDay:        in.IsAllDay,
		BackgroundColor: in.BackgroundColor,
		BorderColor:     in.BorderColor,
		TextColor:       in.TextColor,
	}, nil
}

func toProductResponse(p *model.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	events := make([]dto.EventResponse, 0, len(p.Events))
	for i := range p.Events {
		events = append(events, *toEventResponse(&p.Events[i]))
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		QRCode:    p.QRCode,
		Category:  dto.CategoryResponse{ID: p.Category.ID, Name: p.Category.Name},
		User:      *auth.ToUserResponse(&p.User),
		Events:    events,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
