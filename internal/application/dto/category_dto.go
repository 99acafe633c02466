package dto

// CategoryCreationRequest entrada para crear una categoría.
type CategoryCreationRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
