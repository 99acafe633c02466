package model

// Category representa una categoría de productos. Los productos la
// referencian, no la poseen: borrar un producto no toca su categoría.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
