package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/matimeline/eventmanager-api/internal/application/dto"
	"github.com/matimeline/eventmanager-api/internal/application/usecase"
	"github.com/matimeline/eventmanager-api/pkg/logger"
)

// ProductHandler maneja las rutas anidadas /api/users/{userId}/products.
// El guard de ownership corre antes, así que aquí :userId ya es el usuario
// autenticado.
type ProductHandler struct {
	products *usecase.ProductUseCase
	events   *usecase.EventUseCase
	log      *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(products *usecase.ProductUseCase, events *usecase.EventUseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{products: products, events: events, log: log}
}

// Create godoc
// @Summary      Crear producto con eventos
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        userId  path  string  true  "ID del dueño"
// @Param        body    body  dto.ProductCreationRequest  true  "Producto y eventos iniciales"
// @Success      201     {object}  dto.ProductResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/users/{userId}/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductCreationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y category son requeridos"})
	}
	out, err := h.products.Create(c.Params("userId"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar productos del usuario
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        userId  path  string  true  "ID del dueño"
// @Success      200     {array}  dto.ProductResponse
// @Router       /api/users/{userId}/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.products.List(c.Params("userId"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        userId     path  string  true  "ID del dueño"
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{userId}/products/{productId} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.products.GetByID(c.Params("productId"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Description  Elimina el producto y todos sus eventos en cascada.
// @Tags         products
// @Security     Bearer
// @Param        userId     path  string  true  "ID del dueño"
// @Param        productId  path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{userId}/products/{productId} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.products.Delete(c.Params("productId")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListEvents godoc
// @Summary      Listar eventos de un producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        userId     path  string  true  "ID del dueño"
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {array}   dto.EventResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{userId}/products/{productId}/events [get]
func (h *ProductHandler) ListEvents(c *fiber.Ctx) error {
	out, err := h.events.FindByProductID(c.Params("productId"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
