package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/matimeline/eventmanager-api/internal/application/dto"
	"github.com/matimeline/eventmanager-api/internal/application/usecase"
	"github.com/matimeline/eventmanager-api/pkg/logger"
)

// EventHandler maneja /api/events. Las rutas exigen autenticación; la
// autorización se decide en el caso de uso mirando el dueño del producto
// del evento, no un :userId de la ruta.
type EventHandler struct {
	uc  *usecase.EventUseCase
	log *logger.Logger
}

// NewEventHandler construye el handler.
func NewEventHandler(uc *usecase.EventUseCase, log *logger.Logger) *EventHandler {
	return &EventHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear evento
// @Tags         events
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EventCreationRequest  true  "Datos del evento"
// @Success      201   {object}  dto.EventResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/events [post]
func (h *EventHandler) Create(c *fiber.Ctx) error {
	var in dto.EventCreationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y productId son requeridos"})
	}
	out, err := h.uc.Create(CurrentUser(c).ID, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar evento (parcial)
// @Description  Solo modifica los campos presentes en el body; el producto del evento nunca cambia.
// @Tags         events
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del evento"
// @Param        body  body  dto.UpdateEventRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.EventResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/events/{id} [patch]
func (h *EventHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEventRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(CurrentUser(c).ID, c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar evento
// @Tags         events
// @Security     Bearer
// @Param        id  path  string  true  "ID del evento"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/events/{id} [delete]
func (h *EventHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(CurrentUser(c).ID, c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
