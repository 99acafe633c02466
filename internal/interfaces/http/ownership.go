package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/matimeline/eventmanager-api/internal/application/dto"
)

// RequireOwner protege rutas anidadas bajo /users/:userId: el usuario
// autenticado debe ser exactamente el dueño del recurso. Anónimo → 401;
// autenticado pero con otro id → 403. La comparación es por id de usuario,
// no por username, para que renombrar la cuenta no rompa la autorización.
func RequireOwner() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "autenticación requerida"})
		}
		if user.ID != c.Params("userId") {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el recurso pertenece a otro usuario"})
		}
		return c.Next()
	}
}
