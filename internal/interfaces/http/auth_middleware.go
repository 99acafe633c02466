package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/matimeline/eventmanager-api/internal/application/dto"
	"github.com/matimeline/eventmanager-api/internal/domain/model"
	"github.com/matimeline/eventmanager-api/internal/domain/repository"
	"github.com/matimeline/eventmanager-api/pkg/logger"
	"github.com/matimeline/eventmanager-api/pkg/token"
)

// Locals key para el usuario autenticado en Fiber.
const LocalUser = "current_user"

// SessionCookie es la cookie HttpOnly donde viaja el token firmado.
const SessionCookie = "jwt"

// authPrefix queda exento del resolver: sus endpoints manejan el token ellos mismos.
const authPrefix = "/api/auth"

// TokenFromRequest extrae el token crudo de la petición: primero la cookie de
// sesión, si no hay, el header Authorization con esquema Bearer. Devuelve ""
// cuando la petición no trae credenciales.
func TokenFromRequest(c *fiber.Ctx) string {
	if raw := c.Cookies(SessionCookie); raw != "" {
		return raw
	}
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// IdentityResolver intenta resolver el usuario autenticado y lo deja en
// c.Locals. Nunca corta la petición: si el token falta, es inválido o el
// usuario ya no existe, la petición sigue anónima y los guards de cada ruta
// deciden. Las rutas bajo /api/auth se saltan la resolución.
func IdentityResolver(tokens *token.Service, users repository.UserRepository, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), authPrefix) {
			return c.Next()
		}
		raw := TokenFromRequest(c)
		if raw == "" {
			return c.Next()
		}
		id, err := tokens.Verify(raw, time.Now())
		if err != nil {
			log.Warn().Err(err).Str("path", c.Path()).Msg("token rechazado, la petición sigue anónima")
			return c.Next()
		}
		user, err := users.FindByUsername(id.Subject)
		if err != nil {
			log.Error().Err(err).Str("username", id.Subject).Msg("no se pudo resolver el usuario del token")
			return c.Next()
		}
		if user == nil {
			log.Warn().Str("username", id.Subject).Msg("token válido para un usuario inexistente")
			return c.Next()
		}
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// CurrentUser devuelve el usuario autenticado del contexto, o nil si la
// petición es anónima.
func CurrentUser(c *fiber.Ctx) *model.User {
	v := c.Locals(LocalUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*model.User)
	return u
}

// RequireAuthenticated corta con 401 las peticiones anónimas.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentUser(c) == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "autenticación requerida"})
		}
		return c.Next()
	}
}
