package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/matimeline/eventmanager-api/internal/application/auth"
	"github.com/matimeline/eventmanager-api/internal/application/dto"
	"github.com/matimeline/eventmanager-api/pkg/logger"
)

// AuthHandler maneja registro, login, refresh, logout y me.
type AuthHandler struct {
	uc           *auth.AuthUseCase
	log          *logger.Logger
	cookieSecure bool
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger, cookieSecure bool) *AuthHandler {
	return &AuthHandler{uc: uc, log: log, cookieSecure: cookieSecure}
}

// setSessionCookie instala la cookie de sesión. HttpOnly siempre: el token no
// es legible desde JavaScript. Max-Age coincide con la vida del token.
func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, raw string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    raw,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// clearSessionCookie anula la cookie con Max-Age negativo. Idempotente: vale
// igual si el cliente no tenía cookie.
func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Datos de registro"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son requeridos"})
	}
	out, err := h.uc.Register(in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Devuelve el token crudo en el body e instala la cookie de sesión.
// @Tags         auth
// @Accept       json
// @Produce      plain
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {string}  string  "token firmado"
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	raw, err := h.uc.Login(in, time.Now())
	if err != nil {
		return respondError(c, h.log, err)
	}
	h.setSessionCookie(c, raw, h.uc.TokenTTL())
	return c.SendString(raw)
}

// Refresh godoc
// @Summary      Renovar token
// @Description  Acepta el token actual (cookie o Bearer), incluso expirado dentro de la ventana de gracia, y emite uno nuevo.
// @Tags         auth
// @Produce      plain
// @Success      200  {string}  string  "token nuevo"
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	raw := TokenFromRequest(c)
	if raw == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token requerido"})
	}
	fresh, err := h.uc.Refresh(raw, time.Now())
	if err != nil {
		return respondError(c, h.log, err)
	}
	h.setSessionCookie(c, fresh, h.uc.TokenTTL())
	return c.SendString(fresh)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.clearSessionCookie(c)
	return c.JSON(fiber.Map{"message": "sesión cerrada"})
}

// Me godoc
// @Summary      Usuario actual
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	raw := TokenFromRequest(c)
	if raw == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token requerido"})
	}
	out, err := h.uc.WhoAmI(raw, time.Now())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
