package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/matimeline/eventmanager-api/internal/application/auth"
	"github.com/matimeline/eventmanager-api/internal/application/usecase"
	"github.com/matimeline/eventmanager-api/internal/domain/repository"
	"github.com/matimeline/eventmanager-api/pkg/logger"
	"github.com/matimeline/eventmanager-api/pkg/token"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	CategoryUC   *usecase.CategoryUseCase
	ProductUC    *usecase.ProductUseCase
	EventUC      *usecase.EventUseCase
	Tokens       *token.Service
	Users        repository.UserRepository
	Log          *logger.Logger
	CookieSecure bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// El resolver corre en todo /api menos /api/auth; deja la petición
	// anónima si el token no sirve y los guards de cada grupo deciden.
	api.Use(IdentityResolver(deps.Tokens, deps.Users, deps.Log))

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log, deps.CookieSecure)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", authHandler.Me)

	// Categories (requiere sesión, compartidas entre usuarios)
	categories := api.Group("/categories", RequireAuthenticated())
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.Log)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Delete("/:id", categoryHandler.Delete)

	// Users y sus productos (ownership: solo el dueño del :userId)
	users := api.Group("/users/:userId", RequireOwner())
	userHandler := NewUserHandler(deps.UserUC, deps.Log)
	users.Get("/", userHandler.GetByID)
	users.Patch("/", userHandler.Update)

	products := users.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.EventUC, deps.Log)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:productId", productHandler.GetByID)
	products.Delete("/:productId", productHandler.Delete)
	products.Get("/:productId/events", productHandler.ListEvents)

	// Events (requiere sesión; la autorización la resuelve el caso de uso
	// contra el dueño del producto)
	events := api.Group("/events", RequireAuthenticated())
	eventHandler := NewEventHandler(deps.EventUC, deps.Log)
	events.Post("/", eventHandler.Create)
	events.Patch("/:id", eventHandler.Update)
	events.Delete("/:id", eventHandler.Delete)
}
