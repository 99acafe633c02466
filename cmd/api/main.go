package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/matimeline/eventmanager-api/internal/application/auth"
	"github.com/matimeline/eventmanager-api/internal/application/usecase"
	"github.com/matimeline/eventmanager-api/internal/infrastructure/postgres"
	httpRouter "github.com/matimeline/eventmanager-api/internal/interfaces/http"
	"github.com/matimeline/eventmanager-api/pkg/config"
	"github.com/matimeline/eventmanager-api/pkg/logger"
	"github.com/matimeline/eventmanager-api/pkg/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	eventRepo := postgres.NewEventRepository(pool)

	tokens := token.New(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.TTLHours)*time.Hour,
		time.Duration(cfg.JWT.RefreshGraceMinutes)*time.Minute,
		cfg.JWT.Issuer,
	)

	authUC := auth.NewAuthUseCase(userRepo, tokens, auth.NewBcryptHasher())
	userUC := usecase.NewUserUseCase(userRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, userRepo)
	eventUC := usecase.NewEventUseCase(eventRepo, productRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Event Manager API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UserUC:       userUC,
		CategoryUC:   categoryUC,
		ProductUC:    productUC,
		EventUC:      eventUC,
		Tokens:       tokens,
		Users:        userRepo,
		Log:          log,
		CookieSecure: cfg.Cookie.Secure,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
