package app

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	"botaniq/internal/config"
	"botaniq/internal/handlers"
	"botaniq/internal/middleware"
	"botaniq/internal/repositories"
	"botaniq/internal/services"
	"botaniq/internal/storage"
)

// Dependencies are the long-lived resources the HTTP app is built on.
type Dependencies struct {
	Config  config.Config
	DB      *gorm.DB
	Avatars *storage.AvatarStore
	// Events may be nil, in which case no domain events are published.
	Events services.EventPublisher
	// Checkers are run by /ready in addition to the database.
	Checkers []services.Checker
}

// New wires repositories, services and handlers into a Fiber app.
func New(deps Dependencies) *fiber.App {
	cfg := deps.Config

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(deps.DB)
	recommendationRepo := repositories.NewGORMRecommendationRepository(deps.DB)
	gardenRepo := repositories.NewGORMGardenRepository(deps.DB)
	plantRepo := repositories.NewGORMPlantRepository(deps.DB)

	// --- Services ---
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	profileService := services.NewProfileService(userRepo, deps.Avatars, deps.Events)
	recommendationService := services.NewRecommendationService(recommendationRepo, deps.Events)
	gardenService := services.NewGardenService(gardenRepo, deps.Events)
	plantService := services.NewPlantService(plantRepo)
	checkers := append([]services.Checker{services.NewDatabaseChecker(deps.DB)}, deps.Checkers...)
	healthService := services.NewHealthService(checkers...)

	// --- Fiber App ---
	// Bodies are streamed so avatar uploads reach disk without being buffered;
	// the declared length is checked by middleware.BodyLimit instead.
	app := fiber.New(fiber.Config{
		AppName:                      "botaniq",
		BodyLimit:                    cfg.MaxUploadBytes,
		StreamRequestBody:            true,
		DisablePreParseMultipartForm: true,
		ErrorHandler:                 handlers.ErrorHandler,
	})

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = config.DefaultCORSOrigins
	}

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(middleware.BodyLimit(cfg.MaxUploadBytes))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Cache-Control,X-Requested-With,Authorization,Content-Type,ngrok-skip-browser-warning",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Uploaded avatars; files still being staged are never served.
	app.Static("/uploads", deps.Avatars.Dir(), fiber.Static{
		Next: func(c *fiber.Ctx) bool {
			return strings.Contains(c.Path(), "/"+storage.StagingDirName)
		},
	})

	// --- Routes ---
	auth := middleware.AuthRequired(authService)

	handlers.NewAuthHandler(authService).RegisterRoutes(app)
	handlers.NewProfileHandler(profileService, cfg.MaxUploadBytes).RegisterRoutes(app, auth)
	handlers.NewRecommendationHandler(recommendationService).RegisterRoutes(app, auth)
	handlers.NewGardenHandler(gardenService).RegisterRoutes(app, auth)
	handlers.NewPlantHandler(plantService).RegisterRoutes(app)
	handlers.NewHealthHandler(healthService).RegisterRoutes(app)

	return app
}
