package handlers

import (
	"log"

	"botaniq/internal/middleware"
	"botaniq/internal/models"
	"botaniq/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// RecommendationHandler handles HTTP requests for the plant catalog.
type RecommendationHandler struct {
	service  *services.RecommendationService
	validate *validator.Validate
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(service *services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the catalog routes. Reading is public, creating needs a token.
func (h *RecommendationHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Get("/rekomendasi", h.HandleGetRecommendations)
	router.Post("/rekomendasi", auth, h.HandleCreateRecommendation)
}

// RecommendationRequest is the body of a catalog creation.
type RecommendationRequest struct {
	Latin          string   `json:"latin" validate:"max=255"`
	Family         string   `json:"family" validate:"required,max=255"`
	Category       string   `json:"category" validate:"max=255"`
	Climate        string   `json:"climate" validate:"max=255"`
	IdealLight     string   `json:"ideal_light" validate:"max=255"`
	ToleratedLight string   `json:"tolerated_light" validate:"max=255"`
	Watering       string   `json:"watering"`
	Insects        string   `json:"insects"`
	PlantUse       string   `json:"plant_use"`
	TempMaxCelsius *float64 `json:"temp_max_celsius"`
	TempMinCelsius *float64 `json:"temp_min_celsius"`
}

func (r RecommendationRequest) toModel() *models.Recommendation {
	return &models.Recommendation{
		Latin:          r.Latin,
		Family:         r.Family,
		Category:       r.Category,
		Climate:        r.Climate,
		IdealLight:     r.IdealLight,
		ToleratedLight: r.ToleratedLight,
		Watering:       r.Watering,
		Insects:        r.Insects,
		PlantUse:       r.PlantUse,
		TempMaxCelsius: r.TempMaxCelsius,
		TempMinCelsius: r.TempMinCelsius,
	}
}

// HandleGetRecommendations lists the whole catalog.
func (h *RecommendationHandler) HandleGetRecommendations(c *fiber.Ctx) error {
	recs, err := h.service.GetAllRecommendations(c.UserContext())
	if err != nil {
		log.Printf("Error getting recommendations: %v", err)
		return fail(c, fiber.StatusInternalServerError, "could not retrieve recommendations")
	}
	return c.JSON(fiber.Map{"status": "success", "data": recs})
}

// HandleCreateRecommendation stores a catalog entry and enrolls it in the caller's garden.
func (h *RecommendationHandler) HandleCreateRecommendation(c *fiber.Ctx) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "authentication required")
	}

	var req RecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing recommendation body: %v", err)
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, firstViolation(err))
	}

	rec := req.toModel()
	entry, err := h.service.CreateRecommendation(c.UserContext(), principal, rec)
	if err != nil {
		log.Printf("Error creating recommendation for %s: %v", principal.ID, err)
		return fail(c, fiber.StatusInternalServerError, "failed to add data")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":       "recommendation added and enrolled in garden",
		"rekomendasiId": rec.ID,
		"manajemenId":   entry.ID,
	})
}
