package handlers

import (
	"errors"
	"log"

	"botaniq/internal/middleware"
	"botaniq/internal/models"
	"botaniq/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// GardenHandler handles HTTP requests for garden entries.
type GardenHandler struct {
	service  *services.GardenService
	validate *validator.Validate
}

// NewGardenHandler creates a new GardenHandler.
func NewGardenHandler(service *services.GardenService) *GardenHandler {
	return &GardenHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the garden routes. Reads are public, mutations need a token.
func (h *GardenHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	gardenRoutes := router.Group("/manajemen")
	gardenRoutes.Get("/", h.HandleGetEntries)
	gardenRoutes.Get("/user/:userId", h.HandleGetEntriesByUser)
	gardenRoutes.Post("/", auth, h.HandleCreateEntry)
	gardenRoutes.Put("/:id", auth, h.HandleUpdateEntry)
	gardenRoutes.Delete("/:id", auth, h.HandleDeleteEntry)
}

// GardenRequest is the body of a garden entry creation.
type GardenRequest struct {
	PlantName         string `json:"plant_name" validate:"max=255"`
	Growth            string `json:"growth" validate:"max=255"`
	Soil              string `json:"soil" validate:"max=255"`
	Sunlight          string `json:"sunlight" validate:"max=255"`
	Watering          string `json:"watering" validate:"max=255"`
	FertilizationType string `json:"fertilization_type" validate:"max=255"`
	Family            string `json:"family" validate:"required,max=255"`
}

// HandleGetEntries lists every garden entry.
func (h *GardenHandler) HandleGetEntries(c *fiber.Ctx) error {
	entries, err := h.service.GetAllEntries(c.UserContext())
	if err != nil {
		log.Printf("Error getting garden entries: %v", err)
		return fail(c, fiber.StatusInternalServerError, "could not retrieve garden entries")
	}
	return c.JSON(fiber.Map{"status": "success", "data": entries})
}

// HandleGetEntriesByUser lists the garden of one user.
func (h *GardenHandler) HandleGetEntriesByUser(c *fiber.Ctx) error {
	userID := c.Params("userId")
	entries, err := h.service.GetEntriesByUser(c.UserContext(), userID)
	if err != nil {
		log.Printf("Error getting garden of user %s: %v", userID, err)
		return fail(c, fiber.StatusInternalServerError, "could not retrieve garden entries")
	}
	return c.JSON(fiber.Map{"status": "success", "data": entries})
}

// HandleCreateEntry adds an entry to the caller's garden.
func (h *GardenHandler) HandleCreateEntry(c *fiber.Ctx) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "authentication required")
	}

	var req GardenRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing garden body: %v", err)
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, firstViolation(err))
	}

	entry := &models.GardenEntry{
		PlantName:         req.PlantName,
		Growth:            req.Growth,
		Soil:              req.Soil,
		Sunlight:          req.Sunlight,
		Watering:          req.Watering,
		FertilizationType: req.FertilizationType,
		Family:            req.Family,
	}
	if err := h.service.CreateEntry(c.UserContext(), principal, entry); err != nil {
		log.Printf("Error creating garden entry for %s: %v", principal.ID, err)
		return fail(c, fiber.StatusInternalServerError, "failed to add data")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "garden entry added",
		"manajemenId": entry.ID,
	})
}

// HandleUpdateEntry edits one of the caller's entries.
func (h *GardenHandler) HandleUpdateEntry(c *fiber.Ctx) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "authentication required")
	}
	id := c.Params("id")

	var changes models.GardenChanges
	if err := c.BodyParser(&changes); err != nil {
		log.Printf("Error parsing garden update body: %v", err)
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(changes); err != nil {
		return fail(c, fiber.StatusBadRequest, firstViolation(err))
	}

	if err := h.service.UpdateEntry(c.UserContext(), principal, id, changes); err != nil {
		if errors.Is(err, services.ErrNotFoundOrForbidden) {
			return fail(c, fiber.StatusNotFound, "data not found or access denied")
		}
		log.Printf("Error updating garden entry %s: %v", id, err)
		return fail(c, fiber.StatusInternalServerError, "could not update garden entry")
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "data updated successfully",
	})
}

// HandleDeleteEntry removes one of the caller's entries.
func (h *GardenHandler) HandleDeleteEntry(c *fiber.Ctx) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "authentication required")
	}
	id := c.Params("id")

	if err := h.service.DeleteEntry(c.UserContext(), principal, id); err != nil {
		if errors.Is(err, services.ErrNotFoundOrForbidden) {
			return fail(c, fiber.StatusNotFound, "data not found or access denied")
		}
		log.Printf("Error deleting garden entry %s: %v", id, err)
		return fail(c, fiber.StatusInternalServerError, "could not delete garden entry")
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "data deleted successfully",
	})
}
