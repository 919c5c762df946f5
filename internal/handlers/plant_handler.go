package handlers

import (
	"log"

	"botaniq/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PlantHandler serves the plant reference tables.
type PlantHandler struct {
	service *services.PlantService
}

func NewPlantHandler(service *services.PlantService) *PlantHandler {
	return &PlantHandler{service: service}
}

func (h *PlantHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/plants", h.HandleGetPlants)
	router.Get("/plantsandfamily", h.HandleGetPlantFamilies)
}

func (h *PlantHandler) HandleGetPlants(c *fiber.Ctx) error {
	plants, err := h.service.GetPlants(c.UserContext())
	if err != nil {
		log.Printf("Error getting plants: %v", err)
		return fail(c, fiber.StatusInternalServerError, "could not retrieve plants")
	}
	return c.JSON(fiber.Map{"status": "success", "data": plants})
}

func (h *PlantHandler) HandleGetPlantFamilies(c *fiber.Ctx) error {
	families, err := h.service.GetPlantFamilies(c.UserContext())
	if err != nil {
		log.Printf("Error getting plant families: %v", err)
		return fail(c, fiber.StatusInternalServerError, "could not retrieve plant families")
	}
	return c.JSON(fiber.Map{"status": "success", "data": families})
}
