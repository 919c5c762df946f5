package handlers

import (
	"context"
	"errors"
	"log"
	"time"

	"botaniq/internal/services"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler serves the liveness and readiness endpoints.
type HealthHandler struct {
	service *services.HealthService
}

func NewHealthHandler(service *services.HealthService) *HealthHandler {
	return &HealthHandler{service: service}
}

func (h *HealthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/health", h.HandleHealth)
	router.Get("/ready", h.HandleReady)
}

// HandleHealth reports that the process is up.
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// HandleReady checks every dependency with a one second budget. Only the name
// of the failing dependency is reported; the cause goes to the log.
func (h *HealthHandler) HandleReady(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), time.Second)
	defer cancel()
	if err := h.service.Ready(ctx); err != nil {
		log.Printf("Readiness check failed: %v", err)
		details := "dependency unavailable"
		var checkErr *services.CheckError
		if errors.As(err, &checkErr) {
			details = checkErr.Checker + " unavailable"
		}
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":  "not_ready",
			"details": details,
		})
	}
	return c.JSON(fiber.Map{"status": "ready"})
}
