package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// fail writes the JSON envelope used for every client-visible error.
func fail(c *fiber.Ctx, status int, message string) error {
	state := "fail"
	if status >= fiber.StatusInternalServerError {
		state = "error"
	}
	return c.Status(status).JSON(fiber.Map{
		"status":  state,
		"message": message,
	})
}

// ErrorHandler renders errors that escape handlers (unknown routes, oversized
// bodies, panics recovered by middleware) in the same envelope as fail.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}
	if code == fiber.StatusRequestEntityTooLarge {
		message = "payload too large"
	}
	if code >= fiber.StatusInternalServerError {
		log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
		message = "internal server error"
	}
	return fail(c, code, message)
}
