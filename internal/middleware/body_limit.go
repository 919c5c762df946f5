package middleware

import "github.com/gofiber/fiber/v2"

// BodyLimit rejects requests whose declared Content-Length exceeds limit bytes.
// Request bodies are streamed, so the server no longer enforces the limit itself;
// bodies without a length are bounded by the handlers that read them.
func BodyLimit(limit int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if limit > 0 && c.Request().Header.ContentLength() > limit {
			return fiber.ErrRequestEntityTooLarge
		}
		return c.Next()
	}
}
