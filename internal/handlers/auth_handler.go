package handlers

import (
	"errors"
	"log"

	"botaniq/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    newValidator(),
	}
}

// RegisterRoutes registers the authentication routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/register", h.HandleRegister)
	router.Post("/login", h.HandleLogin)
}

// RegisterRequest represents the request body for registration.
// Rules are checked in field order and tag order; only the first failure is reported.
type RegisterRequest struct {
	Name     string `json:"nama" form:"nama" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=8,pwdigit,pwlower,pwupper,pwsymbol,pwnospace"`
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing register request body: %v", err)
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, firstViolation(err))
	}

	user, err := h.authService.RegisterUser(c.UserContext(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return fail(c, fiber.StatusConflict, "email already in use")
		}
		log.Printf("Error registering user %s: %v", req.Email, err)
		return fail(c, fiber.StatusInternalServerError, "registration failed due to a server error")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "registration succeeded",
		"userId":  user.ID,
	})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// HandleLogin handles user login and issues a JWT token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, firstViolation(err))
	}

	token, user, err := h.authService.LoginUser(c.UserContext(), req.Email, req.Password)
	switch {
	case errors.Is(err, services.ErrEmailNotFound):
		return fail(c, fiber.StatusUnauthorized, "email not found")
	case errors.Is(err, services.ErrWrongPassword):
		log.Printf("Failed login attempt for %s", req.Email)
		return fail(c, fiber.StatusUnauthorized, "wrong password")
	case err != nil:
		log.Printf("Error during login for %s: %v", req.Email, err)
		return fail(c, fiber.StatusInternalServerError, "login failed due to a server error")
	}

	return c.JSON(fiber.Map{
		"message": "login succeeded",
		"token":   token,
		"user":    user.Public(),
	})
}
