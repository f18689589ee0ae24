package auth

import (
	"time"

	"github.com/Abraxas-365/recruitboard/pkg/kernel"
	"github.com/Abraxas-365/recruitboard/pkg/valx"
	"github.com/gofiber/fiber/v2"
)

// SignInRequest is the login form
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthHandlers exposes the identity routes
type AuthHandlers struct {
	service    *AuthService
	middleware *TokenMiddleware
}

// NewAuthHandlers creates the auth handlers
func NewAuthHandlers(service *AuthService, middleware *TokenMiddleware) *AuthHandlers {
	return &AuthHandlers{
		service:    service,
		middleware: middleware,
	}
}

// Login signs an operator in
// POST /auth/login
func (h *AuthHandlers) Login(c *fiber.Ctx) error {
	var req SignInRequest
	if err := c.BodyParser(&req); err != nil {
		return valx.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}
	if err := valx.Struct(req); err != nil {
		return err
	}

	result, err := h.service.SignIn(c.Context(), kernel.Email(req.Email), req.Password)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// Logout revokes the current token
// POST /auth/logout
func (h *AuthHandlers) Logout(c *fiber.Ctx) error {
	ac, ok := GetAuthContext(c)
	if !ok {
		return ErrMissingToken()
	}

	if err := h.service.SignOut(c.Context(), ac.TokenID, time.Unix(ac.ExpiresAt, 0)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Me returns the signed-in operator
// GET /auth/me
func (h *AuthHandlers) Me(c *fiber.Ctx) error {
	ac, ok := GetAuthContext(c)
	if !ok || ac.UserID == nil {
		return ErrMissingToken()
	}

	profile, err := h.service.Me(c.Context(), *ac.UserID)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// RegisterRoutes registers /auth/login, /auth/logout and /auth/me
func (h *AuthHandlers) RegisterRoutes(app *fiber.App) {
	group := app.Group("/auth")
	group.Post("/login", h.Login)
	group.Post("/logout", h.middleware.Authenticate(), h.Logout)
	group.Get("/me", h.middleware.Authenticate(), h.Me)
}
