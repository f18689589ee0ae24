package settingapi

import (
	"github.com/Abraxas-365/recruitboard/pkg/iam/auth"
	"github.com/Abraxas-365/recruitboard/pkg/valx"
	"github.com/Abraxas-365/recruitboard/recruitment/setting"
	"github.com/Abraxas-365/recruitboard/recruitment/setting/settingsrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for goals and site costs
type Handlers struct {
	service *settingsrv.SettingService
}

// NewHandlers creates a new setting handlers instance
func NewHandlers(service *settingsrv.SettingService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// GetSettings lists goals and site settings
// GET /api/settings
func (h *Handlers) GetSettings(c *fiber.Ctx) error {
	settings, err := h.service.GetSettings(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(settings)
}

// UpsertGoal sets the hiring target of a month
// PUT /api/settings/goals
func (h *Handlers) UpsertGoal(c *fiber.Ctx) error {
	var req setting.UpsertGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return valx.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	goal, err := h.service.UpsertGoal(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(goal)
}

// UpsertSiteSetting sets the cost of a site
// PUT /api/settings/sites
func (h *Handlers) UpsertSiteSetting(c *fiber.Ctx) error {
	var req setting.UpsertSiteSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return valx.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	s, err := h.service.UpsertSiteSetting(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(s)
}

// RegisterRoutes registers the setting routes under /api/settings
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	settings := app.Group("/api/settings", authMiddleware.Authenticate())

	settings.Get("/", authMiddleware.RequireScope(auth.ScopeSettingsRead), handlers.GetSettings)
	settings.Put("/goals", authMiddleware.RequireScope(auth.ScopeSettingsWrite), handlers.UpsertGoal)
	settings.Put("/sites", authMiddleware.RequireScope(auth.ScopeSettingsWrite), handlers.UpsertSiteSetting)
}
