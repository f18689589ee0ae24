package viewrecordapi

import (
	"github.com/Abraxas-365/recruitboard/analytics/filter"
	"github.com/Abraxas-365/recruitboard/pkg/iam/auth"
	"github.com/Abraxas-365/recruitboard/pkg/kernel"
	"github.com/Abraxas-365/recruitboard/pkg/valx"
	"github.com/Abraxas-365/recruitboard/recruitment/viewrecord"
	"github.com/Abraxas-365/recruitboard/recruitment/viewrecord/viewrecordsrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for daily view counts
type Handlers struct {
	service *viewrecordsrv.ViewRecordService
}

// NewHandlers creates a new view record handlers instance
func NewHandlers(service *viewrecordsrv.ViewRecordService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// GetDailySheet returns the entry sheet of one day
// GET /api/views/daily?date=YYYY-MM-DD
func (h *Handlers) GetDailySheet(c *fiber.Ctx) error {
	sheet, err := h.service.Sheet(c.Context(), c.Query("date"))
	if err != nil {
		return err
	}
	return c.JSON(sheet)
}

// SaveDailySheet replaces the view counts of one day
// PUT /api/views/daily
func (h *Handlers) SaveDailySheet(c *fiber.Ctx) error {
	var req viewrecord.SaveDayRequest
	if err := c.BodyParser(&req); err != nil {
		return valx.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.SaveDay(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetDailyChart returns the daily view line chart for the filter query
// GET /api/views/chart
func (h *Handlers) GetDailyChart(c *fiber.Ctx) error {
	spec, err := filter.ParseQuery(c.Queries())
	if err != nil {
		return err
	}

	ch, err := h.service.DailyChart(c.Context(), spec)
	if err != nil {
		return err
	}
	return c.JSON(ch)
}

// DeleteRecord deletes one view record
// DELETE /api/views/:id
func (h *Handlers) DeleteRecord(c *fiber.Ctx) error {
	id := kernel.ViewRecordID(c.Params("id"))
	if id.IsEmpty() {
		return viewrecord.ErrRecordNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteRecord(c.Context(), id); err != nil {
		return err
	}
	return c.Status(fiber.StatusNoContent).Send(nil)
}

// ============================================================================
// Routes
// ============================================================================

// RegisterRoutes registers the view routes under /api/views
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	views := app.Group("/api/views", authMiddleware.Authenticate())

	views.Get("/daily", authMiddleware.RequireScope(auth.ScopeViewsRead), handlers.GetDailySheet)
	views.Put("/daily", authMiddleware.RequireScope(auth.ScopeViewsWrite), handlers.SaveDailySheet)
	views.Get("/chart", authMiddleware.RequireScope(auth.ScopeViewsRead), handlers.GetDailyChart)
	views.Delete("/:id", authMiddleware.RequireScope(auth.ScopeViewsWrite), handlers.DeleteRecord)
}
