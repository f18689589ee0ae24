package dashboardapi

import (
	"github.com/Abraxas-365/recruitboard/analytics/filter"
	"github.com/Abraxas-365/recruitboard/pkg/iam/auth"
	"github.com/Abraxas-365/recruitboard/pkg/kernel"
	"github.com/Abraxas-365/recruitboard/pkg/valx"
	"github.com/Abraxas-365/recruitboard/recruitment/dashboard"
	"github.com/Abraxas-365/recruitboard/recruitment/dashboard/dashboardsrv"
	"github.com/Abraxas-365/recruitboard/recruitment/posting"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for the analysis pages and reports
type Handlers struct {
	service *dashboardsrv.DashboardService
}

// NewHandlers creates a new dashboard handlers instance
func NewHandlers(service *dashboardsrv.DashboardService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// GetOverview returns the landing page widgets. Without filter parameters
// the caller's saved filter and widgets apply.
// GET /api/dashboard/overview
func (h *Handlers) GetOverview(c *fiber.Ctx) error {
	q := c.Queries()
	if filter.HasFilterKeys(q) {
		spec, err := filter.ParseQuery(q)
		if err != nil {
			return err
		}
		out, err := h.service.Overview(c.Context(), spec, nil)
		if err != nil {
			return err
		}
		return c.JSON(out)
	}

	prefs := dashboard.DefaultPreferences()
	if id := userID(c); !id.IsEmpty() {
		if saved, err := h.service.Preferences(c.Context(), id); err == nil {
			prefs = *saved
		}
	}
	out, err := h.service.Overview(c.Context(), prefs.Filter, &prefs.Widgets)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetSummary returns grouped funnel rows
// GET /api/dashboard/summary?group_by=site|position|site_position|none
func (h *Handlers) GetSummary(c *fiber.Ctx) error {
	spec, err := h.spec(c)
	if err != nil {
		return err
	}

	rows, err := h.service.Summary(c.Context(), spec, c.Query("group_by"), c.QueryBool("show_empty", false))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"rows": rows})
}

// GetComparison returns the site comparison page
// GET /api/dashboard/comparison?sort=conversion
func (h *Handlers) GetComparison(c *fiber.Ctx) error {
	spec, err := h.spec(c)
	if err != nil {
		return err
	}

	out, err := h.service.Comparison(c.Context(), spec, c.Query("sort"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetEfficiency returns the efficiency analysis page
// GET /api/dashboard/efficiency?sort=overall
func (h *Handlers) GetEfficiency(c *fiber.Ctx) error {
	spec, err := h.spec(c)
	if err != nil {
		return err
	}

	out, err := h.service.Efficiency(c.Context(), spec, c.Query("sort"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetTrends returns the trend analysis page
// GET /api/dashboard/trends
func (h *Handlers) GetTrends(c *fiber.Ctx) error {
	spec, err := h.spec(c)
	if err != nil {
		return err
	}

	out, err := h.service.Trends(c.Context(), spec)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetPostingDetail returns the funnel and applicants of one posting
// GET /api/dashboard/postings/:id
func (h *Handlers) GetPostingDetail(c *fiber.Ctx) error {
	id := kernel.PostingID(c.Params("id"))
	if id.IsEmpty() {
		return posting.ErrPostingNotFound().WithDetail("id", "missing or empty")
	}

	out, err := h.service.PostingDetail(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ============================================================================
// Preferences
// ============================================================================

// GetPreferences returns the caller's saved dashboard state
// GET /api/dashboard/preferences
func (h *Handlers) GetPreferences(c *fiber.Ctx) error {
	prefs, err := h.service.Preferences(c.Context(), userID(c))
	if err != nil {
		return err
	}
	return c.JSON(prefs)
}

// SavePreferences replaces the caller's saved dashboard state
// PUT /api/dashboard/preferences
func (h *Handlers) SavePreferences(c *fiber.Ctx) error {
	var req dashboard.SavePreferencesRequest
	if err := c.BodyParser(&req); err != nil {
		return valx.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	prefs, err := h.service.SavePreferences(c.Context(), userID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(prefs)
}

// ============================================================================
// Reports
// ============================================================================

// ComposeReport returns the report document without archiving it
// POST /api/reports
func (h *Handlers) ComposeReport(c *fiber.Ctx) error {
	var req dashboard.ReportRequest
	if err := c.BodyParser(&req); err != nil {
		return valx.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	r, err := h.service.Report(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(r)
}

// ExportReport composes the report and archives it
// POST /api/reports/export
func (h *Handlers) ExportReport(c *fiber.Ctx) error {
	var req dashboard.ReportRequest
	if err := c.BodyParser(&req); err != nil {
		return valx.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	out, err := h.service.Export(c.Context(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListReports returns the archived report keys of one day
// GET /api/reports?date=YYYY-MM-DD
func (h *Handlers) ListReports(c *fiber.Ctx) error {
	keys, err := h.service.ListArchived(c.Context(), c.Query("date"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"keys": keys})
}

// ============================================================================
// Helpers
// ============================================================================

// spec reads the filter parameters, falling back to the saved filter when
// the request carries none
func (h *Handlers) spec(c *fiber.Ctx) (filter.Spec, error) {
	q := c.Queries()
	if filter.HasFilterKeys(q) {
		return filter.ParseQuery(q)
	}
	return h.service.DefaultSpec(c.Context(), userID(c)), nil
}

func userID(c *fiber.Ctx) kernel.UserID {
	ac, ok := auth.GetAuthContext(c)
	if !ok || ac.UserID == nil {
		return ""
	}
	return *ac.UserID
}

// ============================================================================
// Routes
// ============================================================================

// RegisterRoutes registers the routes under /api/dashboard and /api/reports
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	board := app.Group("/api/dashboard", authMiddleware.Authenticate())

	board.Get("/overview", authMiddleware.RequireScope(auth.ScopeReportsRead), handlers.GetOverview)
	board.Get("/summary", authMiddleware.RequireScope(auth.ScopeReportsRead), handlers.GetSummary)
	board.Get("/comparison", authMiddleware.RequireScope(auth.ScopeReportsRead), handlers.GetComparison)
	board.Get("/efficiency", authMiddleware.RequireScope(auth.ScopeReportsRead), handlers.GetEfficiency)
	board.Get("/trends", authMiddleware.RequireScope(auth.ScopeReportsRead), handlers.GetTrends)
	board.Get("/postings/:id", authMiddleware.RequireScope(auth.ScopeReportsRead), handlers.GetPostingDetail)
	board.Get("/preferences", authMiddleware.RequireScope(auth.ScopeReportsRead), handlers.GetPreferences)
	board.Put("/preferences", authMiddleware.RequireScope(auth.ScopeReportsRead), handlers.SavePreferences)

	reports := app.Group("/api/reports", authMiddleware.Authenticate())

	reports.Get("/", authMiddleware.RequireScope(auth.ScopeReportsRead), handlers.ListReports)
	reports.Post("/", authMiddleware.RequireScope(auth.ScopeReportsRead), handlers.ComposeReport)
	reports.Post("/export", authMiddleware.RequireScope(auth.ScopeReportsExport), handlers.ExportReport)
}

