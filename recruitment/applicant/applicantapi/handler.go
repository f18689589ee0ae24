package applicantapi

import (
	"github.com/Abraxas-365/recruitboard/analytics/filter"
	"github.com/Abraxas-365/recruitboard/pkg/iam/auth"
	"github.com/Abraxas-365/recruitboard/pkg/kernel"
	"github.com/Abraxas-365/recruitboard/pkg/valx"
	"github.com/Abraxas-365/recruitboard/recruitment/applicant"
	"github.com/Abraxas-365/recruitboard/recruitment/applicant/applicantsrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for applicant operations
type Handlers struct {
	service *applicantsrv.ApplicantService
}

// NewHandlers creates a new applicant handlers instance
func NewHandlers(service *applicantsrv.ApplicantService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// CreateApplicant registers a new applicant
// POST /api/applicants
func (h *Handlers) CreateApplicant(c *fiber.Ctx) error {
	var req applicant.CreateApplicantRequest
	if err := c.BodyParser(&req); err != nil {
		return valx.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	created, err := h.service.CreateApplicant(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetApplicant retrieves an applicant by ID
// GET /api/applicants/:id
func (h *Handlers) GetApplicant(c *fiber.Ctx) error {
	id := kernel.ApplicantID(c.Params("id"))
	if id.IsEmpty() {
		return applicant.ErrApplicantNotFound().WithDetail("id", "missing or empty")
	}

	a, err := h.service.GetApplicant(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(a)
}

// ListApplicants lists applicants matching the filter query
// GET /api/applicants?sites=&positions=&status=&q=&include_orphans=
func (h *Handlers) ListApplicants(c *fiber.Ctx) error {
	spec, err := filter.ParseQuery(c.Queries())
	if err != nil {
		return err
	}

	page, err := h.service.ListApplicants(c.Context(), applicantsrv.ListQuery{
		Filter:         spec,
		IncludeOrphans: c.QueryBool("include_orphans"),
	}, parsePaginationOptions(c))
	if err != nil {
		return err
	}

	return c.JSON(page)
}

// ListRawApplicants pages through the unfiltered collection
// GET /api/applicants/raw
func (h *Handlers) ListRawApplicants(c *fiber.Ctx) error {
	page, err := h.service.ListRaw(c.Context(), parsePaginationOptions(c))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// UpdateApplicant updates an existing applicant
// PUT /api/applicants/:id
func (h *Handlers) UpdateApplicant(c *fiber.Ctx) error {
	id := kernel.ApplicantID(c.Params("id"))
	if id.IsEmpty() {
		return applicant.ErrApplicantNotFound().WithDetail("id", "missing or empty")
	}

	var req applicant.UpdateApplicantRequest
	if err := c.BodyParser(&req); err != nil {
		return valx.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	updated, err := h.service.UpdateApplicant(c.Context(), id, req)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// UpdateStatus changes the status of an applicant
// PATCH /api/applicants/:id/status
func (h *Handlers) UpdateStatus(c *fiber.Ctx) error {
	id := kernel.ApplicantID(c.Params("id"))
	if id.IsEmpty() {
		return applicant.ErrApplicantNotFound().WithDetail("id", "missing or empty")
	}

	var req applicant.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return valx.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	updated, err := h.service.UpdateStatus(c.Context(), id, req)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// DeleteApplicant deletes an applicant
// DELETE /api/applicants/:id
func (h *Handlers) DeleteApplicant(c *fiber.Ctx) error {
	id := kernel.ApplicantID(c.Params("id"))
	if id.IsEmpty() {
		return applicant.ErrApplicantNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteApplicant(c.Context(), id); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

// ============================================================================
// Helper Functions
// ============================================================================

// parsePaginationOptions extracts pagination options from query parameters
func parsePaginationOptions(c *fiber.Ctx) kernel.PaginationOptions {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)

	if page < 1 {
		page = 1
	}
	if page > kernel.MaxPage {
		page = kernel.MaxPage
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return kernel.PaginationOptions{
		Page:     page,
		PageSize: pageSize,
	}
}

// ============================================================================
// Routes
// ============================================================================

// RegisterRoutes registers the applicant routes under /api/applicants
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	applicants := app.Group("/api/applicants", authMiddleware.Authenticate())

	applicants.Get("/", authMiddleware.RequireScope(auth.ScopeApplicantsRead), handlers.ListApplicants)
	applicants.Get("/raw", authMiddleware.RequireScope(auth.ScopeApplicantsRead), handlers.ListRawApplicants)
	applicants.Get("/:id", authMiddleware.RequireScope(auth.ScopeApplicantsRead), handlers.GetApplicant)
	applicants.Post("/", authMiddleware.RequireScope(auth.ScopeApplicantsWrite), handlers.CreateApplicant)
	applicants.Put("/:id", authMiddleware.RequireScope(auth.ScopeApplicantsWrite), handlers.UpdateApplicant)
	applicants.Patch("/:id/status", authMiddleware.RequireScope(auth.ScopeApplicantsWrite), handlers.UpdateStatus)
	applicants.Delete("/:id", authMiddleware.RequireScope(auth.ScopeApplicantsWrite), handlers.DeleteApplicant)
}
