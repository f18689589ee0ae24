package postingapi

import (
	"github.com/Abraxas-365/recruitboard/pkg/iam/auth"
	"github.com/Abraxas-365/recruitboard/pkg/kernel"
	"github.com/Abraxas-365/recruitboard/pkg/valx"
	"github.com/Abraxas-365/recruitboard/recruitment/posting"
	"github.com/Abraxas-365/recruitboard/recruitment/posting/postingsrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for posting operations
type Handlers struct {
	service *postingsrv.PostingService
}

// NewHandlers creates a new posting handlers instance
func NewHandlers(service *postingsrv.PostingService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// CreatePosting creates a new posting
// POST /api/postings
func (h *Handlers) CreatePosting(c *fiber.Ctx) error {
	var req posting.CreatePostingRequest
	if err := c.BodyParser(&req); err != nil {
		return valx.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	created, err := h.service.CreatePosting(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(posting.ToResponse(*created))
}

// GetPosting retrieves a posting by ID
// GET /api/postings/:id
func (h *Handlers) GetPosting(c *fiber.Ctx) error {
	id := kernel.PostingID(c.Params("id"))
	if id.IsEmpty() {
		return posting.ErrPostingNotFound().WithDetail("id", "missing or empty")
	}

	p, err := h.service.GetPosting(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(p)
}

// ListPostings retrieves postings with pagination
// GET /api/postings
func (h *Handlers) ListPostings(c *fiber.Ctx) error {
	if c.QueryBool("open") {
		open, err := h.service.ListOpen(c.Context())
		if err != nil {
			return err
		}
		items := make([]posting.PostingResponse, 0, len(open))
		for _, p := range open {
			items = append(items, posting.ToResponse(p))
		}
		return c.JSON(fiber.Map{"items": items})
	}

	postings, err := h.service.ListPostings(c.Context(), parsePaginationOptions(c))
	if err != nil {
		return err
	}

	return c.JSON(postings)
}

// UpdatePosting updates an existing posting
// PUT /api/postings/:id
func (h *Handlers) UpdatePosting(c *fiber.Ctx) error {
	id := kernel.PostingID(c.Params("id"))
	if id.IsEmpty() {
		return posting.ErrPostingNotFound().WithDetail("id", "missing or empty")
	}

	var req posting.UpdatePostingRequest
	if err := c.BodyParser(&req); err != nil {
		return valx.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	updated, err := h.service.UpdatePosting(c.Context(), id, req)
	if err != nil {
		return err
	}

	return c.JSON(posting.ToResponse(*updated))
}

// DeletePosting deletes a posting
// DELETE /api/postings/:id
func (h *Handlers) DeletePosting(c *fiber.Ctx) error {
	id := kernel.PostingID(c.Params("id"))
	if id.IsEmpty() {
		return posting.ErrPostingNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeletePosting(c.Context(), id); err != nil {
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

// RegisterRoutes registers the posting routes under /api/postings
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	postings := app.Group("/api/postings", authMiddleware.Authenticate())

	postings.Get("/", authMiddleware.RequireScope(auth.ScopePostingsRead), handlers.ListPostings)
	postings.Get("/:id", authMiddleware.RequireScope(auth.ScopePostingsRead), handlers.GetPosting)
	postings.Post("/", authMiddleware.RequireScope(auth.ScopePostingsWrite), handlers.CreatePosting)
	postings.Put("/:id", authMiddleware.RequireScope(auth.ScopePostingsWrite), handlers.UpdatePosting)
	postings.Delete("/:id", authMiddleware.RequireScope(auth.ScopePostingsWrite), handlers.DeletePosting)
}
