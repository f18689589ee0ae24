package posting

import (
	"context"

	"github.com/Abraxas-365/recruitboard/pkg/kernel"
)

type Repository interface {
	// Create stores a new posting
	Create(ctx context.Context, posting *Posting) error

	// Update overwrites an existing posting
	Update(ctx context.Context, id kernel.PostingID, posting *Posting) error

	// GetByID retrieves a posting by ID
	GetByID(ctx context.Context, id kernel.PostingID) (*Posting, error)

	// Delete removes a posting. Applicants and view records that reference it are left in place.
	Delete(ctx context.Context, id kernel.PostingID) error

	// List returns the whole collection in store order
	List(ctx context.Context) ([]Posting, error)

	// ListPaginated returns one page of postings in display order
	ListPaginated(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Posting], error)
}
