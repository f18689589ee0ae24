package applicant

import (
	"context"
	"time"

	"github.com/Abraxas-365/recruitboard/pkg/kernel"
)

type Repository interface {
	// Create stores a new applicant
	Create(ctx context.Context, applicant *Applicant) error

	// Update overwrites an existing applicant
	Update(ctx context.Context, id kernel.ApplicantID, applicant *Applicant) error

	// UpdateStatus changes only the status column
	UpdateStatus(ctx context.Context, id kernel.ApplicantID, status Status, updatedAt time.Time) error

	// GetByID retrieves an applicant by ID
	GetByID(ctx context.Context, id kernel.ApplicantID) (*Applicant, error)

	// Delete removes an applicant
	Delete(ctx context.Context, id kernel.ApplicantID) error

	// List returns the whole collection in store order
	List(ctx context.Context) ([]Applicant, error)

	// ListPaginated returns one page of the raw collection, newest application first
	ListPaginated(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Applicant], error)
}
