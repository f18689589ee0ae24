package posting

import (
	"github.com/Abraxas-365/recruitboard/pkg/kernel"
)

// CreatePostingRequest is the operator form for a new posting
type CreatePostingRequest struct {
	Site      string `json:"site" validate:"required"`
	Position  string `json:"position" validate:"required"`
	Title     string `json:"title" validate:"required,max=300"`
	Company   string `json:"company" validate:"max=200"`
	Status    string `json:"status"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Memo      string `json:"memo"`
}

// UpdatePostingRequest replaces the editable fields of a posting
type UpdatePostingRequest struct {
	Site      *string `json:"site,omitempty"`
	Position  *string `json:"position,omitempty"`
	Title     *string `json:"title,omitempty" validate:"omitempty,min=1,max=300"`
	Company   *string `json:"company,omitempty" validate:"omitempty,max=200"`
	Status    *string `json:"status,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Memo      *string `json:"memo,omitempty"`
}

// PostingResponse adds display labels to a posting
type PostingResponse struct {
	Posting
	SiteLabel     string `json:"site_label"`
	PositionLabel string `json:"position_label"`
	StatusLabel   string `json:"status_label"`
}

type PaginatedPostingsResponse = kernel.Paginated[PostingResponse]

// ToResponse decorates a posting with its labels
func ToResponse(p Posting) PostingResponse {
	return PostingResponse{
		Posting:       p,
		SiteLabel:     p.Site.Label(),
		PositionLabel: p.Position.Label(),
		StatusLabel:   p.Status.Label(),
	}
}
