package applicant

import (
	"github.com/Abraxas-365/recruitboard/pkg/kernel"
)

// CreateApplicantRequest is the operator form for a new applicant.
// Status defaults to 지원 and gender to 남 when left empty.
type CreateApplicantRequest struct {
	Name        string             `json:"name" validate:"required,max=100"`
	Gender      string             `json:"gender"`
	Age         kernel.OptionalInt `json:"age"`
	ContactInfo string             `json:"contact_info" validate:"max=200"`
	PostingID   string             `json:"applied_job_id" validate:"required"`
	AppliedDate string             `json:"applied_date" validate:"required"`
	Status      string             `json:"status"`
	Memo        string             `json:"memo"`
}

// UpdateApplicantRequest replaces the editable fields of an applicant
type UpdateApplicantRequest struct {
	Name        *string             `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Gender      *string             `json:"gender,omitempty"`
	Age         *kernel.OptionalInt `json:"age,omitempty"`
	ContactInfo *string             `json:"contact_info,omitempty" validate:"omitempty,max=200"`
	PostingID   *string             `json:"applied_job_id,omitempty"`
	AppliedDate *string             `json:"applied_date,omitempty"`
	Status      *string             `json:"status,omitempty"`
	Memo        *string             `json:"memo,omitempty"`
}

// UpdateStatusRequest is the inline status control
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ApplicantResponse joins an applicant with its posting for display
type ApplicantResponse struct {
	Applicant
	StatusLabel   string              `json:"status_label"`
	GenderLabel   string              `json:"gender_label"`
	JobTitle      kernel.PostingTitle `json:"job_title,omitempty"`
	Site          kernel.Site         `json:"site,omitempty"`
	SiteLabel     string              `json:"site_label,omitempty"`
	Position      kernel.Position     `json:"position,omitempty"`
	PositionLabel string              `json:"position_label,omitempty"`
	Orphaned      bool                `json:"orphaned,omitempty"`
}

type PaginatedApplicantsResponse = kernel.Paginated[ApplicantResponse]
