package applicant

import (
	"fmt"
	"strings"
	"time"

	"github.com/Abraxas-365/recruitboard/pkg/kernel"
)

// Gender as recorded on the applicant form
type Gender string

const (
	GenderMale        Gender = "MALE"
	GenderFemale      Gender = "FEMALE"
	GenderUnspecified Gender = ""
)

var genderLabels = map[Gender]string{
	GenderMale:        "남",
	GenderFemale:      "여",
	GenderUnspecified: "미지정",
}

func (g Gender) Label() string {
	if l, ok := genderLabels[g]; ok {
		return l
	}
	return genderLabels[GenderUnspecified]
}

// ParseGender accepts MALE/FEMALE, 남/여 or an empty string
func ParseGender(v string) (Gender, error) {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		return GenderUnspecified, nil
	case strings.EqualFold(v, string(GenderMale)) || v == "남":
		return GenderMale, nil
	case strings.EqualFold(v, string(GenderFemale)) || v == "여":
		return GenderFemale, nil
	}
	return "", fmt.Errorf("unknown gender %q", v)
}

// Applicant is one candidate's application to one posting
type Applicant struct {
	ID          kernel.ApplicantID `db:"id" json:"id"`
	Name        kernel.PersonName  `db:"name" json:"name"`
	Gender      Gender             `db:"gender" json:"gender"`
	Age         *int               `db:"age" json:"age,omitempty"`
	ContactInfo kernel.ContactInfo `db:"contact_info" json:"contact_info,omitempty"`
	PostingID   kernel.PostingID   `db:"applied_job_id" json:"applied_job_id"`
	AppliedDate kernel.Date        `db:"applied_date" json:"applied_date"`
	Status      Status             `db:"status" json:"status"`
	Memo        kernel.Memo        `db:"memo" json:"memo,omitempty"`
	CreatedAt   time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// HasAge reports whether a usable age was recorded
func (a *Applicant) HasAge() bool {
	return a.Age != nil && *a.Age > 0
}

// NameContains matches a case-insensitive substring of the name
func (a *Applicant) NameContains(query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(string(a.Name)), strings.ToLower(query))
}

// ChangeStatus moves the applicant to a new status
func (a *Applicant) ChangeStatus(status Status, at time.Time) error {
	if !status.IsValid() {
		return ErrInvalidStatus().WithDetail("status", string(status))
	}
	a.Status = status
	a.UpdatedAt = at
	return nil
}
