// Package funnel reduces a set of applicants to per-status and cumulative
// tier counts.
package funnel

import (
	"math"

	"github.com/Abraxas-365/recruitboard/recruitment/applicant"
	"github.com/Abraxas-365/recruitboard/recruitment/viewrecord"
)

// Counts is the funnel of one applicant set
type Counts struct {
	Views    int64                    `json:"views"`
	ByStatus map[applicant.Status]int `json:"by_status"`

	Applications int `json:"applications"`
	Contacted    int `json:"contacted"`
	Interviewed  int `json:"interviewed"`
	Offered      int `json:"offered"`
	Hired        int `json:"hired"`

	Duplicates int `json:"duplicates"`
	Rejected   int `json:"rejected"`
	Cancelled  int `json:"cancelled"`
	Failed     int `json:"failed"`
	Excluded   int `json:"excluded"`

	ConversionRate float64 `json:"conversion_rate"`
}

// Aggregate counts applicants per status in one pass and derives the tier
// totals from the status taxonomy. Views sums the record deltas.
func Aggregate(applicants []applicant.Applicant, records []viewrecord.ViewRecord) Counts {
	c := Counts{ByStatus: make(map[applicant.Status]int, len(applicant.Statuses))}
	for _, s := range applicant.Statuses {
		c.ByStatus[s] = 0
	}

	for _, r := range records {
		c.Views += r.ViewsIncrease
	}
	for i := range applicants {
		c.ByStatus[applicants[i].Status]++
	}

	for status, n := range c.ByStatus {
		for _, t := range applicant.Tiers {
			if status.Reached(t) {
				*c.tier(t) += n
			}
		}
	}

	c.Duplicates = c.ByStatus[applicant.StatusDuplicate]
	c.Rejected = c.ByStatus[applicant.StatusRejected]
	c.Cancelled = c.ByStatus[applicant.StatusCancelled]
	c.Failed = c.ByStatus[applicant.StatusFailed]
	c.Excluded = c.ByStatus[applicant.StatusExcluded]

	c.ConversionRate = Rate(c.Hired, c.Applications)
	return c
}

func (c *Counts) tier(t applicant.Tier) *int {
	switch t {
	case applicant.TierContacted:
		return &c.Contacted
	case applicant.TierInterviewed:
		return &c.Interviewed
	case applicant.TierOffered:
		return &c.Offered
	case applicant.TierHired:
		return &c.Hired
	default:
		return &c.Applications
	}
}

// Tier returns the cumulative count of one tier
func (c Counts) Tier(t applicant.Tier) int {
	return *c.tier(t)
}

// ============================================================================
// Rates
// ============================================================================

// StageRates are the step conversions of a funnel, in percent
type StageRates struct {
	ViewToApp          float64 `json:"view_to_app"`
	AppToContact       float64 `json:"app_to_contact"`
	ContactToInterview float64 `json:"contact_to_interview"`
	InterviewToOffer   float64 `json:"interview_to_offer"`
	OfferToHire        float64 `json:"offer_to_hire"`
	Overall            float64 `json:"overall"`
}

// Stages computes every step rate of the funnel
func (c Counts) Stages() StageRates {
	return StageRates{
		ViewToApp:          Rate64(int64(c.Applications), c.Views),
		AppToContact:       Rate(c.Contacted, c.Applications),
		ContactToInterview: Rate(c.Interviewed, c.Contacted),
		InterviewToOffer:   Rate(c.Offered, c.Interviewed),
		OfferToHire:        Rate(c.Hired, c.Offered),
		Overall:            Rate(c.Hired, c.Applications),
	}
}

// Rate is num/den as a percentage rounded to one decimal, 0 when den is 0
func Rate(num, den int) float64 {
	return Rate64(int64(num), int64(den))
}

func Rate64(num, den int64) float64 {
	if den == 0 {
		return 0
	}
	return Round1(float64(num) / float64(den) * 100)
}

// Round1 rounds half away from zero to one decimal
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
