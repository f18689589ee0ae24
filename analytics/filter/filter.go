// Package filter builds the site, position, status, date and name predicates
// shared by every dashboard view and applies them to the record collections.
package filter

import (
	"net/http"
	"strings"

	"github.com/Abraxas-365/recruitboard/analytics/daterange"
	"github.com/Abraxas-365/recruitboard/pkg/errx"
	"github.com/Abraxas-365/recruitboard/pkg/kernel"
	"github.com/Abraxas-365/recruitboard/recruitment/applicant"
	"github.com/Abraxas-365/recruitboard/recruitment/posting"
	"github.com/Abraxas-365/recruitboard/recruitment/viewrecord"
)

// StatusAll disables the status predicate
const StatusAll = "all"

var ErrRegistry = errx.NewRegistry("FILTER")

var (
	CodeInvalidStatus   = ErrRegistry.Register("INVALID_STATUS", errx.TypeValidation, http.StatusBadRequest, "Unknown status filter")
	CodeInvalidPeriod   = ErrRegistry.Register("INVALID_PERIOD", errx.TypeValidation, http.StatusBadRequest, "Unknown period")
	CodeInvalidDate     = ErrRegistry.Register("INVALID_DATE", errx.TypeValidation, http.StatusBadRequest, "Dates must be YYYY-MM-DD")
	CodeInvalidSite     = ErrRegistry.Register("INVALID_SITE", errx.TypeValidation, http.StatusBadRequest, "Unknown site filter")
	CodeInvalidPosition = ErrRegistry.Register("INVALID_POSITION", errx.TypeValidation, http.StatusBadRequest, "Unknown position filter")
)

// Spec is the serializable filter selection. A nil Sites or Positions slice
// selects every value; an empty non-nil slice selects none.
type Spec struct {
	Sites     []kernel.Site     `json:"sites"`
	Positions []kernel.Position `json:"positions"`
	Status    string            `json:"status,omitempty"`
	Period    daterange.Period  `json:"period,omitempty"`
	Start     kernel.Date       `json:"start,omitempty"`
	End       kernel.Date       `json:"end,omitempty"`
	NameQuery string            `json:"name_query,omitempty"`
	PostingID kernel.PostingID  `json:"posting_id,omitempty"`
}

// Filter is a resolved Spec ready to test records
type Filter struct {
	sites     []kernel.Site
	positions []kernel.Position
	status    applicant.Status
	rng       daterange.Range
	nameQuery string
	postingID kernel.PostingID
}

// New resolves the spec against the clock
func New(spec Spec, clock daterange.Clock) (*Filter, error) {
	f := &Filter{
		sites:     kernel.Sites,
		positions: kernel.Positions,
		nameQuery: strings.TrimSpace(spec.NameQuery),
		postingID: spec.PostingID,
	}
	if spec.Sites != nil {
		f.sites = kernel.DistinctSites(spec.Sites)
	}
	if spec.Positions != nil {
		f.positions = kernel.DistinctPositions(spec.Positions)
	}

	if spec.Status != "" && !strings.EqualFold(spec.Status, StatusAll) {
		status, err := applicant.ParseStatus(spec.Status)
		if err != nil {
			return nil, ErrRegistry.New(CodeInvalidStatus).WithDetail("status", spec.Status)
		}
		f.status = status
	}

	period, err := daterange.ParsePeriod(string(spec.Period))
	if err != nil {
		return nil, ErrRegistry.New(CodeInvalidPeriod).WithDetail("period", string(spec.Period))
	}
	for _, d := range []kernel.Date{spec.Start, spec.End} {
		if d.IsEmpty() {
			continue
		}
		if _, err := kernel.ParseDate(d.String()); err != nil {
			return nil, ErrRegistry.New(CodeInvalidDate).WithDetail("date", d.String())
		}
	}
	f.rng = daterange.Resolve(period, daterange.Range{Start: spec.Start, End: spec.End}, clock)

	return f, nil
}

// MustNew is New for specs known to be valid
func MustNew(spec Spec, clock daterange.Clock) *Filter {
	f, err := New(spec, clock)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Filter) Sites() []kernel.Site         { return f.sites }
func (f *Filter) Positions() []kernel.Position { return f.positions }
func (f *Filter) Range() daterange.Range       { return f.rng }
func (f *Filter) PostingID() kernel.PostingID  { return f.postingID }

// AllSites reports whether every site is selected
func (f *Filter) AllSites() bool {
	for _, s := range kernel.Sites {
		if !kernel.ContainsSite(f.sites, s) {
			return false
		}
	}
	return true
}

// AllPositions reports whether every position is selected
func (f *Filter) AllPositions() bool {
	for _, p := range kernel.Positions {
		if !kernel.ContainsPosition(f.positions, p) {
			return false
		}
	}
	return true
}

// SingleSite returns the site when exactly one is selected
func (f *Filter) SingleSite() (kernel.Site, bool) {
	if len(f.sites) != 1 {
		return "", false
	}
	return f.sites[0], true
}

// ============================================================================
// Predicates
// ============================================================================

// PostingMatches tests the site and position of a posting, and its ID when
// the filter is pinned to one posting
func (f *Filter) PostingMatches(p *posting.Posting) bool {
	if !f.postingID.IsEmpty() && p.ID != f.postingID {
		return false
	}
	return p.Matches(f.sites, f.positions)
}

// ApplicantMatches resolves the applicant's posting and tests every
// predicate. Applicants whose posting is missing never match.
func (f *Filter) ApplicantMatches(a *applicant.Applicant, ix PostingIndex) bool {
	p, ok := ix.Lookup(a.PostingID)
	if !ok {
		return false
	}
	return f.PostingMatches(p) && f.ApplicantFieldsMatch(a)
}

// ApplicantFieldsMatch tests status, applied date and name only
func (f *Filter) ApplicantFieldsMatch(a *applicant.Applicant) bool {
	if f.status != "" && a.Status != f.status {
		return false
	}
	if !f.rng.Contains(a.AppliedDate) {
		return false
	}
	return a.NameContains(f.nameQuery)
}

// ViewRecordMatches resolves the record's posting and tests site, position
// and date. Records whose posting is missing never match.
func (f *Filter) ViewRecordMatches(r *viewrecord.ViewRecord, ix PostingIndex) bool {
	p, ok := ix.Lookup(r.PostingID)
	if !ok {
		return false
	}
	return f.PostingMatches(p) && f.rng.Contains(r.Date)
}

// ============================================================================
// Captions
// ============================================================================

// SiteCaption renders the site selection for headers
func (f *Filter) SiteCaption() string {
	if f.AllSites() {
		return "전체 사이트"
	}
	labels := make([]string, 0, len(f.sites))
	for _, s := range f.sites {
		labels = append(labels, s.Label())
	}
	return strings.Join(labels, ", ")
}

// PositionCaption renders the position selection for headers
func (f *Filter) PositionCaption() string {
	if f.AllPositions() {
		return "전체 유형"
	}
	labels := make([]string, 0, len(f.positions))
	for _, p := range f.positions {
		labels = append(labels, p.Label())
	}
	return strings.Join(labels, ", ")
}

// Caption is "<sites> | <positions> | <period>"
func (f *Filter) Caption() string {
	return strings.Join([]string{f.SiteCaption(), f.PositionCaption(), f.rng.Label()}, " | ")
}
