package filter

import (
	"github.com/Abraxas-365/recruitboard/analytics/daterange"
	"github.com/Abraxas-365/recruitboard/pkg/kernel"
	"github.com/Abraxas-365/recruitboard/recruitment/applicant"
	"github.com/Abraxas-365/recruitboard/recruitment/posting"
	"github.com/Abraxas-365/recruitboard/recruitment/viewrecord"
)

// Data is the three source collections in store order
type Data struct {
	Postings    []posting.Posting
	ViewRecords []viewrecord.ViewRecord
	Applicants  []applicant.Applicant
}

// Scoped is the filtered triple every view of one request aggregates over
type Scoped struct {
	Postings    []posting.Posting
	ViewRecords []viewrecord.ViewRecord
	Applicants  []applicant.Applicant

	// Index resolves the postings of the filtered records
	Index     PostingIndex
	Sites     []kernel.Site
	Positions []kernel.Position
	Range     daterange.Range
}

// Scope summarizes the size of a filtered triple
type Scope struct {
	Postings    int `json:"postings"`
	ViewRecords int `json:"view_records"`
	Applicants  int `json:"applicants"`
}

func (s Scoped) Scope() Scope {
	return Scope{
		Postings:    len(s.Postings),
		ViewRecords: len(s.ViewRecords),
		Applicants:  len(s.Applicants),
	}
}

// Apply filters the collections once. Postings with a repeated ID are kept
// only once, and orphaned records are dropped.
func (f *Filter) Apply(d Data) Scoped {
	full := NewPostingIndex(d.Postings)

	out := Scoped{
		Sites:     f.sites,
		Positions: f.positions,
		Range:     f.rng,
	}

	seen := make(map[kernel.PostingID]bool, len(d.Postings))
	for i := range d.Postings {
		p := &d.Postings[i]
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		if f.PostingMatches(p) {
			out.Postings = append(out.Postings, *p)
		}
	}
	for i := range d.ViewRecords {
		if f.ViewRecordMatches(&d.ViewRecords[i], full) {
			out.ViewRecords = append(out.ViewRecords, d.ViewRecords[i])
		}
	}
	for i := range d.Applicants {
		if f.ApplicantMatches(&d.Applicants[i], full) {
			out.Applicants = append(out.Applicants, d.Applicants[i])
		}
	}

	out.Index = NewPostingIndex(out.Postings)
	return out
}

// Orphans returns the applicants whose posting does not exist but whose
// status, date and name match
func (f *Filter) Orphans(d Data) []applicant.Applicant {
	full := NewPostingIndex(d.Postings)

	var out []applicant.Applicant
	for i := range d.Applicants {
		a := &d.Applicants[i]
		if _, ok := full.Lookup(a.PostingID); ok {
			continue
		}
		if f.ApplicantFieldsMatch(a) {
			out = append(out, *a)
		}
	}
	return out
}
