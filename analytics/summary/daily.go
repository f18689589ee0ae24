package summary

import (
	"sort"

	"github.com/Abraxas-365/recruitboard/analytics/filter"
	"github.com/Abraxas-365/recruitboard/pkg/kernel"
	"github.com/Abraxas-365/recruitboard/recruitment/applicant"
)

// DailyPoint is the activity of one day
type DailyPoint struct {
	Date         kernel.Date `json:"date"`
	Views        int64       `json:"views"`
	Applications int         `json:"applications"`
	Interviews   int         `json:"interviews"`
	Offers       int         `json:"offers"`
	Hires        int         `json:"hires"`
}

// Daily buckets the scope by day. Applicants count on their applied date,
// in every tier their status has reached. Points are sorted by date.
func Daily(s filter.Scoped) []DailyPoint {
	byDate := make(map[kernel.Date]*DailyPoint)
	point := func(d kernel.Date) *DailyPoint {
		p, ok := byDate[d]
		if !ok {
			p = &DailyPoint{Date: d}
			byDate[d] = p
		}
		return p
	}

	for _, r := range s.ViewRecords {
		point(r.Date).Views += r.ViewsIncrease
	}
	for _, a := range s.Applicants {
		p := point(a.AppliedDate)
		p.Applications++
		if a.Status.Reached(applicant.TierInterviewed) {
			p.Interviews++
		}
		if a.Status.Reached(applicant.TierOffered) {
			p.Offers++
		}
		if a.Status.Reached(applicant.TierHired) {
			p.Hires++
		}
	}

	out := make([]DailyPoint, 0, len(byDate))
	for _, p := range byDate {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
