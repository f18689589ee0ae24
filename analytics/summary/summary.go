// Package summary runs the funnel over groups of a filtered scope: by site,
// by position, by (site, position) or ungrouped.
package summary

import (
	"fmt"
	"sort"

	"github.com/Abraxas-365/recruitboard/analytics/filter"
	"github.com/Abraxas-365/recruitboard/analytics/funnel"
	"github.com/Abraxas-365/recruitboard/pkg/kernel"
	"github.com/Abraxas-365/recruitboard/recruitment/applicant"
	"github.com/Abraxas-365/recruitboard/recruitment/posting"
	"github.com/Abraxas-365/recruitboard/recruitment/viewrecord"
)

// GroupBy selects the grouping key of a summary
type GroupBy string

const (
	GroupBySite         GroupBy = "site"
	GroupByPosition     GroupBy = "position"
	GroupBySitePosition GroupBy = "site_position"
	GroupByNone         GroupBy = "none"
)

// ParseGroupBy accepts the grouping names; empty means none
func ParseGroupBy(v string) (GroupBy, error) {
	switch g := GroupBy(v); g {
	case "":
		return GroupByNone, nil
	case GroupBySite, GroupByPosition, GroupBySitePosition, GroupByNone:
		return g, nil
	}
	return "", fmt.Errorf("unknown grouping %q", v)
}

// Key identifies one group. An empty field matches every value.
type Key struct {
	Site     kernel.Site     `json:"site,omitempty"`
	Position kernel.Position `json:"position,omitempty"`
}

// Label renders the key the way tables and chart axes show it
func (k Key) Label() string {
	switch {
	case k.Site != "" && k.Position != "":
		return k.Site.Label() + " (" + k.Position.Label() + ")"
	case k.Site != "":
		return k.Site.Label()
	case k.Position != "":
		return k.Position.Label()
	}
	return "전체"
}

func (k Key) matches(p *posting.Posting) bool {
	return (k.Site == "" || p.Site == k.Site) && (k.Position == "" || p.Position == k.Position)
}

// Row is the funnel of one group
type Row struct {
	Key      Key           `json:"key"`
	Label    string        `json:"label"`
	Postings int           `json:"postings"`
	Funnel   funnel.Counts `json:"funnel"`
}

// Options tune which rows are emitted
type Options struct {
	// ShowEmpty keeps groups without any posting
	ShowEmpty bool
}

// Keys enumerates the groups within the selected sites and positions,
// site-major
func Keys(by GroupBy, sites []kernel.Site, positions []kernel.Position) []Key {
	var keys []Key
	switch by {
	case GroupBySite:
		for _, s := range kernel.DistinctSites(sites) {
			keys = append(keys, Key{Site: s})
		}
	case GroupByPosition:
		for _, p := range kernel.DistinctPositions(positions) {
			keys = append(keys, Key{Position: p})
		}
	case GroupBySitePosition:
		for _, s := range kernel.DistinctSites(sites) {
			for _, p := range kernel.DistinctPositions(positions) {
				keys = append(keys, Key{Site: s, Position: p})
			}
		}
	default:
		keys = append(keys, Key{})
	}
	return keys
}

// Summarize aggregates each group of the scope. By default only groups
// with at least one posting produce a row.
func Summarize(s filter.Scoped, by GroupBy, opts Options) []Row {
	keys := Keys(by, s.Sites, s.Positions)
	rows := make([]Row, 0, len(keys))
	for _, k := range keys {
		row := Group(s, k)
		if row.Postings == 0 && !opts.ShowEmpty {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// Group aggregates the part of the scope whose postings match the key
func Group(s filter.Scoped, k Key) Row {
	postings, records, applicants := subset(s, k)
	return Row{
		Key:      k,
		Label:    k.Label(),
		Postings: postings,
		Funnel:   funnel.Aggregate(applicants, records),
	}
}

// SortByConversion orders rows by conversion rate, highest first
func SortByConversion(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Funnel.ConversionRate > rows[j].Funnel.ConversionRate
	})
}

func subset(s filter.Scoped, k Key) (int, []viewrecord.ViewRecord, []applicant.Applicant) {
	postings := 0
	for i := range s.Postings {
		if k.matches(&s.Postings[i]) {
			postings++
		}
	}

	in := func(id kernel.PostingID) bool {
		p, ok := s.Index.Lookup(id)
		return ok && k.matches(p)
	}

	var records []viewrecord.ViewRecord
	for _, r := range s.ViewRecords {
		if in(r.PostingID) {
			records = append(records, r)
		}
	}
	var applicants []applicant.Applicant
	for _, a := range s.Applicants {
		if in(a.PostingID) {
			applicants = append(applicants, a)
		}
	}
	return postings, records, applicants
}
