// Package report assembles the requested sections of a hiring report over a
// single filtered scope.
package report

import (
	"math"
	"strconv"
	"strings"

	"github.com/Abraxas-365/recruitboard/analytics/chart"
	"github.com/Abraxas-365/recruitboard/analytics/daterange"
	"github.com/Abraxas-365/recruitboard/analytics/filter"
	"github.com/Abraxas-365/recruitboard/analytics/funnel"
	"github.com/Abraxas-365/recruitboard/analytics/goal"
	"github.com/Abraxas-365/recruitboard/analytics/summary"
	"github.com/Abraxas-365/recruitboard/pkg/kernel"
	"github.com/Abraxas-365/recruitboard/recruitment/applicant"
	"github.com/Abraxas-365/recruitboard/recruitment/setting"
)

// Input is everything a report reads
type Input struct {
	Data         filter.Data
	SiteSettings []setting.SiteSetting
	Goals        []setting.Goal
}

// Options choose the sections and the raw data columns
type Options struct {
	Sections []Section
	Columns  []Column
}

// Report holds the requested sections only. A section that was not
// requested is nil and absent from the JSON document.
type Report struct {
	Title string          `json:"title"`
	Range daterange.Range `json:"range"`
	Scope filter.Scope    `json:"scope"`

	Funnel           *FunnelSection           `json:"funnel,omitempty"`
	ROI              *ROISection              `json:"roi,omitempty"`
	Trends           *TrendsSection           `json:"trends,omitempty"`
	PositionAnalysis *PositionAnalysisSection `json:"position_analysis,omitempty"`
	Demographics     *summary.Demographics    `json:"demographics,omitempty"`
	RawData          *RawDataSection          `json:"raw_data,omitempty"`
}

type FunnelSection struct {
	Counts funnel.Counts     `json:"counts"`
	Rates  funnel.StageRates `json:"rates"`
	Goal   goal.Result       `json:"goal"`
}

type SiteCost struct {
	Site        kernel.Site `json:"site"`
	SiteLabel   string      `json:"site_label"`
	MonthlyCost int64       `json:"monthly_cost"`
}

type ROISection struct {
	Sites       []SiteCost `json:"sites"`
	TotalCost   int64      `json:"total_cost"`
	Hired       int        `json:"hired"`
	CostPerHire int64      `json:"cost_per_hire"`
}

type TrendsSection struct {
	Points  []summary.DailyPoint `json:"points"`
	Line    chart.Chart          `json:"line"`
	SitePie chart.Chart          `json:"site_pie"`
}

type PositionAnalysisSection struct {
	Rows []summary.Row `json:"rows"`
}

// RawDataSection is the applicant table restricted to the visible columns
type RawDataSection struct {
	Columns []Column   `json:"columns"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Compose filters the input once and builds each requested section from
// that one scope
func Compose(f *filter.Filter, opts Options, in Input) Report {
	s := f.Apply(in.Data)
	total := funnel.Aggregate(s.Applicants, s.ViewRecords)

	r := Report{
		Title: Title(f, in.Data),
		Range: s.Range,
		Scope: s.Scope(),
	}

	for _, section := range opts.Sections {
		switch section {
		case SectionFunnel:
			r.Funnel = &FunnelSection{
				Counts: total,
				Rates:  total.Stages(),
				Goal:   goal.Calculate(s.Range.YearMonth(), in.Goals, s.Sites, total.Hired),
			}
		case SectionROI:
			r.ROI = roi(s.Sites, in.SiteSettings, total.Hired)
		case SectionTrends:
			points := summary.Daily(s)
			r.Trends = &TrendsSection{
				Points:  points,
				Line:    chart.ReportTrend(points),
				SitePie: chart.SitePie(summary.Summarize(s, summary.GroupBySite, summary.Options{ShowEmpty: true}), true),
			}
		case SectionPositionAnalysis:
			r.PositionAnalysis = &PositionAnalysisSection{
				Rows: summary.Summarize(s, summary.GroupBySitePosition, summary.Options{}),
			}
		case SectionDemographics:
			demo := summary.Demographic(s.Applicants)
			r.Demographics = &demo
		case SectionRawData:
			r.RawData = rawData(s, opts.Columns)
		}
	}
	return r
}

// Title is "채용 리포트 (<period> | <sites> | <positions> | <posting>)". Site,
// position and posting parts appear only when narrowed.
func Title(f *filter.Filter, d filter.Data) string {
	parts := []string{f.Range().Label()}
	if !f.AllSites() {
		parts = append(parts, f.SiteCaption())
	}
	if !f.AllPositions() {
		parts = append(parts, f.PositionCaption())
	}
	if id := f.PostingID(); !id.IsEmpty() {
		title := "선택된 공고"
		if p, ok := filter.NewPostingIndex(d.Postings).Lookup(id); ok {
			title = string(p.Title)
		}
		parts = append(parts, title)
	}
	return "채용 리포트 (" + strings.Join(parts, " | ") + ")"
}

func roi(sites []kernel.Site, settings []setting.SiteSetting, hired int) *ROISection {
	out := &ROISection{Hired: hired, Sites: []SiteCost{}}
	for _, site := range kernel.Sites {
		if !kernel.ContainsSite(sites, site) {
			continue
		}
		cost := setting.MonthlyCost(settings, site)
		out.Sites = append(out.Sites, SiteCost{Site: site, SiteLabel: site.Label(), MonthlyCost: cost})
		out.TotalCost += cost
	}
	if hired > 0 {
		out.CostPerHire = int64(math.Round(float64(out.TotalCost) / float64(hired)))
	}
	return out
}

func rawData(s filter.Scoped, columns []Column) *RawDataSection {
	if len(columns) == 0 {
		columns = Columns
	}
	out := &RawDataSection{
		Columns: columns,
		Headers: make([]string, 0, len(columns)),
		Rows:    make([][]string, 0, len(s.Applicants)),
	}
	for _, c := range columns {
		out.Headers = append(out.Headers, c.Header())
	}
	for i := range s.Applicants {
		a := &s.Applicants[i]
		row := make([]string, 0, len(columns))
		for _, c := range columns {
			row = append(row, cell(a, c, s.Index))
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

func cell(a *applicant.Applicant, c Column, ix filter.PostingIndex) string {
	p, _ := ix.Lookup(a.PostingID)
	switch c {
	case ColumnName:
		return string(a.Name)
	case ColumnJobTitle:
		if p == nil {
			return "N/A"
		}
		return string(p.Title)
	case ColumnSite:
		if p == nil {
			return ""
		}
		return p.Site.Label()
	case ColumnPosition:
		if p == nil {
			return ""
		}
		return p.Position.Label()
	case ColumnAppliedDate:
		return a.AppliedDate.String()
	case ColumnStatus:
		return a.Status.Label()
	case ColumnGender:
		return a.Gender.Label()
	case ColumnAge:
		if !a.HasAge() {
			return ""
		}
		return strconv.Itoa(*a.Age)
	case ColumnContactInfo:
		return string(a.ContactInfo)
	case ColumnMemo:
		return string(a.Memo)
	}
	return ""
}
