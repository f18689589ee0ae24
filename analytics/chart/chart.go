// Package chart projects summaries into label/dataset structures a
// charting frontend can render without further computation.
package chart

import (
	"sort"

	"github.com/Abraxas-365/recruitboard/analytics/filter"
	"github.com/Abraxas-365/recruitboard/analytics/summary"
	"github.com/Abraxas-365/recruitboard/pkg/kernel"
	"github.com/Abraxas-365/recruitboard/recruitment/applicant"
)

// Kind is the chart type
type Kind string

const (
	KindLine  Kind = "line"
	KindBar   Kind = "bar"
	KindRadar Kind = "radar"
	KindPie   Kind = "pie"
)

// Dataset is one series. Pie slices carry one color per value in Colors.
type Dataset struct {
	Label  string    `json:"label"`
	Data   []float64 `json:"data"`
	Color  string    `json:"color,omitempty"`
	Colors []string  `json:"colors,omitempty"`
}

// Chart is a renderable chart
type Chart struct {
	Kind     Kind      `json:"kind"`
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

var (
	siteLineColors = map[kernel.Site]string{
		kernel.SiteSaramin:  "rgb(59, 130, 246)",
		kernel.SiteJobKorea: "rgb(16, 185, 129)",
		kernel.SiteIncruit:  "rgb(245, 158, 11)",
	}
	siteFillColors = map[kernel.Site]string{
		kernel.SiteSaramin:  "rgba(59, 130, 246, 0.8)",
		kernel.SiteJobKorea: "rgba(16, 185, 129, 0.8)",
		kernel.SiteIncruit:  "rgba(245, 158, 11, 0.8)",
	}
	comboColors = map[string]string{
		"사람인-영업":  "rgb(59, 130, 246)",
		"사람인-강사":  "rgb(99, 102, 241)",
		"잡코리아-영업": "rgb(16, 185, 129)",
		"잡코리아-강사": "rgb(34, 197, 94)",
		"인크루트-영업": "rgb(245, 158, 11)",
		"인크루트-강사": "rgb(234, 179, 8)",
	}
)

const fallbackColor = "rgb(100, 100, 100)"

// ============================================================================
// Funnel charts
// ============================================================================

// Radar draws one polygon per site row over the funnel tiers
func Radar(rows []summary.Row) Chart {
	c := Chart{
		Kind:   KindRadar,
		Labels: []string{"조회수", "지원자", "컨택", "면접", "합격", "입사"},
	}
	for _, r := range rows {
		f := r.Funnel
		c.Datasets = append(c.Datasets, Dataset{
			Label: r.Label,
			Data: []float64{
				float64(f.Views),
				float64(f.Applications),
				float64(f.Contacted),
				float64(f.Interviewed),
				float64(f.Offered),
				float64(f.Hired),
			},
			Color: colorOf(siteLineColors, r.Key.Site),
		})
	}
	return c
}

type series struct {
	label string
	color string
	value func(r summary.Row) int
}

var comparisonSeries = []series{
	{"지원자", "rgba(59, 130, 246, 0.8)", func(r summary.Row) int { return r.Funnel.Applications }},
	{"중복", "rgba(107, 114, 128, 0.8)", func(r summary.Row) int { return r.Funnel.Duplicates }},
	{"거절/취소", "rgba(239, 68, 68, 0.5)", func(r summary.Row) int { return r.Funnel.Rejected + r.Funnel.Cancelled }},
	{"컨택", "rgba(234, 179, 8, 0.8)", func(r summary.Row) int { return r.Funnel.Contacted }},
	{"면접", "rgba(139, 92, 246, 0.8)", func(r summary.Row) int { return r.Funnel.Interviewed }},
	{"합격", "rgba(16, 185, 129, 0.8)", func(r summary.Row) int { return r.Funnel.Offered }},
	{"불합격", "rgba(239, 68, 68, 0.8)", func(r summary.Row) int { return r.Funnel.Failed }},
	{"입사자", "rgba(22, 163, 74, 1)", func(r summary.Row) int { return r.Funnel.Hired }},
}

// Comparison is the grouped bar chart of (site, position) rows
func Comparison(rows []summary.Row) Chart {
	c := Chart{Kind: KindBar, Labels: make([]string, 0, len(rows))}
	for _, r := range rows {
		c.Labels = append(c.Labels, r.Label)
	}
	for _, s := range comparisonSeries {
		data := make([]float64, 0, len(rows))
		for _, r := range rows {
			data = append(data, float64(s.value(r)))
		}
		c.Datasets = append(c.Datasets, Dataset{Label: s.label, Data: data, Color: s.color})
	}
	return c
}

// SitePie splits applications by site row. With dropZero, sites without
// applications get no slice.
func SitePie(rows []summary.Row, dropZero bool) Chart {
	c := Chart{Kind: KindPie}
	ds := Dataset{Label: "지원자"}
	for _, r := range rows {
		if dropZero && r.Funnel.Applications == 0 {
			continue
		}
		c.Labels = append(c.Labels, r.Label)
		ds.Data = append(ds.Data, float64(r.Funnel.Applications))
		ds.Colors = append(ds.Colors, colorOf(siteFillColors, r.Key.Site))
	}
	c.Datasets = []Dataset{ds}
	return c
}

// ============================================================================
// Time series
// ============================================================================

// Trend is the four-series line chart of the trend page
func Trend(points []summary.DailyPoint) Chart {
	return line(points, []pointSeries{
		{"조회수", "rgb(59, 130, 246)", func(p summary.DailyPoint) float64 { return float64(p.Views) }},
		{"지원자", "rgb(16, 185, 129)", func(p summary.DailyPoint) float64 { return float64(p.Applications) }},
		{"면접", "rgb(139, 92, 246)", func(p summary.DailyPoint) float64 { return float64(p.Interviews) }},
		{"입사자", "rgb(245, 158, 11)", func(p summary.DailyPoint) float64 { return float64(p.Hires) }},
	})
}

// ReportTrend is the views and applications line of the report
func ReportTrend(points []summary.DailyPoint) Chart {
	return line(points, []pointSeries{
		{"조회수", "rgb(59, 130, 246)", func(p summary.DailyPoint) float64 { return float64(p.Views) }},
		{"지원자", "rgb(16, 185, 129)", func(p summary.DailyPoint) float64 { return float64(p.Applications) }},
	})
}

type pointSeries struct {
	label string
	color string
	value func(p summary.DailyPoint) float64
}

func line(points []summary.DailyPoint, ss []pointSeries) Chart {
	c := Chart{Kind: KindLine, Labels: make([]string, 0, len(points))}
	for _, p := range points {
		c.Labels = append(c.Labels, p.Date.String())
	}
	for _, s := range ss {
		data := make([]float64, 0, len(points))
		for _, p := range points {
			data = append(data, s.value(p))
		}
		c.Datasets = append(c.Datasets, Dataset{Label: s.label, Data: data, Color: s.color})
	}
	return c
}

// DailyViews draws one line per site-position combination over the dates
// of the scoped view records
func DailyViews(s filter.Scoped) Chart {
	byCombo := make(map[string]map[kernel.Date]int64)
	dates := make(map[kernel.Date]bool)
	for _, r := range s.ViewRecords {
		p, ok := s.Index.Lookup(r.PostingID)
		if !ok {
			continue
		}
		combo := p.ComboLabel()
		if byCombo[combo] == nil {
			byCombo[combo] = make(map[kernel.Date]int64)
		}
		byCombo[combo][r.Date] += r.ViewsIncrease
		dates[r.Date] = true
	}

	labels := sortedDates(dates)
	c := Chart{Kind: KindLine, Labels: make([]string, 0, len(labels))}
	for _, d := range labels {
		c.Labels = append(c.Labels, d.String())
	}

	combos := make([]string, 0, len(byCombo))
	for combo := range byCombo {
		combos = append(combos, combo)
	}
	sort.Strings(combos)

	for _, combo := range combos {
		data := make([]float64, 0, len(labels))
		for _, d := range labels {
			data = append(data, float64(byCombo[combo][d]))
		}
		c.Datasets = append(c.Datasets, Dataset{Label: combo, Data: data, Color: colorOf(comboColors, combo)})
	}
	return c
}

// PostingDaily counts applicants per applied date
func PostingDaily(applicants []applicant.Applicant) Chart {
	counts := make(map[kernel.Date]int)
	dates := make(map[kernel.Date]bool)
	for _, a := range applicants {
		counts[a.AppliedDate]++
		dates[a.AppliedDate] = true
	}

	labels := sortedDates(dates)
	c := Chart{Kind: KindLine, Labels: make([]string, 0, len(labels))}
	ds := Dataset{Label: "일별 지원자 수", Data: make([]float64, 0, len(labels)), Color: "rgb(59, 130, 246)"}
	for _, d := range labels {
		c.Labels = append(c.Labels, d.String())
		ds.Data = append(ds.Data, float64(counts[d]))
	}
	c.Datasets = []Dataset{ds}
	return c
}

func sortedDates(set map[kernel.Date]bool) []kernel.Date {
	out := make([]kernel.Date, 0, len(set))
	for d := range set {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func colorOf[K comparable](colors map[K]string, k K) string {
	if c, ok := colors[k]; ok {
		return c
	}
	return fallbackColor
}
