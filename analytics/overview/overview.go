// Package overview composes the dashboard landing page from one filtered
// scope.
package overview

import (
	"github.com/Abraxas-365/recruitboard/analytics/chart"
	"github.com/Abraxas-365/recruitboard/analytics/filter"
	"github.com/Abraxas-365/recruitboard/analytics/funnel"
	"github.com/Abraxas-365/recruitboard/analytics/goal"
	"github.com/Abraxas-365/recruitboard/analytics/summary"
	"github.com/Abraxas-365/recruitboard/recruitment/setting"
)

// WidgetConfig toggles the dashboard widgets
type WidgetConfig struct {
	KPI          bool `json:"kpi"`
	Conversion   bool `json:"conversion"`
	SiteSummary  bool `json:"site_summary"`
	SiteChart    bool `json:"site_chart"`
	Demographics bool `json:"demographics"`
}

// DefaultWidgets enables every widget
func DefaultWidgets() WidgetConfig {
	return WidgetConfig{KPI: true, Conversion: true, SiteSummary: true, SiteChart: true, Demographics: true}
}

// KPI is the headline figures of the scope
type KPI struct {
	ActivePostings int         `json:"active_postings"`
	Views          int64       `json:"views"`
	Applications   int         `json:"applications"`
	Contacted      int         `json:"contacted"`
	Interviewed    int         `json:"interviewed"`
	Offered        int         `json:"offered"`
	Hired          int         `json:"hired"`
	ConversionRate float64     `json:"conversion_rate"`
	Goal           goal.Result `json:"goal"`
}

// Overview holds the enabled widgets only
type Overview struct {
	Caption string       `json:"caption"`
	Scope   filter.Scope `json:"scope"`

	KPI             *KPI                  `json:"kpi,omitempty"`
	Conversion      *funnel.StageRates    `json:"conversion,omitempty"`
	SiteSummary     []summary.Row         `json:"site_summary,omitempty"`
	SiteChart       *chart.Chart          `json:"site_chart,omitempty"`
	PositionSummary []summary.Row         `json:"position_summary"`
	Demographics    *summary.Demographics `json:"demographics,omitempty"`
}

// Build filters the data once and computes every enabled widget over it
func Build(f *filter.Filter, d filter.Data, goals []setting.Goal, w WidgetConfig) Overview {
	s := f.Apply(d)
	total := funnel.Aggregate(s.Applicants, s.ViewRecords)

	out := Overview{
		Caption:         f.Caption(),
		Scope:           s.Scope(),
		PositionSummary: summary.Summarize(s, summary.GroupByPosition, summary.Options{}),
	}

	if w.KPI {
		active := 0
		for i := range s.Postings {
			if s.Postings[i].IsOpen() {
				active++
			}
		}
		out.KPI = &KPI{
			ActivePostings: active,
			Views:          total.Views,
			Applications:   total.Applications,
			Contacted:      total.Contacted,
			Interviewed:    total.Interviewed,
			Offered:        total.Offered,
			Hired:          total.Hired,
			ConversionRate: total.ConversionRate,
			Goal:           goal.Calculate(s.Range.YearMonth(), goals, s.Sites, total.Hired),
		}
	}
	if w.Conversion {
		rates := total.Stages()
		out.Conversion = &rates
	}
	if w.SiteSummary {
		if _, ok := f.SingleSite(); ok {
			out.SiteSummary = summary.Summarize(s, summary.GroupBySitePosition, summary.Options{ShowEmpty: true})
		} else {
			out.SiteSummary = summary.Summarize(s, summary.GroupBySite, summary.Options{})
		}
	}
	if w.SiteChart {
		radar := chart.Radar(summary.Summarize(s, summary.GroupBySite, summary.Options{ShowEmpty: true}))
		out.SiteChart = &radar
	}
	if w.Demographics {
		demo := summary.Demographic(s.Applicants)
		out.Demographics = &demo
	}
	return out
}
