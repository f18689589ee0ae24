package dashboard

import (
	"github.com/Abraxas-365/recruitboard/analytics/chart"
	"github.com/Abraxas-365/recruitboard/analytics/filter"
	"github.com/Abraxas-365/recruitboard/analytics/funnel"
	"github.com/Abraxas-365/recruitboard/analytics/overview"
	"github.com/Abraxas-365/recruitboard/analytics/summary"
	"github.com/Abraxas-365/recruitboard/pkg/kernel"
	"github.com/Abraxas-365/recruitboard/recruitment/applicant"
	"github.com/Abraxas-365/recruitboard/recruitment/posting"
)

// Preferences is the per-user dashboard state. The analytics never read
// it; handlers use it as the filter when a request carries none.
type Preferences struct {
	Filter  filter.Spec           `json:"filter"`
	Widgets overview.WidgetConfig `json:"widgets"`
}

// DefaultPreferences selects everything and enables every widget
func DefaultPreferences() Preferences {
	return Preferences{Widgets: overview.DefaultWidgets()}
}

// ComparisonResponse is the site comparison page
type ComparisonResponse struct {
	Caption string        `json:"caption"`
	Rows    []summary.Row `json:"rows"`
	Chart   chart.Chart   `json:"chart"`
}

// EfficiencyResponse is the efficiency analysis page
type EfficiencyResponse struct {
	Caption string                  `json:"caption"`
	Rows    []summary.EfficiencyRow `json:"rows"`
}

// TrendResponse is the trend analysis page
type TrendResponse struct {
	Caption string               `json:"caption"`
	Points  []summary.DailyPoint `json:"points"`
	Line    chart.Chart          `json:"line"`
	SitePie chart.Chart          `json:"site_pie"`
}

// PostingDetail is the funnel of one posting with its applicants
type PostingDetail struct {
	Posting    posting.Posting       `json:"posting"`
	Funnel     funnel.Counts         `json:"funnel"`
	Rates      funnel.StageRates     `json:"rates"`
	Chart      chart.Chart           `json:"chart"`
	Applicants []applicant.Applicant `json:"applicants"`
}

// ExportResult names the archived objects of one exported report
type ExportResult struct {
	Title   string `json:"title"`
	JSONKey string `json:"json_key"`
	CSVKey  string `json:"csv_key"`
}

// ArchiveKeys returns the JSON and CSV object keys of a report
func ArchiveKeys(date kernel.Date, id string) (jsonKey, csvKey string) {
	base := "reports/" + date.String() + "/" + id
	return base + ".json", base + ".csv"
}
