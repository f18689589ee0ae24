package dashboard

import (
	"github.com/Abraxas-365/recruitboard/analytics/filter"
	"github.com/Abraxas-365/recruitboard/analytics/overview"
)

// ReportRequest selects the scope, the sections and the raw data columns of
// a report. Empty section and column lists mean all of them.
type ReportRequest struct {
	Filter   filter.Spec `json:"filter"`
	Sections []string    `json:"sections" validate:"omitempty,dive,required"`
	Columns  []string    `json:"columns" validate:"omitempty,dive,required"`
}

// SavePreferencesRequest replaces the saved dashboard state of the caller
type SavePreferencesRequest struct {
	Filter  filter.Spec            `json:"filter"`
	Widgets *overview.WidgetConfig `json:"widgets"`
}
