package summary

import (
	"math"
	"sort"

	"github.com/Abraxas-365/recruitboard/analytics/filter"
	"github.com/Abraxas-365/recruitboard/analytics/funnel"
	"github.com/Abraxas-365/recruitboard/pkg/kernel"
	"github.com/Abraxas-365/recruitboard/recruitment/setting"
)

// EfficiencyRow weighs the conversion of one site against its cost
type EfficiencyRow struct {
	Site      kernel.Site   `json:"site"`
	SiteLabel string        `json:"site_label"`
	Funnel    funnel.Counts `json:"funnel"`

	InterviewFromApp   float64 `json:"interview_from_app"`
	OfferFromInterview float64 `json:"offer_from_interview"`
	HireFromOffer      float64 `json:"hire_from_offer"`
	Overall            float64 `json:"overall"`

	MonthlyCost int64   `json:"monthly_cost"`
	CostPerHire int64   `json:"cost_per_hire"`
	Efficiency  float64 `json:"efficiency"`
}

// Efficiency produces one row per site, including sites outside the
// selection, whose funnel is then empty
func Efficiency(s filter.Scoped, settings []setting.SiteSetting) []EfficiencyRow {
	rows := make([]EfficiencyRow, 0, len(kernel.Sites))
	for _, site := range kernel.Sites {
		c := Group(s, Key{Site: site}).Funnel
		cost := setting.MonthlyCost(settings, site)

		row := EfficiencyRow{
			Site:               site,
			SiteLabel:          site.Label(),
			Funnel:             c,
			InterviewFromApp:   funnel.Rate(c.Interviewed, c.Applications),
			OfferFromInterview: funnel.Rate(c.Offered, c.Interviewed),
			HireFromOffer:      funnel.Rate(c.Hired, c.Offered),
			Overall:            funnel.Rate(c.Hired, c.Applications),
			MonthlyCost:        cost,
		}
		if c.Hired > 0 {
			row.CostPerHire = int64(math.Round(float64(cost) / float64(c.Hired)))
		}
		row.Efficiency = funnel.Round1(row.Overall - float64(cost)/100000)
		rows = append(rows, row)
	}
	return rows
}

// SortByOverall orders rows by overall conversion, highest first
func SortByOverall(rows []EfficiencyRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Overall > rows[j].Overall
	})
}
