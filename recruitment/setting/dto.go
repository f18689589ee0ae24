package setting

import (
	"github.com/Abraxas-365/recruitboard/pkg/kernel"
)

// UpsertGoalRequest sets the target for one month
type UpsertGoalRequest struct {
	YearMonth    string              `json:"year_month" validate:"required"`
	TargetHires  kernel.LooseInt     `json:"target_hires"`
	TargetBySite TargetBySiteRequest `json:"target_by_site"`
}

type TargetBySiteRequest struct {
	Saramin  kernel.LooseInt `json:"saramin"`
	JobKorea kernel.LooseInt `json:"jobkorea"`
	Incruit  kernel.LooseInt `json:"incruit"`
}

// UpsertSiteSettingRequest sets the cost of one site
type UpsertSiteSettingRequest struct {
	Site             string          `json:"site" validate:"required"`
	MonthlyCost      kernel.LooseInt `json:"monthly_cost"`
	QuarterlyCost    kernel.LooseInt `json:"quarterly_cost"`
	BillingStartDate string          `json:"billing_start_date"`
}

// SettingsResponse lists goals and site costs for the settings page
type SettingsResponse struct {
	Goals        []Goal        `json:"goals"`
	SiteSettings []SiteSetting `json:"site_settings"`
}
