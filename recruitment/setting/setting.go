package setting

import (
	"time"

	"github.com/Abraxas-365/recruitboard/pkg/kernel"
)

// TargetBySite splits a monthly goal across the three sites
type TargetBySite struct {
	Saramin  int `json:"saramin"`
	JobKorea int `json:"jobkorea"`
	Incruit  int `json:"incruit"`
}

// For returns the target of one site
func (t TargetBySite) For(site kernel.Site) int {
	switch site {
	case kernel.SiteSaramin:
		return t.Saramin
	case kernel.SiteJobKorea:
		return t.JobKorea
	case kernel.SiteIncruit:
		return t.Incruit
	}
	return 0
}

// Goal is the hiring target for one month
type Goal struct {
	ID           kernel.GoalID `json:"id"`
	YearMonth    string        `json:"year_month"`
	TargetHires  int           `json:"target_hires"`
	TargetBySite TargetBySite  `json:"target_by_site"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// SiteSetting is the subscription cost of one site
type SiteSetting struct {
	ID               kernel.SiteSettingID `json:"id"`
	Site             kernel.Site          `json:"site"`
	MonthlyCost      int64                `json:"monthly_cost"`
	QuarterlyCost    int64                `json:"quarterly_cost"`
	BillingStartDate kernel.Date          `json:"billing_start_date,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

// ============================================================================
// Lookups
// ============================================================================

// FindGoal returns the first goal for the month in store order
func FindGoal(goals []Goal, yearMonth string) (*Goal, bool) {
	for i := range goals {
		if goals[i].YearMonth == yearMonth {
			return &goals[i], true
		}
	}
	return nil, false
}

// FindSiteSetting returns the first setting for the site in store order
func FindSiteSetting(settings []SiteSetting, site kernel.Site) (*SiteSetting, bool) {
	for i := range settings {
		if settings[i].Site == site {
			return &settings[i], true
		}
	}
	return nil, false
}

// MonthlyCost returns the monthly cost of the site, 0 when unset
func MonthlyCost(settings []SiteSetting, site kernel.Site) int64 {
	if s, ok := FindSiteSetting(settings, site); ok {
		return s.MonthlyCost
	}
	return 0
}
