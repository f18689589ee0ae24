// Package goal compares actual hires with the monthly hiring target.
package goal

import (
	"math"

	"github.com/Abraxas-365/recruitboard/pkg/kernel"
	"github.com/Abraxas-365/recruitboard/recruitment/setting"
)

// Result is the achievement against one month's target
type Result struct {
	YearMonth       string `json:"year_month"`
	TargetHires     int    `json:"target_hires"`
	Hired           int    `json:"hired"`
	AchievementRate int    `json:"achievement_rate"`
	// HasGoal separates "no target set" from "0% achieved"
	HasGoal bool `json:"has_goal"`
}

// Target resolves the hiring target of the selected sites. With every site
// selected it is the overall target; otherwise it is the sum of the
// per-site targets of the selection.
func Target(g *setting.Goal, sites []kernel.Site) int {
	if g == nil {
		return 0
	}
	if allSites(sites) {
		return g.TargetHires
	}
	total := 0
	for _, s := range kernel.DistinctSites(sites) {
		total += g.TargetBySite.For(s)
	}
	return total
}

// Calculate looks up the goal of the month, first match in store order,
// and rates the hires against it
func Calculate(yearMonth string, goals []setting.Goal, sites []kernel.Site, hired int) Result {
	g, _ := setting.FindGoal(goals, yearMonth)
	target := Target(g, sites)

	r := Result{
		YearMonth:   yearMonth,
		TargetHires: target,
		Hired:       hired,
		HasGoal:     target > 0,
	}
	if target > 0 {
		r.AchievementRate = int(math.Round(float64(hired) / float64(target) * 100))
	}
	return r
}

func allSites(sites []kernel.Site) bool {
	return len(kernel.DistinctSites(sites)) == len(kernel.Sites)
}
