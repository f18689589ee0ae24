package applicant

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of an applicant
type Status string

const (
	StatusApplied      Status = "APPLIED"      // 지원
	StatusDuplicate    Status = "DUPLICATE"    // 중복
	StatusContacted    Status = "CONTACTED"    // 컨택
	StatusInterviewing Status = "INTERVIEWING" // 면접
	StatusOffered      Status = "OFFERED"      // 합격
	StatusHired        Status = "HIRED"        // 입사
	StatusRejected     Status = "REJECTED"     // 거절
	StatusCancelled    Status = "CANCELLED"    // 취소
	StatusFailed       Status = "FAILED"       // 불합격
	StatusExcluded     Status = "EXCLUDED"     // 제외
)

// Tier is one cumulative stage of the hiring funnel
type Tier int

const (
	TierApplications Tier = iota
	TierContacted
	TierInterviewed
	TierOffered
	TierHired
)

// Tiers lists the funnel stages from widest to narrowest
var Tiers = []Tier{TierApplications, TierContacted, TierInterviewed, TierOffered, TierHired}

var tierLabels = map[Tier]string{
	TierApplications: "지원자",
	TierContacted:    "컨택",
	TierInterviewed:  "면접",
	TierOffered:      "합격",
	TierHired:        "입사",
}

func (t Tier) Label() string {
	return tierLabels[t]
}

// ============================================================================
// Taxonomy
// ============================================================================

type statusInfo struct {
	label      string
	deepest    Tier
	sideBranch bool
}

// taxonomy records, for every status, the deepest funnel tier it reached.
// Every tier count in the system is derived from this table.
var taxonomy = map[Status]statusInfo{
	StatusApplied:      {label: "지원", deepest: TierApplications},
	StatusDuplicate:    {label: "중복", deepest: TierApplications, sideBranch: true},
	StatusContacted:    {label: "컨택", deepest: TierContacted},
	StatusInterviewing: {label: "면접", deepest: TierInterviewed},
	StatusOffered:      {label: "합격", deepest: TierOffered},
	StatusHired:        {label: "입사", deepest: TierHired},
	StatusRejected:     {label: "거절", deepest: TierContacted, sideBranch: true},
	StatusCancelled:    {label: "취소", deepest: TierInterviewed, sideBranch: true},
	StatusFailed:       {label: "불합격", deepest: TierInterviewed, sideBranch: true},
	StatusExcluded:     {label: "제외", deepest: TierApplications, sideBranch: true},
}

// Statuses lists every status in the order the operator form shows them
var Statuses = []Status{
	StatusApplied,
	StatusDuplicate,
	StatusContacted,
	StatusInterviewing,
	StatusOffered,
	StatusHired,
	StatusRejected,
	StatusCancelled,
	StatusFailed,
	StatusExcluded,
}

func (s Status) IsValid() bool {
	_, ok := taxonomy[s]
	return ok
}

// Label returns the Korean display name
func (s Status) Label() string {
	if info, ok := taxonomy[s]; ok {
		return info.label
	}
	return string(s)
}

// Reached reports whether an applicant in this status ever got to tier t
func (s Status) Reached(t Tier) bool {
	info, ok := taxonomy[s]
	return ok && info.deepest >= t
}

// DeepestTier returns the last funnel stage the status passed through
func (s Status) DeepestTier() Tier {
	return taxonomy[s].deepest
}

// IsSideBranch reports whether the status left the funnel before hire
func (s Status) IsSideBranch() bool {
	return taxonomy[s].sideBranch
}

// ParseStatus accepts the identifier or the Korean label
func ParseStatus(v string) (Status, error) {
	v = strings.TrimSpace(v)
	for _, s := range Statuses {
		if strings.EqualFold(v, string(s)) || v == taxonomy[s].label {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown applicant status %q", v)
}
