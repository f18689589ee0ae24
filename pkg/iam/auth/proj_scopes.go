package auth

// ============================================================================
// DOMAIN-SPECIFIC SCOPES - RECRUITMENT DASHBOARD
// ============================================================================

const (
	ScopeAll = "*"

	// Posting scopes
	ScopePostingsAll   = "postings:*"
	ScopePostingsRead  = "postings:read"
	ScopePostingsWrite = "postings:write"

	// Applicant scopes
	ScopeApplicantsAll   = "applicants:*"
	ScopeApplicantsRead  = "applicants:read"
	ScopeApplicantsWrite = "applicants:write"

	// Daily view scopes
	ScopeViewsAll   = "views:*"
	ScopeViewsRead  = "views:read"
	ScopeViewsWrite = "views:write"

	// Goals and site cost settings
	ScopeSettingsAll   = "settings:*"
	ScopeSettingsRead  = "settings:read"
	ScopeSettingsWrite = "settings:write"

	// Dashboard, analysis pages and report exports
	ScopeReportsAll    = "reports:*"
	ScopeReportsRead   = "reports:read"
	ScopeReportsExport = "reports:export"
)

// DomainScopeCategories organizes domain-specific scopes
var DomainScopeCategories = map[string][]string{
	"Postings":   {ScopePostingsAll, ScopePostingsRead, ScopePostingsWrite},
	"Applicants": {ScopeApplicantsAll, ScopeApplicantsRead, ScopeApplicantsWrite},
	"Views":      {ScopeViewsAll, ScopeViewsRead, ScopeViewsWrite},
	"Settings":   {ScopeSettingsAll, ScopeSettingsRead, ScopeSettingsWrite},
	"Reports":    {ScopeReportsAll, ScopeReportsRead, ScopeReportsExport},
}

// DomainScopeDescriptions provides descriptions for domain scopes
var DomainScopeDescriptions = map[string]string{
	ScopeAll: "Full access",

	ScopePostingsAll:   "Full access to posting management",
	ScopePostingsRead:  "View postings",
	ScopePostingsWrite: "Create, edit and delete postings",

	ScopeApplicantsAll:   "Full access to applicant management",
	ScopeApplicantsRead:  "View applicants",
	ScopeApplicantsWrite: "Create, edit, delete applicants and change their status",

	ScopeViewsAll:   "Full access to daily view counts",
	ScopeViewsRead:  "View daily view counts",
	ScopeViewsWrite: "Enter daily view counts",

	ScopeSettingsAll:   "Full access to goals and site costs",
	ScopeSettingsRead:  "View goals and site costs",
	ScopeSettingsWrite: "Edit goals and site costs",

	ScopeReportsAll:    "Full access to dashboards and reports",
	ScopeReportsRead:   "View dashboards, analysis pages and reports",
	ScopeReportsExport: "Export and archive reports",
}

// DomainScopeGroups defines the operator roles
var DomainScopeGroups = map[string][]string{
	"admin": {ScopeAll},
	"recruiter": {
		ScopePostingsAll,
		ScopeApplicantsAll,
		ScopeViewsAll,
		ScopeSettingsRead,
		ScopeReportsAll,
	},
	"viewer": {
		ScopePostingsRead,
		ScopeApplicantsRead,
		ScopeViewsRead,
		ScopeSettingsRead,
		ScopeReportsRead,
	},
}

// ScopesForRole returns the scopes granted to a role, or nil for an unknown role
func ScopesForRole(role string) []string {
	scopes, ok := DomainScopeGroups[role]
	if !ok {
		return nil
	}
	return append([]string(nil), scopes...)
}

// HasScope reports whether granted satisfies required, honoring "*" and "<area>:*"
func HasScope(granted []string, required string) bool {
	area := required
	for i := 0; i < len(required); i++ {
		if required[i] == ':' {
			area = required[:i]
			break
		}
	}
	for _, g := range granted {
		if g == ScopeAll || g == required || g == area+":*" {
			return true
		}
	}
	return false
}
