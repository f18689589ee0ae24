package filter_test

import (
	"testing"

	"github.com/Abraxas-365/recruitboard/analytics/daterange"
	"github.com/Abraxas-365/recruitboard/analytics/filter"
	"github.com/Abraxas-365/recruitboard/pkg/errx"
	"github.com/Abraxas-365/recruitboard/pkg/kernel"
	"github.com/Abraxas-365/recruitboard/recruitment/applicant"
	"github.com/Abraxas-365/recruitboard/recruitment/posting"
	"github.com/Abraxas-365/recruitboard/recruitment/viewrecord"
)

var clock = daterange.FixedClock("2024-05-31")

func sampleData() filter.Data {
	return filter.Data{
		Postings: []posting.Posting{
			{ID: "p1", Site: kernel.SiteSaramin, Position: kernel.PositionSales, Title: "사람인 영업"},
			{ID: "p2", Site: kernel.SiteJobKorea, Position: kernel.PositionInstructor, Title: "잡코리아 강사"},
			{ID: "p3", Site: kernel.SiteIncruit, Position: kernel.PositionSales, Title: "인크루트 영업"},
		},
		ViewRecords: []viewrecord.ViewRecord{
			{ID: "v1", PostingID: "p1", Date: "2024-05-01", ViewsIncrease: 10},
			{ID: "v2", PostingID: "p2", Date: "2024-05-28", ViewsIncrease: 4},
			{ID: "v3", PostingID: "gone", Date: "2024-05-28", ViewsIncrease: 99},
		},
		Applicants: []applicant.Applicant{
			{ID: "a1", Name: "Kim Minji", PostingID: "p1", AppliedDate: "2024-05-01", Status: applicant.StatusApplied},
			{ID: "a2", Name: "Lee Junho", PostingID: "p2", AppliedDate: "2024-05-27", Status: applicant.StatusHired},
			{ID: "a3", Name: "Park Jiwoo", PostingID: "p3", AppliedDate: "2024-04-02", Status: applicant.StatusContacted},
			{ID: "a4", Name: "Choi Yuna", PostingID: "gone", AppliedDate: "2024-05-20", Status: applicant.StatusApplied},
		},
	}
}

func ids(as []applicant.Applicant) []kernel.ApplicantID {
	out := make([]kernel.ApplicantID, 0, len(as))
	for _, a := range as {
		out = append(out, a.ID)
	}
	return out
}

func equalIDs(got []kernel.ApplicantID, want ...kernel.ApplicantID) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

// ── Composition ─────────────────────────────────────────────────────────────

func TestOpenFilterMatchesEveryResolvableApplicant(t *testing.T) {
	d := sampleData()
	f := filter.MustNew(filter.Spec{Status: "all"}, clock)
	ix := filter.NewPostingIndex(d.Postings)

	for i := range d.Applicants {
		a := &d.Applicants[i]
		_, resolvable := ix.Lookup(a.PostingID)
		if got := f.ApplicantMatches(a, ix); got != resolvable {
			t.Errorf("%s: match = %v, resolvable = %v", a.ID, got, resolvable)
		}
	}
}

func TestApplyPredicates(t *testing.T) {
	cases := []struct {
		name string
		spec filter.Spec
		want []kernel.ApplicantID
	}{
		{"default", filter.Spec{}, []kernel.ApplicantID{"a1", "a2", "a3"}},
		{"one site", filter.Spec{Sites: []kernel.Site{kernel.SiteJobKorea}}, []kernel.ApplicantID{"a2"}},
		{"no sites", filter.Spec{Sites: []kernel.Site{}}, nil},
		{"position", filter.Spec{Positions: []kernel.Position{kernel.PositionSales}}, []kernel.ApplicantID{"a1", "a3"}},
		{"status label", filter.Spec{Status: "입사"}, []kernel.ApplicantID{"a2"}},
		{"week", filter.Spec{Period: daterange.PeriodWeek}, []kernel.ApplicantID{"a2"}},
		{"month", filter.Spec{Period: daterange.PeriodMonth}, []kernel.ApplicantID{"a1", "a2"}},
		{"custom", filter.Spec{Period: daterange.PeriodCustom, Start: "2024-04-01", End: "2024-04-30"}, []kernel.ApplicantID{"a3"}},
		{"name", filter.Spec{NameQuery: "JUN"}, []kernel.ApplicantID{"a2"}},
		{"posting", filter.Spec{PostingID: "p3"}, []kernel.ApplicantID{"a3"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := filter.MustNew(tc.spec, clock).Apply(sampleData())
			if got := ids(s.Applicants); !equalIDs(got, tc.want...) {
				t.Errorf("applicants = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestApplyViewRecords(t *testing.T) {
	s := filter.MustNew(filter.Spec{Period: daterange.PeriodWeek}, clock).Apply(sampleData())
	if len(s.ViewRecords) != 1 || s.ViewRecords[0].ID != "v2" {
		t.Errorf("records = %+v", s.ViewRecords)
	}

	all := filter.MustNew(filter.Spec{}, clock).Apply(sampleData())
	if len(all.ViewRecords) != 2 {
		t.Errorf("orphan record should be dropped, got %d", len(all.ViewRecords))
	}
	if all.Scope() != (filter.Scope{Postings: 3, ViewRecords: 2, Applicants: 3}) {
		t.Errorf("scope = %+v", all.Scope())
	}
}

func TestOrphans(t *testing.T) {
	orphans := filter.MustNew(filter.Spec{}, clock).Orphans(sampleData())
	if got := ids(orphans); !equalIDs(got, "a4") {
		t.Errorf("orphans = %v", got)
	}
}

// ── Spec handling ───────────────────────────────────────────────────────────

func TestNewRejectsBadInput(t *testing.T) {
	if _, err := filter.New(filter.Spec{Status: "hired-ish"}, clock); !errx.IsCode(err, filter.CodeInvalidStatus) {
		t.Errorf("status err = %v", err)
	}
	if _, err := filter.New(filter.Spec{Period: "decade"}, clock); !errx.IsCode(err, filter.CodeInvalidPeriod) {
		t.Errorf("period err = %v", err)
	}
	if _, err := filter.New(filter.Spec{Start: "2024/01/01"}, clock); !errx.IsCode(err, filter.CodeInvalidDate) {
		t.Errorf("date err = %v", err)
	}
}

func TestSelectionHelpers(t *testing.T) {
	f := filter.MustNew(filter.Spec{Sites: []kernel.Site{kernel.SiteIncruit}}, clock)
	if f.AllSites() || !f.AllPositions() {
		t.Error("selection flags")
	}
	if s, ok := f.SingleSite(); !ok || s != kernel.SiteIncruit {
		t.Errorf("SingleSite = %s, %v", s, ok)
	}
	if _, ok := filter.MustNew(filter.Spec{}, clock).SingleSite(); ok {
		t.Error("all sites is not a single site")
	}
}

func TestNewNormalizesSelections(t *testing.T) {
	f := filter.MustNew(filter.Spec{
		Sites:     []kernel.Site{kernel.SiteIncruit, kernel.SiteSaramin, kernel.SiteIncruit},
		Positions: []kernel.Position{kernel.PositionSales, kernel.PositionSales},
	}, clock)
	if got := f.Sites(); len(got) != 2 || got[0] != kernel.SiteSaramin || got[1] != kernel.SiteIncruit {
		t.Errorf("sites = %v", got)
	}
	if got := f.Positions(); len(got) != 1 || got[0] != kernel.PositionSales {
		t.Errorf("positions = %v", got)
	}

	pinned := filter.MustNew(filter.Spec{Sites: []kernel.Site{kernel.SiteSaramin, kernel.SiteSaramin}}, clock)
	if s, ok := pinned.SingleSite(); !ok || s != kernel.SiteSaramin {
		t.Errorf("SingleSite = %s, %v", s, ok)
	}
	if got := pinned.SiteCaption(); got != "사람인" {
		t.Errorf("caption = %q", got)
	}

	none := filter.MustNew(filter.Spec{Sites: []kernel.Site{}}, clock)
	if len(none.Sites()) != 0 || none.Sites() == nil {
		t.Errorf("empty selection = %#v", none.Sites())
	}
}

func TestPostingIndexFirstWins(t *testing.T) {
	ix := filter.NewPostingIndex([]posting.Posting{
		{ID: "p1", Title: "first"},
		{ID: "p1", Title: "second"},
	})
	p, ok := ix.Lookup("p1")
	if !ok || p.Title != "first" || ix.Len() != 1 {
		t.Errorf("lookup = %+v", p)
	}
}

// ── Captions ────────────────────────────────────────────────────────────────

func TestCaption(t *testing.T) {
	tests := []struct {
		spec filter.Spec
		want string
	}{
		{filter.Spec{}, "전체 사이트 | 전체 유형 | 전체 기간"},
		{
			filter.Spec{Sites: []kernel.Site{kernel.SiteSaramin, kernel.SiteIncruit}, Positions: []kernel.Position{kernel.PositionSales}, Period: daterange.PeriodWeek},
			"사람인, 인크루트 | 영업 | 2024-05-24 ~ 2024-05-31",
		},
	}
	for _, tt := range tests {
		if got := filter.MustNew(tt.spec, clock).Caption(); got != tt.want {
			t.Errorf("Caption() = %q, want %q", got, tt.want)
		}
	}
}

// ── Query parsing ───────────────────────────────────────────────────────────

func TestParseQuery(t *testing.T) {
	spec, err := filter.ParseQuery(map[string]string{
		"sites":  "SARAMIN, 잡코리아",
		"status": "HIRED",
		"period": "week",
		"q":      "kim",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(spec.Sites) != 2 || spec.Sites[1] != kernel.SiteJobKorea || spec.Positions != nil {
		t.Errorf("spec = %+v", spec)
	}
	if spec.Status != "HIRED" || spec.Period != daterange.PeriodWeek || spec.NameQuery != "kim" {
		t.Errorf("spec = %+v", spec)
	}

	none, err := filter.ParseQuery(map[string]string{"positions": ""})
	if err != nil || none.Positions == nil || len(none.Positions) != 0 {
		t.Errorf("empty positions = %#v, %v", none.Positions, err)
	}

	if _, err := filter.ParseQuery(map[string]string{"sites": "wanted"}); !errx.IsCode(err, filter.CodeInvalidSite) {
		t.Errorf("err = %v", err)
	}
	if _, err := filter.ParseQuery(map[string]string{"positions": "dev"}); !errx.IsCode(err, filter.CodeInvalidPosition) {
		t.Errorf("err = %v", err)
	}
}

func TestHasFilterKeys(t *testing.T) {
	if filter.HasFilterKeys(map[string]string{"sort": "conversion"}) {
		t.Error("sort is not a filter key")
	}
	if !filter.HasFilterKeys(map[string]string{"positions": ""}) {
		t.Error("an empty selection is still a filter")
	}
}
