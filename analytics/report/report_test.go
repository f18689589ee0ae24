package report_test

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/Abraxas-365/recruitboard/analytics/daterange"
	"github.com/Abraxas-365/recruitboard/analytics/filter"
	"github.com/Abraxas-365/recruitboard/analytics/report"
	"github.com/Abraxas-365/recruitboard/pkg/errx"
	"github.com/Abraxas-365/recruitboard/pkg/kernel"
	"github.com/Abraxas-365/recruitboard/recruitment/applicant"
	"github.com/Abraxas-365/recruitboard/recruitment/posting"
	"github.com/Abraxas-365/recruitboard/recruitment/setting"
	"github.com/Abraxas-365/recruitboard/recruitment/viewrecord"
)

var clock = daterange.FixedClock("2024-05-31")

func age(n int) *int { return &n }

func input() report.Input {
	return report.Input{
		Data: filter.Data{
			Postings: []posting.Posting{
				{ID: "p1", Site: kernel.SiteSaramin, Position: kernel.PositionSales, Title: "영업 신입"},
				{ID: "p2", Site: kernel.SiteIncruit, Position: kernel.PositionInstructor, Title: "강사 경력"},
			},
			ViewRecords: []viewrecord.ViewRecord{
				{PostingID: "p1", Date: "2024-05-02", ViewsIncrease: 30},
				{PostingID: "p2", Date: "2024-05-03", ViewsIncrease: 10},
			},
			Applicants: []applicant.Applicant{
				{ID: "a1", Name: "김민지", PostingID: "p1", AppliedDate: "2024-05-02", Status: applicant.StatusHired, Gender: applicant.GenderFemale, Age: age(27), ContactInfo: "010-1111-2222"},
				{ID: "a2", Name: "이준호", PostingID: "p1", AppliedDate: "2024-05-03", Status: applicant.StatusApplied, Gender: applicant.GenderMale},
				{ID: "a3", Name: "박지우", PostingID: "lost", AppliedDate: "2024-05-03", Status: applicant.StatusHired},
			},
		},
		SiteSettings: []setting.SiteSetting{
			{Site: kernel.SiteSaramin, MonthlyCost: 900000},
			{Site: kernel.SiteIncruit, MonthlyCost: 300000},
		},
		Goals: []setting.Goal{{YearMonth: "2024-05", TargetHires: 2}},
	}
}

// ── Composition ─────────────────────────────────────────────────────────────

func TestComposeAllSections(t *testing.T) {
	f := filter.MustNew(filter.Spec{}, clock)
	r := report.Compose(f, report.Options{Sections: report.Sections}, input())

	if r.Title != "채용 리포트 (전체 기간)" {
		t.Errorf("title = %q", r.Title)
	}
	if r.Scope != (filter.Scope{Postings: 2, ViewRecords: 2, Applicants: 2}) {
		t.Errorf("scope = %+v", r.Scope)
	}

	if r.Funnel == nil || r.Funnel.Counts.Applications != 2 || r.Funnel.Rates.ViewToApp != 5 || r.Funnel.Goal.AchievementRate != 50 {
		t.Errorf("funnel = %+v", r.Funnel)
	}
	if r.ROI == nil || r.ROI.TotalCost != 1200000 || r.ROI.CostPerHire != 1200000 || len(r.ROI.Sites) != 3 {
		t.Errorf("roi = %+v", r.ROI)
	}
	if r.Trends == nil || !reflect.DeepEqual(r.Trends.SitePie.Labels, []string{"사람인"}) || len(r.Trends.Line.Labels) != 2 {
		t.Errorf("trends = %+v", r.Trends)
	}
	if r.PositionAnalysis == nil || len(r.PositionAnalysis.Rows) != 2 {
		t.Errorf("position analysis = %+v", r.PositionAnalysis)
	}
	if r.Demographics == nil || r.Demographics.Age[1].Count != 1 {
		t.Errorf("demographics = %+v", r.Demographics)
	}
	if r.RawData == nil || len(r.RawData.Rows) != 2 || len(r.RawData.Headers) != len(report.Columns) {
		t.Fatalf("raw data = %+v", r.RawData)
	}
	want := []string{"김민지", "영업 신입", "사람인", "영업", "2024-05-02", "입사", "여", "27", "010-1111-2222", ""}
	if !reflect.DeepEqual(r.RawData.Rows[0], want) {
		t.Errorf("row = %v, want %v", r.RawData.Rows[0], want)
	}
}

func TestSectionsShareOneScope(t *testing.T) {
	f := filter.MustNew(filter.Spec{Sites: []kernel.Site{kernel.SiteSaramin}}, clock)
	r := report.Compose(f, report.Options{Sections: report.Sections}, input())

	if r.Funnel.Counts.Applications != r.Scope.Applicants || len(r.RawData.Rows) != r.Scope.Applicants {
		t.Errorf("sections disagree with scope %+v", r.Scope)
	}
	var positionApps int
	for _, row := range r.PositionAnalysis.Rows {
		positionApps += row.Funnel.Applications
	}
	var dailyApps int
	for _, p := range r.Trends.Points {
		dailyApps += p.Applications
	}
	if positionApps != r.Scope.Applicants || dailyApps != r.Scope.Applicants {
		t.Errorf("position %d daily %d scope %d", positionApps, dailyApps, r.Scope.Applicants)
	}
	if r.ROI.TotalCost != 900000 {
		t.Errorf("roi = %+v", r.ROI)
	}
}

func TestAbsentSections(t *testing.T) {
	f := filter.MustNew(filter.Spec{}, clock)
	r := report.Compose(f, report.Options{Sections: []report.Section{report.SectionROI}}, input())

	if r.ROI == nil {
		t.Fatal("roi missing")
	}
	if r.Funnel != nil || r.Trends != nil || r.PositionAnalysis != nil || r.Demographics != nil || r.RawData != nil {
		t.Errorf("unrequested section present: %+v", r)
	}

	raw, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{`"funnel"`, `"trends"`, `"position_analysis"`, `"demographics"`, `"raw_data"`} {
		if strings.Contains(string(raw), key) {
			t.Errorf("json contains %s", key)
		}
	}
}

func TestVisibleColumns(t *testing.T) {
	f := filter.MustNew(filter.Spec{}, clock)
	r := report.Compose(f, report.Options{
		Sections: []report.Section{report.SectionRawData},
		Columns:  []report.Column{report.ColumnName, report.ColumnAge},
	}, input())

	if !reflect.DeepEqual(r.RawData.Headers, []string{"이름", "나이"}) {
		t.Errorf("headers = %v", r.RawData.Headers)
	}
	if !reflect.DeepEqual(r.RawData.Rows[1], []string{"이준호", ""}) {
		t.Errorf("row = %v", r.RawData.Rows[1])
	}
}

func TestZeroHiresCostPerHire(t *testing.T) {
	f := filter.MustNew(filter.Spec{Status: string(applicant.StatusApplied)}, clock)
	r := report.Compose(f, report.Options{Sections: []report.Section{report.SectionROI}}, input())
	if r.ROI.Hired != 0 || r.ROI.CostPerHire != 0 {
		t.Errorf("roi = %+v", r.ROI)
	}
}

// ── Title ───────────────────────────────────────────────────────────────────

func TestTitle(t *testing.T) {
	d := input().Data
	tests := []struct {
		spec filter.Spec
		want string
	}{
		{filter.Spec{}, "채용 리포트 (전체 기간)"},
		{
			filter.Spec{Period: daterange.PeriodWeek, Sites: []kernel.Site{kernel.SiteSaramin, kernel.SiteJobKorea}},
			"채용 리포트 (2024-05-24 ~ 2024-05-31 | 사람인, 잡코리아)",
		},
		{filter.Spec{PostingID: "p1"}, "채용 리포트 (전체 기간 | 영업 신입)"},
		{filter.Spec{PostingID: "nope", Positions: []kernel.Position{kernel.PositionInstructor}}, "채용 리포트 (전체 기간 | 강사 | 선택된 공고)"},
	}
	for _, tt := range tests {
		if got := report.Title(filter.MustNew(tt.spec, clock), d); got != tt.want {
			t.Errorf("Title() = %q, want %q", got, tt.want)
		}
	}
}

// ── Parsing ─────────────────────────────────────────────────────────────────

func TestParseSections(t *testing.T) {
	got, err := report.ParseSections([]string{"rawData", "roi", "position_analysis"})
	if err != nil {
		t.Fatal(err)
	}
	want := []report.Section{report.SectionRawData, report.SectionROI, report.SectionPositionAnalysis}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sections = %v", got)
	}

	if all, _ := report.ParseSections(nil); len(all) != len(report.Sections) {
		t.Errorf("default sections = %v", all)
	}

	_, err = report.ParseSections([]string{"charts"})
	if !errx.IsCode(err, report.CodeInvalidSection) {
		t.Errorf("err = %v", err)
	}
}

func TestParseColumns(t *testing.T) {
	got, err := report.ParseColumns([]string{"jobTitle", "contactInfo"})
	if err != nil || !reflect.DeepEqual(got, []report.Column{report.ColumnJobTitle, report.ColumnContactInfo}) {
		t.Errorf("columns = %v, %v", got, err)
	}
	if _, err := report.ParseColumns([]string{"salary"}); !errx.IsCode(err, report.CodeInvalidColumn) {
		t.Errorf("err = %v", err)
	}
}
