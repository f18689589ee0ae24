package dashboardsrv_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Abraxas-365/recruitboard/analytics/daterange"
	"github.com/Abraxas-365/recruitboard/analytics/filter"
	"github.com/Abraxas-365/recruitboard/analytics/overview"
	"github.com/Abraxas-365/recruitboard/analytics/report"
	"github.com/Abraxas-365/recruitboard/pkg/errx"
	"github.com/Abraxas-365/recruitboard/pkg/kernel"
	"github.com/Abraxas-365/recruitboard/recruitment/applicant"
	"github.com/Abraxas-365/recruitboard/recruitment/dashboard"
	"github.com/Abraxas-365/recruitboard/recruitment/dashboard/dashboardsrv"
	"github.com/Abraxas-365/recruitboard/recruitment/posting"
	"github.com/Abraxas-365/recruitboard/recruitment/setting"
	"github.com/Abraxas-365/recruitboard/recruitment/viewrecord"
)

var clock = daterange.FixedClock("2024-05-15")

// ── Fakes ──

type postingRepo struct {
	items   []posting.Posting
	failing bool
}

func (r *postingRepo) Create(context.Context, *posting.Posting) error                   { return nil }
func (r *postingRepo) Update(context.Context, kernel.PostingID, *posting.Posting) error { return nil }
func (r *postingRepo) Delete(context.Context, kernel.PostingID) error                   { return nil }
func (r *postingRepo) GetByID(context.Context, kernel.PostingID) (*posting.Posting, error) {
	return nil, posting.ErrPostingNotFound()
}
func (r *postingRepo) ListPaginated(context.Context, kernel.PaginationOptions) (*kernel.Paginated[posting.Posting], error) {
	return nil, errors.New("not used")
}

func (r *postingRepo) List(context.Context) ([]posting.Posting, error) {
	if r.failing {
		return nil, errors.New("connection refused")
	}
	return append([]posting.Posting(nil), r.items...), nil
}

type applicantRepo struct {
	items []applicant.Applicant
}

func (r *applicantRepo) Create(context.Context, *applicant.Applicant) error { return nil }
func (r *applicantRepo) Update(context.Context, kernel.ApplicantID, *applicant.Applicant) error {
	return nil
}
func (r *applicantRepo) UpdateStatus(context.Context, kernel.ApplicantID, applicant.Status, time.Time) error {
	return nil
}
func (r *applicantRepo) GetByID(context.Context, kernel.ApplicantID) (*applicant.Applicant, error) {
	return nil, applicant.ErrApplicantNotFound()
}
func (r *applicantRepo) Delete(context.Context, kernel.ApplicantID) error { return nil }
func (r *applicantRepo) ListPaginated(context.Context, kernel.PaginationOptions) (*kernel.Paginated[applicant.Applicant], error) {
	return nil, errors.New("not used")
}

func (r *applicantRepo) List(context.Context) ([]applicant.Applicant, error) {
	return append([]applicant.Applicant(nil), r.items...), nil
}

type viewRecordRepo struct {
	items []viewrecord.ViewRecord
}

func (r *viewRecordRepo) List(context.Context) ([]viewrecord.ViewRecord, error) {
	return append([]viewrecord.ViewRecord(nil), r.items...), nil
}
func (r *viewRecordRepo) Delete(context.Context, kernel.ViewRecordID) error { return nil }
func (r *viewRecordRepo) Batch() viewrecord.Batch                          { return nil }

type goalRepo struct {
	items []setting.Goal
}

func (r *goalRepo) Create(context.Context, *setting.Goal) error                { return nil }
func (r *goalRepo) Update(context.Context, kernel.GoalID, *setting.Goal) error { return nil }
func (r *goalRepo) List(context.Context) ([]setting.Goal, error)               { return r.items, nil }

type siteSettingRepo struct {
	items []setting.SiteSetting
}

func (r *siteSettingRepo) Create(context.Context, *setting.SiteSetting) error { return nil }
func (r *siteSettingRepo) Update(context.Context, kernel.SiteSettingID, *setting.SiteSetting) error {
	return nil
}
func (r *siteSettingRepo) List(context.Context) ([]setting.SiteSetting, error) { return r.items, nil }

type prefStore struct {
	items   map[kernel.UserID]dashboard.Preferences
	failing bool
}

func (s *prefStore) Get(_ context.Context, id kernel.UserID) (*dashboard.Preferences, error) {
	if s.failing {
		return nil, errors.New("redis down")
	}
	p, ok := s.items[id]
	if !ok {
		return nil, dashboard.ErrPreferencesNotFound()
	}
	return &p, nil
}

func (s *prefStore) Save(_ context.Context, id kernel.UserID, p dashboard.Preferences) error {
	if s.failing {
		return errors.New("redis down")
	}
	s.items[id] = p
	return nil
}

type archive struct {
	objects map[string][]byte
	failing bool
}

func (a *archive) Put(_ context.Context, key, _ string, body []byte) error {
	if a.failing {
		return errors.New("access denied")
	}
	a.objects[key] = body
	return nil
}

func (a *archive) List(_ context.Context, prefix string) ([]string, error) {
	var keys []string
	for k := range a.objects {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

type fixture struct {
	svc      *dashboardsrv.DashboardService
	postings *postingRepo
	prefs    *prefStore
	archive  *archive
}

func newFixture() *fixture {
	postings := &postingRepo{items: []posting.Posting{
		{ID: "p1", Site: kernel.SiteSaramin, Position: kernel.PositionSales, Title: "영업 신입", Status: posting.PostingStatusOpen},
		{ID: "p2", Site: kernel.SiteJobKorea, Position: kernel.PositionInstructor, Title: "강사 경력", Status: posting.PostingStatusOpen},
	}}
	src := dashboardsrv.Sources{
		Postings: postings,
		Applicants: &applicantRepo{items: []applicant.Applicant{
			{ID: "a1", Name: "김민지", PostingID: "p1", AppliedDate: "2024-05-02", Status: applicant.StatusHired},
			{ID: "a2", Name: "이준호", PostingID: "p1", AppliedDate: "2024-05-03", Status: applicant.StatusApplied},
			{ID: "a3", Name: "박지우", PostingID: "p2", AppliedDate: "2024-05-03", Status: applicant.StatusHired},
			{ID: "a4", Name: "최유나", PostingID: "lost", AppliedDate: "2024-05-03", Status: applicant.StatusHired},
		}},
		ViewRecords: &viewRecordRepo{items: []viewrecord.ViewRecord{
			{ID: "v1", PostingID: "p1", Date: "2024-05-02", ViewsIncrease: 30},
			{ID: "v2", PostingID: "p2", Date: "2024-05-03", ViewsIncrease: 10},
		}},
		Goals:        &goalRepo{items: []setting.Goal{{YearMonth: "2024-05", TargetHires: 4}}},
		SiteSettings: &siteSettingRepo{items: []setting.SiteSetting{{Site: kernel.SiteSaramin, MonthlyCost: 500000}}},
	}
	prefs := &prefStore{items: map[kernel.UserID]dashboard.Preferences{}}
	arch := &archive{objects: map[string][]byte{}}
	return &fixture{
		svc:      dashboardsrv.NewDashboardService(src, prefs, arch, clock),
		postings: postings,
		prefs:    prefs,
		archive:  arch,
	}
}

// ── Analysis pages ──

func TestOverview(t *testing.T) {
	fx := newFixture()
	out, err := fx.svc.Overview(context.Background(), filter.Spec{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if out.Caption != "전체 사이트 | 전체 유형 | 전체 기간" {
		t.Errorf("caption = %q", out.Caption)
	}
	if out.KPI == nil || out.KPI.Applications != 3 || out.KPI.Hired != 2 || out.KPI.ConversionRate != 66.7 {
		t.Fatalf("kpi = %+v", out.KPI)
	}
	if out.KPI.ActivePostings != 2 || out.KPI.Views != 40 {
		t.Errorf("kpi = %+v", out.KPI)
	}
	if out.Demographics == nil || out.SiteChart == nil {
		t.Error("nil widgets should enable every widget")
	}

	off := overview.WidgetConfig{KPI: true}
	out, err = fx.svc.Overview(context.Background(), filter.Spec{}, &off)
	if err != nil {
		t.Fatal(err)
	}
	if out.Demographics != nil || out.SiteChart != nil || out.Conversion != nil {
		t.Error("disabled widgets should be absent")
	}
}

func TestComparison(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	out, err := fx.svc.Comparison(ctx, filter.Spec{}, dashboardsrv.SortNone)
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Rows) != 2 || out.Rows[0].Label != "사람인 (영업)" || out.Rows[1].Label != "잡코리아 (강사)" {
		t.Fatalf("rows = %+v", out.Rows)
	}
	if len(out.Chart.Labels) != 2 || len(out.Chart.Datasets) != 8 {
		t.Errorf("chart = %+v", out.Chart)
	}

	out, err = fx.svc.Comparison(ctx, filter.Spec{}, dashboardsrv.SortConversion)
	if err != nil {
		t.Fatal(err)
	}
	if out.Rows[0].Label != "잡코리아 (강사)" {
		t.Errorf("sorted first row = %q", out.Rows[0].Label)
	}

	if _, err := fx.svc.Comparison(ctx, filter.Spec{}, "views"); !errx.IsCode(err, dashboard.CodeInvalidSort) {
		t.Errorf("unknown sort error = %v", err)
	}
}

func TestSummary(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	rows, err := fx.svc.Summary(ctx, filter.Spec{}, "site", true)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Errorf("site rows with empty = %d, want 3", len(rows))
	}
	rows, err = fx.svc.Summary(ctx, filter.Spec{}, "", false)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].Label != "전체" || rows[0].Funnel.Applications != 3 {
		t.Errorf("ungrouped rows = %+v", rows)
	}
	if _, err := fx.svc.Summary(ctx, filter.Spec{}, "company", false); !errx.IsCode(err, dashboard.CodeInvalidGroupBy) {
		t.Errorf("unknown grouping error = %v", err)
	}
}

func TestEfficiency(t *testing.T) {
	fx := newFixture()
	out, err := fx.svc.Efficiency(context.Background(), filter.Spec{}, dashboardsrv.SortOverall)
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(out.Rows))
	}
	if out.Rows[0].Site != kernel.SiteJobKorea || out.Rows[1].Site != kernel.SiteSaramin {
		t.Errorf("order = %s, %s", out.Rows[0].Site, out.Rows[1].Site)
	}
	if out.Rows[1].CostPerHire != 500000 {
		t.Errorf("saramin cost per hire = %d", out.Rows[1].CostPerHire)
	}
}

func TestTrends(t *testing.T) {
	fx := newFixture()
	out, err := fx.svc.Trends(context.Background(), filter.Spec{})
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Points) != 2 || out.Points[0].Date != "2024-05-02" || out.Points[0].Views != 30 {
		t.Fatalf("points = %+v", out.Points)
	}
	if out.Points[1].Applications != 2 {
		t.Errorf("applications on 05-03 = %d", out.Points[1].Applications)
	}
	if len(out.Line.Datasets) != 4 {
		t.Errorf("line datasets = %d", len(out.Line.Datasets))
	}
	pie := out.SitePie.Datasets[0].Data
	if len(pie) != 3 || pie[0] != 2 || pie[1] != 1 || pie[2] != 0 {
		t.Errorf("pie = %v", pie)
	}
}

func TestPostingDetail(t *testing.T) {
	fx := newFixture()
	out, err := fx.svc.PostingDetail(context.Background(), "p1")
	if err != nil {
		t.Fatal(err)
	}
	if out.Funnel.Applications != 2 || out.Funnel.Hired != 1 || out.Funnel.Views != 30 {
		t.Errorf("funnel = %+v", out.Funnel)
	}
	if len(out.Applicants) != 2 || len(out.Chart.Labels) != 2 {
		t.Errorf("applicants = %d, chart labels = %v", len(out.Applicants), out.Chart.Labels)
	}

	if _, err := fx.svc.PostingDetail(context.Background(), "nope"); !errx.IsCode(err, posting.CodePostingNotFound) {
		t.Errorf("missing posting error = %v", err)
	}
}

func TestReadFailure(t *testing.T) {
	fx := newFixture()
	fx.postings.failing = true
	if _, err := fx.svc.Trends(context.Background(), filter.Spec{}); !errx.IsCode(err, dashboard.CodeReadFailed) {
		t.Errorf("error = %v", err)
	}
}

func TestInvalidFilter(t *testing.T) {
	fx := newFixture()
	_, err := fx.svc.Overview(context.Background(), filter.Spec{Status: "unknown"}, nil)
	if !errx.IsCode(err, filter.CodeInvalidStatus) {
		t.Errorf("error = %v", err)
	}
}

// ── Reports ──

func TestReportSections(t *testing.T) {
	fx := newFixture()
	r, err := fx.svc.Report(context.Background(), dashboard.ReportRequest{Sections: []string{"funnel"}})
	if err != nil {
		t.Fatal(err)
	}
	if r.Funnel == nil || r.RawData != nil || r.ROI != nil {
		t.Errorf("sections = funnel:%v raw:%v roi:%v", r.Funnel != nil, r.RawData != nil, r.ROI != nil)
	}
	if r.Funnel.Goal.TargetHires != 4 || r.Funnel.Goal.AchievementRate != 50 {
		t.Errorf("goal = %+v", r.Funnel.Goal)
	}

	_, err = fx.svc.Report(context.Background(), dashboard.ReportRequest{Sections: []string{"charts"}})
	if !errx.IsCode(err, report.CodeInvalidSection) {
		t.Errorf("unknown section error = %v", err)
	}
}

func TestExportArchivesJSONAndCSV(t *testing.T) {
	fx := newFixture()
	out, err := fx.svc.Export(context.Background(), dashboard.ReportRequest{Columns: []string{"name", "jobTitle"}})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.JSONKey, "reports/2024-05-15/") || !strings.HasSuffix(out.JSONKey, ".json") {
		t.Errorf("json key = %q", out.JSONKey)
	}
	if strings.TrimSuffix(out.CSVKey, ".csv") != strings.TrimSuffix(out.JSONKey, ".json") {
		t.Errorf("csv key %q does not pair with %q", out.CSVKey, out.JSONKey)
	}

	table := string(fx.archive.objects[out.CSVKey])
	want := "이름,지원 공고\n김민지,영업 신입\n이준호,영업 신입\n박지우,강사 경력\n"
	if table != want {
		t.Errorf("csv = %q, want %q", table, want)
	}
	if !strings.Contains(string(fx.archive.objects[out.JSONKey]), `"title": "채용 리포트 (전체 기간)"`) {
		t.Error("json document missing title")
	}
}

func TestExportWithoutRawData(t *testing.T) {
	fx := newFixture()
	out, err := fx.svc.Export(context.Background(), dashboard.ReportRequest{Sections: []string{"roi"}})
	if err != nil {
		t.Fatal(err)
	}
	if out.CSVKey != "" || len(fx.archive.objects) != 1 {
		t.Errorf("csv key = %q, objects = %d", out.CSVKey, len(fx.archive.objects))
	}
}

func TestExportFailures(t *testing.T) {
	fx := newFixture()
	fx.archive.failing = true
	if _, err := fx.svc.Export(context.Background(), dashboard.ReportRequest{}); !errx.IsCode(err, dashboard.CodeArchiveFailed) {
		t.Errorf("put failure error = %v", err)
	}

	src := dashboardsrv.Sources{}
	svc := dashboardsrv.NewDashboardService(src, fx.prefs, nil, clock)
	if _, err := svc.Export(context.Background(), dashboard.ReportRequest{}); !errx.IsCode(err, dashboard.CodeArchiveDisabled) {
		t.Errorf("no archive error = %v", err)
	}
	if _, err := svc.Snapshot(context.Background()); !errx.IsCode(err, dashboard.CodeArchiveDisabled) {
		t.Errorf("no archive snapshot error = %v", err)
	}
}

func TestSnapshotArchivesMonthReport(t *testing.T) {
	fx := newFixture()
	out, err := fx.svc.Snapshot(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if out.Title != "채용 리포트 (2024-04-15 ~ 2024-05-15)" {
		t.Errorf("title = %q", out.Title)
	}
	if out.CSVKey == "" {
		t.Error("snapshot should include the raw data table")
	}

	keys, err := fx.svc.ListArchived(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 2 {
		t.Errorf("archived keys = %v", keys)
	}
	if _, err := fx.svc.ListArchived(context.Background(), "15/05/2024"); !errx.IsCode(err, dashboard.CodeInvalidDate) {
		t.Errorf("bad date error = %v", err)
	}
}

// ── Preferences ──

func TestPreferencesDefaultAndSave(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	prefs, err := fx.svc.Preferences(ctx, "u-1")
	if err != nil {
		t.Fatal(err)
	}
	if prefs.Widgets != overview.DefaultWidgets() || prefs.Filter.Sites != nil {
		t.Errorf("defaults = %+v", prefs)
	}
	if spec := fx.svc.DefaultSpec(ctx, "u-1"); spec.Sites != nil || spec.Period != "" {
		t.Errorf("default spec = %+v", spec)
	}

	saved, err := fx.svc.SavePreferences(ctx, "u-1", dashboard.SavePreferencesRequest{
		Filter: filter.Spec{Sites: []kernel.Site{kernel.SiteIncruit}, Period: daterange.PeriodWeek},
	})
	if err != nil {
		t.Fatal(err)
	}
	if saved.Widgets != overview.DefaultWidgets() {
		t.Errorf("saved widgets = %+v", saved.Widgets)
	}
	spec := fx.svc.DefaultSpec(ctx, "u-1")
	if len(spec.Sites) != 1 || spec.Sites[0] != kernel.SiteIncruit || spec.Period != daterange.PeriodWeek {
		t.Errorf("saved spec = %+v", spec)
	}
}

func TestSavePreferencesRejectsBadFilter(t *testing.T) {
	fx := newFixture()
	_, err := fx.svc.SavePreferences(context.Background(), "u-1", dashboard.SavePreferencesRequest{
		Filter: filter.Spec{Period: "fortnight"},
	})
	if !errx.IsCode(err, filter.CodeInvalidPeriod) {
		t.Errorf("error = %v", err)
	}
	if len(fx.prefs.items) != 0 {
		t.Error("invalid preferences were stored")
	}
}

func TestPreferenceStoreFailure(t *testing.T) {
	fx := newFixture()
	fx.prefs.failing = true
	ctx := context.Background()

	if _, err := fx.svc.Preferences(ctx, "u-1"); !errx.IsCode(err, dashboard.CodePreferencesFailed) {
		t.Errorf("get error = %v", err)
	}
	if spec := fx.svc.DefaultSpec(ctx, "u-1"); spec.Sites != nil {
		t.Error("unreadable preferences should select everything")
	}
}
