package dashboardsrv

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/Abraxas-365/recruitboard/analytics/chart"
	"github.com/Abraxas-365/recruitboard/analytics/daterange"
	"github.com/Abraxas-365/recruitboard/analytics/filter"
	"github.com/Abraxas-365/recruitboard/analytics/funnel"
	"github.com/Abraxas-365/recruitboard/analytics/overview"
	"github.com/Abraxas-365/recruitboard/analytics/report"
	"github.com/Abraxas-365/recruitboard/analytics/summary"
	"github.com/Abraxas-365/recruitboard/internal/export"
	"github.com/Abraxas-365/recruitboard/internal/metrics"
	"github.com/Abraxas-365/recruitboard/pkg/errx"
	"github.com/Abraxas-365/recruitboard/pkg/kernel"
	"github.com/Abraxas-365/recruitboard/pkg/logx"
	"github.com/Abraxas-365/recruitboard/pkg/valx"
	"github.com/Abraxas-365/recruitboard/recruitment/applicant"
	"github.com/Abraxas-365/recruitboard/recruitment/dashboard"
	"github.com/Abraxas-365/recruitboard/recruitment/posting"
	"github.com/Abraxas-365/recruitboard/recruitment/setting"
	"github.com/Abraxas-365/recruitboard/recruitment/viewrecord"
	"github.com/google/uuid"
)

// Sort orders accepted by the comparison and efficiency pages
const (
	SortNone       = ""
	SortConversion = "conversion"
	SortOverall    = "overall"
)

// Sources are the record stores every dashboard view reads
type Sources struct {
	Postings     posting.Repository
	Applicants   applicant.Repository
	ViewRecords  viewrecord.Repository
	Goals        setting.GoalRepository
	SiteSettings setting.SiteSettingRepository
}

// DashboardService computes the analysis pages and reports
type DashboardService struct {
	src     Sources
	prefs   dashboard.PreferenceStore
	archive dashboard.ReportArchive
	clock   daterange.Clock
	newID   func() string
}

// NewDashboardService creates a new instance of the dashboard service. A nil
// archive disables export and snapshots.
func NewDashboardService(src Sources, prefs dashboard.PreferenceStore, archive dashboard.ReportArchive, clock daterange.Clock) *DashboardService {
	return &DashboardService{
		src:     src,
		prefs:   prefs,
		archive: archive,
		clock:   clock,
		newID:   uuid.NewString,
	}
}

// ============================================================================
// Analysis pages
// ============================================================================

// Overview builds the landing page. Nil widgets enable all of them.
func (s *DashboardService) Overview(ctx context.Context, spec filter.Spec, widgets *overview.WidgetConfig) (*overview.Overview, error) {
	f, err := filter.New(spec, s.clock)
	if err != nil {
		return nil, err
	}
	in, err := s.loadInput(ctx)
	if err != nil {
		return nil, err
	}

	w := overview.DefaultWidgets()
	if widgets != nil {
		w = *widgets
	}
	out := overview.Build(f, in.Data, in.Goals, w)
	return &out, nil
}

// Summary groups the filtered scope by the named key
func (s *DashboardService) Summary(ctx context.Context, spec filter.Spec, groupBy string, showEmpty bool) ([]summary.Row, error) {
	by, err := summary.ParseGroupBy(groupBy)
	if err != nil {
		return nil, dashboard.ErrInvalidGroupBy().WithDetail("group_by", groupBy)
	}
	scoped, _, err := s.scope(ctx, spec)
	if err != nil {
		return nil, err
	}
	return summary.Summarize(scoped, by, summary.Options{ShowEmpty: showEmpty}), nil
}

// Comparison returns the (site, position) rows that have postings with the
// grouped bar chart. Sort "conversion" orders rows by conversion rate.
func (s *DashboardService) Comparison(ctx context.Context, spec filter.Spec, sort string) (*dashboard.ComparisonResponse, error) {
	if sort != SortNone && sort != SortConversion {
		return nil, dashboard.ErrInvalidSort().WithDetail("sort", sort)
	}
	scoped, f, err := s.scope(ctx, spec)
	if err != nil {
		return nil, err
	}

	rows := summary.Summarize(scoped, summary.GroupBySitePosition, summary.Options{})
	if sort == SortConversion {
		summary.SortByConversion(rows)
	}
	return &dashboard.ComparisonResponse{
		Caption: f.Caption(),
		Rows:    rows,
		Chart:   chart.Comparison(rows),
	}, nil
}

// Efficiency returns one row per site. Sort "overall" orders rows by
// overall rate.
func (s *DashboardService) Efficiency(ctx context.Context, spec filter.Spec, sort string) (*dashboard.EfficiencyResponse, error) {
	if sort != SortNone && sort != SortOverall {
		return nil, dashboard.ErrInvalidSort().WithDetail("sort", sort)
	}
	f, err := filter.New(spec, s.clock)
	if err != nil {
		return nil, err
	}
	in, err := s.loadInput(ctx)
	if err != nil {
		return nil, err
	}

	rows := summary.Efficiency(f.Apply(in.Data), in.SiteSettings)
	if sort == SortOverall {
		summary.SortByOverall(rows)
	}
	return &dashboard.EfficiencyResponse{Caption: f.Caption(), Rows: rows}, nil
}

// Trends returns the daily series with its line chart and the site split of
// applications
func (s *DashboardService) Trends(ctx context.Context, spec filter.Spec) (*dashboard.TrendResponse, error) {
	scoped, f, err := s.scope(ctx, spec)
	if err != nil {
		return nil, err
	}

	points := summary.Daily(scoped)
	sites := summary.Summarize(scoped, summary.GroupBySite, summary.Options{ShowEmpty: true})
	return &dashboard.TrendResponse{
		Caption: f.Caption(),
		Points:  points,
		Line:    chart.Trend(points),
		SitePie: chart.SitePie(sites, false),
	}, nil
}

// PostingDetail returns the funnel, the daily applicant chart and the
// applicants of one posting over its whole history
func (s *DashboardService) PostingDetail(ctx context.Context, id kernel.PostingID) (*dashboard.PostingDetail, error) {
	data, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	p, ok := filter.NewPostingIndex(data.Postings).Lookup(id)
	if !ok {
		return nil, posting.ErrPostingNotFound().WithDetail("id", id.String())
	}

	scoped := filter.MustNew(filter.Spec{PostingID: id}, s.clock).Apply(data)
	counts := funnel.Aggregate(scoped.Applicants, scoped.ViewRecords)
	applicants := scoped.Applicants
	if applicants == nil {
		applicants = []applicant.Applicant{}
	}
	return &dashboard.PostingDetail{
		Posting:    *p,
		Funnel:     counts,
		Rates:      counts.Stages(),
		Chart:      chart.PostingDaily(applicants),
		Applicants: applicants,
	}, nil
}

// ============================================================================
// Reports
// ============================================================================

// Report composes the requested sections over the request filter
func (s *DashboardService) Report(ctx context.Context, req dashboard.ReportRequest) (*report.Report, error) {
	r, err := s.compose(ctx, req)
	if err != nil {
		return nil, err
	}
	metrics.ReportComposed(metrics.TriggerAPI)
	return r, nil
}

// Export composes the report and archives it as JSON, plus the raw data
// section as CSV when it was requested
func (s *DashboardService) Export(ctx context.Context, req dashboard.ReportRequest) (*dashboard.ExportResult, error) {
	if s.archive == nil {
		return nil, dashboard.ErrArchiveDisabled()
	}
	r, err := s.compose(ctx, req)
	if err != nil {
		return nil, err
	}
	metrics.ReportComposed(metrics.TriggerExport)
	return s.store(ctx, r)
}

// Snapshot archives an every-section report of the current month
func (s *DashboardService) Snapshot(ctx context.Context) (*dashboard.ExportResult, error) {
	if s.archive == nil {
		return nil, dashboard.ErrArchiveDisabled()
	}
	r, err := s.compose(ctx, dashboard.ReportRequest{Filter: filter.Spec{Period: daterange.PeriodMonth}})
	if err != nil {
		return nil, err
	}
	metrics.ReportComposed(metrics.TriggerScheduled)
	return s.store(ctx, r)
}

// ListArchived returns the archived report keys of one day. An empty date
// means today.
func (s *DashboardService) ListArchived(ctx context.Context, date string) ([]string, error) {
	if s.archive == nil {
		return nil, dashboard.ErrArchiveDisabled()
	}
	d := s.clock.Today()
	if date != "" {
		parsed, err := kernel.ParseDate(date)
		if err != nil {
			return nil, dashboard.ErrInvalidDate().WithDetail("date", date)
		}
		d = parsed
	}

	keys, err := s.archive.List(ctx, "reports/"+d.String()+"/")
	if err != nil {
		return nil, dashboard.ErrArchiveFailed().WithCause(err)
	}
	if keys == nil {
		keys = []string{}
	}
	return keys, nil
}

// Compose builds a report without counting or archiving it
func (s *DashboardService) Compose(ctx context.Context, req dashboard.ReportRequest) (*report.Report, error) {
	return s.compose(ctx, req)
}

func (s *DashboardService) compose(ctx context.Context, req dashboard.ReportRequest) (*report.Report, error) {
	if err := valx.Struct(req); err != nil {
		return nil, err
	}
	sections, err := report.ParseSections(req.Sections)
	if err != nil {
		return nil, err
	}
	columns, err := report.ParseColumns(req.Columns)
	if err != nil {
		return nil, err
	}
	f, err := filter.New(req.Filter, s.clock)
	if err != nil {
		return nil, err
	}

	in, err := s.loadInput(ctx)
	if err != nil {
		return nil, err
	}
	r := report.Compose(f, report.Options{Sections: sections, Columns: columns}, in)
	return &r, nil
}

func (s *DashboardService) store(ctx context.Context, r *report.Report) (*dashboard.ExportResult, error) {
	jsonKey, csvKey := dashboard.ArchiveKeys(s.clock.Today(), s.newID())
	out := &dashboard.ExportResult{Title: r.Title, JSONKey: jsonKey}

	body, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, errx.Wrap(err, "encode report", errx.TypeInternal)
	}
	if err := s.archive.Put(ctx, jsonKey, "application/json", body); err != nil {
		logx.Errorf("archive report %s: %v", jsonKey, err)
		return nil, dashboard.ErrArchiveFailed().WithCause(err).WithDetail("key", jsonKey)
	}

	if r.RawData != nil {
		table, err := export.CSV(r.RawData.Headers, r.RawData.Rows)
		if err != nil {
			return nil, errx.Wrap(err, "encode raw data", errx.TypeInternal)
		}
		if err := s.archive.Put(ctx, csvKey, "text/csv; charset=utf-8", table); err != nil {
			logx.Errorf("archive report %s: %v", csvKey, err)
			return nil, dashboard.ErrArchiveFailed().WithCause(err).WithDetail("key", csvKey)
		}
		out.CSVKey = csvKey
	}

	logx.Infof("report %q archived as %s", r.Title, strings.TrimSuffix(jsonKey, ".json"))
	return out, nil
}

// ============================================================================
// Preferences
// ============================================================================

// Preferences returns the saved state of the user, or the defaults
func (s *DashboardService) Preferences(ctx context.Context, userID kernel.UserID) (*dashboard.Preferences, error) {
	prefs, err := s.prefs.Get(ctx, userID)
	if err != nil {
		if errx.IsCode(err, dashboard.CodePreferencesNotFound) {
			def := dashboard.DefaultPreferences()
			return &def, nil
		}
		return nil, dashboard.ErrPreferencesFailed().WithCause(err)
	}
	return prefs, nil
}

// SavePreferences validates the filter and replaces the saved state. Nil
// widgets keep every widget enabled.
func (s *DashboardService) SavePreferences(ctx context.Context, userID kernel.UserID, req dashboard.SavePreferencesRequest) (*dashboard.Preferences, error) {
	if _, err := filter.New(req.Filter, s.clock); err != nil {
		return nil, err
	}

	prefs := dashboard.Preferences{Filter: req.Filter, Widgets: overview.DefaultWidgets()}
	if req.Widgets != nil {
		prefs.Widgets = *req.Widgets
	}
	if err := s.prefs.Save(ctx, userID, prefs); err != nil {
		logx.Errorf("save preferences of %s: %v", userID, err)
		return nil, dashboard.ErrPreferencesFailed().WithCause(err)
	}
	return &prefs, nil
}

// DefaultSpec returns the saved filter of the user. Missing or unreadable
// preferences select everything.
func (s *DashboardService) DefaultSpec(ctx context.Context, userID kernel.UserID) filter.Spec {
	if userID.IsEmpty() {
		return filter.Spec{}
	}
	prefs, err := s.prefs.Get(ctx, userID)
	if err != nil {
		if !errx.IsCode(err, dashboard.CodePreferencesNotFound) {
			logx.Warnf("load preferences of %s: %v", userID, err)
		}
		return filter.Spec{}
	}
	return prefs.Filter
}

// ============================================================================
// Loading
// ============================================================================

func (s *DashboardService) scope(ctx context.Context, spec filter.Spec) (filter.Scoped, *filter.Filter, error) {
	f, err := filter.New(spec, s.clock)
	if err != nil {
		return filter.Scoped{}, nil, err
	}
	data, err := s.load(ctx)
	if err != nil {
		return filter.Scoped{}, nil, err
	}
	return f.Apply(data), f, nil
}

func (s *DashboardService) load(ctx context.Context) (filter.Data, error) {
	postings, err := s.src.Postings.List(ctx)
	if err != nil {
		return filter.Data{}, dashboard.ErrReadFailed().WithCause(err).WithDetail("collection", "postings")
	}
	records, err := s.src.ViewRecords.List(ctx)
	if err != nil {
		return filter.Data{}, dashboard.ErrReadFailed().WithCause(err).WithDetail("collection", "view_records")
	}
	applicants, err := s.src.Applicants.List(ctx)
	if err != nil {
		return filter.Data{}, dashboard.ErrReadFailed().WithCause(err).WithDetail("collection", "applicants")
	}
	return filter.Data{Postings: postings, ViewRecords: records, Applicants: applicants}, nil
}

func (s *DashboardService) loadInput(ctx context.Context) (report.Input, error) {
	data, err := s.load(ctx)
	if err != nil {
		return report.Input{}, err
	}
	goals, err := s.src.Goals.List(ctx)
	if err != nil {
		return report.Input{}, dashboard.ErrReadFailed().WithCause(err).WithDetail("collection", "goals")
	}
	settings, err := s.src.SiteSettings.List(ctx)
	if err != nil {
		return report.Input{}, dashboard.ErrReadFailed().WithCause(err).WithDetail("collection", "site_settings")
	}
	return report.Input{Data: data, SiteSettings: settings, Goals: goals}, nil
}
