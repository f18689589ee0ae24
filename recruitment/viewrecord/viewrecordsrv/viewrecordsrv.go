package viewrecordsrv

import (
	"context"
	"errors"
	"time"

	"github.com/Abraxas-365/recruitboard/analytics/chart"
	"github.com/Abraxas-365/recruitboard/analytics/daterange"
	"github.com/Abraxas-365/recruitboard/analytics/filter"
	"github.com/Abraxas-365/recruitboard/pkg/errx"
	"github.com/Abraxas-365/recruitboard/pkg/kernel"
	"github.com/Abraxas-365/recruitboard/pkg/logx"
	"github.com/Abraxas-365/recruitboard/pkg/valx"
	"github.com/Abraxas-365/recruitboard/recruitment/posting"
	"github.com/Abraxas-365/recruitboard/recruitment/viewrecord"
	"github.com/google/uuid"
)

// ViewRecordService manages the daily view counts of postings
type ViewRecordService struct {
	repo     viewrecord.Repository
	postings posting.Repository
	clock    daterange.Clock
	now      func() time.Time
	newID    func() kernel.ViewRecordID
}

// NewViewRecordService creates a new instance of the view record service
func NewViewRecordService(repo viewrecord.Repository, postings posting.Repository, clock daterange.Clock) *ViewRecordService {
	return &ViewRecordService{
		repo:     repo,
		postings: postings,
		clock:    clock,
		now:      time.Now,
		newID:    func() kernel.ViewRecordID { return kernel.NewViewRecordID(uuid.NewString()) },
	}
}

// Sheet builds the entry sheet of one day for every open posting. An empty
// date means today.
func (s *ViewRecordService) Sheet(ctx context.Context, date string) (*viewrecord.DaySheet, error) {
	d, err := s.parseDay(date)
	if err != nil {
		return nil, err
	}

	postings, err := s.postings.List(ctx)
	if err != nil {
		return nil, viewrecord.ErrReadFailed().WithCause(err)
	}
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, viewrecord.ErrReadFailed().WithCause(err)
	}

	open := posting.Open(postings)
	sheet := &viewrecord.DaySheet{Date: d, Entries: make([]viewrecord.SheetEntry, 0, len(open))}
	for _, p := range open {
		prev := viewrecord.TotalBefore(records, p.ID, d)
		inc := viewrecord.TotalOn(records, p.ID, d)
		ids := viewrecord.IDsOn(records, p.ID, d)
		if ids == nil {
			ids = []kernel.ViewRecordID{}
		}
		sheet.Entries = append(sheet.Entries, viewrecord.SheetEntry{
			PostingID:     p.ID,
			Title:         p.Title,
			Site:          p.Site,
			SiteLabel:     p.Site.Label(),
			Position:      p.Position,
			PositionLabel: p.Position.Label(),
			PrevTotal:     prev,
			Increase:      inc,
			Total:         prev + inc,
			RecordIDs:     ids,
		})
	}
	return sheet, nil
}

// SaveDay replaces the records of every entry's posting on the day. All
// deletes and inserts commit in one batch; on failure nothing is written.
func (s *ViewRecordService) SaveDay(ctx context.Context, req viewrecord.SaveDayRequest) (*viewrecord.SaveDayResponse, error) {
	if err := valx.Struct(req); err != nil {
		return nil, err
	}
	d, err := kernel.ParseDate(req.Date)
	if err != nil {
		return nil, viewrecord.ErrInvalidDate().WithDetail("date", req.Date)
	}

	postings, err := s.postings.List(ctx)
	if err != nil {
		return nil, viewrecord.ErrReadFailed().WithCause(err)
	}
	ix := filter.NewPostingIndex(postings)

	entries := make([]viewrecord.DayEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		id := kernel.NewPostingID(e.PostingID)
		if _, ok := ix.Lookup(id); !ok {
			return nil, viewrecord.ErrPostingNotFound().WithDetail("job_id", e.PostingID)
		}
		entry := viewrecord.DayEntry{PostingID: id, Increase: e.Increase.Int64()}
		if e.Total != nil {
			total := e.Total.Int64()
			entry.Total = &total
		}
		entries = append(entries, entry)
	}

	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, viewrecord.ErrReadFailed().WithCause(err)
	}

	plan := viewrecord.PlanDay(records, d, entries, s.newID, s.now())
	resp := &viewrecord.SaveDayResponse{Date: d, Deleted: len(plan.Deletes), Written: len(plan.Sets)}
	if plan.IsEmpty() {
		return resp, nil
	}

	batch := s.repo.Batch()
	for _, id := range plan.Deletes {
		batch.Delete(id)
	}
	for _, r := range plan.Sets {
		batch.Set(r)
	}
	if err := batch.Commit(ctx); err != nil {
		logx.Errorf("commit view records for %s: %v", d, err)
		return nil, viewrecord.ErrBatchFailed().WithCause(err).WithDetail("date", d.String())
	}

	logx.Infof("view records for %s saved: %d deleted, %d written", d, resp.Deleted, resp.Written)
	return resp, nil
}

// DeleteRecord removes a single view record
func (s *ViewRecordService) DeleteRecord(ctx context.Context, id kernel.ViewRecordID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		logx.Errorf("delete view record %s: %v", id, err)
		var e *errx.Error
		if errors.As(err, &e) {
			return e
		}
		return viewrecord.ErrWriteFailed().WithCause(err)
	}
	return nil
}

// ListAll returns the entire view record collection
func (s *ViewRecordService) ListAll(ctx context.Context) ([]viewrecord.ViewRecord, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, viewrecord.ErrReadFailed().WithCause(err)
	}
	return records, nil
}

// DailyChart draws the view counts of the filtered postings per
// site-position combination
func (s *ViewRecordService) DailyChart(ctx context.Context, spec filter.Spec) (*chart.Chart, error) {
	f, err := filter.New(spec, s.clock)
	if err != nil {
		return nil, err
	}

	postings, err := s.postings.List(ctx)
	if err != nil {
		return nil, viewrecord.ErrReadFailed().WithCause(err)
	}
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, viewrecord.ErrReadFailed().WithCause(err)
	}

	c := chart.DailyViews(f.Apply(filter.Data{Postings: postings, ViewRecords: records}))
	return &c, nil
}

func (s *ViewRecordService) parseDay(v string) (kernel.Date, error) {
	if v == "" {
		return s.clock.Today(), nil
	}
	d, err := kernel.ParseDate(v)
	if err != nil {
		return "", viewrecord.ErrInvalidDate().WithDetail("date", v)
	}
	return d, nil
}
