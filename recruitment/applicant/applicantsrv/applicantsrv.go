package applicantsrv

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/Abraxas-365/recruitboard/analytics/daterange"
	"github.com/Abraxas-365/recruitboard/analytics/filter"
	"github.com/Abraxas-365/recruitboard/pkg/errx"
	"github.com/Abraxas-365/recruitboard/pkg/kernel"
	"github.com/Abraxas-365/recruitboard/pkg/logx"
	"github.com/Abraxas-365/recruitboard/pkg/valx"
	"github.com/Abraxas-365/recruitboard/recruitment/applicant"
	"github.com/Abraxas-365/recruitboard/recruitment/posting"
	"github.com/google/uuid"
)

// ApplicantService provides business operations for applicants
type ApplicantService struct {
	repo     applicant.Repository
	postings posting.Repository
	clock    daterange.Clock
	now      func() time.Time
}

// NewApplicantService creates a new instance of the applicant service
func NewApplicantService(repo applicant.Repository, postings posting.Repository, clock daterange.Clock) *ApplicantService {
	return &ApplicantService{
		repo:     repo,
		postings: postings,
		clock:    clock,
		now:      time.Now,
	}
}

// ListQuery selects the applicant list page
type ListQuery struct {
	Filter filter.Spec
	// IncludeOrphans appends applicants whose posting no longer exists
	IncludeOrphans bool
}

// CreateApplicant validates the form and stores a new applicant
func (s *ApplicantService) CreateApplicant(ctx context.Context, req applicant.CreateApplicantRequest) (*applicant.Applicant, error) {
	if err := valx.Struct(req); err != nil {
		return nil, err
	}

	a := &applicant.Applicant{
		ID:          kernel.NewApplicantID(uuid.NewString()),
		Name:        kernel.PersonName(req.Name),
		Age:         req.Age.Ptr(),
		ContactInfo: kernel.ContactInfo(req.ContactInfo),
		PostingID:   kernel.NewPostingID(req.PostingID),
		Status:      applicant.StatusApplied,
		Gender:      applicant.GenderMale,
		Memo:        kernel.Memo(req.Memo),
	}

	var err error
	if req.Status != "" {
		if a.Status, err = parseStatus(req.Status); err != nil {
			return nil, err
		}
	}
	if req.Gender != "" {
		if a.Gender, err = parseGender(req.Gender); err != nil {
			return nil, err
		}
	}
	if a.AppliedDate, err = parseDate(req.AppliedDate); err != nil {
		return nil, err
	}
	if err := s.ensurePosting(ctx, a.PostingID); err != nil {
		return nil, err
	}

	now := s.now()
	a.CreatedAt = now
	a.UpdatedAt = now

	if err := s.repo.Create(ctx, a); err != nil {
		logx.Errorf("create applicant %s: %v", a.ID, err)
		return nil, applicant.ErrWriteFailed().WithCause(err)
	}

	return a, nil
}

// UpdateApplicant applies the non-nil fields of req to an existing applicant
func (s *ApplicantService) UpdateApplicant(ctx context.Context, id kernel.ApplicantID, req applicant.UpdateApplicantRequest) (*applicant.Applicant, error) {
	if err := valx.Struct(req); err != nil {
		return nil, err
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load applicant", errx.TypeInternal)
	}

	if req.Name != nil {
		a.Name = kernel.PersonName(*req.Name)
	}
	if req.Gender != nil {
		if a.Gender, err = parseGender(*req.Gender); err != nil {
			return nil, err
		}
	}
	if req.Age != nil {
		a.Age = req.Age.Ptr()
	}
	if req.ContactInfo != nil {
		a.ContactInfo = kernel.ContactInfo(*req.ContactInfo)
	}
	if req.PostingID != nil {
		pid := kernel.NewPostingID(*req.PostingID)
		if pid != a.PostingID {
			if err := s.ensurePosting(ctx, pid); err != nil {
				return nil, err
			}
			a.PostingID = pid
		}
	}
	if req.AppliedDate != nil {
		if a.AppliedDate, err = parseDate(*req.AppliedDate); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		if a.Status, err = parseStatus(*req.Status); err != nil {
			return nil, err
		}
	}
	if req.Memo != nil {
		a.Memo = kernel.Memo(*req.Memo)
	}

	a.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, id, a); err != nil {
		logx.Errorf("update applicant %s: %v", id, err)
		return nil, writeFailure(err)
	}

	return a, nil
}

// UpdateStatus moves an applicant to another status
func (s *ApplicantService) UpdateStatus(ctx context.Context, id kernel.ApplicantID, req applicant.UpdateStatusRequest) (*applicant.Applicant, error) {
	if err := valx.Struct(req); err != nil {
		return nil, err
	}
	status, err := parseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load applicant", errx.TypeInternal)
	}
	if err := a.ChangeStatus(status, s.now()); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, id, a.Status, a.UpdatedAt); err != nil {
		logx.Errorf("update applicant %s status: %v", id, err)
		return nil, writeFailure(err)
	}

	logx.Infof("applicant %s moved to %s", id, a.Status)
	return a, nil
}

// DeleteApplicant removes an applicant irreversibly
func (s *ApplicantService) DeleteApplicant(ctx context.Context, id kernel.ApplicantID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		logx.Errorf("delete applicant %s: %v", id, err)
		return writeFailure(err)
	}
	return nil
}

// GetApplicant retrieves one applicant joined with its posting
func (s *ApplicantService) GetApplicant(ctx context.Context, id kernel.ApplicantID) (*applicant.ApplicantResponse, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load applicant", errx.TypeInternal)
	}

	var p *posting.Posting
	switch found, err := s.postings.GetByID(ctx, a.PostingID); {
	case err == nil:
		p = found
	case !errx.IsType(err, errx.TypeNotFound):
		return nil, applicant.ErrReadFailed().WithCause(err)
	}

	resp := toResponse(*a, p)
	return &resp, nil
}

// ListApplicants filters the collection, joins each applicant with its
// posting and pages the result, newest application first
func (s *ApplicantService) ListApplicants(ctx context.Context, q ListQuery, pagination kernel.PaginationOptions) (*applicant.PaginatedApplicantsResponse, error) {
	f, err := filter.New(q.Filter, s.clock)
	if err != nil {
		return nil, err
	}

	postings, err := s.postings.List(ctx)
	if err != nil {
		return nil, applicant.ErrReadFailed().WithCause(err)
	}
	applicants, err := s.repo.List(ctx)
	if err != nil {
		return nil, applicant.ErrReadFailed().WithCause(err)
	}

	data := filter.Data{Postings: postings, Applicants: applicants}
	scoped := f.Apply(data)

	items := make([]applicant.ApplicantResponse, 0, len(scoped.Applicants))
	for _, a := range scoped.Applicants {
		p, _ := scoped.Index.Lookup(a.PostingID)
		items = append(items, toResponse(a, p))
	}
	if q.IncludeOrphans {
		for _, a := range f.Orphans(data) {
			items = append(items, toResponse(a, nil))
		}
	}
	SortByAppliedDate(items)

	return paginate(items, pagination), nil
}

// ListRaw returns one page of the unfiltered collection as stored
func (s *ApplicantService) ListRaw(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[applicant.Applicant], error) {
	page, err := s.repo.ListPaginated(ctx, pagination)
	if err != nil {
		return nil, applicant.ErrReadFailed().WithCause(err)
	}
	return page, nil
}

// ListAll returns the entire applicant collection
func (s *ApplicantService) ListAll(ctx context.Context) ([]applicant.Applicant, error) {
	applicants, err := s.repo.List(ctx)
	if err != nil {
		return nil, applicant.ErrReadFailed().WithCause(err)
	}
	return applicants, nil
}

// SortByAppliedDate orders applicants newest first, then by name
func SortByAppliedDate(items []applicant.ApplicantResponse) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].AppliedDate != items[j].AppliedDate {
			return items[i].AppliedDate > items[j].AppliedDate
		}
		return items[i].Name < items[j].Name
	})
}

func (s *ApplicantService) ensurePosting(ctx context.Context, id kernel.PostingID) error {
	if _, err := s.postings.GetByID(ctx, id); err != nil {
		if errx.IsType(err, errx.TypeNotFound) {
			return applicant.ErrPostingNotFound().WithDetail("applied_job_id", id.String())
		}
		return applicant.ErrReadFailed().WithCause(err)
	}
	return nil
}

func toResponse(a applicant.Applicant, p *posting.Posting) applicant.ApplicantResponse {
	resp := applicant.ApplicantResponse{
		Applicant:   a,
		StatusLabel: a.Status.Label(),
		GenderLabel: a.Gender.Label(),
		Orphaned:    p == nil,
	}
	if p != nil {
		resp.JobTitle = p.Title
		resp.Site = p.Site
		resp.SiteLabel = p.Site.Label()
		resp.Position = p.Position
		resp.PositionLabel = p.Position.Label()
	}
	return resp
}

func paginate(items []applicant.ApplicantResponse, opts kernel.PaginationOptions) *applicant.PaginatedApplicantsResponse {
	total := len(items)
	start := opts.Offset()
	if start < 0 || start > total {
		start = total
	}
	end := total
	if opts.PageSize > 0 && start+opts.PageSize < total {
		end = start + opts.PageSize
	}
	page := kernel.NewPaginated(items[start:end], opts, total)
	return &page
}

// writeFailure keeps registered errors such as NOT_FOUND and reports
// everything else as a failed store write
func writeFailure(err error) error {
	var e *errx.Error
	if errors.As(err, &e) {
		return e
	}
	return applicant.ErrWriteFailed().WithCause(err)
}

// ============================================================================
// Parsing helpers
// ============================================================================

func parseStatus(v string) (applicant.Status, error) {
	st, err := applicant.ParseStatus(v)
	if err != nil {
		return "", applicant.ErrInvalidStatus().WithDetail("status", v)
	}
	return st, nil
}

func parseGender(v string) (applicant.Gender, error) {
	g, err := applicant.ParseGender(v)
	if err != nil {
		return "", applicant.ErrInvalidGender().WithDetail("gender", v)
	}
	return g, nil
}

func parseDate(v string) (kernel.Date, error) {
	d, err := kernel.ParseDate(v)
	if err != nil {
		return "", applicant.ErrInvalidDate().WithDetail("date", v)
	}
	return d, nil
}
