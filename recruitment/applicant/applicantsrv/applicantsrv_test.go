package applicantsrv_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/Abraxas-365/recruitboard/analytics/daterange"
	"github.com/Abraxas-365/recruitboard/analytics/filter"
	"github.com/Abraxas-365/recruitboard/pkg/errx"
	"github.com/Abraxas-365/recruitboard/pkg/kernel"
	"github.com/Abraxas-365/recruitboard/pkg/valx"
	"github.com/Abraxas-365/recruitboard/recruitment/applicant"
	"github.com/Abraxas-365/recruitboard/recruitment/applicant/applicantsrv"
	"github.com/Abraxas-365/recruitboard/recruitment/posting"
)

type applicantRepo struct {
	items   []applicant.Applicant
	failing bool
}

func (r *applicantRepo) Create(_ context.Context, a *applicant.Applicant) error {
	if r.failing {
		return errors.New("connection reset")
	}
	r.items = append(r.items, *a)
	return nil
}

func (r *applicantRepo) Update(_ context.Context, id kernel.ApplicantID, a *applicant.Applicant) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i] = *a
			return nil
		}
	}
	return applicant.ErrApplicantNotFound()
}

func (r *applicantRepo) UpdateStatus(_ context.Context, id kernel.ApplicantID, status applicant.Status, at time.Time) error {
	if r.failing {
		return errors.New("connection reset")
	}
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Status = status
			r.items[i].UpdatedAt = at
			return nil
		}
	}
	return applicant.ErrApplicantNotFound()
}

func (r *applicantRepo) GetByID(_ context.Context, id kernel.ApplicantID) (*applicant.Applicant, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			a := r.items[i]
			return &a, nil
		}
	}
	return nil, applicant.ErrApplicantNotFound()
}

func (r *applicantRepo) Delete(_ context.Context, id kernel.ApplicantID) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return applicant.ErrApplicantNotFound()
}

func (r *applicantRepo) List(context.Context) ([]applicant.Applicant, error) {
	return append([]applicant.Applicant(nil), r.items...), nil
}

func (r *applicantRepo) ListPaginated(_ context.Context, opts kernel.PaginationOptions) (*kernel.Paginated[applicant.Applicant], error) {
	page := kernel.NewPaginated(r.items, opts, len(r.items))
	return &page, nil
}

type postingRepo struct {
	items []posting.Posting
}

func (r *postingRepo) Create(_ context.Context, p *posting.Posting) error {
	r.items = append(r.items, *p)
	return nil
}

func (r *postingRepo) Update(context.Context, kernel.PostingID, *posting.Posting) error {
	return nil
}

func (r *postingRepo) GetByID(_ context.Context, id kernel.PostingID) (*posting.Posting, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			p := r.items[i]
			return &p, nil
		}
	}
	return nil, posting.ErrPostingNotFound()
}

func (r *postingRepo) Delete(context.Context, kernel.PostingID) error {
	return nil
}

func (r *postingRepo) List(context.Context) ([]posting.Posting, error) {
	return append([]posting.Posting(nil), r.items...), nil
}

func (r *postingRepo) ListPaginated(_ context.Context, opts kernel.PaginationOptions) (*kernel.Paginated[posting.Posting], error) {
	page := kernel.NewPaginated(r.items, opts, len(r.items))
	return &page, nil
}

func setup() (*applicantRepo, *applicantsrv.ApplicantService) {
	postings := &postingRepo{items: []posting.Posting{
		{ID: "p1", Site: kernel.SiteSaramin, Position: kernel.PositionSales, Title: "영업 신입"},
		{ID: "p2", Site: kernel.SiteJobKorea, Position: kernel.PositionInstructor, Title: "강사 경력"},
	}}
	repo := &applicantRepo{items: []applicant.Applicant{
		{ID: "a1", Name: "김민지", PostingID: "p1", AppliedDate: "2024-05-01", Status: applicant.StatusApplied},
		{ID: "a2", Name: "박지우", PostingID: "p2", AppliedDate: "2024-05-03", Status: applicant.StatusHired},
		{ID: "a3", Name: "강하늘", PostingID: "p1", AppliedDate: "2024-05-03", Status: applicant.StatusContacted},
		{ID: "a4", Name: "이준호", PostingID: "removed", AppliedDate: "2024-05-02", Status: applicant.StatusApplied},
	}}
	return repo, applicantsrv.NewApplicantService(repo, postings, daterange.FixedClock("2024-05-31"))
}

// ── Create ──────────────────────────────────────────────────────────────────

func TestCreateApplicantDefaults(t *testing.T) {
	repo, svc := setup()

	a, err := svc.CreateApplicant(context.Background(), applicant.CreateApplicantRequest{
		Name:        "최유나",
		Age:         kernel.OptionalInt{},
		PostingID:   "p2",
		AppliedDate: "2024-05-20",
	})
	if err != nil {
		t.Fatal(err)
	}
	if a.Status != applicant.StatusApplied || a.Gender != applicant.GenderMale || a.Age != nil {
		t.Errorf("defaults = %+v", a)
	}
	if len(repo.items) != 5 || a.ID.IsEmpty() {
		t.Errorf("stored %d items, id %q", len(repo.items), a.ID)
	}
}

func TestCreateApplicantErrors(t *testing.T) {
	tests := []struct {
		name string
		req  applicant.CreateApplicantRequest
		code string
	}{
		{"missing name", applicant.CreateApplicantRequest{PostingID: "p1", AppliedDate: "2024-05-01"}, valx.CodeInvalidRequest},
		{"bad date", applicant.CreateApplicantRequest{Name: "x", PostingID: "p1", AppliedDate: "05/01/2024"}, applicant.CodeInvalidDate},
		{"bad status", applicant.CreateApplicantRequest{Name: "x", PostingID: "p1", AppliedDate: "2024-05-01", Status: "PENDING"}, applicant.CodeInvalidStatus},
		{"bad gender", applicant.CreateApplicantRequest{Name: "x", PostingID: "p1", AppliedDate: "2024-05-01", Gender: "X"}, applicant.CodeInvalidGender},
		{"unknown posting", applicant.CreateApplicantRequest{Name: "x", PostingID: "nope", AppliedDate: "2024-05-01"}, applicant.CodePostingNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, svc := setup()
			_, err := svc.CreateApplicant(context.Background(), tt.req)
			if !errx.IsCode(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestCreateApplicantWriteFailure(t *testing.T) {
	repo, svc := setup()
	repo.failing = true

	_, err := svc.CreateApplicant(context.Background(), applicant.CreateApplicantRequest{
		Name: "최유나", PostingID: "p1", AppliedDate: "2024-05-20",
	})
	if !errx.IsCode(err, applicant.CodeWriteFailed) {
		t.Errorf("err = %v", err)
	}
}

// ── Update ──────────────────────────────────────────────────────────────────

func TestUpdateStatus(t *testing.T) {
	repo, svc := setup()

	a, err := svc.UpdateStatus(context.Background(), "a1", applicant.UpdateStatusRequest{Status: "면접"})
	if err != nil {
		t.Fatal(err)
	}
	if a.Status != applicant.StatusInterviewing || repo.items[0].Status != applicant.StatusInterviewing {
		t.Errorf("status = %s / %s", a.Status, repo.items[0].Status)
	}

	if _, err := svc.UpdateStatus(context.Background(), "zz", applicant.UpdateStatusRequest{Status: "HIRED"}); !errx.IsCode(err, applicant.CodeApplicantNotFound) {
		t.Errorf("missing applicant err = %v", err)
	}
}

func TestUpdateStatusFailureLeavesStoreUnchanged(t *testing.T) {
	repo, svc := setup()
	repo.failing = true

	_, err := svc.UpdateStatus(context.Background(), "a1", applicant.UpdateStatusRequest{Status: "HIRED"})
	if !errx.IsCode(err, applicant.CodeWriteFailed) {
		t.Errorf("err = %v", err)
	}
	if repo.items[0].Status != applicant.StatusApplied {
		t.Errorf("status changed to %s", repo.items[0].Status)
	}
}

func TestUpdateApplicant(t *testing.T) {
	repo, svc := setup()
	memo := "2차 면접 예정"
	age := kernel.OptionalInt{Value: 31, Valid: true}
	moved := "p2"

	if _, err := svc.UpdateApplicant(context.Background(), "a1", applicant.UpdateApplicantRequest{Memo: &memo, Age: &age, PostingID: &moved}); err != nil {
		t.Fatal(err)
	}
	got := repo.items[0]
	if got.Memo != kernel.Memo(memo) || got.Age == nil || *got.Age != 31 || got.PostingID != "p2" {
		t.Errorf("updated = %+v", got)
	}

	bad := "p9"
	if _, err := svc.UpdateApplicant(context.Background(), "a1", applicant.UpdateApplicantRequest{PostingID: &bad}); !errx.IsCode(err, applicant.CodePostingNotFound) {
		t.Errorf("err = %v", err)
	}
}

func TestDeleteApplicant(t *testing.T) {
	repo, svc := setup()
	if err := svc.DeleteApplicant(context.Background(), "a2"); err != nil {
		t.Fatal(err)
	}
	if len(repo.items) != 3 {
		t.Errorf("items = %d", len(repo.items))
	}
	if err := svc.DeleteApplicant(context.Background(), "a2"); !errx.IsCode(err, applicant.CodeApplicantNotFound) {
		t.Errorf("err = %v", err)
	}
}

// ── Listing ─────────────────────────────────────────────────────────────────

func names(items []applicant.ApplicantResponse) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, string(it.Name))
	}
	return out
}

func TestListApplicants(t *testing.T) {
	_, svc := setup()
	ctx := context.Background()
	all := kernel.PaginationOptions{Page: 1, PageSize: 20}

	page, err := svc.ListApplicants(ctx, applicantsrv.ListQuery{}, all)
	if err != nil {
		t.Fatal(err)
	}
	if got := names(page.Items); len(got) != 3 || got[0] != "강하늘" || got[1] != "박지우" || got[2] != "김민지" {
		t.Errorf("order = %v", got)
	}
	if page.Items[1].JobTitle != "강사 경력" || page.Items[1].SiteLabel != "잡코리아" {
		t.Errorf("join = %+v", page.Items[1])
	}

	page, _ = svc.ListApplicants(ctx, applicantsrv.ListQuery{IncludeOrphans: true}, all)
	if len(page.Items) != 4 || !page.Items[2].Orphaned || page.Items[2].Name != "이준호" {
		t.Errorf("with orphans = %v", names(page.Items))
	}

	page, _ = svc.ListApplicants(ctx, applicantsrv.ListQuery{Filter: filter.Spec{Sites: []kernel.Site{kernel.SiteSaramin}, Status: "CONTACTED"}}, all)
	if got := names(page.Items); len(got) != 1 || got[0] != "강하늘" {
		t.Errorf("filtered = %v", got)
	}

	page, _ = svc.ListApplicants(ctx, applicantsrv.ListQuery{}, kernel.PaginationOptions{Page: 2, PageSize: 2})
	if len(page.Items) != 1 || page.Page.Total != 3 || page.Page.Pages != 2 {
		t.Errorf("page 2 = %+v", page)
	}

	page, err = svc.ListApplicants(ctx, applicantsrv.ListQuery{}, kernel.PaginationOptions{Page: math.MaxInt, PageSize: 20})
	if err != nil || len(page.Items) != 0 || page.Page.Total != 3 {
		t.Errorf("page past the end = %+v, %v", page, err)
	}

	if _, err := svc.ListApplicants(ctx, applicantsrv.ListQuery{Filter: filter.Spec{Status: "??"}}, all); !errx.IsCode(err, filter.CodeInvalidStatus) {
		t.Errorf("err = %v", err)
	}
}

func TestGetApplicantOrphan(t *testing.T) {
	_, svc := setup()
	resp, err := svc.GetApplicant(context.Background(), "a4")
	if err != nil {
		t.Fatal(err)
	}
	if !resp.Orphaned || resp.JobTitle != "" {
		t.Errorf("resp = %+v", resp)
	}
}
