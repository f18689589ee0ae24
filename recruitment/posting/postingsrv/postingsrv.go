package postingsrv

import (
	"context"
	"errors"
	"time"

	"github.com/Abraxas-365/recruitboard/pkg/errx"
	"github.com/Abraxas-365/recruitboard/pkg/kernel"
	"github.com/Abraxas-365/recruitboard/pkg/logx"
	"github.com/Abraxas-365/recruitboard/pkg/valx"
	"github.com/Abraxas-365/recruitboard/recruitment/posting"
	"github.com/google/uuid"
)

// PostingService provides business operations for postings
type PostingService struct {
	repo posting.Repository
	now  func() time.Time
}

// NewPostingService creates a new instance of the posting service
func NewPostingService(repo posting.Repository) *PostingService {
	return &PostingService{
		repo: repo,
		now:  time.Now,
	}
}

// CreatePosting validates the form and stores a new posting
func (s *PostingService) CreatePosting(ctx context.Context, req posting.CreatePostingRequest) (*posting.Posting, error) {
	if err := valx.Struct(req); err != nil {
		return nil, err
	}

	p := &posting.Posting{
		ID:      kernel.NewPostingID(uuid.NewString()),
		Title:   kernel.PostingTitle(req.Title),
		Company: kernel.CompanyName(req.Company),
		Memo:    kernel.Memo(req.Memo),
		Status:  posting.PostingStatusOpen,
	}

	var err error
	if p.Site, err = parseSite(req.Site); err != nil {
		return nil, err
	}
	if p.Position, err = parsePosition(req.Position); err != nil {
		return nil, err
	}
	if req.Status != "" {
		if p.Status, err = parseStatus(req.Status); err != nil {
			return nil, err
		}
	}
	if p.StartDate, err = parseOptionalDate(req.StartDate); err != nil {
		return nil, err
	}
	if p.EndDate, err = parseOptionalDate(req.EndDate); err != nil {
		return nil, err
	}
	if err := p.ValidatePeriod(); err != nil {
		return nil, err
	}

	now := s.now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.repo.Create(ctx, p); err != nil {
		logx.Errorf("create posting %s: %v", p.ID, err)
		return nil, posting.ErrWriteFailed().WithCause(err)
	}

	return p, nil
}

// UpdatePosting applies the non-nil fields of req to an existing posting
func (s *PostingService) UpdatePosting(ctx context.Context, id kernel.PostingID, req posting.UpdatePostingRequest) (*posting.Posting, error) {
	if err := valx.Struct(req); err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load posting", errx.TypeInternal)
	}

	if req.Site != nil {
		if p.Site, err = parseSite(*req.Site); err != nil {
			return nil, err
		}
	}
	if req.Position != nil {
		if p.Position, err = parsePosition(*req.Position); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		if p.Status, err = parseStatus(*req.Status); err != nil {
			return nil, err
		}
	}
	if req.Title != nil {
		p.Title = kernel.PostingTitle(*req.Title)
	}
	if req.Company != nil {
		p.Company = kernel.CompanyName(*req.Company)
	}
	if req.Memo != nil {
		p.Memo = kernel.Memo(*req.Memo)
	}
	if req.StartDate != nil {
		if p.StartDate, err = parseOptionalDate(*req.StartDate); err != nil {
			return nil, err
		}
	}
	if req.EndDate != nil {
		if p.EndDate, err = parseOptionalDate(*req.EndDate); err != nil {
			return nil, err
		}
	}
	if err := p.ValidatePeriod(); err != nil {
		return nil, err
	}

	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, id, p); err != nil {
		logx.Errorf("update posting %s: %v", id, err)
		return nil, writeFailure(err)
	}

	return p, nil
}

// DeletePosting removes a posting irreversibly
func (s *PostingService) DeletePosting(ctx context.Context, id kernel.PostingID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		logx.Errorf("delete posting %s: %v", id, err)
		return writeFailure(err)
	}
	return nil
}

// GetPosting retrieves one posting
func (s *PostingService) GetPosting(ctx context.Context, id kernel.PostingID) (*posting.PostingResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load posting", errx.TypeInternal)
	}
	resp := posting.ToResponse(*p)
	return &resp, nil
}

// ListPostings returns one page of postings
func (s *PostingService) ListPostings(ctx context.Context, pagination kernel.PaginationOptions) (*posting.PaginatedPostingsResponse, error) {
	page, err := s.repo.ListPaginated(ctx, pagination)
	if err != nil {
		return nil, posting.ErrReadFailed().WithCause(err)
	}

	items := make([]posting.PostingResponse, 0, len(page.Items))
	for _, p := range page.Items {
		items = append(items, posting.ToResponse(p))
	}

	return &kernel.Paginated[posting.PostingResponse]{
		Items: items,
		Page:  page.Page,
		Empty: page.Empty,
	}, nil
}

// ListAll returns the entire posting collection
func (s *PostingService) ListAll(ctx context.Context) ([]posting.Posting, error) {
	postings, err := s.repo.List(ctx)
	if err != nil {
		return nil, posting.ErrReadFailed().WithCause(err)
	}
	return postings, nil
}

// ListOpen returns running postings ordered by site then position
func (s *PostingService) ListOpen(ctx context.Context) ([]posting.Posting, error) {
	postings, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return posting.Open(postings), nil
}

// writeFailure keeps registered errors such as NOT_FOUND and reports
// everything else as a failed store write
func writeFailure(err error) error {
	var e *errx.Error
	if errors.As(err, &e) {
		return e
	}
	return posting.ErrWriteFailed().WithCause(err)
}

// ============================================================================
// Parsing helpers
// ============================================================================

func parseSite(v string) (kernel.Site, error) {
	site, err := kernel.ParseSite(v)
	if err != nil {
		return "", posting.ErrInvalidSite().WithDetail("site", v)
	}
	return site, nil
}

func parsePosition(v string) (kernel.Position, error) {
	pos, err := kernel.ParsePosition(v)
	if err != nil {
		return "", posting.ErrInvalidPosition().WithDetail("position", v)
	}
	return pos, nil
}

func parseStatus(v string) (posting.PostingStatus, error) {
	st, err := posting.ParsePostingStatus(v)
	if err != nil {
		return "", posting.ErrInvalidStatus().WithDetail("status", v)
	}
	return st, nil
}

func parseOptionalDate(v string) (kernel.Date, error) {
	if v == "" {
		return "", nil
	}
	d, err := kernel.ParseDate(v)
	if err != nil {
		return "", posting.ErrInvalidDate().WithDetail("date", v)
	}
	return d, nil
}
