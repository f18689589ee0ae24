package posting

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Abraxas-365/recruitboard/pkg/kernel"
)

// PostingStatus represents whether a posting is still accepting applicants
type PostingStatus string

const (
	PostingStatusOpen   PostingStatus = "OPEN"   // 진행중
	PostingStatusClosed PostingStatus = "CLOSED" // 마감
)

var statusLabels = map[PostingStatus]string{
	PostingStatusOpen:   "진행중",
	PostingStatusClosed: "마감",
}

func (s PostingStatus) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// ParsePostingStatus accepts the identifier or the Korean label
func ParsePostingStatus(v string) (PostingStatus, error) {
	v = strings.TrimSpace(v)
	for s, label := range statusLabels {
		if strings.EqualFold(v, string(s)) || v == label {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown posting status %q", v)
}

// Posting is a job advertisement on one site for one position
type Posting struct {
	ID        kernel.PostingID    `db:"id" json:"id"`
	Site      kernel.Site         `db:"site" json:"site"`
	Position  kernel.Position     `db:"position" json:"position"`
	Title     kernel.PostingTitle `db:"title" json:"title"`
	Company   kernel.CompanyName  `db:"company" json:"company"`
	Status    PostingStatus       `db:"status" json:"status"`
	StartDate kernel.Date         `db:"start_date" json:"start_date,omitempty"`
	EndDate   kernel.Date         `db:"end_date" json:"end_date,omitempty"`
	Memo      kernel.Memo         `db:"memo" json:"memo,omitempty"`
	CreatedAt time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt time.Time           `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsOpen checks if the posting is still running
func (p *Posting) IsOpen() bool {
	return p.Status == PostingStatusOpen
}

// Matches reports whether the posting belongs to one of the given sites and positions
func (p *Posting) Matches(sites []kernel.Site, positions []kernel.Position) bool {
	return kernel.ContainsSite(sites, p.Site) && kernel.ContainsPosition(positions, p.Position)
}

// ComboLabel returns "<site>-<position>" using Korean labels
func (p *Posting) ComboLabel() string {
	return p.Site.Label() + "-" + p.Position.Label()
}

// ValidatePeriod checks that the advertised period is not inverted
func (p *Posting) ValidatePeriod() error {
	if !p.StartDate.IsEmpty() && !p.EndDate.IsEmpty() && p.EndDate.Before(p.StartDate) {
		return ErrInvalidPeriod().
			WithDetail("start_date", p.StartDate.String()).
			WithDetail("end_date", p.EndDate.String())
	}
	return nil
}

// SortForDisplay orders postings by site, then position, keeping store order otherwise
func SortForDisplay(postings []Posting) {
	sort.SliceStable(postings, func(i, j int) bool {
		if postings[i].Site != postings[j].Site {
			return postings[i].Site.Order() < postings[j].Site.Order()
		}
		return postings[i].Position.Order() < postings[j].Position.Order()
	})
}

// Open returns the running postings in display order
func Open(postings []Posting) []Posting {
	out := make([]Posting, 0, len(postings))
	for _, p := range postings {
		if p.IsOpen() {
			out = append(out, p)
		}
	}
	SortForDisplay(out)
	return out
}
