package viewrecord

import (
	"time"

	"github.com/Abraxas-365/recruitboard/pkg/kernel"
)

// ViewRecord is a view-count delta observed for a posting on one day.
// The day's total is the sum over every record for (posting, date).
type ViewRecord struct {
	ID            kernel.ViewRecordID `db:"id" json:"id"`
	PostingID     kernel.PostingID    `db:"job_id" json:"job_id"`
	Date          kernel.Date         `db:"date" json:"date"`
	ViewsIncrease int64               `db:"views_increase" json:"views_increase"`
	CreatedAt     time.Time           `db:"created_at" json:"created_at"`
}

// TotalOn sums the deltas recorded for the posting on d
func TotalOn(records []ViewRecord, id kernel.PostingID, d kernel.Date) int64 {
	var sum int64
	for _, r := range records {
		if r.PostingID == id && r.Date == d {
			sum += r.ViewsIncrease
		}
	}
	return sum
}

// TotalBefore sums the deltas recorded for the posting strictly before d
func TotalBefore(records []ViewRecord, id kernel.PostingID, d kernel.Date) int64 {
	var sum int64
	for _, r := range records {
		if r.PostingID == id && r.Date.Before(d) {
			sum += r.ViewsIncrease
		}
	}
	return sum
}

// CumulativeAsOf is the posting's view count including day d
func CumulativeAsOf(records []ViewRecord, id kernel.PostingID, d kernel.Date) int64 {
	return TotalBefore(records, id, d) + TotalOn(records, id, d)
}

// IDsOn returns the records stored for (posting, d)
func IDsOn(records []ViewRecord, id kernel.PostingID, d kernel.Date) []kernel.ViewRecordID {
	var ids []kernel.ViewRecordID
	for _, r := range records {
		if r.PostingID == id && r.Date == d {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

// ============================================================================
// Day replacement
// ============================================================================

// DayEntry is the operator's input for one posting on the selected day.
// Total, when set, is the cumulative count and wins over Increase.
type DayEntry struct {
	PostingID kernel.PostingID
	Increase  int64
	Total     *int64
}

// DayPlan is the set of writes that replaces one day's records
type DayPlan struct {
	Deletes []kernel.ViewRecordID
	Sets    []ViewRecord
}

// IsEmpty reports whether the plan has nothing to write
func (p DayPlan) IsEmpty() bool {
	return len(p.Deletes) == 0 && len(p.Sets) == 0
}

// PlanDay computes the deletes and inserts that make each entry's posting
// hold exactly one record on d. A record is written when the delta is
// non-zero or when older records for the day are being removed. Repeated
// entries for a posting are ignored after the first.
func PlanDay(records []ViewRecord, d kernel.Date, entries []DayEntry, newID func() kernel.ViewRecordID, now time.Time) DayPlan {
	var plan DayPlan
	seen := make(map[kernel.PostingID]bool, len(entries))
	for _, e := range entries {
		if seen[e.PostingID] {
			continue
		}
		seen[e.PostingID] = true

		increase := e.Increase
		if e.Total != nil {
			increase = *e.Total - TotalBefore(records, e.PostingID, d)
		}

		existing := IDsOn(records, e.PostingID, d)
		plan.Deletes = append(plan.Deletes, existing...)

		if increase != 0 || len(existing) > 0 {
			plan.Sets = append(plan.Sets, ViewRecord{
				ID:            newID(),
				PostingID:     e.PostingID,
				Date:          d,
				ViewsIncrease: increase,
				CreatedAt:     now,
			})
		}
	}
	return plan
}

// Apply returns the collection as it looks after the plan commits
func (p DayPlan) Apply(records []ViewRecord) []ViewRecord {
	deleted := make(map[kernel.ViewRecordID]bool, len(p.Deletes))
	for _, id := range p.Deletes {
		deleted[id] = true
	}

	out := make([]ViewRecord, 0, len(records)+len(p.Sets))
	for _, r := range records {
		if !deleted[r.ID] {
			out = append(out, r)
		}
	}
	return append(out, p.Sets...)
}
