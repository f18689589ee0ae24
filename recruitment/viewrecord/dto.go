package viewrecord

import (
	"github.com/Abraxas-365/recruitboard/pkg/kernel"
)

// SaveDayRequest replaces the view counts of several postings on one day
type SaveDayRequest struct {
	Date    string            `json:"date" validate:"required"`
	Entries []DayEntryRequest `json:"entries" validate:"dive"`
}

// DayEntryRequest carries either the day's increase or the cumulative total
type DayEntryRequest struct {
	PostingID string           `json:"job_id" validate:"required"`
	Increase  kernel.LooseInt  `json:"increase"`
	Total     *kernel.LooseInt `json:"total,omitempty"`
}

// SheetEntry is one row of the daily entry sheet
type SheetEntry struct {
	PostingID     kernel.PostingID      `json:"job_id"`
	Title         kernel.PostingTitle   `json:"title"`
	Site          kernel.Site           `json:"site"`
	SiteLabel     string                `json:"site_label"`
	Position      kernel.Position       `json:"position"`
	PositionLabel string                `json:"position_label"`
	PrevTotal     int64                 `json:"prev_total"`
	Increase      int64                 `json:"increase"`
	Total         int64                 `json:"total"`
	RecordIDs     []kernel.ViewRecordID `json:"record_ids"`
}

// DaySheet is the entry sheet for one day
type DaySheet struct {
	Date    kernel.Date  `json:"date"`
	Entries []SheetEntry `json:"entries"`
}

// SaveDayResponse reports what the batch wrote
type SaveDayResponse struct {
	Date    kernel.Date `json:"date"`
	Deleted int         `json:"deleted"`
	Written int         `json:"written"`
}
