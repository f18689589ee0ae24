package viewrecord

import (
	"context"

	"github.com/Abraxas-365/recruitboard/pkg/kernel"
)

type Repository interface {
	// List returns the whole collection in store order
	List(ctx context.Context) ([]ViewRecord, error)

	// Delete removes a single record
	Delete(ctx context.Context, id kernel.ViewRecordID) error

	// Batch starts a group of writes that commit together
	Batch() Batch
}

// Batch queues deletes and inserts and applies them all-or-nothing on Commit
type Batch interface {
	Delete(id kernel.ViewRecordID)
	Set(record ViewRecord)
	Commit(ctx context.Context) error
}
