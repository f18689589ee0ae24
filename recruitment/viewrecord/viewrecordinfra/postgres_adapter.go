package viewrecordinfra

import (
	"context"
	"fmt"
	"time"

	"github.com/Abraxas-365/recruitboard/pkg/kernel"
	"github.com/Abraxas-365/recruitboard/recruitment/viewrecord"
	"github.com/jmoiron/sqlx"
)

// PostgresViewRecordRepository implements viewrecord.Repository using PostgreSQL
type PostgresViewRecordRepository struct {
	db *sqlx.DB
}

// NewPostgresViewRecordRepository creates a new PostgreSQL view record repository
func NewPostgresViewRecordRepository(db *sqlx.DB) *PostgresViewRecordRepository {
	return &PostgresViewRecordRepository{
		db: db,
	}
}

// ============================================================================
// Database Models
// ============================================================================

type viewRecordModel struct {
	ID            string    `db:"id"`
	PostingID     string    `db:"job_id"`
	Date          string    `db:"date"`
	ViewsIncrease int64     `db:"views_increase"`
	CreatedAt     time.Time `db:"created_at"`
}

func (m *viewRecordModel) toEntity() viewrecord.ViewRecord {
	return viewrecord.ViewRecord{
		ID:            kernel.ViewRecordID(m.ID),
		PostingID:     kernel.PostingID(m.PostingID),
		Date:          kernel.Date(m.Date),
		ViewsIncrease: m.ViewsIncrease,
		CreatedAt:     m.CreatedAt,
	}
}

func fromEntity(r viewrecord.ViewRecord) viewRecordModel {
	return viewRecordModel{
		ID:            r.ID.String(),
		PostingID:     r.PostingID.String(),
		Date:          r.Date.String(),
		ViewsIncrease: r.ViewsIncrease,
		CreatedAt:     r.CreatedAt,
	}
}

// ============================================================================
// Queries
// ============================================================================

const (
	viewRecordColumns = `id, job_id, date, views_increase, created_at`

	upsertViewRecordQuery = `INSERT INTO view_records (` + viewRecordColumns + `)
		VALUES (:id, :job_id, :date, :views_increase, :created_at)
		ON CONFLICT (id) DO UPDATE SET job_id = EXCLUDED.job_id, date = EXCLUDED.date, views_increase = EXCLUDED.views_increase`

	deleteViewRecordQuery = `DELETE FROM view_records WHERE id = $1`

	listViewRecordsQuery = `SELECT ` + viewRecordColumns + ` FROM view_records ORDER BY date, created_at, id`
)

// ============================================================================
// Repository Implementation
// ============================================================================

// List returns every record ordered by date
func (r *PostgresViewRecordRepository) List(ctx context.Context) ([]viewrecord.ViewRecord, error) {
	var models []viewRecordModel
	if err := r.db.SelectContext(ctx, &models, listViewRecordsQuery); err != nil {
		return nil, fmt.Errorf("list view records: %w", err)
	}

	records := make([]viewrecord.ViewRecord, 0, len(models))
	for i := range models {
		records = append(records, models[i].toEntity())
	}
	return records, nil
}

// Delete removes a single record
func (r *PostgresViewRecordRepository) Delete(ctx context.Context, id kernel.ViewRecordID) error {
	result, err := r.db.ExecContext(ctx, deleteViewRecordQuery, id.String())
	if err != nil {
		return fmt.Errorf("delete view record: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return viewrecord.ErrRecordNotFound().WithDetail("record_id", id.String())
	}
	return nil
}

// Batch starts a transactional group of writes
func (r *PostgresViewRecordRepository) Batch() viewrecord.Batch {
	return &postgresBatch{db: r.db}
}

// ============================================================================
// Batch
// ============================================================================

type postgresBatch struct {
	db      *sqlx.DB
	deletes []string
	sets    []viewRecordModel
}

func (b *postgresBatch) Delete(id kernel.ViewRecordID) {
	b.deletes = append(b.deletes, id.String())
}

func (b *postgresBatch) Set(record viewrecord.ViewRecord) {
	b.sets = append(b.sets, fromEntity(record))
}

// Commit runs every queued delete, then every queued write, in one transaction
func (b *postgresBatch) Commit(ctx context.Context) error {
	if len(b.deletes) == 0 && len(b.sets) == 0 {
		return nil
	}

	tx, err := b.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin view record batch: %w", err)
	}
	defer tx.Rollback()

	for _, id := range b.deletes {
		if _, err := tx.ExecContext(ctx, deleteViewRecordQuery, id); err != nil {
			return fmt.Errorf("batch delete %s: %w", id, err)
		}
	}
	for i := range b.sets {
		if _, err := tx.NamedExecContext(ctx, upsertViewRecordQuery, &b.sets[i]); err != nil {
			return fmt.Errorf("batch set %s: %w", b.sets[i].ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit view record batch: %w", err)
	}
	return nil
}
