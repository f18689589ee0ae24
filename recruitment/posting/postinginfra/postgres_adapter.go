package postinginfra

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Abraxas-365/recruitboard/pkg/kernel"
	"github.com/Abraxas-365/recruitboard/recruitment/posting"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresPostingRepository implements posting.Repository using PostgreSQL
type PostgresPostingRepository struct {
	db *sqlx.DB
}

// NewPostgresPostingRepository creates a new PostgreSQL posting repository
func NewPostgresPostingRepository(db *sqlx.DB) *PostgresPostingRepository {
	return &PostgresPostingRepository{
		db: db,
	}
}

// ============================================================================
// Database Models
// ============================================================================

type postingModel struct {
	ID        string         `db:"id"`
	Site      string         `db:"site"`
	Position  string         `db:"position"`
	Title     string         `db:"title"`
	Company   string         `db:"company"`
	Status    string         `db:"status"`
	StartDate sql.NullString `db:"start_date"`
	EndDate   sql.NullString `db:"end_date"`
	Memo      string         `db:"memo"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (m *postingModel) toEntity() posting.Posting {
	return posting.Posting{
		ID:        kernel.PostingID(m.ID),
		Site:      kernel.Site(m.Site),
		Position:  kernel.Position(m.Position),
		Title:     kernel.PostingTitle(m.Title),
		Company:   kernel.CompanyName(m.Company),
		Status:    posting.PostingStatus(m.Status),
		StartDate: kernel.Date(m.StartDate.String),
		EndDate:   kernel.Date(m.EndDate.String),
		Memo:      kernel.Memo(m.Memo),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromEntity(p *posting.Posting) *postingModel {
	return &postingModel{
		ID:        p.ID.String(),
		Site:      string(p.Site),
		Position:  string(p.Position),
		Title:     string(p.Title),
		Company:   string(p.Company),
		Status:    string(p.Status),
		StartDate: nullDate(p.StartDate),
		EndDate:   nullDate(p.EndDate),
		Memo:      string(p.Memo),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func nullDate(d kernel.Date) sql.NullString {
	return sql.NullString{String: d.String(), Valid: !d.IsEmpty()}
}

// ============================================================================
// Queries
// ============================================================================

const (
	postingColumns = `id, site, position, title, company, status, start_date, end_date, memo, created_at, updated_at`

	insertPostingQuery = `INSERT INTO postings (` + postingColumns + `)
		VALUES (:id, :site, :position, :title, :company, :status, :start_date, :end_date, :memo, :created_at, :updated_at)`

	updatePostingQuery = `UPDATE postings SET site = :site, position = :position, title = :title, company = :company,
		status = :status, start_date = :start_date, end_date = :end_date, memo = :memo, updated_at = :updated_at
		WHERE id = :id`

	selectPostingByIDQuery = `SELECT ` + postingColumns + ` FROM postings WHERE id = $1`

	deletePostingQuery = `DELETE FROM postings WHERE id = $1`

	listPostingsQuery = `SELECT ` + postingColumns + ` FROM postings ORDER BY created_at, id`

	countPostingsQuery = `SELECT COUNT(*) FROM postings`

	pagePostingsQuery = `SELECT ` + postingColumns + ` FROM postings
		ORDER BY CASE site WHEN 'SARAMIN' THEN 0 WHEN 'JOBKOREA' THEN 1 ELSE 2 END,
			CASE position WHEN 'SALES' THEN 0 ELSE 1 END, created_at DESC
		LIMIT $1 OFFSET $2`
)

// ============================================================================
// Repository Implementation
// ============================================================================

// Create inserts a new posting
func (r *PostgresPostingRepository) Create(ctx context.Context, p *posting.Posting) error {
	if _, err := r.db.NamedExecContext(ctx, insertPostingQuery, fromEntity(p)); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation
			return posting.ErrWriteFailed().WithDetail("posting_id", p.ID.String()).WithCause(err)
		}
		return fmt.Errorf("insert posting: %w", err)
	}
	return nil
}

// Update overwrites an existing posting
func (r *PostgresPostingRepository) Update(ctx context.Context, id kernel.PostingID, p *posting.Posting) error {
	model := fromEntity(p)
	model.ID = id.String()

	result, err := r.db.NamedExecContext(ctx, updatePostingQuery, model)
	if err != nil {
		return fmt.Errorf("update posting: %w", err)
	}
	return requireAffected(result, id)
}

// GetByID retrieves a posting by ID
func (r *PostgresPostingRepository) GetByID(ctx context.Context, id kernel.PostingID) (*posting.Posting, error) {
	var model postingModel
	if err := r.db.GetContext(ctx, &model, selectPostingByIDQuery, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, posting.ErrPostingNotFound().WithDetail("posting_id", id.String())
		}
		return nil, fmt.Errorf("get posting: %w", err)
	}
	entity := model.toEntity()
	return &entity, nil
}

// Delete removes a posting
func (r *PostgresPostingRepository) Delete(ctx context.Context, id kernel.PostingID) error {
	result, err := r.db.ExecContext(ctx, deletePostingQuery, id.String())
	if err != nil {
		return fmt.Errorf("delete posting: %w", err)
	}
	return requireAffected(result, id)
}

// List returns every posting in insertion order
func (r *PostgresPostingRepository) List(ctx context.Context) ([]posting.Posting, error) {
	var models []postingModel
	if err := r.db.SelectContext(ctx, &models, listPostingsQuery); err != nil {
		return nil, fmt.Errorf("list postings: %w", err)
	}

	postings := make([]posting.Posting, 0, len(models))
	for i := range models {
		postings = append(postings, models[i].toEntity())
	}
	return postings, nil
}

// ListPaginated returns one page of postings in display order
func (r *PostgresPostingRepository) ListPaginated(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[posting.Posting], error) {
	var total int
	if err := r.db.GetContext(ctx, &total, countPostingsQuery); err != nil {
		return nil, fmt.Errorf("count postings: %w", err)
	}

	var models []postingModel
	if err := r.db.SelectContext(ctx, &models, pagePostingsQuery, pagination.PageSize, pagination.Offset()); err != nil {
		return nil, fmt.Errorf("page postings: %w", err)
	}

	postings := make([]posting.Posting, 0, len(models))
	for i := range models {
		postings = append(postings, models[i].toEntity())
	}

	page := kernel.NewPaginated(postings, pagination, total)
	return &page, nil
}

func requireAffected(result sql.Result, id kernel.PostingID) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return posting.ErrPostingNotFound().WithDetail("posting_id", id.String())
	}
	return nil
}
