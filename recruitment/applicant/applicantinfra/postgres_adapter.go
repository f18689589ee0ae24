package applicantinfra

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Abraxas-365/recruitboard/pkg/kernel"
	"github.com/Abraxas-365/recruitboard/recruitment/applicant"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresApplicantRepository implements applicant.Repository using PostgreSQL
type PostgresApplicantRepository struct {
	db *sqlx.DB
}

// NewPostgresApplicantRepository creates a new PostgreSQL applicant repository
func NewPostgresApplicantRepository(db *sqlx.DB) *PostgresApplicantRepository {
	return &PostgresApplicantRepository{
		db: db,
	}
}

// ============================================================================
// Database Models
// ============================================================================

type applicantModel struct {
	ID          string        `db:"id"`
	Name        string        `db:"name"`
	Gender      string        `db:"gender"`
	Age         sql.NullInt64 `db:"age"`
	ContactInfo string        `db:"contact_info"`
	PostingID   string        `db:"applied_job_id"`
	AppliedDate string        `db:"applied_date"`
	Status      string        `db:"status"`
	Memo        string        `db:"memo"`
	CreatedAt   time.Time     `db:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at"`
}

func (m *applicantModel) toEntity() applicant.Applicant {
	a := applicant.Applicant{
		ID:          kernel.ApplicantID(m.ID),
		Name:        kernel.PersonName(m.Name),
		Gender:      applicant.Gender(m.Gender),
		ContactInfo: kernel.ContactInfo(m.ContactInfo),
		PostingID:   kernel.PostingID(m.PostingID),
		AppliedDate: kernel.Date(m.AppliedDate),
		Status:      applicant.Status(m.Status),
		Memo:        kernel.Memo(m.Memo),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Age.Valid && m.Age.Int64 > 0 {
		age := int(m.Age.Int64)
		a.Age = &age
	}
	return a
}

func fromEntity(a *applicant.Applicant) *applicantModel {
	m := &applicantModel{
		ID:          a.ID.String(),
		Name:        string(a.Name),
		Gender:      string(a.Gender),
		ContactInfo: string(a.ContactInfo),
		PostingID:   a.PostingID.String(),
		AppliedDate: a.AppliedDate.String(),
		Status:      string(a.Status),
		Memo:        string(a.Memo),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if a.HasAge() {
		m.Age = sql.NullInt64{Int64: int64(*a.Age), Valid: true}
	}
	return m
}

// ============================================================================
// Queries
// ============================================================================

const (
	applicantColumns = `id, name, gender, age, contact_info, applied_job_id, applied_date, status, memo, created_at, updated_at`

	insertApplicantQuery = `INSERT INTO applicants (` + applicantColumns + `)
		VALUES (:id, :name, :gender, :age, :contact_info, :applied_job_id, :applied_date, :status, :memo, :created_at, :updated_at)`

	updateApplicantQuery = `UPDATE applicants SET name = :name, gender = :gender, age = :age, contact_info = :contact_info,
		applied_job_id = :applied_job_id, applied_date = :applied_date, status = :status, memo = :memo, updated_at = :updated_at
		WHERE id = :id`

	updateStatusQuery = `UPDATE applicants SET status = $2, updated_at = $3 WHERE id = $1`

	selectApplicantByIDQuery = `SELECT ` + applicantColumns + ` FROM applicants WHERE id = $1`

	deleteApplicantQuery = `DELETE FROM applicants WHERE id = $1`

	listApplicantsQuery = `SELECT ` + applicantColumns + ` FROM applicants ORDER BY created_at, id`

	countApplicantsQuery = `SELECT COUNT(*) FROM applicants`

	pageApplicantsQuery = `SELECT ` + applicantColumns + ` FROM applicants
		ORDER BY applied_date DESC, name, id
		LIMIT $1 OFFSET $2`
)

// ============================================================================
// Repository Implementation
// ============================================================================

// Create inserts a new applicant
func (r *PostgresApplicantRepository) Create(ctx context.Context, a *applicant.Applicant) error {
	if _, err := r.db.NamedExecContext(ctx, insertApplicantQuery, fromEntity(a)); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation
			return applicant.ErrWriteFailed().WithDetail("applicant_id", a.ID.String()).WithCause(err)
		}
		return fmt.Errorf("insert applicant: %w", err)
	}
	return nil
}

// Update overwrites an existing applicant
func (r *PostgresApplicantRepository) Update(ctx context.Context, id kernel.ApplicantID, a *applicant.Applicant) error {
	model := fromEntity(a)
	model.ID = id.String()

	result, err := r.db.NamedExecContext(ctx, updateApplicantQuery, model)
	if err != nil {
		return fmt.Errorf("update applicant: %w", err)
	}
	return requireAffected(result, id)
}

// UpdateStatus changes the status of one applicant
func (r *PostgresApplicantRepository) UpdateStatus(ctx context.Context, id kernel.ApplicantID, status applicant.Status, updatedAt time.Time) error {
	result, err := r.db.ExecContext(ctx, updateStatusQuery, id.String(), string(status), updatedAt)
	if err != nil {
		return fmt.Errorf("update applicant status: %w", err)
	}
	return requireAffected(result, id)
}

// GetByID retrieves an applicant by ID
func (r *PostgresApplicantRepository) GetByID(ctx context.Context, id kernel.ApplicantID) (*applicant.Applicant, error) {
	var model applicantModel
	if err := r.db.GetContext(ctx, &model, selectApplicantByIDQuery, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, applicant.ErrApplicantNotFound().WithDetail("applicant_id", id.String())
		}
		return nil, fmt.Errorf("get applicant: %w", err)
	}
	entity := model.toEntity()
	return &entity, nil
}

// Delete removes an applicant
func (r *PostgresApplicantRepository) Delete(ctx context.Context, id kernel.ApplicantID) error {
	result, err := r.db.ExecContext(ctx, deleteApplicantQuery, id.String())
	if err != nil {
		return fmt.Errorf("delete applicant: %w", err)
	}
	return requireAffected(result, id)
}

// List returns every applicant in insertion order
func (r *PostgresApplicantRepository) List(ctx context.Context) ([]applicant.Applicant, error) {
	var models []applicantModel
	if err := r.db.SelectContext(ctx, &models, listApplicantsQuery); err != nil {
		return nil, fmt.Errorf("list applicants: %w", err)
	}
	return toEntities(models), nil
}

// ListPaginated returns one page of applicants, newest application first
func (r *PostgresApplicantRepository) ListPaginated(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[applicant.Applicant], error) {
	var total int
	if err := r.db.GetContext(ctx, &total, countApplicantsQuery); err != nil {
		return nil, fmt.Errorf("count applicants: %w", err)
	}

	var models []applicantModel
	if err := r.db.SelectContext(ctx, &models, pageApplicantsQuery, pagination.PageSize, pagination.Offset()); err != nil {
		return nil, fmt.Errorf("page applicants: %w", err)
	}

	page := kernel.NewPaginated(toEntities(models), pagination, total)
	return &page, nil
}

func toEntities(models []applicantModel) []applicant.Applicant {
	applicants := make([]applicant.Applicant, 0, len(models))
	for i := range models {
		applicants = append(applicants, models[i].toEntity())
	}
	return applicants
}

func requireAffected(result sql.Result, id kernel.ApplicantID) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return applicant.ErrApplicantNotFound().WithDetail("applicant_id", id.String())
	}
	return nil
}
