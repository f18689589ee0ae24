package settinginfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Abraxas-365/recruitboard/pkg/kernel"
	"github.com/Abraxas-365/recruitboard/recruitment/setting"
	"github.com/jmoiron/sqlx"
)

// PostgresGoalRepository implements setting.GoalRepository using PostgreSQL
type PostgresGoalRepository struct {
	db *sqlx.DB
}

// NewPostgresGoalRepository creates a new PostgreSQL goal repository
func NewPostgresGoalRepository(db *sqlx.DB) *PostgresGoalRepository {
	return &PostgresGoalRepository{
		db: db,
	}
}

type goalModel struct {
	ID            string    `db:"id"`
	YearMonth     string    `db:"year_month"`
	TargetHires   int       `db:"target_hires"`
	TargetSaramin int       `db:"target_saramin"`
	TargetJobKor  int       `db:"target_jobkorea"`
	TargetIncruit int       `db:"target_incruit"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (m *goalModel) toEntity() setting.Goal {
	return setting.Goal{
		ID:          kernel.GoalID(m.ID),
		YearMonth:   m.YearMonth,
		TargetHires: m.TargetHires,
		TargetBySite: setting.TargetBySite{
			Saramin:  m.TargetSaramin,
			JobKorea: m.TargetJobKor,
			Incruit:  m.TargetIncruit,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func goalFromEntity(g *setting.Goal) *goalModel {
	return &goalModel{
		ID:            g.ID.String(),
		YearMonth:     g.YearMonth,
		TargetHires:   g.TargetHires,
		TargetSaramin: g.TargetBySite.Saramin,
		TargetJobKor:  g.TargetBySite.JobKorea,
		TargetIncruit: g.TargetBySite.Incruit,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

const (
	goalColumns = `id, year_month, target_hires, target_saramin, target_jobkorea, target_incruit, created_at, updated_at`

	insertGoalQuery = `INSERT INTO goals (` + goalColumns + `)
		VALUES (:id, :year_month, :target_hires, :target_saramin, :target_jobkorea, :target_incruit, :created_at, :updated_at)`

	updateGoalQuery = `UPDATE goals SET year_month = :year_month, target_hires = :target_hires, target_saramin = :target_saramin,
		target_jobkorea = :target_jobkorea, target_incruit = :target_incruit, updated_at = :updated_at
		WHERE id = :id`

	listGoalsQuery = `SELECT ` + goalColumns + ` FROM goals ORDER BY created_at, id`
)

// Create inserts a new goal
func (r *PostgresGoalRepository) Create(ctx context.Context, g *setting.Goal) error {
	if _, err := r.db.NamedExecContext(ctx, insertGoalQuery, goalFromEntity(g)); err != nil {
		return fmt.Errorf("insert goal: %w", err)
	}
	return nil
}

// Update overwrites an existing goal
func (r *PostgresGoalRepository) Update(ctx context.Context, id kernel.GoalID, g *setting.Goal) error {
	model := goalFromEntity(g)
	model.ID = id.String()

	result, err := r.db.NamedExecContext(ctx, updateGoalQuery, model)
	if err != nil {
		return fmt.Errorf("update goal: %w", err)
	}
	if missing(result) {
		return setting.ErrGoalNotFound().WithDetail("goal_id", id.String())
	}
	return nil
}

// List returns goals in insertion order, so duplicates resolve to the oldest
func (r *PostgresGoalRepository) List(ctx context.Context) ([]setting.Goal, error) {
	var models []goalModel
	if err := r.db.SelectContext(ctx, &models, listGoalsQuery); err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	goals := make([]setting.Goal, 0, len(models))
	for i := range models {
		goals = append(goals, models[i].toEntity())
	}
	return goals, nil
}

func missing(result sql.Result) bool {
	rows, err := result.RowsAffected()
	return err == nil && rows == 0
}
