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

// PostgresSiteSettingRepository implements setting.SiteSettingRepository using PostgreSQL
type PostgresSiteSettingRepository struct {
	db *sqlx.DB
}

// NewPostgresSiteSettingRepository creates a new PostgreSQL site setting repository
func NewPostgresSiteSettingRepository(db *sqlx.DB) *PostgresSiteSettingRepository {
	return &PostgresSiteSettingRepository{
		db: db,
	}
}

type siteSettingModel struct {
	ID               string         `db:"id"`
	Site             string         `db:"site"`
	MonthlyCost      int64          `db:"monthly_cost"`
	QuarterlyCost    int64          `db:"quarterly_cost"`
	BillingStartDate sql.NullString `db:"billing_start_date"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

func (m *siteSettingModel) toEntity() setting.SiteSetting {
	return setting.SiteSetting{
		ID:               kernel.SiteSettingID(m.ID),
		Site:             kernel.Site(m.Site),
		MonthlyCost:      m.MonthlyCost,
		QuarterlyCost:    m.QuarterlyCost,
		BillingStartDate: kernel.Date(m.BillingStartDate.String),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func siteSettingFromEntity(s *setting.SiteSetting) *siteSettingModel {
	return &siteSettingModel{
		ID:            s.ID.String(),
		Site:          string(s.Site),
		MonthlyCost:   s.MonthlyCost,
		QuarterlyCost: s.QuarterlyCost,
		BillingStartDate: sql.NullString{
			String: s.BillingStartDate.String(),
			Valid:  !s.BillingStartDate.IsEmpty(),
		},
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

const (
	siteSettingColumns = `id, site, monthly_cost, quarterly_cost, billing_start_date, created_at, updated_at`

	insertSiteSettingQuery = `INSERT INTO site_settings (` + siteSettingColumns + `)
		VALUES (:id, :site, :monthly_cost, :quarterly_cost, :billing_start_date, :created_at, :updated_at)`

	updateSiteSettingQuery = `UPDATE site_settings SET site = :site, monthly_cost = :monthly_cost, quarterly_cost = :quarterly_cost,
		billing_start_date = :billing_start_date, updated_at = :updated_at
		WHERE id = :id`

	listSiteSettingsQuery = `SELECT ` + siteSettingColumns + ` FROM site_settings ORDER BY created_at, id`
)

// Create inserts a new site setting
func (r *PostgresSiteSettingRepository) Create(ctx context.Context, s *setting.SiteSetting) error {
	if _, err := r.db.NamedExecContext(ctx, insertSiteSettingQuery, siteSettingFromEntity(s)); err != nil {
		return fmt.Errorf("insert site setting: %w", err)
	}
	return nil
}

// Update overwrites an existing site setting
func (r *PostgresSiteSettingRepository) Update(ctx context.Context, id kernel.SiteSettingID, s *setting.SiteSetting) error {
	model := siteSettingFromEntity(s)
	model.ID = id.String()

	result, err := r.db.NamedExecContext(ctx, updateSiteSettingQuery, model)
	if err != nil {
		return fmt.Errorf("update site setting: %w", err)
	}
	if missing(result) {
		return setting.ErrSiteSettingNotFound().WithDetail("site_setting_id", id.String())
	}
	return nil
}

// List returns site settings in insertion order, so duplicates resolve to the oldest
func (r *PostgresSiteSettingRepository) List(ctx context.Context) ([]setting.SiteSetting, error) {
	var models []siteSettingModel
	if err := r.db.SelectContext(ctx, &models, listSiteSettingsQuery); err != nil {
		return nil, fmt.Errorf("list site settings: %w", err)
	}

	settings := make([]setting.SiteSetting, 0, len(models))
	for i := range models {
		settings = append(settings, models[i].toEntity())
	}
	return settings, nil
}
