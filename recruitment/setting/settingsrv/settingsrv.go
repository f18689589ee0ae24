package settingsrv

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/Abraxas-365/recruitboard/pkg/errx"
	"github.com/Abraxas-365/recruitboard/pkg/kernel"
	"github.com/Abraxas-365/recruitboard/pkg/logx"
	"github.com/Abraxas-365/recruitboard/pkg/valx"
	"github.com/Abraxas-365/recruitboard/recruitment/setting"
	"github.com/google/uuid"
)

var yearMonthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// SettingService manages monthly goals and site costs
type SettingService struct {
	goals    setting.GoalRepository
	settings setting.SiteSettingRepository
	now      func() time.Time
}

// NewSettingService creates a new instance of the setting service
func NewSettingService(goals setting.GoalRepository, settings setting.SiteSettingRepository) *SettingService {
	return &SettingService{
		goals:    goals,
		settings: settings,
		now:      time.Now,
	}
}

// ListGoals returns every goal in store order
func (s *SettingService) ListGoals(ctx context.Context) ([]setting.Goal, error) {
	goals, err := s.goals.List(ctx)
	if err != nil {
		return nil, setting.ErrReadFailed().WithCause(err)
	}
	return goals, nil
}

// ListSiteSettings returns every site setting in store order
func (s *SettingService) ListSiteSettings(ctx context.Context) ([]setting.SiteSetting, error) {
	settings, err := s.settings.List(ctx)
	if err != nil {
		return nil, setting.ErrReadFailed().WithCause(err)
	}
	return settings, nil
}

// GetSettings returns goals and site costs together
func (s *SettingService) GetSettings(ctx context.Context) (*setting.SettingsResponse, error) {
	goals, err := s.ListGoals(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.ListSiteSettings(ctx)
	if err != nil {
		return nil, err
	}
	return &setting.SettingsResponse{Goals: goals, SiteSettings: settings}, nil
}

// UpsertGoal updates the first goal of the month or creates one
func (s *SettingService) UpsertGoal(ctx context.Context, req setting.UpsertGoalRequest) (*setting.Goal, error) {
	if err := valx.Struct(req); err != nil {
		return nil, err
	}
	if !yearMonthPattern.MatchString(req.YearMonth) {
		return nil, setting.ErrInvalidYearMonth().WithDetail("year_month", req.YearMonth)
	}

	goals, err := s.ListGoals(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	target := setting.TargetBySite{
		Saramin:  int(req.TargetBySite.Saramin),
		JobKorea: int(req.TargetBySite.JobKorea),
		Incruit:  int(req.TargetBySite.Incruit),
	}

	if existing, ok := setting.FindGoal(goals, req.YearMonth); ok {
		goal := *existing
		goal.TargetHires = int(req.TargetHires)
		goal.TargetBySite = target
		goal.UpdatedAt = now
		if err := s.goals.Update(ctx, goal.ID, &goal); err != nil {
			logx.Errorf("update goal %s: %v", goal.ID, err)
			return nil, writeFailure(err)
		}
		return &goal, nil
	}

	goal := &setting.Goal{
		ID:           kernel.NewGoalID(uuid.NewString()),
		YearMonth:    req.YearMonth,
		TargetHires:  int(req.TargetHires),
		TargetBySite: target,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.goals.Create(ctx, goal); err != nil {
		logx.Errorf("create goal %s: %v", req.YearMonth, err)
		return nil, writeFailure(err)
	}
	return goal, nil
}

// UpsertSiteSetting updates the first setting of the site or creates one
func (s *SettingService) UpsertSiteSetting(ctx context.Context, req setting.UpsertSiteSettingRequest) (*setting.SiteSetting, error) {
	if err := valx.Struct(req); err != nil {
		return nil, err
	}

	site, err := kernel.ParseSite(req.Site)
	if err != nil {
		return nil, setting.ErrInvalidSite().WithDetail("site", req.Site)
	}

	var billing kernel.Date
	if req.BillingStartDate != "" {
		if billing, err = kernel.ParseDate(req.BillingStartDate); err != nil {
			return nil, setting.ErrInvalidDate().WithDetail("billing_start_date", req.BillingStartDate)
		}
	}

	settings, err := s.ListSiteSettings(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if existing, ok := setting.FindSiteSetting(settings, site); ok {
		updated := *existing
		updated.MonthlyCost = req.MonthlyCost.Int64()
		updated.QuarterlyCost = req.QuarterlyCost.Int64()
		updated.BillingStartDate = billing
		updated.UpdatedAt = now
		if err := s.settings.Update(ctx, updated.ID, &updated); err != nil {
			logx.Errorf("update site setting %s: %v", updated.ID, err)
			return nil, writeFailure(err)
		}
		return &updated, nil
	}

	created := &setting.SiteSetting{
		ID:               kernel.NewSiteSettingID(uuid.NewString()),
		Site:             site,
		MonthlyCost:      req.MonthlyCost.Int64(),
		QuarterlyCost:    req.QuarterlyCost.Int64(),
		BillingStartDate: billing,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.settings.Create(ctx, created); err != nil {
		logx.Errorf("create site setting %s: %v", site, err)
		return nil, writeFailure(err)
	}
	return created, nil
}

// writeFailure keeps registered errors and reports everything else as a failed store write
func writeFailure(err error) error {
	var e *errx.Error
	if errors.As(err, &e) {
		return e
	}
	return setting.ErrWriteFailed().WithCause(err)
}
