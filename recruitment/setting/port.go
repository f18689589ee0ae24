package setting

import (
	"context"

	"github.com/Abraxas-365/recruitboard/pkg/kernel"
)

type GoalRepository interface {
	// Create stores a new goal
	Create(ctx context.Context, goal *Goal) error

	// Update overwrites an existing goal
	Update(ctx context.Context, id kernel.GoalID, goal *Goal) error

	// List returns every goal in store order
	List(ctx context.Context) ([]Goal, error)
}

type SiteSettingRepository interface {
	// Create stores a new site setting
	Create(ctx context.Context, s *SiteSetting) error

	// Update overwrites an existing site setting
	Update(ctx context.Context, id kernel.SiteSettingID, s *SiteSetting) error

	// List returns every site setting in store order
	List(ctx context.Context) ([]SiteSetting, error)
}
