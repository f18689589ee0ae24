package dashboardinfra

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Abraxas-365/recruitboard/pkg/kernel"
	"github.com/Abraxas-365/recruitboard/recruitment/dashboard"
	"github.com/go-redis/redis/v8"
)

// RedisPreferenceStore keeps one JSON document per user
type RedisPreferenceStore struct {
	client *redis.Client
	prefix string
}

// NewRedisPreferenceStore creates a Redis backed preference store
func NewRedisPreferenceStore(client *redis.Client) *RedisPreferenceStore {
	return &RedisPreferenceStore{
		client: client,
		prefix: "dashboard:prefs:",
	}
}

func (s *RedisPreferenceStore) Get(ctx context.Context, userID kernel.UserID) (*dashboard.Preferences, error) {
	raw, err := s.client.Get(ctx, s.prefix+userID.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, dashboard.ErrPreferencesNotFound().WithDetail("user_id", userID.String())
	}
	if err != nil {
		return nil, fmt.Errorf("get preferences of %s: %w", userID, err)
	}

	var prefs dashboard.Preferences
	if err := json.Unmarshal(raw, &prefs); err != nil {
		return nil, fmt.Errorf("decode preferences of %s: %w", userID, err)
	}
	return &prefs, nil
}

func (s *RedisPreferenceStore) Save(ctx context.Context, userID kernel.UserID, prefs dashboard.Preferences) error {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode preferences of %s: %w", userID, err)
	}
	if err := s.client.Set(ctx, s.prefix+userID.String(), raw, 0).Err(); err != nil {
		return fmt.Errorf("save preferences of %s: %w", userID, err)
	}
	return nil
}
