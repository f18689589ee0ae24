package dashboard

import (
	"context"

	"github.com/Abraxas-365/recruitboard/pkg/kernel"
)

type PreferenceStore interface {
	// Get returns the saved preferences of a user, or ErrPreferencesNotFound
	Get(ctx context.Context, userID kernel.UserID) (*Preferences, error)

	// Save overwrites the preferences of a user
	Save(ctx context.Context, userID kernel.UserID, prefs Preferences) error
}

type ReportArchive interface {
	// Put stores one object under key
	Put(ctx context.Context, key, contentType string, body []byte) error

	// List returns the keys stored under prefix
	List(ctx context.Context, prefix string) ([]string, error)
}
