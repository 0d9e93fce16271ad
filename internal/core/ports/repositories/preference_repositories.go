package repositories

import (
	"context"

	"github.com/mocustoms/railway-ledger/internal/core/domain"
)

// PreferenceRepositoryFacade provides the read/write ports of the user
// preferences store.
type PreferenceRepositoryFacade interface {
	// FindPreference retrieves a single preference by user and key.
	FindPreference(ctx context.Context, userID, key string) (*domain.UserPreference, error)

	// ListPreferences retrieves all preferences of a user.
	ListPreferences(ctx context.Context, userID string) ([]domain.UserPreference, error)

	// SavePreference upserts a preference value.
	SavePreference(ctx context.Context, pref domain.UserPreference) error

	// DeletePreference removes a preference.
	DeletePreference(ctx context.Context, userID, key string) error
}
