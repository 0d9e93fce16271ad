package services

import (
	"context"

	"github.com/mocustoms/railway-ledger/internal/core/domain"
)

// PreferenceSvcFacade defines the operations of the user preferences store.
type PreferenceSvcFacade interface {
	GetPreference(ctx context.Context, userID, key string) (*domain.UserPreference, error)
	ListPreferences(ctx context.Context, userID string) ([]domain.UserPreference, error)
	SavePreference(ctx context.Context, userID, key, value string) (*domain.UserPreference, error)
	DeletePreference(ctx context.Context, userID, key string) error
}
