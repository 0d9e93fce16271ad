package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mocustoms/railway-ledger/internal/apperrors"
	"github.com/mocustoms/railway-ledger/internal/core/domain"
	portsrepo "github.com/mocustoms/railway-ledger/internal/core/ports/repositories"
	portssvc "github.com/mocustoms/railway-ledger/internal/core/ports/services"
)

// preferenceService provides the per-user preference store.
type preferenceService struct {
	prefRepo portsrepo.PreferenceRepositoryFacade
}

// NewPreferenceService creates a new preference service.
func NewPreferenceService(prefRepo portsrepo.PreferenceRepositoryFacade) portssvc.PreferenceSvcFacade {
	return &preferenceService{prefRepo: prefRepo}
}

var _ portssvc.PreferenceSvcFacade = (*preferenceService)(nil)

func (s *preferenceService) GetPreference(ctx context.Context, userID, key string) (*domain.UserPreference, error) {
	return s.prefRepo.FindPreference(ctx, userID, key)
}

func (s *preferenceService) ListPreferences(ctx context.Context, userID string) ([]domain.UserPreference, error) {
	prefs, err := s.prefRepo.ListPreferences(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list preferences: %w", err)
	}
	if prefs == nil {
		prefs = []domain.UserPreference{}
	}
	return prefs, nil
}

func (s *preferenceService) SavePreference(ctx context.Context, userID, key, value string) (*domain.UserPreference, error) {
	if key == "" {
		return nil, apperrors.NewValidationError("preference key is required")
	}

	now := time.Now()
	pref := domain.UserPreference{
		UserID: userID,
		Key:    key,
		Value:  value,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.prefRepo.SavePreference(ctx, pref); err != nil {
		return nil, fmt.Errorf("failed to save preference: %w", err)
	}
	return &pref, nil
}

func (s *preferenceService) DeletePreference(ctx context.Context, userID, key string) error {
	return s.prefRepo.DeletePreference(ctx, userID, key)
}
