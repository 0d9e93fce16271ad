package dto

import (
	"github.com/mocustoms/railway-ledger/internal/core/domain"
)

// SavePreferenceRequest upserts a user preference value.
type SavePreferenceRequest struct {
	Value string `json:"value" binding:"required"`
}

// PreferenceResponse defines the API representation of a user preference.
type PreferenceResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ToPreferenceResponse converts a domain.UserPreference to its API representation.
func ToPreferenceResponse(p *domain.UserPreference) PreferenceResponse {
	return PreferenceResponse{Key: p.Key, Value: p.Value}
}

// ToPreferenceResponses converts a slice of preferences.
func ToPreferenceResponses(prefs []domain.UserPreference) []PreferenceResponse {
	out := make([]PreferenceResponse, len(prefs))
	for i := range prefs {
		out[i] = ToPreferenceResponse(&prefs[i])
	}
	return out
}
