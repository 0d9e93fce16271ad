package domain

// UserPreference is a per-user UI preference (e.g. list column visibility)
// keyed by a free-form preference name. Persistence sits behind an explicit
// repository port instead of ambient client-side storage.
type UserPreference struct {
	UserID string `json:"userID"`
	Key    string `json:"key"`   // e.g. "journal-list.columns"
	Value  string `json:"value"` // Opaque JSON payload owned by the client
	AuditFields
}
