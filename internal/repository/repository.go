package repository

import (
	"ratesbot/internal/domain"
)

// PreferenceRepository defines user preference persistence. Load returns an
// all-defaults record for unknown users; Save is an upsert.
type PreferenceRepository interface {
	Load(userID int64) (*domain.UserPreference, error)
	Save(pref *domain.UserPreference) error
	ListUserIDs() ([]int64, error)
}
