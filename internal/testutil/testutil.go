package testutil

import (
	"time"

	"ratesbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestPreference creates a preference with a chat id set
func NewTestPreference(userID, chatID int64) *domain.UserPreference {
	pref := domain.NewUserPreference(userID)
	pref.ChatID = &chatID
	return pref
}

// WithLiveMessage stamps a live message identity onto a preference
func WithLiveMessage(pref *domain.UserPreference, messageID int, sentAt time.Time) *domain.UserPreference {
	pref.SetLiveMessage(messageID, sentAt)
	return pref
}
