package service

import (
	"fmt"
	"time"

	"ratesbot/internal/domain"
	"ratesbot/internal/repository"

	"go.uber.org/zap"
)

// Transport delivers rendered views to the chat platform. Edit returns nil
// when the message content is already up to date; any other failure is a
// real edit failure.
type Transport interface {
	Send(chatID int64, view View) (int, error)
	Edit(chatID int64, messageID int, view View) error
	Delete(chatID int64, messageID int) error
}

// LifecycleManager maintains the single live message per user: it decides
// between editing the stored message in place, deleting and resending an
// expired one, or sending fresh, and keeps the stored identity in sync with
// what is actually in the chat.
//
// Callers must serialize operations per user; the manager itself holds no
// locks. Operations for different users are independent.
type LifecycleManager struct {
	transport Transport
	prefs     repository.PreferenceRepository
	logger    *zap.Logger
	now       func() time.Time
}

// NewLifecycleManager creates a lifecycle manager.
func NewLifecycleManager(transport Transport, prefs repository.PreferenceRepository, logger *zap.Logger) *LifecycleManager {
	return &LifecycleManager{
		transport: transport,
		prefs:     prefs,
		logger:    logger,
		now:       time.Now,
	}
}

// Deliver shows the view as the user's live message. A fresh live message is
// edited in place; an edit failure clears the stored identity and falls
// through to a resend in the same call; an expired message is deleted
// best-effort and replaced. Every identity change is persisted before
// returning.
func (m *LifecycleManager) Deliver(pref *domain.UserPreference, view View) error {
	if pref.ChatID == nil {
		return fmt.Errorf("user %d has no chat id", pref.UserID)
	}
	chatID := *pref.ChatID
	now := m.now()

	switch pref.MessageStateAt(now) {
	case domain.LiveFresh:
		err := m.transport.Edit(chatID, *pref.MessageID, view)
		if err == nil {
			return nil
		}
		m.logger.Warn("Failed to edit live message, resending",
			zap.Int64("user_id", pref.UserID),
			zap.Int("message_id", *pref.MessageID),
			zap.Error(err),
		)
		pref.ClearLiveMessage()
		if err := m.prefs.Save(pref); err != nil {
			return fmt.Errorf("failed to persist cleared message state: %w", err)
		}

	case domain.LiveExpired:
		if err := m.transport.Delete(chatID, *pref.MessageID); err != nil {
			m.logger.Warn("Failed to delete expired live message",
				zap.Int64("user_id", pref.UserID),
				zap.Int("message_id", *pref.MessageID),
				zap.Error(err),
			)
		}
		pref.ClearLiveMessage()
		if err := m.prefs.Save(pref); err != nil {
			return fmt.Errorf("failed to persist cleared message state: %w", err)
		}
	}

	messageID, err := m.transport.Send(chatID, view)
	if err != nil {
		return fmt.Errorf("failed to send live message: %w", err)
	}

	pref.SetLiveMessage(messageID, now)
	if err := m.prefs.Save(pref); err != nil {
		return fmt.Errorf("failed to persist message state: %w", err)
	}

	return nil
}

// Discard removes the user's live message from the chat, best-effort, and
// clears the stored identity. The caller is responsible for persisting the
// preference afterwards.
func (m *LifecycleManager) Discard(pref *domain.UserPreference) {
	if pref.MessageID != nil && pref.ChatID != nil {
		if err := m.transport.Delete(*pref.ChatID, *pref.MessageID); err != nil {
			m.logger.Warn("Failed to delete live message",
				zap.Int64("user_id", pref.UserID),
				zap.Int("message_id", *pref.MessageID),
				zap.Error(err),
			)
		}
	}
	pref.ClearLiveMessage()
}
