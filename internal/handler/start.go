package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start and /restart: resets the preference to
// defaults, removes the previous live message and opens currency selection.
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	lock := h.lockUser(userID)
	lock.Lock()
	defer lock.Unlock()

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	h.deleteInbound(c)

	pref, err := h.prefs.Load(userID)
	if err != nil {
		h.logger.Error("Failed to load preference", zap.Error(err))
		return c.Send(msgTryLater)
	}

	h.lifecycle.Discard(pref)
	pref.Reset()
	chatID := c.Chat().ID
	pref.ChatID = &chatID

	if err := h.prefs.Save(pref); err != nil {
		h.logger.Error("Failed to save preference", zap.Error(err))
		return c.Send(msgTryLater)
	}

	if err := c.Send("Добро пожаловать!", amountKeyboard()); err != nil {
		h.logger.Warn("Failed to send welcome message", zap.Error(err))
	}

	if err := h.showSelection(pref); err != nil {
		h.logger.Error("Failed to show currency selection", zap.Error(err))
	}
	return nil
}

// handleRefresh re-renders the rates screen with freshly fetched rates.
func (h *Handler) handleRefresh(c tele.Context) error {
	userID := c.Sender().ID

	lock := h.lockUser(userID)
	lock.Lock()
	defer lock.Unlock()

	h.deleteInbound(c)

	pref, err := h.prefs.Load(userID)
	if err != nil {
		h.logger.Error("Failed to load preference", zap.Error(err))
		return c.Send(msgTryLater)
	}

	if pref.ChatID == nil {
		chatID := c.Chat().ID
		pref.ChatID = &chatID
	}

	if err := h.showRates(pref); err != nil {
		h.logger.Error("Failed to show rates", zap.Error(err))
	}
	return nil
}
