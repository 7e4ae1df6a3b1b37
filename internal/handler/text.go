package handler

import (
	"strings"

	"ratesbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText interprets free-form text as an amount operation. Unparseable
// input is silently discarded: the message is removed from the chat and no
// state changes. Note that "/2" is a divide operation, not a command, so
// slash-prefixed text still goes through the amount grammar.
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	lock := h.lockUser(userID)
	lock.Lock()
	defer lock.Unlock()

	pref, err := h.prefs.Load(userID)
	if err != nil {
		h.logger.Error("Failed to load preference", zap.Error(err))
		return c.Send(msgTryLater)
	}

	amount, err := service.ApplyAmountInput(pref.Amount, text)
	if err != nil {
		h.logger.Debug("Discarding unparseable amount input",
			zap.Int64("user_id", userID),
			zap.String("text", text),
		)
		h.deleteInbound(c)
		return nil
	}

	pref.SetAmount(amount)
	if pref.ChatID == nil {
		chatID := c.Chat().ID
		pref.ChatID = &chatID
	}

	if err := h.prefs.Save(pref); err != nil {
		h.logger.Error("Failed to save preference", zap.Error(err))
		return c.Send(msgTryLater)
	}

	if err := h.showRates(pref); err != nil {
		h.logger.Error("Failed to show rates", zap.Error(err))
	}

	h.deleteInbound(c)
	return nil
}
