package handler

import (
	"strings"
	"unicode"

	"ratesbot/internal/domain"
	"ratesbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	if callback.Unique != "" {
		data = cleanCallbackData(callback.Unique)
	}

	userID := c.Sender().ID

	lock := h.lockUser(userID)
	lock.Lock()
	defer lock.Unlock()

	pref, err := h.prefs.Load(userID)
	if err != nil {
		h.logger.Error("Failed to load preference", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: msgTryLater})
	}
	if pref.ChatID == nil {
		chatID := c.Chat().ID
		pref.ChatID = &chatID
	}

	switch {
	case data == service.ActionToSelection:
		return h.respondAfter(c, h.showSelection(pref))

	case data == service.ActionShowRates:
		return h.respondAfter(c, h.showRates(pref))

	case strings.HasPrefix(data, service.SelectPrefix):
		code := strings.TrimPrefix(data, service.SelectPrefix)
		return h.respondAfter(c, h.toggleCurrency(pref, code))

	case strings.HasPrefix(data, service.BasePrefix):
		code := strings.TrimPrefix(data, service.BasePrefix)
		return h.respondAfter(c, h.changeBase(pref, code))
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.Int64("user_id", userID),
	)
	return c.Respond()
}

// toggleCurrency flips a currency in the selection and re-renders the
// selection screen
func (h *Handler) toggleCurrency(pref *domain.UserPreference, code string) error {
	pref.ToggleSelected(code)

	if err := h.prefs.Save(pref); err != nil {
		return err
	}

	return h.showSelection(pref)
}

// changeBase makes the given currency the new base and re-renders rates
func (h *Handler) changeBase(pref *domain.UserPreference, code string) error {
	if pref.IsSelected(code) {
		pref.Base = &code
		if err := h.prefs.Save(pref); err != nil {
			return err
		}
	}

	return h.showRates(pref)
}

// respondAfter acknowledges the callback once the action completed; errors
// are logged and hidden behind a generic response
func (h *Handler) respondAfter(c tele.Context, err error) error {
	if err != nil {
		h.logger.Error("Callback action failed",
			zap.Int64("user_id", c.Sender().ID),
			zap.Error(err),
		)
		return c.Respond(&tele.CallbackResponse{Text: msgTryLater})
	}
	return c.Respond()
}
