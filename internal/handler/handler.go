package handler

import (
	"sync"
	"time"

	"ratesbot/internal/domain"
	"ratesbot/internal/repository"
	"ratesbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const msgTryLater = "Произошла ошибка. Попробуйте позже."

// RateSource provides currency codes and unit values from the rate feed.
type RateSource interface {
	Fetch() ([]string, map[string]float64)
}

// Handler manages all bot interactions
type Handler struct {
	bot       *tele.Bot
	prefs     repository.PreferenceRepository
	rates     RateSource
	lifecycle *service.LifecycleManager
	logger    *zap.Logger

	// Per-user locks serializing preference read-modify-write cycles
	userLocks map[int64]*sync.Mutex
	locksMux  sync.Mutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	prefs repository.PreferenceRepository,
	rates RateSource,
	lifecycle *service.LifecycleManager,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:       bot,
		prefs:     prefs,
		rates:     rates,
		lifecycle: lifecycle,
		logger:    logger,
		userLocks: make(map[int64]*sync.Mutex),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/restart", h.handleStart)
	h.bot.Handle("/refresh", h.handleRefresh)

	h.bot.Handle(tele.OnText, h.handleText)
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// lockUser returns the mutex serializing operations for one user
func (h *Handler) lockUser(userID int64) *sync.Mutex {
	h.locksMux.Lock()
	defer h.locksMux.Unlock()

	lock, exists := h.userLocks[userID]
	if !exists {
		lock = &sync.Mutex{}
		h.userLocks[userID] = lock
	}
	return lock
}

// showSelection delivers the currency selection screen as the live message
func (h *Handler) showSelection(pref *domain.UserPreference) error {
	all, _ := h.rates.Fetch()
	view := service.RenderSelection(all, pref.Selected)
	return h.lifecycle.Deliver(pref, view)
}

// showRates delivers the rates screen as the live message. A missing or
// unselected base currency is reassigned to the first selection first.
func (h *Handler) showRates(pref *domain.UserPreference) error {
	_, values := h.rates.Fetch()

	base := ""
	if pref.Base != nil {
		base = *pref.Base
	}
	if len(pref.Selected) > 0 && !pref.IsSelected(base) {
		base = pref.Selected[0]
		pref.Base = &base
		if err := h.prefs.Save(pref); err != nil {
			return err
		}
	}

	converted := service.Convert(values, base, pref.Amount, pref.Selected)
	view := service.RenderRates(converted, pref.Selected, base, time.Now())
	return h.lifecycle.Deliver(pref, view)
}

// deleteInbound removes the user's own message from the chat, best-effort
func (h *Handler) deleteInbound(c tele.Context) {
	if c.Message() == nil {
		return
	}
	if err := c.Delete(); err != nil {
		h.logger.Debug("Failed to delete inbound message",
			zap.Int64("user_id", c.Sender().ID),
			zap.Error(err),
		)
	}
}
