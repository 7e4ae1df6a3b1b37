package domain

import "time"

// DefaultAmount is the amount a fresh or reset preference starts with.
const DefaultAmount = 1.0

// RecentAmountsLimit bounds the recent amounts history.
const RecentAmountsLimit = 10

// UserPreference holds per-user bot state: selected currencies, the base
// currency, the entered amount and the identity of the live message.
type UserPreference struct {
	UserID        int64
	ChatID        *int64
	Base          *string
	Amount        float64
	Selected      []string
	MessageID     *int
	MessageSentAt *time.Time
	RecentAmounts []float64
}

// NewUserPreference returns an all-defaults record for an unknown user.
func NewUserPreference(userID int64) *UserPreference {
	return &UserPreference{
		UserID: userID,
		Amount: DefaultAmount,
	}
}

// Reset restores defaults in place, keeping the user and chat identity.
func (p *UserPreference) Reset() {
	p.Base = nil
	p.Amount = DefaultAmount
	p.Selected = nil
	p.MessageID = nil
	p.MessageSentAt = nil
	p.RecentAmounts = nil
}

// IsSelected reports whether code is among the selected currencies.
func (p *UserPreference) IsSelected(code string) bool {
	for _, c := range p.Selected {
		if c == code {
			return true
		}
	}
	return false
}

// ToggleSelected adds code to the selection or removes it if already present.
// The first selected currency becomes the base; removing the base currency
// reassigns it to the first remaining selection, or clears it.
func (p *UserPreference) ToggleSelected(code string) {
	for i, c := range p.Selected {
		if c == code {
			p.Selected = append(p.Selected[:i], p.Selected[i+1:]...)
			if p.Base != nil && *p.Base == code {
				if len(p.Selected) > 0 {
					base := p.Selected[0]
					p.Base = &base
				} else {
					p.Base = nil
				}
			}
			return
		}
	}

	p.Selected = append(p.Selected, code)
	if p.Base == nil {
		base := code
		p.Base = &base
	}
}

// SetAmount records a new amount and appends it to the recent history,
// newest first, capped at RecentAmountsLimit. The history is write-only.
func (p *UserPreference) SetAmount(amount float64) {
	p.Amount = amount
	p.RecentAmounts = append([]float64{amount}, p.RecentAmounts...)
	if len(p.RecentAmounts) > RecentAmountsLimit {
		p.RecentAmounts = p.RecentAmounts[:RecentAmountsLimit]
	}
}

// SetLiveMessage records the identity of a freshly sent live message.
func (p *UserPreference) SetLiveMessage(messageID int, sentAt time.Time) {
	p.MessageID = &messageID
	p.MessageSentAt = &sentAt
}

// ClearLiveMessage forgets the live message identity.
func (p *UserPreference) ClearLiveMessage() {
	p.MessageID = nil
	p.MessageSentAt = nil
}
