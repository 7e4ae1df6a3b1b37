package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUserPreference_MessageStateAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func(p *UserPreference)
		expected MessageState
	}{
		{
			name:     "no message id",
			setup:    func(p *UserPreference) {},
			expected: NoLiveMessage,
		},
		{
			name: "fresh message",
			setup: func(p *UserPreference) {
				p.SetLiveMessage(1, now.Add(-time.Hour))
			},
			expected: LiveFresh,
		},
		{
			name: "just sent",
			setup: func(p *UserPreference) {
				p.SetLiveMessage(1, now)
			},
			expected: LiveFresh,
		},
		{
			name: "just under expiry",
			setup: func(p *UserPreference) {
				p.SetLiveMessage(1, now.Add(-MessageExpiry+time.Second))
			},
			expected: LiveFresh,
		},
		{
			name: "exactly at expiry",
			setup: func(p *UserPreference) {
				p.SetLiveMessage(1, now.Add(-MessageExpiry))
			},
			expected: LiveExpired,
		},
		{
			name: "long expired",
			setup: func(p *UserPreference) {
				p.SetLiveMessage(1, now.Add(-72*time.Hour))
			},
			expected: LiveExpired,
		},
		{
			name: "message id without timestamp",
			setup: func(p *UserPreference) {
				id := 1
				p.MessageID = &id
			},
			expected: LiveExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pref := NewUserPreference(1)
			tt.setup(pref)
			assert.Equal(t, tt.expected, pref.MessageStateAt(now))
		})
	}
}

func TestMessageState_String(t *testing.T) {
	assert.Equal(t, "no_live_message", NoLiveMessage.String())
	assert.Equal(t, "live_fresh", LiveFresh.String())
	assert.Equal(t, "live_expired", LiveExpired.String())
}
