package domain

import "time"

// MessageState classifies the live message of a user preference.
type MessageState int

const (
	// NoLiveMessage means no message identity is stored: a fresh message
	// must be sent.
	NoLiveMessage MessageState = iota
	// LiveFresh means the stored message is young enough to edit in place.
	LiveFresh
	// LiveExpired means the stored message is older than the edit window
	// and must be deleted and resent.
	LiveExpired
)

// MessageExpiry is how long a live message stays editable. Kept under the
// Telegram 48h message-edit ceiling.
const MessageExpiry = 47 * time.Hour

// String returns the state name for logging.
func (s MessageState) String() string {
	switch s {
	case NoLiveMessage:
		return "no_live_message"
	case LiveFresh:
		return "live_fresh"
	case LiveExpired:
		return "live_expired"
	}
	return "unknown"
}

// MessageStateAt returns the live-message state as of now. A stored message
// id without a send timestamp counts as expired, since its age is unknown.
func (p *UserPreference) MessageStateAt(now time.Time) MessageState {
	if p.MessageID == nil {
		return NoLiveMessage
	}
	if p.MessageSentAt == nil || now.Sub(*p.MessageSentAt) >= MessageExpiry {
		return LiveExpired
	}
	return LiveFresh
}
