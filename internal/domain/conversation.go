package domain

import "time"

type SessionID string

type ConversationState int

const (
	StateDormant ConversationState = iota
	StateActive
)

func (s ConversationState) String() string {
	switch s {
	case StateDormant:
		return "dormant"
	case StateActive:
		return "active"
	default:
		return "unknown"
	}
}

type UtteranceID uint64

type Utterance struct {
	ID   UtteranceID
	Text string
}

// Activity is the last-activity clock reading of a session.
type Activity struct {
	Last time.Time
}

func (a *Activity) Touch(now time.Time) {
	a.Last = now
}

// IdleFor reports whether more than threshold has elapsed since the last
// activity. A zero threshold never reports idle.
func (a Activity) IdleFor(now time.Time, threshold time.Duration) bool {
	if threshold <= 0 {
		return false
	}
	return now.Sub(a.Last) > threshold
}
