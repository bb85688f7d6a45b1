package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is the top-level study session record: the active tab and the
// session-wide translation toggle. It is an immutable snapshot: updates
// go through the With* setters, which return a new value.
type Session struct {
	ID              uuid.UUID
	ActiveTab       Feature
	ShowTranslation bool
	CreatedAt       time.Time
	LastSeenAt      time.Time
}

// NewSession creates a session positioned on the Daily tab with the
// translation toggle off.
func NewSession(id uuid.UUID, now time.Time) Session {
	return Session{
		ID:         id,
		ActiveTab:  FeatureDaily,
		CreatedAt:  now,
		LastSeenAt: now,
	}
}

// WithTab returns a copy with the active tab replaced. Tab selection is
// pure state assignment; it never triggers a fetch.
func (s Session) WithTab(tab Feature) Session {
	s.ActiveTab = tab
	return s
}

// WithTranslationToggled returns a copy with the toggle flipped. Toggling
// is instantaneous and independent of which artifacts exist.
func (s Session) WithTranslationToggled() Session {
	s.ShowTranslation = !s.ShowTranslation
	return s
}

// Touch returns a copy with LastSeenAt updated.
func (s Session) Touch(now time.Time) Session {
	s.LastSeenAt = now
	return s
}
