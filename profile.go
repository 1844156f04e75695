package oreum

import "time"

// DefaultProfileName is the display name used until the user sets one.
const DefaultProfileName = "여행자"

// UserProfile carries presentational counters.
type UserProfile struct {
	Name              string    `json:"name"`
	Streak            int       `json:"streak"`
	TotalFocusMinutes int       `json:"totalFocusMinutes"`
	LastStreakDay     time.Time `json:"-"`
}

// NewUserProfile returns a profile with default values.
func NewUserProfile() UserProfile {
	return UserProfile{Name: DefaultProfileName}
}

// AddFocusMinutes records a completed focus period.
func (p *UserProfile) AddFocusMinutes(m int) {
	if m > 0 {
		p.TotalFocusMinutes += m
	}
}

// MarkActive increments the streak at most once per calendar day of now.
// It reports whether the streak changed.
func (p *UserProfile) MarkActive(now time.Time) bool {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	if !p.LastStreakDay.IsZero() && !today.After(p.LastStreakDay) {
		return false
	}
	p.Streak++
	p.LastStreakDay = today
	return true
}
