package oreum_test

import (
	"testing"
	"time"

	"github.com/oreum-app/oreum"
	"github.com/stretchr/testify/assert"
)

func TestNewUserProfile(t *testing.T) {
	t.Parallel()
	p := oreum.NewUserProfile()
	assert.Equal(t, "여행자", p.Name)
	assert.Zero(t, p.Streak)
	assert.Zero(t, p.TotalFocusMinutes)
}

func TestUserProfile_AddFocusMinutes(t *testing.T) {
	t.Parallel()
	p := oreum.NewUserProfile()
	p.AddFocusMinutes(25)
	p.AddFocusMinutes(10)
	p.AddFocusMinutes(-3)
	assert.Equal(t, 35, p.TotalFocusMinutes)
}

func TestUserProfile_MarkActive(t *testing.T) {
	t.Parallel()
	p := oreum.NewUserProfile()
	morning := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	assert.True(t, p.MarkActive(morning))
	assert.False(t, p.MarkActive(morning.Add(10*time.Hour)), "same day counts once")
	assert.Equal(t, 1, p.Streak)

	assert.True(t, p.MarkActive(morning.Add(24*time.Hour)))
	assert.Equal(t, 2, p.Streak)

	assert.False(t, p.MarkActive(morning), "earlier day does not count")
	assert.Equal(t, 2, p.Streak)
}
