package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	s, err := NewSession(7, 8*time.Hour)
	require.NoError(t, err)

	assert.Len(t, s.ID, 64)
	assert.Equal(t, uint(7), s.UserID)
	assert.False(t, s.IsExpired())
	assert.Equal(t, s.LoginAt, s.LastActivityAt)
	assert.WithinDuration(t, s.LoginAt.Add(8*time.Hour), s.ExpiresAt, time.Second)
}

func TestNewSessionRequiresUser(t *testing.T) {
	_, err := NewSession(0, time.Hour)
	assert.Error(t, err)
}

func TestSessionTouchRefreshesActivity(t *testing.T) {
	s, err := NewSession(1, 8*time.Hour)
	require.NoError(t, err)

	before := s.LastActivityAt
	time.Sleep(5 * time.Millisecond)
	s.Touch(8 * time.Hour)

	assert.True(t, s.LastActivityAt.After(before) || s.LastActivityAt.Equal(before),
		"activity timestamp must be monotonically non-decreasing")
	assert.True(t, s.ExpiresAt.After(s.LastActivityAt))
}

func TestSessionTouchIgnoresExpired(t *testing.T) {
	s, err := NewSession(1, 8*time.Hour)
	require.NoError(t, err)

	s.ExpiresAt = s.ExpiresAt.Add(-9 * time.Hour)
	require.True(t, s.IsExpired())

	lastActivity := s.LastActivityAt
	s.Touch(8 * time.Hour)

	assert.Equal(t, lastActivity, s.LastActivityAt)
	assert.True(t, s.IsExpired())
}

func TestSessionIDsAreUnique(t *testing.T) {
	a, err := NewSession(1, time.Hour)
	require.NoError(t, err)
	b, err := NewSession(1, time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}
