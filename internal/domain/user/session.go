package user

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/venda-inc/venda/internal/shared/biztime"
)

// Session is the durable record of an authenticated user. LastActivityAt is
// the session's login timestamp: it is rewritten on every tracked activity and
// the session expires when more than the configured maximum age has elapsed
// since it. A session row is either fully present or absent; there is no
// partial state.
type Session struct {
	ID             string
	UserID         uint
	TokenHash      string
	LoginAt        time.Time
	LastActivityAt time.Time
	ExpiresAt      time.Time
	CreatedAt      time.Time
}

// NewSession creates a session for a user with the given absolute lifetime.
func NewSession(userID uint, maxAge time.Duration) (*Session, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	id, err := generateSessionID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session ID: %w", err)
	}

	now := biztime.NowUTC()
	return &Session{
		ID:             id,
		UserID:         userID,
		LoginAt:        now,
		LastActivityAt: now,
		ExpiresAt:      now.Add(maxAge),
		CreatedAt:      now,
	}, nil
}

// IsExpired reports whether the session has passed its expiry.
func (s *Session) IsExpired() bool {
	return biztime.NowUTC().After(s.ExpiresAt)
}

// Touch refreshes the activity timestamp and pushes the expiry forward by the
// session's maximum age. Touching an expired session has no effect.
func (s *Session) Touch(maxAge time.Duration) {
	if s.IsExpired() {
		return
	}
	now := biztime.NowUTC()
	s.LastActivityAt = now
	s.ExpiresAt = now.Add(maxAge)
}

func generateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
