package pos

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// State is the session lifecycle state.
type State int

const (
	StateAnonymous State = iota
	StateAuthenticated
)

const (
	// DefaultSessionMaxAge is the absolute session lifetime measured from
	// the last recorded activity.
	DefaultSessionMaxAge = 8 * time.Hour
	// DefaultCheckInterval is how often the background expiry check runs.
	DefaultCheckInterval = 60 * time.Second
)

var (
	// ErrEmptyCredentials is a local validation failure: no network call
	// was made.
	ErrEmptyCredentials = errors.New("email and password are required")
	// ErrInvalidCredentials covers every failed login uniformly, so a
	// caller cannot tell an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Session is the durable record of the authenticated user.
type Session struct {
	Token       string
	UserID      uint
	UserName    string
	LoginTime   time.Time
	Roles       []string
	Permissions []string
}

// HasPermission reports whether the session carries the given permission code.
func (s *Session) HasPermission(code string) bool {
	for _, p := range s.Permissions {
		if p == code {
			return true
		}
	}
	return false
}

type loginResponse struct {
	ID          uint     `json:"id"`
	Nombre      string   `json:"nombre"`
	Email       string   `json:"email"`
	Roles       []Role   `json:"roles"`
	Token       string   `json:"token"`
	Message     string   `json:"message"`
	Permissions []string `json:"permissions"`
}

// SessionManager tracks authentication state in a KeyStore and moves between
// Anonymous and Authenticated. All reads go through the store so that the
// manager observes external changes to it.
type SessionManager struct {
	client        *Client
	store         KeyStore
	maxAge        time.Duration
	checkInterval time.Duration
	now           func() time.Time

	mu          sync.Mutex
	subscribers map[int]func(State)
	nextSubID   int
	stop        chan struct{}
	stopOnce    sync.Once
}

type SessionOption func(*SessionManager)

func WithSessionMaxAge(maxAge time.Duration) SessionOption {
	return func(m *SessionManager) {
		m.maxAge = maxAge
	}
}

func WithCheckInterval(interval time.Duration) SessionOption {
	return func(m *SessionManager) {
		m.checkInterval = interval
	}
}

// withClock overrides the time source in tests.
func withClock(now func() time.Time) SessionOption {
	return func(m *SessionManager) {
		m.now = now
	}
}

func NewSessionManager(client *Client, store KeyStore, opts ...SessionOption) *SessionManager {
	m := &SessionManager{
		client:        client,
		store:         store,
		maxAge:        DefaultSessionMaxAge,
		checkInterval: DefaultCheckInterval,
		now:           time.Now,
		subscribers:   make(map[int]func(State)),
		stop:          make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	client.SetTokenSource(func() string {
		token, _ := store.Get(keyToken)
		return token
	})
	return m
}

// Login validates the credentials locally, then exchanges them for a session.
// Validation failures never reach the network; every remote failure collapses
// into ErrInvalidCredentials.
func (m *SessionManager) Login(ctx context.Context, email, password string) (*Session, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, ErrEmptyCredentials
	}

	var resp loginResponse
	body := map[string]string{"email": email, "password": password}
	if err := m.client.do(ctx, http.MethodPost, "/login", body, &resp); err != nil {
		return nil, ErrInvalidCredentials
	}
	if resp.Token == "" {
		return nil, ErrInvalidCredentials
	}

	session := &Session{
		Token:       resp.Token,
		UserID:      resp.ID,
		UserName:    resp.Nombre,
		LoginTime:   m.now(),
		Roles:       roleNames(resp.Roles),
		Permissions: resp.Permissions,
	}
	if err := m.write(session); err != nil {
		return nil, err
	}

	m.notify(StateAuthenticated)
	return session, nil
}

// Logout tells the server to revoke the session, then clears local state.
// The remote call is best-effort: local state is cleared even when it fails.
func (m *SessionManager) Logout(ctx context.Context) error {
	if _, ok := m.Current(); ok {
		_ = m.client.do(ctx, http.MethodPost, "/logout", nil, nil)
	}
	if err := m.clear(); err != nil {
		return err
	}
	m.notify(StateAnonymous)
	return nil
}

// Current reads the session from durable storage. A missing or partially
// written key set reads as logged out.
func (m *SessionManager) Current() (*Session, bool) {
	values := make(map[string]string, len(sessionKeys))
	for _, key := range sessionKeys {
		value, ok := m.store.Get(key)
		if !ok {
			return nil, false
		}
		values[key] = value
	}

	userID, err := strconv.ParseUint(values[keyUserID], 10, 64)
	if err != nil {
		return nil, false
	}
	loginTime, err := time.Parse(time.RFC3339, values[keyLoginTime])
	if err != nil {
		return nil, false
	}
	var roles, permissions []string
	if err := json.Unmarshal([]byte(values[keyRoles]), &roles); err != nil {
		return nil, false
	}
	if err := json.Unmarshal([]byte(values[keyPermissions]), &permissions); err != nil {
		return nil, false
	}

	return &Session{
		Token:       values[keyToken],
		UserID:      uint(userID),
		UserName:    values[keyUserName],
		LoginTime:   loginTime,
		Roles:       roles,
		Permissions: permissions,
	}, true
}

// IsSessionActive is a pure read of durable storage: no network call.
func (m *SessionManager) IsSessionActive() bool {
	session, ok := m.Current()
	if !ok {
		return false
	}
	return m.now().Sub(session.LoginTime) <= m.maxAge
}

// Touch rewrites the login timestamp to now. It is a no-op when anonymous
// and never moves the timestamp backwards.
func (m *SessionManager) Touch() {
	session, ok := m.Current()
	if !ok {
		return
	}
	now := m.now()
	if now.Before(session.LoginTime) {
		return
	}
	_ = m.store.Set(keyLoginTime, now.Format(time.RFC3339))
}

// Subscribe registers a callback for session state transitions and returns
// the function that removes it.
func (m *SessionManager) Subscribe(fn func(State)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSubID
	m.nextSubID++
	m.subscribers[id] = fn

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subscribers, id)
	}
}

// StartExpiryChecker launches the background check that silently logs out
// an expired session. Close stops it.
func (m *SessionManager) StartExpiryChecker() {
	go func() {
		ticker := time.NewTicker(m.checkInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.checkExpiry()
			case <-m.stop:
				return
			}
		}
	}()
}

func (m *SessionManager) Close() {
	m.stopOnce.Do(func() {
		close(m.stop)
	})
}

// checkExpiry clears the session when its absolute lifetime has elapsed.
// Expiry is silent: subscribers see the transition, no error is surfaced.
func (m *SessionManager) checkExpiry() {
	session, ok := m.Current()
	if !ok {
		return
	}
	if m.now().Sub(session.LoginTime) <= m.maxAge {
		return
	}
	if err := m.clear(); err != nil {
		return
	}
	m.notify(StateAnonymous)
}

func (m *SessionManager) write(session *Session) error {
	roles, err := json.Marshal(session.Roles)
	if err != nil {
		return err
	}
	permissions, err := json.Marshal(session.Permissions)
	if err != nil {
		return err
	}

	pairs := map[string]string{
		keyToken:       session.Token,
		keyUserID:      strconv.FormatUint(uint64(session.UserID), 10),
		keyUserName:    session.UserName,
		keyLoginTime:   session.LoginTime.Format(time.RFC3339),
		keyRoles:       string(roles),
		keyPermissions: string(permissions),
	}
	for key, value := range pairs {
		if err := m.store.Set(key, value); err != nil {
			return err
		}
	}
	return nil
}

func (m *SessionManager) clear() error {
	return m.store.Delete(sessionKeys...)
}

func (m *SessionManager) notify(state State) {
	m.mu.Lock()
	callbacks := make([]func(State), 0, len(m.subscribers))
	for _, fn := range m.subscribers {
		callbacks = append(callbacks, fn)
	}
	m.mu.Unlock()

	for _, fn := range callbacks {
		fn(state)
	}
}
