package pos

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoginServer(t *testing.T) (*httptest.Server, *int) {
	t.Helper()
	calls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		calls++
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		if body["email"] == "admin@correo.com" && body["password"] == "123" {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"id":     1,
				"nombre": "Administrador",
				"email":  "admin@correo.com",
				"roles":  []map[string]any{{"id": 1, "name": "admin"}},
				"token":  "test-token",
				"permissions": []string{
					"SALES_CREATE", "SALES_READ", "PRODUCTS_READ",
				},
			})
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{"success": false})
	})
	mux.HandleFunc("/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"success":true}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &calls
}

func TestSessionManager_LoginSuccess(t *testing.T) {
	server, _ := newLoginServer(t)
	store := NewMemoryKeyStore()
	manager := NewSessionManager(NewClient(server.URL), store)

	session, err := manager.Login(context.Background(), "admin@correo.com", "123")
	require.NoError(t, err)

	assert.Equal(t, uint(1), session.UserID)
	assert.Equal(t, "Administrador", session.UserName)
	assert.Equal(t, []string{"admin"}, session.Roles)
	assert.True(t, session.HasPermission("SALES_CREATE"))
	assert.True(t, manager.IsSessionActive())

	token, ok := store.Get(keyToken)
	require.True(t, ok)
	assert.Equal(t, "test-token", token)
}

func TestSessionManager_LoginWrongCredentials(t *testing.T) {
	server, _ := newLoginServer(t)
	store := NewMemoryKeyStore()
	manager := NewSessionManager(NewClient(server.URL), store)

	_, err := manager.Login(context.Background(), "x@x.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	assert.False(t, manager.IsSessionActive())
	_, ok := store.Get(keyToken)
	assert.False(t, ok, "no session fields should be written on a failed login")
}

func TestSessionManager_LoginEmptyFieldsSkipsNetwork(t *testing.T) {
	server, calls := newLoginServer(t)
	manager := NewSessionManager(NewClient(server.URL), NewMemoryKeyStore())

	_, err := manager.Login(context.Background(), "", "123")
	require.ErrorIs(t, err, ErrEmptyCredentials)
	_, err = manager.Login(context.Background(), "a@b.com", "")
	require.ErrorIs(t, err, ErrEmptyCredentials)

	assert.Zero(t, *calls, "validation failures must not reach the network")
}

func TestSessionManager_Logout(t *testing.T) {
	server, _ := newLoginServer(t)
	store := NewMemoryKeyStore()
	manager := NewSessionManager(NewClient(server.URL), store)

	_, err := manager.Login(context.Background(), "admin@correo.com", "123")
	require.NoError(t, err)
	require.True(t, manager.IsSessionActive())

	var transitions []State
	manager.Subscribe(func(s State) { transitions = append(transitions, s) })

	require.NoError(t, manager.Logout(context.Background()))

	assert.False(t, manager.IsSessionActive())
	for _, key := range sessionKeys {
		_, ok := store.Get(key)
		assert.False(t, ok, "key %s should be cleared", key)
	}
	assert.Equal(t, []State{StateAnonymous}, transitions)
}

func TestSessionManager_TouchRefreshesLoginTime(t *testing.T) {
	server, _ := newLoginServer(t)
	store := NewMemoryKeyStore()

	now := time.Now().Truncate(time.Second)
	clock := now
	manager := NewSessionManager(NewClient(server.URL), store, withClock(func() time.Time { return clock }))

	_, err := manager.Login(context.Background(), "admin@correo.com", "123")
	require.NoError(t, err)

	previous := now
	for i := 0; i < 3; i++ {
		clock = clock.Add(time.Minute)
		manager.Touch()

		session, ok := manager.Current()
		require.True(t, ok)
		assert.False(t, session.LoginTime.Before(previous), "login time must be monotonically non-decreasing")
		previous = session.LoginTime
	}
	assert.Equal(t, now.Add(3*time.Minute), previous)
}

func TestSessionManager_TouchIsNoOpWhenAnonymous(t *testing.T) {
	server, _ := newLoginServer(t)
	store := NewMemoryKeyStore()
	manager := NewSessionManager(NewClient(server.URL), store)

	manager.Touch()

	_, ok := store.Get(keyLoginTime)
	assert.False(t, ok)
}

func TestSessionManager_ExpiryCheckLogsOutSilently(t *testing.T) {
	server, _ := newLoginServer(t)
	store := NewMemoryKeyStore()

	clock := time.Now()
	manager := NewSessionManager(NewClient(server.URL), store, withClock(func() time.Time { return clock }))

	_, err := manager.Login(context.Background(), "admin@correo.com", "123")
	require.NoError(t, err)

	var transitions []State
	manager.Subscribe(func(s State) { transitions = append(transitions, s) })

	// Just inside the lifetime: nothing happens.
	clock = clock.Add(8 * time.Hour)
	manager.checkExpiry()
	assert.True(t, manager.IsSessionActive())
	assert.Empty(t, transitions)

	// Past the lifetime: silent logout, token gone.
	clock = clock.Add(time.Minute)
	manager.checkExpiry()
	assert.False(t, manager.IsSessionActive())
	_, ok := store.Get(keyToken)
	assert.False(t, ok)
	assert.Equal(t, []State{StateAnonymous}, transitions)
}

func TestSessionManager_PartialStateReadsAsAnonymous(t *testing.T) {
	server, _ := newLoginServer(t)
	store := NewMemoryKeyStore()
	manager := NewSessionManager(NewClient(server.URL), store)

	_, err := manager.Login(context.Background(), "admin@correo.com", "123")
	require.NoError(t, err)

	require.NoError(t, store.Delete(keyLoginTime))

	assert.False(t, manager.IsSessionActive())
	_, ok := manager.Current()
	assert.False(t, ok)
}

func TestFileKeyStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	store := NewFileKeyStore(path)
	require.NoError(t, store.Set(keyToken, "abc"))
	require.NoError(t, store.Set(keyUserName, "Administrador"))

	reopened := NewFileKeyStore(path)
	token, ok := reopened.Get(keyToken)
	require.True(t, ok)
	assert.Equal(t, "abc", token)

	require.NoError(t, reopened.Delete(keyToken, keyUserName))
	_, ok = reopened.Get(keyToken)
	assert.False(t, ok)
}

func TestSessionManager_SubscribeUnsubscribe(t *testing.T) {
	server, _ := newLoginServer(t)
	manager := NewSessionManager(NewClient(server.URL), NewMemoryKeyStore())

	var got []State
	unsubscribe := manager.Subscribe(func(s State) { got = append(got, s) })

	_, err := manager.Login(context.Background(), "admin@correo.com", "123")
	require.NoError(t, err)
	require.Equal(t, []State{StateAuthenticated}, got)

	unsubscribe()
	require.NoError(t, manager.Logout(context.Background()))
	assert.Equal(t, []State{StateAuthenticated}, got, "unsubscribed callbacks see no further transitions")
}
