package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venda-inc/venda/internal/domain/user"
	"github.com/venda-inc/venda/internal/shared/authorization"
	sharedConfig "github.com/venda-inc/venda/internal/shared/config"
	"github.com/venda-inc/venda/internal/shared/errors"
	"github.com/venda-inc/venda/internal/shared/logger"
	"github.com/venda-inc/venda/internal/shared/query"
)

type stubUserRepo struct {
	byEmail map[string]*user.User
}

func (r *stubUserRepo) Create(ctx context.Context, u *user.User) error { return nil }
func (r *stubUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return nil, user.ErrUserNotFound
}
func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}
func (r *stubUserRepo) List(ctx context.Context, filter query.BaseFilter) ([]*user.User, int64, error) {
	return nil, 0, nil
}
func (r *stubUserRepo) Update(ctx context.Context, u *user.User) error { return nil }
func (r *stubUserRepo) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	return nil
}
func (r *stubUserRepo) Delete(ctx context.Context, id uint) error { return nil }

type stubRoleRepo struct {
	roles map[uint]user.Role
}

func (r *stubRoleRepo) Create(ctx context.Context, role *user.Role) error { return nil }
func (r *stubRoleRepo) GetByID(ctx context.Context, id uint) (*user.Role, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, user.ErrRoleNotFound
	}
	return &role, nil
}
func (r *stubRoleRepo) GetByName(ctx context.Context, name string) (*user.Role, error) {
	return nil, user.ErrRoleNotFound
}
func (r *stubRoleRepo) GetByIDs(ctx context.Context, ids []uint) ([]user.Role, error) {
	out := make([]user.Role, 0, len(ids))
	for _, id := range ids {
		if role, ok := r.roles[id]; ok {
			out = append(out, role)
		}
	}
	return out, nil
}
func (r *stubRoleRepo) List(ctx context.Context) ([]user.Role, error) { return nil, nil }

type stubSessionRepo struct {
	created []*user.Session
	deleted []string
}

func (r *stubSessionRepo) Create(ctx context.Context, s *user.Session) error {
	r.created = append(r.created, s)
	return nil
}
func (r *stubSessionRepo) GetByID(ctx context.Context, sessionID string) (*user.Session, error) {
	for _, s := range r.created {
		if s.ID == sessionID {
			return s, nil
		}
	}
	return nil, user.ErrSessionNotFound
}
func (r *stubSessionRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*user.Session, error) {
	return nil, user.ErrSessionNotFound
}
func (r *stubSessionRepo) Update(ctx context.Context, s *user.Session) error { return nil }
func (r *stubSessionRepo) Delete(ctx context.Context, sessionID string) error {
	for i, s := range r.created {
		if s.ID == sessionID {
			r.created = append(r.created[:i], r.created[i+1:]...)
			r.deleted = append(r.deleted, sessionID)
			return nil
		}
	}
	return user.ErrSessionNotFound
}
func (r *stubSessionRepo) DeleteByUserID(ctx context.Context, userID uint) error { return nil }
func (r *stubSessionRepo) DeleteExpired(ctx context.Context) (int64, error)      { return 0, nil }

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hash:" + password, nil }
func (plainHasher) Verify(hash, password string) error {
	if hash != "hash:"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

type stubJWT struct{}

func (stubJWT) Generate(userID uint, sessionID string, role authorization.UserRole) (string, error) {
	return fmt.Sprintf("token-%d-%s-%s", userID, sessionID, role), nil
}

func newLoginFixture() (*LoginUseCase, *stubSessionRepo) {
	users := &stubUserRepo{byEmail: map[string]*user.User{
		"admin@correo.com": {
			ID:           1,
			Name:         "Administrador",
			Email:        "admin@correo.com",
			PasswordHash: "hash:123",
			Status:       user.StatusActive,
			RoleIDs:      []uint{1},
		},
		"inactivo@correo.com": {
			ID:           2,
			Email:        "inactivo@correo.com",
			PasswordHash: "hash:123",
			Status:       user.StatusInactive,
		},
	}}
	roles := &stubRoleRepo{roles: map[uint]user.Role{
		1: {ID: 1, Name: "admin", Permissions: []string{"SALES_CREATE", "SALES_READ"}},
	}}
	sessions := &stubSessionRepo{}

	uc := NewLoginUseCase(
		users, roles, sessions,
		plainHasher{}, stubJWT{},
		sharedConfig.SessionConfig{MaxAgeHours: 8, SweepIntervalSecs: 60},
		logger.NewLogger(),
	)
	return uc, sessions
}

func TestLogin_Success(t *testing.T) {
	uc, sessions := newLoginFixture()

	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "admin@correo.com",
		Password: "123",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(1), result.User.ID)
	assert.NotEmpty(t, result.Token)
	assert.Contains(t, result.Permissions, "SALES_CREATE")
	require.Len(t, result.Roles, 1)
	assert.Equal(t, "admin", result.Roles[0].Name)

	require.Len(t, sessions.created, 1)
	session := sessions.created[0]
	assert.Equal(t, result.SessionID, session.ID)
	assert.Equal(t, HashToken(result.Token), session.TokenHash,
		"only the token hash is persisted")
	assert.False(t, session.IsExpired())
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	uc, sessions := newLoginFixture()

	cases := []struct {
		name string
		cmd  LoginCommand
	}{
		{"unknown email", LoginCommand{Email: "x@x.com", Password: "123"}},
		{"wrong password", LoginCommand{Email: "admin@correo.com", Password: "wrong"}},
		{"inactive account", LoginCommand{Email: "inactivo@correo.com", Password: "123"}},
	}

	var messages []string
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.cmd)
			require.Error(t, err)

			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrorTypeInvalidCredentials, appErr.Type)
			messages = append(messages, appErr.Message)
		})
	}

	for _, msg := range messages[1:] {
		assert.Equal(t, messages[0], msg, "every credential failure carries the same message")
	}
	assert.Empty(t, sessions.created, "no session is opened on a failed login")
}

func TestTouchSession_RefreshesExpiry(t *testing.T) {
	sessions := &stubSessionRepo{}
	session, err := user.NewSession(1, 8*time.Hour)
	require.NoError(t, err)
	sessions.created = append(sessions.created, session)
	before := session.ExpiresAt

	uc := NewTouchSessionUseCase(sessions, sharedConfig.SessionConfig{MaxAgeHours: 8}, logger.NewLogger())
	touched, err := uc.Execute(context.Background(), TouchSessionCommand{SessionID: session.ID})
	require.NoError(t, err)

	assert.False(t, touched.ExpiresAt.Before(before), "touch never moves the expiry backwards")
}

func TestTouchSession_UnknownSession(t *testing.T) {
	uc := NewTouchSessionUseCase(&stubSessionRepo{}, sharedConfig.SessionConfig{MaxAgeHours: 8}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), TouchSessionCommand{SessionID: "missing"})
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeSessionExpired, appErr.Type)
}

func TestLogout_IsIdempotent(t *testing.T) {
	sessions := &stubSessionRepo{}
	uc := NewLogoutUseCase(sessions, logger.NewLogger())

	err := uc.Execute(context.Background(), LogoutCommand{SessionID: "already-gone"})
	assert.NoError(t, err, "logging out a missing session is not an error")
}
