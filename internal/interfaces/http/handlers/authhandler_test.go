package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venda-inc/venda/internal/application/auth/usecases"
	"github.com/venda-inc/venda/internal/domain/user"
	"github.com/venda-inc/venda/internal/shared/authorization"
	sharedConfig "github.com/venda-inc/venda/internal/shared/config"
	"github.com/venda-inc/venda/internal/shared/logger"
	"github.com/venda-inc/venda/internal/shared/query"
)

type memUserRepo struct {
	byEmail map[string]*user.User
}

func (r *memUserRepo) Create(ctx context.Context, u *user.User) error { return nil }
func (r *memUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return nil, user.ErrUserNotFound
}
func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, user.ErrUserNotFound
}
func (r *memUserRepo) List(ctx context.Context, f query.BaseFilter) ([]*user.User, int64, error) {
	return nil, 0, nil
}
func (r *memUserRepo) Update(ctx context.Context, u *user.User) error { return nil }
func (r *memUserRepo) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	return nil
}
func (r *memUserRepo) Delete(ctx context.Context, id uint) error { return nil }

type memRoleRepo struct{ roles map[uint]user.Role }

func (r *memRoleRepo) Create(ctx context.Context, role *user.Role) error { return nil }
func (r *memRoleRepo) GetByID(ctx context.Context, id uint) (*user.Role, error) {
	return nil, user.ErrRoleNotFound
}
func (r *memRoleRepo) GetByName(ctx context.Context, name string) (*user.Role, error) {
	return nil, user.ErrRoleNotFound
}
func (r *memRoleRepo) GetByIDs(ctx context.Context, ids []uint) ([]user.Role, error) {
	out := make([]user.Role, 0, len(ids))
	for _, id := range ids {
		if role, ok := r.roles[id]; ok {
			out = append(out, role)
		}
	}
	return out, nil
}
func (r *memRoleRepo) List(ctx context.Context) ([]user.Role, error) { return nil, nil }

type memSessionRepo struct{ sessions map[string]*user.Session }

func (r *memSessionRepo) Create(ctx context.Context, s *user.Session) error {
	r.sessions[s.ID] = s
	return nil
}
func (r *memSessionRepo) GetByID(ctx context.Context, id string) (*user.Session, error) {
	if s, ok := r.sessions[id]; ok {
		return s, nil
	}
	return nil, user.ErrSessionNotFound
}
func (r *memSessionRepo) GetByTokenHash(ctx context.Context, hash string) (*user.Session, error) {
	return nil, user.ErrSessionNotFound
}
func (r *memSessionRepo) Update(ctx context.Context, s *user.Session) error { return nil }
func (r *memSessionRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.sessions[id]; !ok {
		return user.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}
func (r *memSessionRepo) DeleteByUserID(ctx context.Context, userID uint) error { return nil }
func (r *memSessionRepo) DeleteExpired(ctx context.Context) (int64, error)      { return 0, nil }

type noHash struct{}

func (noHash) Hash(p string) (string, error) { return p, nil }
func (noHash) Verify(hash, p string) error {
	if hash != p {
		return user.ErrUserNotFound
	}
	return nil
}

type staticJWT struct{}

func (staticJWT) Generate(userID uint, sessionID string, role authorization.UserRole) (string, error) {
	return "jwt-token", nil
}

func newAuthTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := &memUserRepo{byEmail: map[string]*user.User{
		"admin@correo.com": {
			ID:           1,
			Name:         "Administrador",
			Email:        "admin@correo.com",
			PasswordHash: "123",
			Status:       user.StatusActive,
			RoleIDs:      []uint{1},
		},
	}}
	roles := &memRoleRepo{roles: map[uint]user.Role{
		1: {ID: 1, Name: "admin", Permissions: []string{"SALES_CREATE"}},
	}}
	sessions := &memSessionRepo{sessions: make(map[string]*user.Session)}
	log := logger.NewLogger()

	handler := NewAuthHandler(
		usecases.NewLoginUseCase(users, roles, sessions, noHash{}, staticJWT{},
			sharedConfig.SessionConfig{MaxAgeHours: 8}, log),
		usecases.NewLogoutUseCase(sessions, log),
		log,
	)

	engine := gin.New()
	engine.POST("/login", handler.Login)
	return engine
}

func TestAuthHandler_LoginReturnsFlatPayload(t *testing.T) {
	router := newAuthTestRouter(t)

	body := `{"email":"admin@correo.com","password":"123"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// Flat payload, no envelope.
	assert.NotContains(t, resp, "success")
	assert.NotContains(t, resp, "data")
	assert.Equal(t, float64(1), resp["id"])
	assert.Equal(t, "Administrador", resp["nombre"])
	assert.Equal(t, "jwt-token", resp["token"])
	assert.Contains(t, resp["permissions"], "SALES_CREATE")

	roles, ok := resp["roles"].([]any)
	require.True(t, ok)
	require.Len(t, roles, 1)
	assert.Equal(t, "admin", roles[0].(map[string]any)["name"])
}

func TestAuthHandler_LoginRejectsBadBody(t *testing.T) {
	router := newAuthTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":""}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_LoginWrongPassword(t *testing.T) {
	router := newAuthTestRouter(t)

	body := `{"email":"admin@correo.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	errInfo, ok := resp["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "invalid email or password", errInfo["message"])
}
