package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venda-inc/venda/internal/shared/authorization"
)

func TestJWTGenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 15)

	token, err := svc.Generate(42, "sess-1", authorization.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, authorization.RoleAdmin, claims.Role)
}

func TestJWTVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a", 15).Generate(1, "s", authorization.RoleSeller)
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", 15).Verify(token)
	assert.Error(t, err)
}

func TestJWTVerifyRejectsGarbage(t *testing.T) {
	_, err := NewJWTService("secret", 15).Verify("not-a-token")
	assert.Error(t, err)
}

func TestBcryptHasherRoundTrip(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	hash, err := hasher.Hash("123")
	require.NoError(t, err)

	assert.NoError(t, hasher.Verify(hash, "123"))
	assert.Error(t, hasher.Verify(hash, "wrong"))
}
