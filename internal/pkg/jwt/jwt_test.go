package jwt

import (
	"testing"

	"github.com/arohak/timesheet-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestJWTService_GenerateToken_Claims(t *testing.T) {
	svc := NewJWTService(testSecret, "24h")

	tokenString, expiresAt, err := svc.GenerateToken("user-1", "E1", "e1@x.com", "A", user.RoleUser)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)

	for claim, want := range map[string]string{
		"user_id": "user-1",
		"emp_id":  "E1",
		"email":   "e1@x.com",
		"name":    "A",
		"role":    "user",
		"type":    "access",
	} {
		got, ok := token.Get(claim)
		require.True(t, ok, "claim %s missing", claim)
		assert.Equal(t, want, got)
	}
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := NewJWTService(testSecret, "-1h")

	tokenString, _, err := svc.GenerateToken("user-1", "E1", "e1@x.com", "A", user.RoleUser)
	require.NoError(t, err)

	_, err = jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	assert.Error(t, err)
}

func TestJWTService_WrongSignature(t *testing.T) {
	svc := NewJWTService(testSecret, "24h")
	other := NewJWTService("a-different-secret", "24h")

	tokenString, _, err := svc.GenerateToken("user-1", "E1", "e1@x.com", "A", user.RoleAdmin)
	require.NoError(t, err)

	_, err = jwtauth.VerifyToken(other.JWTAuth(), tokenString)
	assert.Error(t, err)
}

func TestJWTService_BadExpiration(t *testing.T) {
	svc := NewJWTService(testSecret, "not-a-duration")

	_, _, err := svc.GenerateToken("user-1", "E1", "e1@x.com", "A", user.RoleUser)
	assert.Error(t, err)
}
