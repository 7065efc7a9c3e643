package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyJWT(t *testing.T) {
	SetJWTSecret("test-secret")

	tokenString, err := GenerateJWT("u1", "alice@example.com")
	require.NoError(t, err)

	token, err := VerifyJWT(tokenString)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "u1", claims["user_id"])
	assert.Equal(t, "alice@example.com", claims["email"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	require.NotNil(t, exp)
}

func TestVerifyJWTWrongSecret(t *testing.T) {
	SetJWTSecret("secret-a")
	tokenString, err := GenerateJWT("u1", "alice@example.com")
	require.NoError(t, err)

	SetJWTSecret("secret-b")
	_, err = VerifyJWT(tokenString)
	assert.Error(t, err)
}

func TestVerifyJWTGarbage(t *testing.T) {
	SetJWTSecret("test-secret")
	_, err := VerifyJWT("not-a-token")
	assert.Error(t, err)
}
