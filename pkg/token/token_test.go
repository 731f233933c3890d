package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	tokenString, err := GenerateJWT(42, "manager", "secret", 15)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := ValidateJWT(tokenString, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "manager", claims.Role)
}

func TestValidateJWTWrongSecret(t *testing.T) {
	tokenString, err := GenerateJWT(42, "manager", "secret", 15)
	require.NoError(t, err)

	_, err = ValidateJWT(tokenString, "other-secret")
	assert.Error(t, err)
}

func TestValidateJWTExpired(t *testing.T) {
	claims := &Claims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-5 * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-10 * time.Minute)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = ValidateJWT(expired, "secret")
	assert.ErrorContains(t, err, "expired")
}

func TestValidateJWTEmptyInputs(t *testing.T) {
	_, err := ValidateJWT("", "secret")
	assert.Error(t, err)

	_, err = ValidateJWT("not-a-token", "")
	assert.Error(t, err)
}
