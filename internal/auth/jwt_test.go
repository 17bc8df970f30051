package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	secret := "unit-test-secret"

	token, err := GenerateToken(secret, "picker-7", "a.petrova", "scanner-12")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "picker-7", claims.UserID)
	assert.Equal(t, "a.petrova", claims.Username)
	assert.Equal(t, "scanner-12", claims.DeviceID)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(TokenExpiry), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("secret-a", "picker-7", "a.petrova", "")
	require.NoError(t, err)

	claims, err := ValidateToken("secret-b", token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Garbage(t *testing.T) {
	claims, err := ValidateToken("secret", "not.a.token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Expired(t *testing.T) {
	claims := Claims{
		UserID: "picker-7",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	parsed, err := ValidateToken("secret", signed)
	assert.Error(t, err)
	assert.Nil(t, parsed)
}

func TestValidateToken_RejectsUnsignedToken(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "picker-7"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	parsed, err := ValidateToken("secret", signed)
	assert.Error(t, err)
	assert.Nil(t, parsed)
}

func TestGenerateToken_UniqueJTI(t *testing.T) {
	secret := "unit-test-secret"

	first, err := GenerateToken(secret, "picker-7", "a.petrova", "")
	require.NoError(t, err)
	second, err := GenerateToken(secret, "picker-7", "a.petrova", "")
	require.NoError(t, err)

	firstClaims, err := ValidateToken(secret, first)
	require.NoError(t, err)
	secondClaims, err := ValidateToken(secret, second)
	require.NoError(t, err)

	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}
