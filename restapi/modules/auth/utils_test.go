package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhaven/lms-backend/model"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("turnpage")
	require.NoError(t, err)
	assert.NotEqual(t, "turnpage", hash)

	assert.True(t, CheckPasswordHash("turnpage", hash))
	assert.False(t, CheckPasswordHash("wrongpass", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("reader1", model.RoleUser)
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "reader1", claims.Username)
	assert.Equal(t, model.RoleUser, claims.Role)
	assert.Equal(t, "lms-backend", claims.Issuer)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	_, err := ValidateJWT("not-a-token")
	assert.Error(t, err)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT("reader1", model.RoleUser)
	require.NoError(t, err)

	SetJWTSecret("a-different-secret")
	defer SetJWTSecret("change-this-in-production")

	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestRefreshJWTCarriesClaims(t *testing.T) {
	token, err := GenerateJWT("lisa.shelver", model.RoleLibrarian)
	require.NoError(t, err)

	refreshed, err := RefreshJWT(token)
	require.NoError(t, err)

	claims, err := ValidateJWT(refreshed)
	require.NoError(t, err)
	assert.Equal(t, "lisa.shelver", claims.Username)
	assert.Equal(t, model.RoleLibrarian, claims.Role)
}

func TestRefreshJWTRejectsInvalidToken(t *testing.T) {
	_, err := RefreshJWT("bogus")
	assert.Error(t, err)
}

func TestGenerateSecureTokenUnique(t *testing.T) {
	a, err := GenerateSecureToken(32)
	require.NoError(t, err)
	b, err := GenerateSecureToken(32)
	require.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestValidatePasswordStrength(t *testing.T) {
	assert.Error(t, ValidatePasswordStrength("12345"))
	assert.NoError(t, ValidatePasswordStrength("123456"))
}
