package auth

import (
	"testing"
	"time"

	"jobtrack-api/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	return &models.User{
		ID:    uuid.New(),
		Email: "jordan@example.com",
		Role:  models.RoleUser,
	}
}

func TestTokenManager_AccessTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
	user := testUser()

	token, err := tm.SignAccessToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, models.RoleUser, claims.Role)
}

func TestTokenManager_RefreshTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
	user := testUser()

	token, err := tm.SignRefreshToken(user)
	require.NoError(t, err)

	claims, err := tm.VerifyRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.Subject)
}

func TestTokenManager_SecretsAreNotInterchangeable(t *testing.T) {
	tm := NewTokenManager("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
	user := testUser()

	accessToken, err := tm.SignAccessToken(user)
	require.NoError(t, err)
	refreshToken, err := tm.SignRefreshToken(user)
	require.NoError(t, err)

	_, err = tm.VerifyRefreshToken(accessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tm.VerifyAccessToken(refreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_WrongSecretRejected(t *testing.T) {
	tm := NewTokenManager("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
	other := NewTokenManager("different-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
	user := testUser()

	token, err := tm.SignAccessToken(user)
	require.NoError(t, err)

	_, err = other.VerifyAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_ExpiredTokenRejected(t *testing.T) {
	tm := NewTokenManager("access-secret", "refresh-secret", -time.Minute, 7*24*time.Hour)
	user := testUser()

	token, err := tm.SignAccessToken(user)
	require.NoError(t, err)

	_, err = tm.VerifyAccessToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_GarbageTokenRejected(t *testing.T) {
	tm := NewTokenManager("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)

	_, err := tm.VerifyAccessToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
