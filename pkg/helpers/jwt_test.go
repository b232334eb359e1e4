package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWT(t *testing.T) *JWTManager {
	t.Helper()
	m, err := NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	require.NoError(t, err)
	return m
}

func TestNewJWTManagerRequiresSecrets(t *testing.T) {
	_, err := NewJWTManager("", "refresh", time.Hour, time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = NewJWTManager("access", "", time.Hour, time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := newTestJWT(t)

	token, exp, err := m.GenerateAccessToken("user-123")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(m.AccessTTL), exp, 5*time.Second)

	claims, err := m.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := newTestJWT(t)

	token, _, err := m.GenerateRefreshToken("user-123")
	require.NoError(t, err)

	claims, err := m.ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestTokensNotInterchangeable(t *testing.T) {
	m := newTestJWT(t)

	access, _, err := m.GenerateAccessToken("user-123")
	require.NoError(t, err)
	_, err = m.ParseRefreshToken(access)
	assert.Error(t, err)

	refresh, _, err := m.GenerateRefreshToken("user-123")
	require.NoError(t, err)
	_, err = m.ParseAccessToken(refresh)
	assert.Error(t, err)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	m := newTestJWT(t)
	token, _, err := m.GenerateAccessToken("user-123")
	require.NoError(t, err)

	other, err := NewJWTManager("another-secret", "another-refresh", time.Hour, time.Hour)
	require.NoError(t, err)

	_, err = other.ParseAccessToken(token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	m := newTestJWT(t)
	_, err := m.ParseAccessToken("not-a-jwt")
	assert.Error(t, err)
}
