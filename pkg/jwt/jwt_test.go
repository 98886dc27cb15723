package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/zhangwei/bookshop/pkg/errors"
)

func newTestManager() *Manager {
	return NewManager("test-secret", 30*time.Minute, 7*24*time.Hour)
}

func TestManager_GenerateTokenPair(t *testing.T) {
	m := newTestManager()

	pair, err := m.GenerateTokenPair("reader@example.com")
	require.NoError(t, err)

	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.Equal(t, "bearer", pair.TokenType)

	accessClaims, err := m.ParseToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", accessClaims.Email())
	assert.False(t, accessClaims.IsRefresh())
	assert.NotEmpty(t, accessClaims.ID, "每个Token应有独立jti")

	refreshClaims, err := m.ParseToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.True(t, refreshClaims.IsRefresh())
	assert.NotEqual(t, accessClaims.ID, refreshClaims.ID, "两个Token的jti各自独立")
}

func TestManager_ParseToken(t *testing.T) {
	m := newTestManager()

	t.Run("篡改的Token", func(t *testing.T) {
		token, err := m.GenerateAccessToken("reader@example.com")
		require.NoError(t, err)

		_, err = m.ParseToken(token + "x")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("密钥不匹配", func(t *testing.T) {
		other := NewManager("another-secret", 30*time.Minute, time.Hour)
		token, err := other.GenerateAccessToken("reader@example.com")
		require.NoError(t, err)

		_, err = m.ParseToken(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("过期Token", func(t *testing.T) {
		expired := NewManager("test-secret", -time.Minute, time.Hour)
		token, err := expired.GenerateAccessToken("reader@example.com")
		require.NoError(t, err)

		_, err = m.ParseToken(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials, "过期与非法签名返回同一错误")
	})

	t.Run("空字符串", func(t *testing.T) {
		_, err := m.ParseToken("")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestManager_ParseRefreshToken(t *testing.T) {
	m := newTestManager()

	pair, err := m.GenerateTokenPair("reader@example.com")
	require.NoError(t, err)

	t.Run("Refresh Token通过", func(t *testing.T) {
		claims, err := m.ParseRefreshToken(pair.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, "reader@example.com", claims.Email())
	})

	t.Run("Access Token不能用于刷新", func(t *testing.T) {
		_, err := m.ParseRefreshToken(pair.AccessToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestClaims_ExpiresAtTime(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateAccessToken("reader@example.com")
	require.NoError(t, err)

	claims, err := m.ParseToken(token)
	require.NoError(t, err)

	expiry := claims.ExpiresAtTime()
	assert.False(t, expiry.IsZero())
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiry, time.Minute)
}
