// Package jwt JWT 令牌管理单元测试
package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestManager 创建测试用的 JWT Manager
func setupTestManager() *Manager {
	return NewManager(&Config{
		Secret:           "test-secret-key-for-jwt-token-signing",
		AccessExpireTime: 15 * time.Minute,
		Issuer:           "hotel-test",
	})
}

func TestGenerateToken(t *testing.T) {
	manager := setupTestManager()

	token, expiresAt, err := manager.GenerateToken(1, "admin", "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())
}

func TestParseToken(t *testing.T) {
	manager := setupTestManager()

	token, _, err := manager.GenerateToken(42, "staff1", "staff")
	require.NoError(t, err)

	claims, err := manager.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "staff1", claims.Username)
	assert.Equal(t, "staff", claims.Role)
	assert.Equal(t, "hotel-test", claims.Issuer)
}

func TestParseToken_Malformed(t *testing.T) {
	manager := setupTestManager()

	_, err := manager.ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestParseToken_WrongSecret(t *testing.T) {
	manager := setupTestManager()
	other := NewManager(&Config{
		Secret:           "a-completely-different-secret",
		AccessExpireTime: 15 * time.Minute,
		Issuer:           "hotel-test",
	})

	token, _, err := manager.GenerateToken(1, "admin", "admin")
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseToken_Expired(t *testing.T) {
	manager := NewManager(&Config{
		Secret:           "test-secret",
		AccessExpireTime: -time.Minute,
		Issuer:           "hotel-test",
	})

	token, _, err := manager.GenerateToken(1, "admin", "admin")
	require.NoError(t, err)

	_, err = manager.ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}
