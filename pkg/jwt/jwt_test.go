package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

const testSecret = "bookshelf-test-secret-0123456789"

func TestManager_RoundTrip(t *testing.T) {
	m := NewManager(testSecret, "bookshelf", time.Hour)

	token, err := m.GenerateToken("editor-1", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, int64(3600), token.ExpiresIn)

	claims, err := m.ParseToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "editor-1", claims.Subject)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, "bookshelf", claims.Issuer)
}

func TestManager_ParseToken(t *testing.T) {
	m := NewManager(testSecret, "bookshelf", time.Hour)
	token, err := m.GenerateToken("editor-1", "")
	require.NoError(t, err)

	t.Run("令牌过期", func(t *testing.T) {
		expired := NewManager(testSecret, "bookshelf", time.Hour)
		expired.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

		_, err := expired.ParseToken(token.AccessToken)
		assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
	})

	t.Run("密钥不匹配", func(t *testing.T) {
		other := NewManager("another-secret-0123456789", "bookshelf", time.Hour)
		_, err := other.ParseToken(token.AccessToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("签发者不匹配", func(t *testing.T) {
		other := NewManager(testSecret, "someone-else", time.Hour)
		_, err := other.ParseToken(token.AccessToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("格式错误", func(t *testing.T) {
		_, err := m.ParseToken("not-a-token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

func TestManager_GenerateToken_RequiresSubject(t *testing.T) {
	m := NewManager(testSecret, "bookshelf", time.Hour)
	_, err := m.GenerateToken("", "")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeRequiredField))
}
