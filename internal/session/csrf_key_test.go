package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSRFKey(t *testing.T) {
	t.Run("hex key is used verbatim", func(t *testing.T) {
		hexKey := strings.Repeat("ab", CSRFKeySize)
		key, err := CSRFKey(hexKey)
		require.NoError(t, err)
		assert.Len(t, key, CSRFKeySize)
		assert.Equal(t, byte(0xab), key[0])
	})

	t.Run("passphrase is derived to 32 bytes", func(t *testing.T) {
		key, err := CSRFKey("correct horse")
		require.NoError(t, err)
		assert.Len(t, key, CSRFKeySize)

		again, err := CSRFKey("correct horse")
		require.NoError(t, err)
		assert.Equal(t, key, again)

		other, err := CSRFKey("battery staple")
		require.NoError(t, err)
		assert.NotEqual(t, key, other)
	})

	t.Run("short hex is treated as a passphrase", func(t *testing.T) {
		key, err := CSRFKey("abcd")
		require.NoError(t, err)
		assert.Len(t, key, CSRFKeySize)
	})

	t.Run("empty secret", func(t *testing.T) {
		_, err := CSRFKey("")
		assert.Error(t, err)
	})
}

func TestCSRFMiddleware_WithDerivedKey(t *testing.T) {
	key, err := CSRFKey("a short passphrase")
	require.NoError(t, err)
	assert.NotPanics(t, func() { CSRFMiddleware(key, false) })
}
