package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	t.Run("deterministic for equal inputs", func(t *testing.T) {
		a := HashPassword("secretpass", "salt1", "key1")
		b := HashPassword("secretpass", "salt1", "key1")
		assert.Equal(t, a, b)
	})

	t.Run("salt changes the digest", func(t *testing.T) {
		a := HashPassword("secretpass", "salt1", "key1")
		b := HashPassword("secretpass", "salt2", "key1")
		assert.NotEqual(t, a, b)
	})

	t.Run("secret key changes the digest", func(t *testing.T) {
		a := HashPassword("secretpass", "salt1", "key1")
		b := HashPassword("secretpass", "salt1", "key2")
		assert.NotEqual(t, a, b)
	})

	t.Run("digest is not the plaintext", func(t *testing.T) {
		digest := HashPassword("secretpass", "salt1", "key1")
		assert.NotContains(t, digest, "secretpass")
		assert.Len(t, digest, hashKeyLen*2)
	})
}

func TestGenerateSalt(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		salt, err := GenerateSalt()
		assert.NoError(t, err)
		assert.Len(t, salt, saltBytes*2)
		assert.False(t, seen[salt], "salts must not repeat")
		seen[salt] = true
	}
}

func TestVerifyHash(t *testing.T) {
	digest := HashPassword("secretpass", "salt1", "key1")
	assert.True(t, VerifyHash(HashPassword("secretpass", "salt1", "key1"), digest))
	assert.False(t, VerifyHash(HashPassword("wrongpass", "salt1", "key1"), digest))
}
