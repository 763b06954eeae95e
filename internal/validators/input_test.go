package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidName(t *testing.T) {
	assert.True(t, IsValidName("Dana"))
	assert.True(t, IsValidName("O'Brien"))
	assert.True(t, IsValidName("Anne-Marie"))
	assert.True(t, IsValidName("דנה"))
	assert.False(t, IsValidName("A"))
	assert.False(t, IsValidName("Dana42"))
	assert.False(t, IsValidName(""))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("0501234567"))
	assert.True(t, IsValidPhone("+972501234567"))
	assert.False(t, IsValidPhone("123456"))
	assert.False(t, IsValidPhone("050-1234567"))
	assert.False(t, IsValidPhone("1234567890123456"))
}

func TestIsValidBirthday(t *testing.T) {
	t.Run("leap day on a leap year is accepted", func(t *testing.T) {
		assert.True(t, IsValidBirthday("2024-02-29"))
	})

	t.Run("out of range components are rejected", func(t *testing.T) {
		assert.False(t, IsValidBirthday("2024-13-40"))
		assert.False(t, IsValidBirthday("2023-02-29"))
		assert.False(t, IsValidBirthday("2024-00-10"))
	})

	t.Run("wrong shape is rejected", func(t *testing.T) {
		assert.False(t, IsValidBirthday("29-02-2024"))
		assert.False(t, IsValidBirthday("2024/02/29"))
		assert.False(t, IsValidBirthday("2024-2-9"))
		assert.False(t, IsValidBirthday(""))
	})

	t.Run("regular dates pass", func(t *testing.T) {
		assert.True(t, IsValidBirthday("1990-12-31"))
		assert.True(t, IsValidBirthday("2000-01-01"))
	})
}
