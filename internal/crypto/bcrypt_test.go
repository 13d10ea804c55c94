package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("correct horse")
	require.NoError(t, err)

	assert.NotEqual(t, "correct horse", hash)
	assert.True(t, h.Verify(hash, "correct horse"))
	assert.False(t, h.Verify(hash, "Correct horse"))
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("same password")
	require.NoError(t, err)
	second, err := h.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

// TestBcryptHasher_VerifyPlaintext verifies that a legacy plaintext value is
// never accepted as a hash of itself.
func TestBcryptHasher_VerifyPlaintext(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	assert.False(t, h.Verify("hunter22", "hunter22"))
	assert.False(t, h.Verify("", ""))
}

func TestBcryptHasher_Cost(t *testing.T) {
	tests := []struct {
		name string
		cost int
		want int
	}{
		{name: "min", cost: bcrypt.MinCost, want: bcrypt.MinCost},
		{name: "too low", cost: 1, want: bcrypt.DefaultCost},
		{name: "too high", cost: bcrypt.MaxCost + 1, want: bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewBcryptHasher(tt.cost).(*bcryptHasher)
			assert.Equal(t, tt.want, h.cost)
		})
	}
}

func TestBcryptHasher_TooLong(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	_, err := h.Hash(strings.Repeat("x", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestBcryptHasher_IsHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("realpassword")
	require.NoError(t, err)

	assert.True(t, h.IsHash(hash))
	assert.False(t, h.IsHash("oldpass123"))
	assert.False(t, h.IsHash(""))
	assert.False(t, h.IsHash("$2a$"))
}
