package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := BcryptHasher{Cost: bcrypt.MinCost}

	hashed, err := h.Hash("plaintext123")
	require.NoError(t, err)
	assert.NotEqual(t, "plaintext123", hashed)
	assert.True(t, IsHashed(hashed))
	assert.True(t, h.Verify(hashed, "plaintext123"))
	assert.False(t, h.Verify(hashed, "plaintext124"))
}

func TestBcryptHasher_SaltedOutput(t *testing.T) {
	h := BcryptHasher{Cost: bcrypt.MinCost}
	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestBcryptHasher_TooLong(t *testing.T) {
	h := BcryptHasher{Cost: bcrypt.MinCost}
	_, err := h.Hash(strings.Repeat("x", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestIsHashed_Plaintext(t *testing.T) {
	assert.False(t, IsHashed("plaintext123"))
	assert.False(t, IsHashed(""))
}
