package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcrypt.MinCost)

	hashed, err := hasher.Hash("Secret1A")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	assert.NotEqual(t, "Secret1A", hashed)

	assert.NoError(t, hasher.Compare(hashed, "Secret1A"))
	assert.Error(t, hasher.Compare(hashed, "wrong-password"))
}

func TestBcryptHasher_DistinctHashesPerCall(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("Secret1A")
	require.NoError(t, err)
	second, err := hasher.Hash("Secret1A")
	require.NoError(t, err)

	// bcrypt salts every hash, so two hashes of the same password differ.
	assert.NotEqual(t, first, second)
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(0)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)

	hasher = NewBcryptHasher(bcrypt.MinCost)
	assert.Equal(t, bcrypt.MinCost, hasher.cost)
}
