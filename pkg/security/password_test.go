package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(0)

	hash, err := hasher.Hash("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.NoError(t, hasher.Compare(hash, "s3cret-password"))
	assert.Error(t, hasher.Compare(hash, "wrong-password"))
}

func TestBcryptHasherUniqueSalts(t *testing.T) {
	hasher := NewBcryptHasher(0)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
