package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher()

	digest, err := hasher.Hash("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", digest)

	assert.True(t, hasher.Verify("hunter22", digest))
	assert.False(t, hasher.Verify("hunter23", digest))
}

func TestPasswordHashIsSalted(t *testing.T) {
	hasher := NewPasswordHasher()

	first, err := hasher.Hash("hunter22")
	require.NoError(t, err)
	second, err := hasher.Hash("hunter22")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("hunter22", first))
	assert.True(t, hasher.Verify("hunter22", second))
}

func TestPasswordVerifyMalformedDigest(t *testing.T) {
	hasher := NewPasswordHasher()

	assert.False(t, hasher.Verify("hunter22", "not-a-bcrypt-digest"))
	assert.False(t, hasher.Verify("hunter22", ""))
}
