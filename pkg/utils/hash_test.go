package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordProducesDistinctDigests(t *testing.T) {
	first, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	second, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	// Salt is randomized per call
	assert.NotEqual(t, first, second)
	assert.NotEqual(t, "s3cret-pass", first)
}

func TestCheckPasswordHash(t *testing.T) {
	digest, err := HashPassword("correct-horse")
	require.NoError(t, err)

	match, err := CheckPasswordHash("correct-horse", digest)
	require.NoError(t, err)
	assert.True(t, match)

	match, err = CheckPasswordHash("wrong-horse", digest)
	require.NoError(t, err)
	assert.False(t, match)
}

func TestCheckPasswordHashMalformedDigest(t *testing.T) {
	// A mangled digest is an internal failure, not a mismatch
	match, err := CheckPasswordHash("anything", "not-a-bcrypt-digest")
	assert.Error(t, err)
	assert.False(t, match)
}
