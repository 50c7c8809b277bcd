package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_Roundtrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("12345678")
	require.NoError(t, err)
	require.NotEqual(t, "12345678", hash)

	require.True(t, CheckPasswordHash("12345678", hash))
	require.False(t, CheckPasswordHash("wrong", hash))
}

func TestHashPassword_Salted(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("12345678")
	require.NoError(t, err)
	h2, err := HashPassword("12345678")
	require.NoError(t, err)

	// bcrypt embeds a random salt, so two hashes of one password differ.
	require.NotEqual(t, h1, h2)
}
