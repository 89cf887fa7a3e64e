package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-1", "user@example.com", time.Hour)
	require.NoError(t, err)

	sub, err := ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "user@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractIDFromToken(token)
	assert.Error(t, err)
}

func TestMalformedTokenIsRejected(t *testing.T) {
	_, err := ExtractIDFromToken("not-a-jwt")
	assert.Error(t, err)
}

func TestHashTokenIsStableAndDistinct(t *testing.T) {
	a, err := GenerateToken("user-1", "", time.Hour)
	require.NoError(t, err)
	b, err := GenerateToken("user-2", "", time.Hour)
	require.NoError(t, err)

	assert.Equal(t, HashToken(a), HashToken(a))
	assert.NotEqual(t, HashToken(a), HashToken(b))
	assert.Len(t, HashToken(a), 64)
}
