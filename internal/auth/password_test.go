package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("alice123")
	require.NoError(t, err)
	require.NotEqual(t, "alice123", hash)

	assert.True(t, CheckPassword(hash, "alice123"))
	assert.False(t, CheckPassword(hash, "alice124"))
	assert.False(t, CheckPassword("", "alice123"))
}
