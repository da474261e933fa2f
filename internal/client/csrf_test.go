package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCSRFCache(t *testing.T) {
	cache := NewCSRFCache()

	token, ok := cache.Token()
	assert.False(t, ok)
	assert.Empty(t, token)

	cache.Set("abc-123")
	token, ok = cache.Token()
	assert.True(t, ok)
	assert.Equal(t, "abc-123", token)

	// an empty token must not wipe the cached one
	cache.Set("")
	token, ok = cache.Token()
	assert.True(t, ok)
	assert.Equal(t, "abc-123", token)

	cache.Clear()
	_, ok = cache.Token()
	assert.False(t, ok)
}
