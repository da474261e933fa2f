package client

import "sync"

// CSRFHeader is the header the server expects the anti-forgery token in.
const CSRFHeader = "X-CSRF-TOKEN"

// CSRFCache holds the anti-forgery token issued by the session endpoint.
// It is populated exclusively as a side effect of a successful session
// fetch; Token never triggers a fetch on its own.
type CSRFCache struct {
	mu    sync.RWMutex
	token string
}

func NewCSRFCache() *CSRFCache {
	return &CSRFCache{}
}

// Token returns the cached token, and false when none has been obtained yet.
func (c *CSRFCache) Token() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token, c.token != ""
}

// Set replaces the cached token. An empty value is ignored so a session
// response without a token does not wipe a previously obtained one.
func (c *CSRFCache) Set(token string) {
	if token == "" {
		return
	}
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Clear drops the cached token, e.g. after logout.
func (c *CSRFCache) Clear() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}
