package client

import (
	"net/http"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// csrfTransport decorates outbound requests with the cached CSRF token and a
// correlation ID. It is composed into the http.Client at construction time,
// the single place request decoration happens.
type csrfTransport struct {
	base http.RoundTripper
	csrf *CSRFCache
}

func (t *csrfTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())

	// State-changing requests carry the anti-forgery token once one has
	// been cached. Requests made before the token is available proceed
	// without it; the server rejects those and the caller may refresh.
	if clone.Method != http.MethodGet && clone.Method != http.MethodHead {
		if token, ok := t.csrf.Token(); ok {
			clone.Header.Set(CSRFHeader, token)
		}
	}

	clone.Header.Set(requestIDHeader, uuid.NewString())

	return t.base.RoundTrip(clone)
}
