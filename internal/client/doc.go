// Package client contains the transport layer for talking to the
// uppdragsradarn REST API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     session/login/logout, assignment search and detail, user interest
//     tracking, profile updates, and the admin moderation endpoints.
//  2. A concrete HTTP implementation (see HTTPClient) that keeps session
//     cookies in a jar, injects the cached CSRF token into state-changing
//     requests through an explicit RoundTripper decorator, normalises the
//     server's paginated envelopes, and maps HTTP failures to sentinel
//     errors.
//  3. The CSRF token cache (see CSRFCache), populated as a side effect of
//     successful session fetches and consulted by the decorator.
//
// # Error handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable for transport failures and ErrUnauthorized
// for 401/403 responses. Responses the server intends as user-facing carry a
// *ValidationError; other non-2xx statuses surface as *StatusError.
//
// All operations accept context.Context and honor cancellation. HTTPClient
// is safe for concurrent use.
package client
