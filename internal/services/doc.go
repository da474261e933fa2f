// Package services contains the application-facing state holders over the
// API client: session/auth state with the role gate, the paginated
// assignment directory, the admin moderation queue, and the per-status
// interest tracker.
//
// Each service owns its slice of client state behind a mutex and records the
// last failure in a per-service error string for UI binding. Error
// propagation deliberately differs per call: searches and admin fetches
// return errors, detail and recent-list fetches capture or swallow them.
package services
