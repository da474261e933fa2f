// Package cli provides the interactive command-line front ends for the
// uppdragsradarn assignment API.
//
// Two apps live here. App is the public browsing client: keyword search
// with load-more paging, assignment detail, the recent feed, interest
// tracking, and the OAuth login hand-off. AdminApp is the moderation
// client: credential login behind the ADMIN role gate, the pending-review
// queue, and approve/update commands.
//
// Both wire configuration, the HTTP client, and the services explicitly in
// their constructors and run a REPL until the user exits. A background
// watcher keeps the prompt's online/offline indicator current.
package cli
