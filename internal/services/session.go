package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/uppdragsradarn/radar-cli/internal/client"
	"github.com/uppdragsradarn/radar-cli/internal/logging"
	"github.com/uppdragsradarn/radar-cli/internal/models"
)

// RoleAdmin gates the moderation endpoints.
const RoleAdmin = "ADMIN"

// SessionService mirrors the server-side authentication session.
//
// Contract:
//   - CheckSession: refresh auth state from the server; idempotent. Failures
//     clear state and return a recoverable error.
//   - Login: admin credential login followed by a session check to hydrate
//     roles.
//   - HandleAuthCallback: session check after the browser OAuth redirect.
//   - Logout: best-effort server logout; local state is always cleared.
//   - RefreshToken: re-run the session fetch purely for a fresh CSRF token.
//   - UpdateProfile: replace profile fields, merging the server's response
//     over the cached user.
//
// Accessors are safe for concurrent use with the mutating calls.
type SessionService interface {
	CheckSession(ctx context.Context) (bool, error)
	Login(ctx context.Context, username, password string) error
	HandleAuthCallback(ctx context.Context) bool
	Logout(ctx context.Context) error
	RefreshToken(ctx context.Context) error
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) error
	LoginURL() string

	IsAuthenticated() bool
	IsAdmin() bool
	User() *models.User
	Err() string
}

type sessionService struct {
	client       client.Client
	log          logging.Logger
	requiredRole string

	mu            sync.Mutex
	authenticated bool
	user          *models.User
	lastErr       string
}

// SessionOption configures a SessionService.
type SessionOption func(*sessionService)

// WithRequiredRole makes CheckSession treat an authenticated user without
// the given role as unauthenticated, failing with an auth error. The admin
// app uses this with RoleAdmin.
func WithRequiredRole(role string) SessionOption {
	return func(s *sessionService) { s.requiredRole = role }
}

// NewSessionService constructs a SessionService over the given API client.
func NewSessionService(c client.Client, log logging.Logger, opts ...SessionOption) SessionService {
	s := &sessionService{client: c, log: log}
	for _, o := range opts {
		o(s)
	}
	return s
}

// CheckSession refreshes the local auth state from the server session
// endpoint. Returns whether the user ended up authenticated (and, when a
// role is required, authorized).
func (s *sessionService) CheckSession(ctx context.Context) (bool, error) {
	session, err := s.client.FetchSession(ctx)
	if err != nil {
		s.clear(err.Error())
		s.log.Warn(ctx, "session check failed", "err", err)
		return false, fmt.Errorf("session check: %w", err)
	}

	if !session.Authenticated || session.User == nil {
		s.clear("")
		return false, nil
	}

	if s.requiredRole != "" && !session.User.HasRole(s.requiredRole) {
		msg := fmt.Sprintf("%s role required", s.requiredRole)
		s.clear(msg)
		return false, fmt.Errorf("%s: %w", msg, client.ErrUnauthorized)
	}

	s.mu.Lock()
	s.authenticated = true
	s.user = session.User
	s.lastErr = ""
	s.mu.Unlock()
	return true, nil
}

// Login performs the admin credential login. The login response must carry a
// user, and the follow-up session check must pass the role gate.
func (s *sessionService) Login(ctx context.Context, username, password string) error {
	user, err := s.client.Login(ctx, username, password)
	if err != nil {
		s.clear(err.Error())
		return fmt.Errorf("login: %w", err)
	}
	if user == nil {
		s.clear("invalid login response")
		return fmt.Errorf("login response missing user: %w", client.ErrUnauthorized)
	}

	// Re-read the session so the cached user carries roles.
	ok, err := s.CheckSession(ctx)
	if err != nil {
		return fmt.Errorf("post-login session check: %w", err)
	}
	if !ok {
		s.clear("not authenticated after login")
		return fmt.Errorf("not authenticated after login: %w", client.ErrUnauthorized)
	}
	return nil
}

// HandleAuthCallback is invoked after the OAuth redirect completes; the
// session cookie is already set, so a session check is all that is needed.
func (s *sessionService) HandleAuthCallback(ctx context.Context) bool {
	ok, err := s.CheckSession(ctx)
	if err != nil {
		s.log.Warn(ctx, "auth callback session check failed", "err", err)
		return false
	}
	return ok
}

// Logout tells the server to drop the session, then clears local state
// regardless of the outcome.
func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.client.Logout(ctx); err != nil {
		s.log.Warn(ctx, "server logout failed, clearing local state anyway", "err", err)
	}
	s.clear("")
	return nil
}

// RefreshToken re-runs the session fetch for its CSRF side effect. Auth
// state is left alone; callers wanting both use CheckSession.
func (s *sessionService) RefreshToken(ctx context.Context) error {
	if _, err := s.client.FetchSession(ctx); err != nil {
		return fmt.Errorf("refresh csrf token: %w", err)
	}
	return nil
}

// UpdateProfile sends changed fields to the server and merges the
// authoritative response over the cached user.
func (s *sessionService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) error {
	s.mu.Lock()
	current := s.user
	authenticated := s.authenticated
	s.mu.Unlock()

	if !authenticated || current == nil || current.ID == "" {
		return fmt.Errorf("profile update requires login: %w", client.ErrUnauthorized)
	}

	updated, err := s.client.UpdateUserProfile(ctx, current.ID, update)
	if err != nil {
		s.setErr(err.Error())
		return fmt.Errorf("update profile: %w", err)
	}

	s.mu.Lock()
	s.user = models.MergeUser(s.user, updated)
	s.lastErr = ""
	s.mu.Unlock()
	return nil
}

func (s *sessionService) LoginURL() string {
	return s.client.LoginURL()
}

func (s *sessionService) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

func (s *sessionService) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated && s.user.HasRole(RoleAdmin)
}

func (s *sessionService) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *sessionService) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *sessionService) clear(errMsg string) {
	s.mu.Lock()
	s.authenticated = false
	s.user = nil
	s.lastErr = errMsg
	s.mu.Unlock()
}

func (s *sessionService) setErr(msg string) {
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
}
