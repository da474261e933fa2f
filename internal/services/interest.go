package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/uppdragsradarn/radar-cli/internal/client"
	"github.com/uppdragsradarn/radar-cli/internal/logging"
	"github.com/uppdragsradarn/radar-cli/internal/models"
)

// InterestService tracks the authenticated user's per-status assignment
// lists and keeps them in sync with the backend.
//
// Contract:
//   - Mark: requires an authenticated session and fails fast with an auth
//     error before any HTTP request otherwise. On success the list for that
//     status is re-fetched wholesale rather than patched locally.
//   - ByStatus: returns an empty slice (and logs) when unauthenticated; on
//     success the local list for that status is replaced, never merged.
type InterestService interface {
	Mark(ctx context.Context, assignmentID string, status models.InterestStatus, notes string) error
	ByStatus(ctx context.Context, status models.InterestStatus) []models.Assignment

	List(status models.InterestStatus) []models.Assignment
	Err() string
}

type interestService struct {
	client  client.Client
	session SessionService
	log     logging.Logger

	mu       sync.Mutex
	byStatus map[models.InterestStatus][]models.Assignment
	lastErr  string
}

// NewInterestService constructs an InterestService. The session service is
// consulted for the authenticated flag before any user-scoped call.
func NewInterestService(c client.Client, session SessionService, log logging.Logger) InterestService {
	byStatus := make(map[models.InterestStatus][]models.Assignment, 4)
	for _, st := range models.InterestStatuses() {
		byStatus[st] = []models.Assignment{}
	}
	return &interestService{client: c, session: session, log: log, byStatus: byStatus}
}

// Mark flags an assignment with a status for the current user. Any status
// may be reassigned to any other; ordering rules, if any, live server-side.
func (s *interestService) Mark(ctx context.Context, assignmentID string, status models.InterestStatus, notes string) error {
	if !s.session.IsAuthenticated() {
		return fmt.Errorf("must be logged in to mark interest in assignments: %w", client.ErrUnauthorized)
	}

	if err := s.client.MarkInterest(ctx, assignmentID, status, notes); err != nil {
		s.setErr(err.Error())
		return fmt.Errorf("mark interest: %w", err)
	}

	// Re-fetch rather than patch locally; one extra round trip buys
	// guaranteed agreement with the server.
	s.ByStatus(ctx, status)
	return nil
}

// ByStatus refreshes and returns the user's list for one status.
func (s *interestService) ByStatus(ctx context.Context, status models.InterestStatus) []models.Assignment {
	if !s.session.IsAuthenticated() {
		s.log.Info(ctx, "skipping user assignment fetch while unauthenticated", "status", status)
		return []models.Assignment{}
	}

	list, err := s.client.UserAssignmentsByStatus(ctx, status)
	if err != nil {
		s.log.Error(ctx, "user assignments fetch failed", "status", status, "err", err)
		s.setErr(err.Error())
		return []models.Assignment{}
	}
	if list == nil {
		list = []models.Assignment{}
	}

	s.mu.Lock()
	s.byStatus[status] = list
	s.lastErr = ""
	s.mu.Unlock()
	return list
}

// List returns the cached list for a status without touching the network.
func (s *interestService) List(status models.InterestStatus) []models.Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Assignment(nil), s.byStatus[status]...)
}

func (s *interestService) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *interestService) setErr(msg string) {
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
}
