package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/uppdragsradarn/radar-cli/internal/client"
	"github.com/uppdragsradarn/radar-cli/internal/logging"
	"github.com/uppdragsradarn/radar-cli/internal/models"
)

// AdminDirectoryService is the moderation view over the assignment
// directory: the pending-review queue plus the full listing.
//
// Contract:
//   - FetchPendingReview / FetchAll: replace the respective list and cursor;
//     errors are returned and recorded.
//   - Approve: on success removes the matching entry from the local pending
//     list; removing an id that is not present is a no-op locally.
//   - Update: replaces the matching pending entry with the server's
//     returned representation.
type AdminDirectoryService interface {
	FetchPendingReview(ctx context.Context, page int) error
	FetchAll(ctx context.Context, page int) error
	Approve(ctx context.Context, id string) error
	Update(ctx context.Context, id string, updates map[string]any) (*models.Assignment, error)

	Pending() []models.Assignment
	All() []models.Assignment
	PendingCursor() models.PageCursor
	AllCursor() models.PageCursor
	Err() string
}

type adminDirectoryService struct {
	client   client.Client
	log      logging.Logger
	pageSize int

	mu            sync.Mutex
	pending       []models.Assignment
	all           []models.Assignment
	pendingCursor models.PageCursor
	allCursor     models.PageCursor
	lastErr       string
}

// NewAdminDirectoryService constructs the moderation service. pageSize is
// used for every listing request.
func NewAdminDirectoryService(c client.Client, log logging.Logger, pageSize int) AdminDirectoryService {
	return &adminDirectoryService{client: c, log: log, pageSize: pageSize}
}

// FetchPendingReview loads one page of assignments awaiting moderation.
func (s *adminDirectoryService) FetchPendingReview(ctx context.Context, page int) error {
	result, err := s.client.PendingReview(ctx, page, s.pageSize)
	if err != nil {
		s.setErr(err.Error())
		return fmt.Errorf("fetch pending review: %w", err)
	}

	s.mu.Lock()
	s.pending = result.Content
	s.pendingCursor = models.PageCursor{
		CurrentPage:   result.Number,
		TotalPages:    result.TotalPages,
		TotalElements: result.TotalElements,
		PageSize:      s.pageSize,
	}
	s.lastErr = ""
	s.mu.Unlock()
	return nil
}

// FetchAll loads one page of the complete assignment listing.
func (s *adminDirectoryService) FetchAll(ctx context.Context, page int) error {
	result, err := s.client.AdminAssignments(ctx, page, s.pageSize)
	if err != nil {
		s.setErr(err.Error())
		return fmt.Errorf("fetch assignments: %w", err)
	}

	s.mu.Lock()
	s.all = result.Content
	s.allCursor = models.PageCursor{
		CurrentPage:   result.Number,
		TotalPages:    result.TotalPages,
		TotalElements: result.TotalElements,
		PageSize:      s.pageSize,
	}
	s.lastErr = ""
	s.mu.Unlock()
	return nil
}

// Approve marks an assignment approved and drops it from the local pending
// queue.
func (s *adminDirectoryService) Approve(ctx context.Context, id string) error {
	if err := s.client.ApproveAssignment(ctx, id); err != nil {
		s.setErr(err.Error())
		return fmt.Errorf("approve assignment: %w", err)
	}

	s.mu.Lock()
	kept := s.pending[:0]
	for _, a := range s.pending {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.pending = kept
	s.lastErr = ""
	s.mu.Unlock()
	return nil
}

// Update applies a partial edit and swaps the server's representation into
// the local pending list.
func (s *adminDirectoryService) Update(ctx context.Context, id string, updates map[string]any) (*models.Assignment, error) {
	updated, err := s.client.UpdateAssignment(ctx, id, updates)
	if err != nil {
		s.setErr(err.Error())
		return nil, fmt.Errorf("update assignment: %w", err)
	}

	s.mu.Lock()
	for i := range s.pending {
		if s.pending[i].ID == id {
			s.pending[i] = *updated
			break
		}
	}
	s.lastErr = ""
	s.mu.Unlock()
	return updated, nil
}

func (s *adminDirectoryService) Pending() []models.Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Assignment(nil), s.pending...)
}

func (s *adminDirectoryService) All() []models.Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Assignment(nil), s.all...)
}

func (s *adminDirectoryService) PendingCursor() models.PageCursor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingCursor
}

func (s *adminDirectoryService) AllCursor() models.PageCursor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allCursor
}

func (s *adminDirectoryService) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *adminDirectoryService) setErr(msg string) {
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
}
