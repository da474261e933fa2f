package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/uppdragsradarn/radar-cli/internal/client"
	"github.com/uppdragsradarn/radar-cli/internal/logging"
	"github.com/uppdragsradarn/radar-cli/internal/models"
)

// DirectoryService is the public assignment directory: paginated search
// with load-more semantics, single-item detail, and the recent widget feed.
//
// Contract:
//   - Search: page 0 replaces the collection, later pages append (no
//     dedup). Errors are returned and leave the collection untouched.
//     Responses superseded by a newer Search are discarded.
//   - ByID: returns the item or nil; the error is captured in Err, not
//     returned.
//   - Recent: returns the newest assignments or an empty slice on any
//     failure; never returns an error.
type DirectoryService interface {
	Search(ctx context.Context, keyword string, page, size int) error
	ByID(ctx context.Context, id string) *models.Assignment
	Recent(ctx context.Context, limit int) []models.Assignment

	Assignments() []models.Assignment
	RecentAssignments() []models.Assignment
	Cursor() models.PageCursor
	Err() string
}

type directoryService struct {
	client client.Client
	log    logging.Logger

	mu          sync.Mutex
	assignments []models.Assignment
	recent      []models.Assignment
	cursor      models.PageCursor
	searchSeq   uint64
	lastErr     string
}

// NewDirectoryService constructs a DirectoryService over the given client.
func NewDirectoryService(c client.Client, log logging.Logger) DirectoryService {
	return &directoryService{client: c, log: log}
}

// Search runs a paginated keyword search and folds the result into the
// local collection. Each call takes a sequence token; a response arriving
// after a newer Search has started is dropped so rapid calls cannot
// overwrite fresher results with staler ones.
func (s *directoryService) Search(ctx context.Context, keyword string, page, size int) error {
	s.mu.Lock()
	s.searchSeq++
	token := s.searchSeq
	s.mu.Unlock()

	result, err := s.client.SearchAssignments(ctx, keyword, page, size)

	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.searchSeq {
		s.log.Debug(ctx, "discarding superseded search response", "keyword", keyword, "page", page)
		return nil
	}

	if err != nil {
		s.lastErr = err.Error()
		return fmt.Errorf("search assignments: %w", err)
	}

	if page == 0 {
		s.assignments = result.Content
	} else {
		s.assignments = append(s.assignments, result.Content...)
	}
	s.cursor = models.PageCursor{
		CurrentPage:   result.Number,
		TotalPages:    result.TotalPages,
		TotalElements: result.TotalElements,
		PageSize:      size,
	}
	s.lastErr = ""
	return nil
}

// ByID fetches a single assignment. Failures are recorded in Err and nil is
// returned; this asymmetry with Search matches how detail views surface
// errors inline instead of failing the whole page.
func (s *directoryService) ByID(ctx context.Context, id string) *models.Assignment {
	a, err := s.client.AssignmentByID(ctx, id)
	if err != nil {
		s.log.Warn(ctx, "assignment detail fetch failed", "id", id, "err", err)
		s.mu.Lock()
		s.lastErr = err.Error()
		s.mu.Unlock()
		return nil
	}

	s.mu.Lock()
	s.lastErr = ""
	s.mu.Unlock()
	return a
}

// Recent fetches the newest assignments for non-critical widgets. Any
// failure is swallowed: the previous cached list stays in place and an
// empty slice is returned.
func (s *directoryService) Recent(ctx context.Context, limit int) []models.Assignment {
	content, err := s.client.RecentAssignments(ctx, limit)
	if err != nil {
		s.log.Warn(ctx, "recent assignments fetch failed", "err", err)
		return []models.Assignment{}
	}
	if content == nil {
		content = []models.Assignment{}
	}

	s.mu.Lock()
	s.recent = content
	s.mu.Unlock()
	return content
}

func (s *directoryService) Assignments() []models.Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Assignment(nil), s.assignments...)
}

func (s *directoryService) RecentAssignments() []models.Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Assignment(nil), s.recent...)
}

func (s *directoryService) Cursor() models.PageCursor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

func (s *directoryService) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
