package services

import (
	"context"
	"sync"

	"github.com/uppdragsradarn/radar-cli/internal/models"
)

// fakeClient implements client.Client for unit tests. Return values and
// errors are configured per method; last-call arguments and call counts are
// recorded for assertions.
type fakeClient struct {
	mu sync.Mutex

	SessionRet *models.Session
	SessionErr error

	LoginRet *models.User
	LoginErr error

	LogoutErr error
	PingErr   error

	SearchRet *models.AssignmentPage
	SearchErr error
	// SearchFn, when set, overrides SearchRet/SearchErr entirely.
	SearchFn func(keyword string, page, size int) (*models.AssignmentPage, error)

	ByIDRet *models.Assignment
	ByIDErr error

	RecentRet []models.Assignment
	RecentErr error

	MarkErr error

	ByStatusRet []models.Assignment
	ByStatusErr error

	ProfileRet *models.User
	ProfileErr error

	AdminAllRet *models.AssignmentPage
	AdminAllErr error

	PendingRet *models.AssignmentPage
	PendingErr error

	ApproveErr error

	UpdateRet *models.Assignment
	UpdateErr error

	LoginURLRet string

	SessionCalls  int
	LoginCalls    int
	LogoutCalls   int
	SearchCalls   int
	MarkCalls     int
	ByStatusCalls int
	ApproveCalls  int

	LastLoginUser     string
	LastLoginPassword string
	LastSearchKeyword string
	LastSearchPage    int
	LastSearchSize    int
	LastMarkID        string
	LastMarkStatus    models.InterestStatus
	LastMarkNotes     string
	LastByStatus      models.InterestStatus
	LastProfileUserID string
	LastApproveID     string
	LastUpdateID      string
	LastUpdateFields  map[string]any
}

func (f *fakeClient) FetchSession(ctx context.Context) (*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SessionCalls++
	return f.SessionRet, f.SessionErr
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LoginCalls++
	f.LastLoginUser = username
	f.LastLoginPassword = password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Logout(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LogoutCalls++
	return f.LogoutErr
}

func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }

func (f *fakeClient) SearchAssignments(ctx context.Context, keyword string, page, size int) (*models.AssignmentPage, error) {
	f.mu.Lock()
	f.SearchCalls++
	f.LastSearchKeyword = keyword
	f.LastSearchPage = page
	f.LastSearchSize = size
	fn := f.SearchFn
	f.mu.Unlock()

	if fn != nil {
		return fn(keyword, page, size)
	}
	return f.SearchRet, f.SearchErr
}

func (f *fakeClient) AssignmentByID(ctx context.Context, id string) (*models.Assignment, error) {
	return f.ByIDRet, f.ByIDErr
}

func (f *fakeClient) RecentAssignments(ctx context.Context, limit int) ([]models.Assignment, error) {
	return f.RecentRet, f.RecentErr
}

func (f *fakeClient) MarkInterest(ctx context.Context, assignmentID string, status models.InterestStatus, notes string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.MarkCalls++
	f.LastMarkID = assignmentID
	f.LastMarkStatus = status
	f.LastMarkNotes = notes
	return f.MarkErr
}

func (f *fakeClient) UserAssignmentsByStatus(ctx context.Context, status models.InterestStatus) ([]models.Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ByStatusCalls++
	f.LastByStatus = status
	return f.ByStatusRet, f.ByStatusErr
}

func (f *fakeClient) UpdateUserProfile(ctx context.Context, userID string, update models.ProfileUpdate) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastProfileUserID = userID
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) AdminAssignments(ctx context.Context, page, size int) (*models.AssignmentPage, error) {
	return f.AdminAllRet, f.AdminAllErr
}

func (f *fakeClient) PendingReview(ctx context.Context, page, size int) (*models.AssignmentPage, error) {
	return f.PendingRet, f.PendingErr
}

func (f *fakeClient) ApproveAssignment(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ApproveCalls++
	f.LastApproveID = id
	return f.ApproveErr
}

func (f *fakeClient) UpdateAssignment(ctx context.Context, id string, updates map[string]any) (*models.Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastUpdateID = id
	f.LastUpdateFields = updates
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeClient) LoginURL() string { return f.LoginURLRet }

func (f *fakeClient) Close() error { return nil }
