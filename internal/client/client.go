package client

import (
	"context"

	"github.com/uppdragsradarn/radar-cli/internal/models"
)

// Client is the API contract against the uppdragsradarn backend.
//
// Contract:
//   - FetchSession: read the server session; populates the CSRF cache.
//   - Login: admin credential login; returns the user from the response.
//   - Logout: invalidate the server session.
//   - Ping: cheap reachability probe.
//   - SearchAssignments / AssignmentByID / RecentAssignments: public
//     directory reads.
//   - MarkInterest / UserAssignmentsByStatus: user-scoped interest tracking.
//   - UpdateUserProfile: replace profile fields, returning the server's view.
//   - AdminAssignments / PendingReview / ApproveAssignment /
//     UpdateAssignment: moderation endpoints, admin role required.
//   - LoginURL: the OAuth authorization URL for the browser hand-off.
//
// All methods must honor context cancellation/timeouts.
type Client interface {
	FetchSession(ctx context.Context) (*models.Session, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error

	SearchAssignments(ctx context.Context, keyword string, page, size int) (*models.AssignmentPage, error)
	AssignmentByID(ctx context.Context, id string) (*models.Assignment, error)
	RecentAssignments(ctx context.Context, limit int) ([]models.Assignment, error)

	MarkInterest(ctx context.Context, assignmentID string, status models.InterestStatus, notes string) error
	UserAssignmentsByStatus(ctx context.Context, status models.InterestStatus) ([]models.Assignment, error)

	UpdateUserProfile(ctx context.Context, userID string, update models.ProfileUpdate) (*models.User, error)

	AdminAssignments(ctx context.Context, page, size int) (*models.AssignmentPage, error)
	PendingReview(ctx context.Context, page, size int) (*models.AssignmentPage, error)
	ApproveAssignment(ctx context.Context, id string) error
	UpdateAssignment(ctx context.Context, id string, updates map[string]any) (*models.Assignment, error)

	LoginURL() string
	Close() error
}
