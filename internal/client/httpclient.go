package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/uppdragsradarn/radar-cli/internal/logging"
	"github.com/uppdragsradarn/radar-cli/internal/models"
)

// oauthLoginPath is the browser redirect target for the public OAuth flow.
const oauthLoginPath = "/oauth2/authorization/cognito"

// HTTPClient is the concrete Client backed by net/http. Session cookies live
// in the jar, so every request is the equivalent of fetch with
// credentials "include"; the CSRF decorator sits in the transport chain.
type HTTPClient struct {
	baseURL   string
	oauthBase string
	csrf      *CSRFCache
	hc        *http.Client
	log       logging.Logger
}

// NewHTTPClient builds an HTTPClient against the given API base URL
// (including the /api prefix). oauthBase is the server root used for the
// OAuth hand-off. A zero timeout means the transport default.
func NewHTTPClient(baseURL, oauthBase string, timeout time.Duration, csrf *CSRFCache, log logging.Logger) (*HTTPClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}

	return &HTTPClient{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		oauthBase: strings.TrimSuffix(oauthBase, "/"),
		csrf:      csrf,
		log:       log,
		hc: &http.Client{
			Jar:     jar,
			Timeout: timeout,
			Transport: &csrfTransport{
				base: http.DefaultTransport,
				csrf: csrf,
			},
		},
	}, nil
}

// do issues one request and decodes a JSON response into out (skipped when
// out is nil). Transport failures wrap ErrUnavailable; non-2xx statuses are
// classified by mapError.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug(ctx, "api request", "method", method, "path", path)

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %v: %w", method, path, err, ErrUnavailable)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read body: %v: %w", method, path, err, ErrUnavailable)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapError(resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%s %s: decode response: %w", method, path, err)
		}
	}
	return nil
}

// mapError classifies a non-2xx response into the package error taxonomy.
func (c *HTTPClient) mapError(code int, body []byte) error {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("status %d: %w", code, ErrUnauthorized)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		var payload struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if err := json.Unmarshal(body, &payload); err == nil {
			msg := payload.Message
			if msg == "" {
				msg = payload.Error
			}
			if msg != "" {
				return &ValidationError{Message: msg}
			}
		}
	}
	return &StatusError{Code: code}
}

// FetchSession reads the current server session. A token in the response is
// stored into the CSRF cache; its absence is only a warning since GET-only
// usage never needs one.
func (c *HTTPClient) FetchSession(ctx context.Context) (*models.Session, error) {
	var session models.Session
	if err := c.do(ctx, http.MethodGet, "/session", nil, nil, &session); err != nil {
		return nil, err
	}

	if session.CSRFToken != "" {
		c.csrf.Set(session.CSRFToken)
	} else {
		c.log.Warn(ctx, "no csrf token in session response")
	}
	return &session, nil
}

// Login posts admin credentials. The returned user comes from the login
// response itself; callers follow up with FetchSession to hydrate roles.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.User, error) {
	body := map[string]string{"username": username, "password": password}

	var resp struct {
		User *models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/public/auth/login", nil, body, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Logout invalidates the server session. The cached CSRF token belongs to
// that session, so it is dropped even when the server call fails.
func (c *HTTPClient) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/logout", nil, nil, nil)
	c.csrf.Clear()
	return err
}

// Ping probes server reachability via the session endpoint.
func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/session", nil, nil, nil)
}

// SearchAssignments runs a paginated keyword search. An empty keyword lists
// everything.
func (c *HTTPClient) SearchAssignments(ctx context.Context, keyword string, page, size int) (*models.AssignmentPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))
	if keyword != "" {
		query.Set("keyword", keyword)
	}

	var envelope pageEnvelope
	if err := c.do(ctx, http.MethodGet, "/assignments", query, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.toPage(), nil
}

// AssignmentByID fetches a single assignment.
func (c *HTTPClient) AssignmentByID(ctx context.Context, id string) (*models.Assignment, error) {
	var a models.Assignment
	if err := c.do(ctx, http.MethodGet, "/assignments/"+url.PathEscape(id), nil, nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// RecentAssignments returns the newest assignments, up to limit.
func (c *HTTPClient) RecentAssignments(ctx context.Context, limit int) ([]models.Assignment, error) {
	query := url.Values{}
	query.Set("page", "0")
	query.Set("size", strconv.Itoa(limit))
	query.Set("sort", "createdAt,desc")

	var envelope pageEnvelope
	if err := c.do(ctx, http.MethodGet, "/assignments", query, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.toPage().Content, nil
}

// MarkInterest flags an assignment with the given status for the current
// user.
func (c *HTTPClient) MarkInterest(ctx context.Context, assignmentID string, status models.InterestStatus, notes string) error {
	body := map[string]any{"status": status}
	if notes != "" {
		body["notes"] = notes
	}
	path := "/assignments/" + url.PathEscape(assignmentID) + "/interest"
	return c.do(ctx, http.MethodPost, path, nil, body, nil)
}

// UserAssignmentsByStatus lists the current user's flagged assignments for
// one status.
func (c *HTTPClient) UserAssignmentsByStatus(ctx context.Context, status models.InterestStatus) ([]models.Assignment, error) {
	var envelope pageEnvelope
	path := "/assignments/user/status/" + url.PathEscape(string(status))
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.toPage().Content, nil
}

// UpdateUserProfile replaces profile fields and returns the fields the
// server echoed back.
func (c *HTTPClient) UpdateUserProfile(ctx context.Context, userID string, update models.ProfileUpdate) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodPut, "/users/"+url.PathEscape(userID), nil, update, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// AdminAssignments lists all assignments for moderation.
func (c *HTTPClient) AdminAssignments(ctx context.Context, page, size int) (*models.AssignmentPage, error) {
	return c.adminPage(ctx, "/admin/assignments", page, size)
}

// PendingReview lists assignments awaiting moderation.
func (c *HTTPClient) PendingReview(ctx context.Context, page, size int) (*models.AssignmentPage, error) {
	return c.adminPage(ctx, "/admin/assignments/pending-review", page, size)
}

func (c *HTTPClient) adminPage(ctx context.Context, path string, page, size int) (*models.AssignmentPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	var envelope pageEnvelope
	if err := c.do(ctx, http.MethodGet, path, query, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.toPage(), nil
}

// ApproveAssignment marks a pending assignment as approved.
func (c *HTTPClient) ApproveAssignment(ctx context.Context, id string) error {
	path := "/admin/assignments/" + url.PathEscape(id) + "/approve"
	return c.do(ctx, http.MethodPost, path, nil, nil, nil)
}

// UpdateAssignment applies a partial update and returns the server's
// representation.
func (c *HTTPClient) UpdateAssignment(ctx context.Context, id string, updates map[string]any) (*models.Assignment, error) {
	var a models.Assignment
	path := "/admin/assignments/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodPut, path, nil, updates, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// LoginURL returns the OAuth authorization URL the public app sends the
// user's browser to. Completion is observed later via FetchSession.
func (c *HTTPClient) LoginURL() string {
	return c.oauthBase + oauthLoginPath
}

// Close releases idle connections.
func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}
