package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uppdragsradarn/radar-cli/internal/client"
	"github.com/uppdragsradarn/radar-cli/internal/logging"
	"github.com/uppdragsradarn/radar-cli/internal/models"
)

func authenticatedSession(t *testing.T, fake *fakeClient) SessionService {
	t.Helper()
	fake.SessionRet = &models.Session{
		Authenticated: true,
		User:          &models.User{ID: "u1", Email: "a@b.se"},
	}
	svc := NewSessionService(fake, logging.NewDiscardLogger())
	_, err := svc.CheckSession(context.Background())
	require.NoError(t, err)
	return svc
}

func TestMarkRequiresAuthenticationWithoutHTTP(t *testing.T) {
	fake := &fakeClient{}
	session := NewSessionService(fake, logging.NewDiscardLogger())
	svc := NewInterestService(fake, session, logging.NewDiscardLogger())

	err := svc.Mark(context.Background(), "a1", models.StatusInterested, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, client.ErrUnauthorized))
	assert.Equal(t, 0, fake.MarkCalls, "no HTTP request may be issued")
	assert.Equal(t, 0, fake.ByStatusCalls)
}

func TestMarkRefreshesStatusListWholesale(t *testing.T) {
	fake := &fakeClient{
		ByStatusRet: []models.Assignment{{ID: "a1", Active: true}},
	}
	session := authenticatedSession(t, fake)
	svc := NewInterestService(fake, session, logging.NewDiscardLogger())

	require.NoError(t, svc.Mark(context.Background(), "a1", models.StatusApplied, "phone screen booked"))

	assert.Equal(t, 1, fake.MarkCalls)
	assert.Equal(t, "a1", fake.LastMarkID)
	assert.Equal(t, models.StatusApplied, fake.LastMarkStatus)
	assert.Equal(t, "phone screen booked", fake.LastMarkNotes)
	assert.Equal(t, 1, fake.ByStatusCalls, "success triggers a wholesale re-fetch")
	assert.Equal(t, models.StatusApplied, fake.LastByStatus)
	assert.Len(t, svc.List(models.StatusApplied), 1)
}

func TestMarkPropagatesServerFailure(t *testing.T) {
	fake := &fakeClient{MarkErr: &client.StatusError{Code: 500}}
	session := authenticatedSession(t, fake)
	svc := NewInterestService(fake, session, logging.NewDiscardLogger())

	err := svc.Mark(context.Background(), "a1", models.StatusInterested, "")
	require.Error(t, err)
	assert.Equal(t, 0, fake.ByStatusCalls, "no refresh after a failed mark")
	assert.NotEmpty(t, svc.Err())
}

func TestByStatusUnauthenticatedReturnsEmptyWithoutHTTP(t *testing.T) {
	fake := &fakeClient{}
	session := NewSessionService(fake, logging.NewDiscardLogger())
	svc := NewInterestService(fake, session, logging.NewDiscardLogger())

	got := svc.ByStatus(context.Background(), models.StatusApplied)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, 0, fake.ByStatusCalls)
}

func TestByStatusReplacesListExactly(t *testing.T) {
	fake := &fakeClient{
		ByStatusRet: []models.Assignment{{ID: "a1", Active: true}, {ID: "a2", Active: true}},
	}
	session := authenticatedSession(t, fake)
	svc := NewInterestService(fake, session, logging.NewDiscardLogger())

	got := svc.ByStatus(context.Background(), models.StatusApplied)
	assert.Equal(t, []string{"a1", "a2"}, assignmentIDs(got))
	assert.Equal(t, []string{"a1", "a2"}, assignmentIDs(svc.List(models.StatusApplied)))

	// the server's next answer fully replaces the local list, no stale merge
	fake.ByStatusRet = []models.Assignment{{ID: "a3", Active: true}}
	got = svc.ByStatus(context.Background(), models.StatusApplied)
	assert.Equal(t, []string{"a3"}, assignmentIDs(got))
	assert.Equal(t, []string{"a3"}, assignmentIDs(svc.List(models.StatusApplied)))
}

func TestByStatusFetchFailureReturnsEmpty(t *testing.T) {
	fake := &fakeClient{ByStatusErr: &client.StatusError{Code: 500}}
	session := authenticatedSession(t, fake)
	svc := NewInterestService(fake, session, logging.NewDiscardLogger())

	got := svc.ByStatus(context.Background(), models.StatusRejected)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.NotEmpty(t, svc.Err())
}
