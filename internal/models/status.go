package models

import (
	"fmt"
	"strings"
)

// InterestStatus is a user-assigned label on an assignment indicating
// intent or progress. Unlike a kanban workflow there is no transition graph:
// the server accepts any status change, so the client does not enforce one.
type InterestStatus string

const (
	StatusInterested InterestStatus = "INTERESTED"
	StatusApplied    InterestStatus = "APPLIED"
	StatusRejected   InterestStatus = "REJECTED"
	StatusAccepted   InterestStatus = "ACCEPTED"
)

// InterestStatuses lists every valid status in display order.
func InterestStatuses() []InterestStatus {
	return []InterestStatus{StatusInterested, StatusApplied, StatusRejected, StatusAccepted}
}

// ParseInterestStatus converts a raw string to an InterestStatus, returning
// an error for unknown values. Input is case-insensitive to be friendly to
// CLI users.
func ParseInterestStatus(s string) (InterestStatus, error) {
	st := InterestStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch st {
	case StatusInterested, StatusApplied, StatusRejected, StatusAccepted:
		return st, nil
	}
	return "", fmt.Errorf("unknown interest status %q", s)
}
