package models

import "encoding/json"

// Source identifies where an assignment was crawled from. The public API
// serialises the id as a string while the admin API uses a number, so it is
// kept as json.Number and normalised on access.
type Source struct {
	ID   json.Number `json:"id"`
	Name string      `json:"name"`
}

// Assignment is a read-only cached copy of a server-owned job assignment.
// Timestamps and dates stay as the server's ISO strings; the client never
// does date arithmetic on them.
type Assignment struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	Description         string   `json:"description,omitempty"`
	CompanyName         string   `json:"companyName,omitempty"`
	Location            string   `json:"location,omitempty"`
	RemotePercentage    int      `json:"remotePercentage,omitempty"`
	DurationMonths      int      `json:"durationMonths,omitempty"`
	StartDate           string   `json:"startDate,omitempty"`
	HourlyRateMin       float64  `json:"hourlyRateMin,omitempty"`
	HourlyRateMax       float64  `json:"hourlyRateMax,omitempty"`
	Currency            string   `json:"currency,omitempty"`
	HoursPerWeek        int      `json:"hoursPerWeek,omitempty"`
	Skills              []string `json:"skills,omitempty"`
	ApplicationDeadline string   `json:"applicationDeadline,omitempty"`
	ApplicationURL      string   `json:"applicationUrl,omitempty"`
	Source              *Source  `json:"source,omitempty"`

	// Moderation fields, only populated by the admin endpoints.
	NeedsManualReview bool   `json:"needsManualReview,omitempty"`
	PIIDetected       string `json:"piiDetected,omitempty"`

	Active    bool   `json:"active"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// AssignmentPage is one normalised page of a paginated assignment listing.
type AssignmentPage struct {
	Content       []Assignment
	Number        int
	TotalPages    int
	TotalElements int
}

// PageCursor tracks the client's position in a paginated listing.
// Invariant: CurrentPage < TotalPages whenever TotalPages > 0.
type PageCursor struct {
	CurrentPage   int
	TotalPages    int
	TotalElements int
	PageSize      int
}

// HasMore reports whether further pages can be requested.
func (c PageCursor) HasMore() bool {
	return c.TotalPages > 0 && c.CurrentPage+1 < c.TotalPages
}
