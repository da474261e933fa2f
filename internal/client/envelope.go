package client

import "github.com/uppdragsradarn/radar-cli/internal/models"

// pageEnvelope mirrors the server's paginated list response. The public API
// spells the page index "currentPage" while the admin API uses Spring's
// "number"; both are accepted here so the rest of the client only ever sees
// the normalised models.AssignmentPage.
type pageEnvelope struct {
	Content       []models.Assignment `json:"content"`
	Number        *int                `json:"number"`
	CurrentPage   *int                `json:"currentPage"`
	TotalPages    int                 `json:"totalPages"`
	TotalElements int                 `json:"totalElements"`
}

func (e *pageEnvelope) toPage() *models.AssignmentPage {
	page := &models.AssignmentPage{
		Content:       e.Content,
		TotalPages:    e.TotalPages,
		TotalElements: e.TotalElements,
	}
	if page.Content == nil {
		page.Content = []models.Assignment{}
	}
	switch {
	case e.Number != nil:
		page.Number = *e.Number
	case e.CurrentPage != nil:
		page.Number = *e.CurrentPage
	}
	return page
}
