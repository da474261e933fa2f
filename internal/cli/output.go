package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/uppdragsradarn/radar-cli/internal/models"
)

// printAssignments renders a compact one-line-per-item listing.
func printAssignments(w io.Writer, list []models.Assignment) {
	if len(list) == 0 {
		fmt.Fprintln(w, "(no assignments)")
		return
	}
	for _, a := range list {
		line := fmt.Sprintf("%-36s  %s", a.ID, a.Title)
		if a.CompanyName != "" {
			line += "  @ " + a.CompanyName
		}
		if a.Location != "" {
			line += "  (" + a.Location + ")"
		}
		fmt.Fprintln(w, line)
	}
}

// printAssignment renders the detail view of one assignment.
func printAssignment(w io.Writer, a *models.Assignment) {
	fmt.Fprintf(w, "%s\n", a.Title)
	if a.CompanyName != "" {
		fmt.Fprintf(w, "Company:   %s\n", a.CompanyName)
	}
	if a.Location != "" {
		fmt.Fprintf(w, "Location:  %s\n", a.Location)
	}
	if a.RemotePercentage > 0 {
		fmt.Fprintf(w, "Remote:    %d%%\n", a.RemotePercentage)
	}
	if a.HourlyRateMin > 0 || a.HourlyRateMax > 0 {
		fmt.Fprintf(w, "Rate:      %s\n", formatRate(a))
	}
	if a.HoursPerWeek > 0 {
		fmt.Fprintf(w, "Hours/wk:  %d\n", a.HoursPerWeek)
	}
	if len(a.Skills) > 0 {
		fmt.Fprintf(w, "Skills:    %s\n", strings.Join(a.Skills, ", "))
	}
	if a.ApplicationDeadline != "" {
		fmt.Fprintf(w, "Deadline:  %s\n", a.ApplicationDeadline)
	}
	if a.ApplicationURL != "" {
		fmt.Fprintf(w, "Apply at:  %s\n", a.ApplicationURL)
	}
	if a.Description != "" {
		fmt.Fprintf(w, "\n%s\n", a.Description)
	}
}

// formatRate renders the compensation range, e.g. "800-950 SEK/h".
func formatRate(a *models.Assignment) string {
	currency := a.Currency
	if currency == "" {
		currency = "SEK"
	}
	switch {
	case a.HourlyRateMin > 0 && a.HourlyRateMax > 0 && a.HourlyRateMin != a.HourlyRateMax:
		return fmt.Sprintf("%.0f-%.0f %s/h", a.HourlyRateMin, a.HourlyRateMax, currency)
	case a.HourlyRateMax > 0:
		return fmt.Sprintf("%.0f %s/h", a.HourlyRateMax, currency)
	default:
		return fmt.Sprintf("%.0f %s/h", a.HourlyRateMin, currency)
	}
}

// printCursor shows where the user is in a paginated listing.
func printCursor(w io.Writer, c models.PageCursor) {
	if c.TotalPages == 0 {
		return
	}
	fmt.Fprintf(w, "page %d/%d (%d total)\n", c.CurrentPage+1, c.TotalPages, c.TotalElements)
}
