package converter

import (
	"time"

	"clinic-pharmacy-api/pkg/query"
)

// formatDate renders a calendar date column as YYYY-MM-DD.
func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(query.DayLayout)
	return &s
}
