package usecase

import (
	"errors"
	"strings"
	"time"

	"clinic-pharmacy-api/pkg/query"
)

var (
	ErrInvalidDate     = errors.New("invalid date, use YYYY-MM-DD")
	ErrInvalidDateTime = errors.New("invalid appointment date or time")
)

const clockLayout = "15:04"

// parseCalendarDate parses an optional YYYY-MM-DD value stored as a date
// column. Blank values yield nil.
func parseCalendarDate(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := time.Parse(query.DayLayout, strings.TrimSpace(*raw))
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &t, nil
}

// appointmentInstant combines a calendar day and an HH:MM clock reading in
// loc into a UTC instant.
func appointmentInstant(day, clock string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(query.DayLayout+" "+clockLayout, day+" "+clock, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDateTime
	}
	return t.UTC(), nil
}
