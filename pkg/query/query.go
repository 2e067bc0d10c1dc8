// Package query composes storage predicates for list endpoints as gorm
// scopes. Every scope built from an absent filter is a no-op, so applying
// zero filters matches every row. Scopes are conjunctive; Search is the only
// scope that ORs across columns.
package query

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const DayLayout = "2006-01-02"

var (
	ErrInvalidSortField = errors.New("invalid sort field")
	ErrInvalidSortOrder = errors.New("invalid sort order, use asc or desc")
	ErrInvalidDate      = errors.New("invalid date format, use YYYY-MM-DD")
)

type Scope = func(*gorm.DB) *gorm.DB

func noop(db *gorm.DB) *gorm.DB { return db }

// Equals matches column = *value when value is set.
func Equals[T any](column string, value *T) Scope {
	if value == nil {
		return noop
	}
	v := *value
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(clause.Eq{Column: clause.Column{Name: column}, Value: v})
	}
}

// DateOn matches the calendar day of *day in its own location, as the
// half-open range [start-of-day, start-of-next-day).
func DateOn(column string, day *time.Time) Scope {
	if day == nil {
		return noop
	}
	start, end := DayBounds(*day)
	return Between(column, start, end)
}

// Between matches from <= column < to.
func Between(column string, from, to time.Time) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(clause.Gte{Column: clause.Column{Name: column}, Value: from.UTC()}).
			Where(clause.Lt{Column: clause.Column{Name: column}, Value: to.UTC()})
	}
}

// DayBounds returns the start of t's day and the start of the following day.
func DayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// Search matches rows where term appears, case-insensitively, in any of
// columns. LIKE wildcards in term are matched literally.
func Search(term string, columns ...string) Scope {
	expr, args := Match(term, columns...)
	if expr == "" {
		return noop
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(expr, args...)
	}
}

// Match builds the parenthesized OR condition behind Search, for callers
// composing it into larger expressions. A blank term yields "".
func Match(term string, columns ...string) (string, []interface{}) {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return "", nil
	}

	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
	conditions := make([]string, len(columns))
	args := make([]interface{}, len(columns))
	for i, column := range columns {
		conditions[i] = "LOWER(" + column + `) LIKE ? ESCAPE '\'`
		args[i] = pattern
	}
	return "(" + strings.Join(conditions, " OR ") + ")", args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// ColumnLTE compares two columns of the same row (left <= right) when enabled.
func ColumnLTE(left, right string, enabled bool) Scope {
	if !enabled {
		return noop
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(left + " <= " + right)
	}
}

// Paginate applies the page window.
func Paginate(limit, offset int) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Limit(limit).Offset(offset)
	}
}

// ParseDay parses a YYYY-MM-DD value in loc. An empty value yields nil.
func ParseDay(raw string, loc *time.Location) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	day, err := time.ParseInLocation(DayLayout, raw, loc)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &day, nil
}
