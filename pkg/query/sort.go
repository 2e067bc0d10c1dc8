package query

import (
	"slices"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sort is a resolved ordering on a storage column.
type Sort struct {
	Column string
	Desc   bool
}

// Scope orders by the column, falling back to id so pages stay stable.
func (s Sort) Scope() Scope {
	return func(db *gorm.DB) *gorm.DB {
		if s.Column != "" {
			db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: s.Column}, Desc: s.Desc})
		}
		return db.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})
	}
}

// SortFields is a per-entity allow-list mapping API field names to columns.
type SortFields map[string]string

// Resolve validates the requested field and order. An empty field keeps
// the fallback column; an empty order keeps the fallback direction.
func (f SortFields) Resolve(field, order string, fallback Sort) (Sort, error) {
	s := fallback

	field = strings.TrimSpace(field)
	if field != "" {
		column, ok := f[field]
		if !ok {
			return Sort{}, ErrInvalidSortField
		}
		s.Column = column
	}

	switch strings.ToLower(strings.TrimSpace(order)) {
	case "":
	case "asc":
		s.Desc = false
	case "desc":
		s.Desc = true
	default:
		return Sort{}, ErrInvalidSortOrder
	}

	return s, nil
}

// Names lists the accepted field names.
func (f SortFields) Names() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
