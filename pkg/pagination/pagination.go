package pagination

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// maxPage keeps Skip well inside int range.
	maxPage = math.MaxInt32
)

// Params holds a normalized page window.
type Params struct {
	Page  int
	Limit int
}

// Meta is the pagination block of a list response.
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// New clamps page to [1, maxPage] and limit to [1, MaxLimit].
func New(page, limit int) Params {
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{Page: page, Limit: limit}
}

// Parse reads raw query values. Absent or non-numeric values fall back to
// the defaults; numeric values are clamped by New.
func Parse(pageRaw, limitRaw string) Params {
	page, err := strconv.Atoi(strings.TrimSpace(pageRaw))
	if err != nil {
		page = DefaultPage
	}
	limit, err := strconv.Atoi(strings.TrimSpace(limitRaw))
	if err != nil {
		limit = DefaultLimit
	}
	return New(page, limit)
}

// Skip returns the number of matching rows before the page window.
func (p Params) Skip() int {
	return (p.Page - 1) * p.Limit
}

// Meta builds the response metadata for a result count.
func (p Params) Meta(total int64) *Meta {
	return &Meta{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: TotalPages(total, p.Limit),
	}
}

// TotalPages is ceil(total/limit), and 0 when there is nothing to page.
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
