package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"clinic-pharmacy-api/internal/domain/entity"
	"clinic-pharmacy-api/pkg/pagination"
	"clinic-pharmacy-api/pkg/query"
	"clinic-pharmacy-api/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// errInvalidFilter carries a client-facing message for a malformed filter.
type errInvalidFilter struct {
	msg string
}

func (e *errInvalidFilter) Error() string { return e.msg }

func invalidFilter(msg string) error { return &errInvalidFilter{msg: msg} }

// parseListQuery reads page, limit, search, sortBy and sortOrder. Sort
// fields outside the allow-list are rejected.
func parseListQuery(r *http.Request, fields query.SortFields, fallback query.Sort) (entity.ListQuery, error) {
	q := r.URL.Query()

	sort, err := fields.Resolve(q.Get("sortBy"), q.Get("sortOrder"), fallback)
	if err != nil {
		if errors.Is(err, query.ErrInvalidSortField) {
			return entity.ListQuery{}, invalidFilter("Invalid sortBy, allowed: " + strings.Join(fields.Names(), ", "))
		}
		return entity.ListQuery{}, invalidFilter("Invalid sortOrder, use asc or desc")
	}

	return entity.ListQuery{
		Search: strings.TrimSpace(q.Get("search")),
		Sort:   sort,
		Page:   pagination.Parse(q.Get("page"), q.Get("limit")),
	}, nil
}

func optionalString(q url.Values, key string) *string {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return nil
	}
	return &v
}

func optionalUUID(q url.Values, key string) (*uuid.UUID, error) {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, invalidFilter("Invalid " + key)
	}
	return &id, nil
}

func optionalDay(q url.Values, key string, loc *time.Location) (*time.Time, error) {
	day, err := query.ParseDay(q.Get(key), loc)
	if err != nil {
		return nil, invalidFilter("Invalid " + key + ", use YYYY-MM-DD")
	}
	return day, nil
}

func optionalBool(q url.Values, key string) (bool, error) {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, invalidFilter("Invalid " + key + ", use true or false")
	}
	return b, nil
}

// optionalEnum accepts only values for which valid reports true.
func optionalEnum[T ~string](q url.Values, key string, valid func(T) bool) (*T, error) {
	v := optionalString(q, key)
	if v == nil {
		return nil, nil
	}
	t := T(*v)
	if !valid(t) {
		return nil, invalidFilter("Invalid " + key)
	}
	return &t, nil
}

func writeFilterError(w http.ResponseWriter, err error) {
	var fe *errInvalidFilter
	if errors.As(err, &fe) {
		response.BadRequest(w, fe.msg)
		return
	}
	response.BadRequest(w, "Invalid query parameters")
}

// pathID parses the {id} route variable.
func pathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
