package casb

import (
	"encoding/json"
	"net/url"
	"strconv"
)

const defaultPageSize = 100

// SortDirection orders list results.
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// ListOptions carries pagination and sorting for list queries.
//
// The portal never pages on the caller's behalf: each List call issues
// exactly one request, and the caller advances Skip to page further.
type ListOptions struct {
	// Skip is the number of records to skip.
	Skip int

	// Limit bounds the page size. Resource-specific caps apply; zero
	// selects the default page size.
	Limit int

	// SortBy is the list-visible sort label. It is remapped to the wire
	// field name per resource. SortBy and SortDirection must be
	// supplied together or not at all.
	SortBy string

	// SortDirection orders by SortBy ascending or descending.
	SortDirection SortDirection
}

// queryEnvelope is the assembled wire form of one list request.
type queryEnvelope struct {
	skip          int
	limit         int
	sortField     string
	sortDirection SortDirection
	filters       FilterSet
}

// assembleQuery validates pagination and sorting against the resource
// table and builds the envelope. Every violation is terminal and
// surfaces before any network call.
func assembleQuery(kind resourceKind, opts *ListOptions, filters FilterSet) (*queryEnvelope, error) {
	if opts == nil {
		opts = &ListOptions{}
	}
	res := kind.table()

	if opts.Skip < 0 {
		return nil, newValidationError("skip must not be negative, got %d", opts.Skip)
	}

	limit := opts.Limit
	if limit == 0 {
		limit = defaultPageSize
	}
	if limit < 1 || limit > res.maxLimit {
		return nil, newValidationError("%s limit must be between 1 and %d, got %d", res.name, res.maxLimit, limit)
	}

	if (opts.SortBy == "") != (opts.SortDirection == "") {
		return nil, newValidationError("SortBy and SortDirection must be supplied together")
	}

	env := &queryEnvelope{
		skip:    opts.Skip,
		limit:   limit,
		filters: filters,
	}

	if opts.SortBy != "" {
		if opts.SortDirection != SortAscending && opts.SortDirection != SortDescending {
			return nil, newValidationError("sort direction must be %q or %q, got %q", SortAscending, SortDescending, opts.SortDirection)
		}
		env.sortField = res.sortField(opts.SortBy)
		env.sortDirection = opts.SortDirection
	}

	return env, nil
}

// values encodes the envelope as request query parameters. An empty
// filter set omits the filters parameter entirely.
func (q *queryEnvelope) values() (url.Values, error) {
	v := url.Values{}
	v.Set("skip", strconv.Itoa(q.skip))
	v.Set("limit", strconv.Itoa(q.limit))
	if q.sortField != "" {
		v.Set("sortField", q.sortField)
		v.Set("sortDirection", string(q.sortDirection))
	}
	if !q.filters.Empty() {
		data, err := json.Marshal(q.filters)
		if err != nil {
			return nil, err
		}
		v.Set("filters", string(data))
	}
	return v, nil
}
