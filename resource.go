package casb

import (
	"context"
	"iter"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/tphakala/go-casb/internal/api"
)

// resourceKind selects one portal resource collection.
type resourceKind int

const (
	kindAccounts resourceKind = iota
	kindActivities
	kindAlerts
	kindFiles
)

// resourceTable holds one resource's quirks: endpoint path, identity
// pattern, pagination cap and sort label remaps. Resource-specific
// behavior lives in these tables, not in branching logic.
type resourceTable struct {
	name      string
	path      string // collection path, with trailing slash
	idPattern *regexp.Regexp
	maxLimit  int
	sortRemap map[string]string
}

var (
	hexID24 = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)
	anyID20 = regexp.MustCompile(`^.{20}$`)
)

var resourceTables = [...]resourceTable{
	kindAccounts: {
		name:      "account",
		path:      "/api/v1/accounts/",
		idPattern: hexID24,
		maxLimit:  5000,
	},
	kindActivities: {
		name:      "activity",
		path:      "/api/v1/activities/",
		idPattern: anyID20,
		maxLimit:  10000,
		sortRemap: map[string]string{
			"Date":    "date",
			"Created": "created",
		},
	},
	kindAlerts: {
		name:      "alert",
		path:      "/api/v1/alerts/",
		idPattern: hexID24,
		maxLimit:  10000,
		sortRemap: map[string]string{
			"ResolutionStatus": "status",
			"Date":             "date",
			"Severity":         "severity",
		},
	},
	kindFiles: {
		name:      "file",
		path:      "/api/v1/files/",
		idPattern: hexID24,
		maxLimit:  5000,
		sortRemap: map[string]string{
			"LastSeen": "lastSeen",
			"Created":  "created",
			"Modified": "modified",
		},
	},
}

func (k resourceKind) table() *resourceTable {
	return &resourceTables[k]
}

// sortField remaps a list-visible sort label to its wire field name,
// defaulting to the lowercased label.
func (r *resourceTable) sortField(label string) string {
	if field, ok := r.sortRemap[label]; ok {
		return field
	}
	return strings.ToLower(label)
}

// validateID checks an identity against the resource pattern.
func (r *resourceTable) validateID(id string) error {
	if !r.idPattern.MatchString(id) {
		return newValidationError("%q is not a valid %s ID", id, r.name)
	}
	return nil
}

// Page is one page of list results. The portal returns the records in
// the data field; the caller pages further via ListOptions.Skip.
type Page[T any] struct {
	Data    []*T `json:"data"`
	Total   int  `json:"total"`
	HasNext bool `json:"hasNext"`
}

// fetchOne retrieves a single record by identity.
func fetchOne[T any](ctx context.Context, c *Client, kind resourceKind, id string, opts []RequestOption) (*T, error) {
	res := kind.table()
	if err := res.validateID(id); err != nil {
		return nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	creds, err := c.resolveCredentials(ctx, reqCfg)
	if err != nil {
		return nil, err
	}

	var result T
	resp, err := c.transport.DoJSON(ctx, &api.Request{
		Method:  http.MethodGet,
		Path:    res.path + url.PathEscape(id) + "/",
		Headers: reqCfg.headers,
		Creds:   creds,
	}, &result)

	if err != nil {
		return nil, classifyTransport(creds.TenantHost, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, &NotFoundError{
			APIError:     APIError{StatusCode: http.StatusNotFound, Message: res.name + " not found"},
			ResourceType: res.name,
			ResourceID:   id,
		}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, classifyStatus(resp.StatusCode, resp.Body, resp.Headers)
	}

	return &result, nil
}

// fetchEach yields one result per identity, in input order. Identities
// are independent: a failure on one is yielded alongside its nil record
// and iteration continues with the next.
func fetchEach[T any](ctx context.Context, c *Client, kind resourceKind, ids []string, opts []RequestOption) iter.Seq2[*T, error] {
	return func(yield func(*T, error) bool) {
		for _, id := range ids {
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}
			record, err := fetchOne[T](ctx, c, kind, id, opts)
			if !yield(record, err) {
				return
			}
		}
	}
}

// listPage executes exactly one list request with the assembled
// envelope as query parameters.
func listPage[T any](ctx context.Context, c *Client, kind resourceKind, filters FilterSet, lo *ListOptions, opts []RequestOption) (*Page[T], error) {
	env, err := assembleQuery(kind, lo, filters)
	if err != nil {
		return nil, err
	}
	query, err := env.values()
	if err != nil {
		return nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	creds, err := c.resolveCredentials(ctx, reqCfg)
	if err != nil {
		return nil, err
	}

	var result Page[T]
	resp, err := c.transport.DoJSON(ctx, &api.Request{
		Method:  http.MethodGet,
		Path:    kind.table().path,
		Query:   query,
		Headers: reqCfg.headers,
		Creds:   creds,
	}, &result)

	if err != nil {
		return nil, classifyTransport(creds.TenantHost, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, classifyStatus(resp.StatusCode, resp.Body, resp.Headers)
	}

	return &result, nil
}
