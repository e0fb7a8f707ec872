package casb

import (
	"context"
	"iter"
	"net/http"
	"net/url"

	"github.com/tphakala/go-casb/internal/api"
)

// AlertService provides access to security alerts.
type AlertService interface {
	// Get retrieves a single alert by ID.
	Get(ctx context.Context, id string, opts ...RequestOption) (*Alert, error)

	// GetEach retrieves each alert in ids independently, yielding the
	// result or error per identity.
	GetEach(ctx context.Context, ids []string, opts ...RequestOption) iter.Seq2[*Alert, error]

	// List returns one page of alerts matching the filter.
	List(ctx context.Context, filter *AlertFilter, page *ListOptions, opts ...RequestOption) (*Page[Alert], error)

	// MarkRead marks an alert as read.
	MarkRead(ctx context.Context, id string, opts ...RequestOption) error

	// MarkUnread marks an alert as unread.
	MarkUnread(ctx context.Context, id string, opts ...RequestOption) error

	// Dismiss dismisses an alert.
	Dismiss(ctx context.Context, id string, opts ...RequestOption) error
}

// AlertFilter defines list constraints for alerts.
type AlertFilter struct {
	// Service matches the app the alert concerns; ServiceNot excludes it.
	Service    []string
	ServiceNot []string

	// Severity selects alert severities.
	Severity    []Severity
	SeverityNot []Severity

	// Resolution selects alert resolution states.
	Resolution    []ResolutionStatus
	ResolutionNot []ResolutionStatus

	// Read limits results to read alerts; Unread to unread ones. The
	// two are mutually exclusive.
	Read   bool
	Unread bool

	// Search free-text matches against the alert title.
	Search string
}

// filterSet translates the typed parameters into wire clauses, appended
// in declaration order.
func (f *AlertFilter) filterSet() (FilterSet, error) {
	if f.Read && f.Unread {
		return FilterSet{}, newValidationError("Read and Unread are mutually exclusive")
	}

	var fs FilterSet

	addEq(&fs, "entity.service", f.Service)
	addNeq(&fs, "entity.service", f.ServiceNot)

	if len(f.Severity) > 0 {
		ordinals, err := mapEnumLabels("severity", f.Severity, severityOrdinals)
		if err != nil {
			return FilterSet{}, err
		}
		fs.Add("severity", OpEquals, ordinals)
	}
	if len(f.SeverityNot) > 0 {
		ordinals, err := mapEnumLabels("severity", f.SeverityNot, severityOrdinals)
		if err != nil {
			return FilterSet{}, err
		}
		fs.Add("severity", OpNotEquals, ordinals)
	}

	if len(f.Resolution) > 0 {
		ordinals, err := mapEnumLabels("resolution status", f.Resolution, resolutionOrdinals)
		if err != nil {
			return FilterSet{}, err
		}
		fs.Add("resolutionStatus", OpEquals, ordinals)
	}
	if len(f.ResolutionNot) > 0 {
		ordinals, err := mapEnumLabels("resolution status", f.ResolutionNot, resolutionOrdinals)
		if err != nil {
			return FilterSet{}, err
		}
		fs.Add("resolutionStatus", OpNotEquals, ordinals)
	}

	if f.Read {
		fs.Add("read", OpEquals, true)
	}
	if f.Unread {
		fs.Add("read", OpEquals, false)
	}

	if f.Search != "" {
		fs.Add("title", OpText, []string{f.Search})
	}

	return fs, nil
}

type alertService struct {
	client *Client
}

func (s *alertService) Get(ctx context.Context, id string, opts ...RequestOption) (*Alert, error) {
	return fetchOne[Alert](ctx, s.client, kindAlerts, id, opts)
}

func (s *alertService) GetEach(ctx context.Context, ids []string, opts ...RequestOption) iter.Seq2[*Alert, error] {
	return fetchEach[Alert](ctx, s.client, kindAlerts, ids, opts)
}

func (s *alertService) List(ctx context.Context, filter *AlertFilter, page *ListOptions, opts ...RequestOption) (*Page[Alert], error) {
	var fs FilterSet
	if filter != nil {
		var err error
		fs, err = filter.filterSet()
		if err != nil {
			return nil, err
		}
	}
	return listPage[Alert](ctx, s.client, kindAlerts, fs, page, opts)
}

func (s *alertService) MarkRead(ctx context.Context, id string, opts ...RequestOption) error {
	return s.action(ctx, id, "read", opts)
}

func (s *alertService) MarkUnread(ctx context.Context, id string, opts ...RequestOption) error {
	return s.action(ctx, id, "unread", opts)
}

func (s *alertService) Dismiss(ctx context.Context, id string, opts ...RequestOption) error {
	return s.action(ctx, id, "dismiss", opts)
}

// action posts one of the alert state verbs.
func (s *alertService) action(ctx context.Context, id, verb string, opts []RequestOption) error {
	res := kindAlerts.table()
	if err := res.validateID(id); err != nil {
		return err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	creds, err := s.client.resolveCredentials(ctx, reqCfg)
	if err != nil {
		return err
	}

	resp, err := s.client.transport.Do(ctx, &api.Request{
		Method:  http.MethodPost,
		Path:    res.path + url.PathEscape(id) + "/" + verb + "/",
		Headers: reqCfg.headers,
		Creds:   creds,
	})

	if err != nil {
		return classifyTransport(creds.TenantHost, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return &NotFoundError{
			APIError:     APIError{StatusCode: http.StatusNotFound, Message: "alert not found"},
			ResourceType: res.name,
			ResourceID:   id,
		}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return classifyStatus(resp.StatusCode, resp.Body, resp.Headers)
	}

	return nil
}
