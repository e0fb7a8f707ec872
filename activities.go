package casb

import (
	"context"
	"iter"
)

// ActivityService provides read access to the activity audit log.
type ActivityService interface {
	// Get retrieves a single activity by ID.
	Get(ctx context.Context, id string, opts ...RequestOption) (*Activity, error)

	// GetEach retrieves each activity in ids independently, yielding
	// the result or error per identity.
	GetEach(ctx context.Context, ids []string, opts ...RequestOption) iter.Seq2[*Activity, error]

	// List returns one page of activities matching the filter.
	List(ctx context.Context, filter *ActivityFilter, page *ListOptions, opts ...RequestOption) (*Page[Activity], error)
}

// ActivityFilter defines list constraints for activities.
type ActivityFilter struct {
	// User matches acting usernames; UserNot excludes them.
	User    []string
	UserNot []string

	// Service matches the originating app; ServiceNot excludes it.
	Service    []string
	ServiceNot []string

	// IP matches source addresses; IPNot excludes them.
	IP    []string
	IPNot []string

	// IPCategory selects source address categories.
	IPCategory    []IPCategory
	IPCategoryNot []IPCategory

	// AdminEvents limits results to administrative events;
	// NonAdminEvents to everything else. The two are mutually
	// exclusive.
	AdminEvents    bool
	NonAdminEvents bool

	// Search free-text matches against the activity description.
	Search string
}

// filterSet translates the typed parameters into wire clauses, appended
// in declaration order.
func (f *ActivityFilter) filterSet() (FilterSet, error) {
	if f.AdminEvents && f.NonAdminEvents {
		return FilterSet{}, newValidationError("AdminEvents and NonAdminEvents are mutually exclusive")
	}

	var fs FilterSet

	addEq(&fs, "user.username", f.User)
	addNeq(&fs, "user.username", f.UserNot)
	addEq(&fs, "service", f.Service)
	addNeq(&fs, "service", f.ServiceNot)
	addEq(&fs, "ip.address", f.IP)
	addNeq(&fs, "ip.address", f.IPNot)

	if len(f.IPCategory) > 0 {
		ordinals, err := mapEnumLabels("IP category", f.IPCategory, ipCategoryOrdinals)
		if err != nil {
			return FilterSet{}, err
		}
		fs.Add("ip.category", OpEquals, ordinals)
	}
	if len(f.IPCategoryNot) > 0 {
		ordinals, err := mapEnumLabels("IP category", f.IPCategoryNot, ipCategoryOrdinals)
		if err != nil {
			return FilterSet{}, err
		}
		fs.Add("ip.category", OpNotEquals, ordinals)
	}

	if f.AdminEvents {
		fs.Add("activity.type", OpEquals, true)
	}
	if f.NonAdminEvents {
		fs.Add("activity.type", OpEquals, false)
	}

	if f.Search != "" {
		fs.Add("text", OpText, []string{f.Search})
	}

	return fs, nil
}

type activityService struct {
	client *Client
}

func (s *activityService) Get(ctx context.Context, id string, opts ...RequestOption) (*Activity, error) {
	return fetchOne[Activity](ctx, s.client, kindActivities, id, opts)
}

func (s *activityService) GetEach(ctx context.Context, ids []string, opts ...RequestOption) iter.Seq2[*Activity, error] {
	return fetchEach[Activity](ctx, s.client, kindActivities, ids, opts)
}

func (s *activityService) List(ctx context.Context, filter *ActivityFilter, page *ListOptions, opts ...RequestOption) (*Page[Activity], error) {
	var fs FilterSet
	if filter != nil {
		var err error
		fs, err = filter.filterSet()
		if err != nil {
			return nil, err
		}
	}
	return listPage[Activity](ctx, s.client, kindActivities, fs, page, opts)
}
