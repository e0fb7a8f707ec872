package casb

import (
	"context"
	"iter"
)

// AccountService provides read access to monitored accounts.
type AccountService interface {
	// Get retrieves a single account by ID.
	Get(ctx context.Context, id string, opts ...RequestOption) (*Account, error)

	// GetEach retrieves each account in ids independently, yielding the
	// result or error per identity. A failure on one identity does not
	// stop the remaining ones.
	GetEach(ctx context.Context, ids []string, opts ...RequestOption) iter.Seq2[*Account, error]

	// List returns one page of accounts matching the filter. The caller
	// pages further via ListOptions.Skip.
	List(ctx context.Context, filter *AccountFilter, page *ListOptions, opts ...RequestOption) (*Page[Account], error)
}

// AccountFilter defines list constraints for accounts. Slice fields
// match any of their values; the Not variants exclude instead, and both
// may be supplied at once.
type AccountFilter struct {
	// User matches account usernames; UserNot excludes them.
	User    []string
	UserNot []string

	// Domain matches directory domains; DomainNot excludes them.
	Domain    []string
	DomainNot []string

	// Organization matches organizational units.
	Organization    []string
	OrganizationNot []string

	// Affiliation selects internal or external accounts.
	Affiliation    []Affiliation
	AffiliationNot []Affiliation

	// Search free-text matches against account names.
	Search string
}

// filterSet translates the typed parameters into wire clauses, appended
// in declaration order.
func (f *AccountFilter) filterSet() (FilterSet, error) {
	var fs FilterSet

	addEq(&fs, "username", f.User)
	addNeq(&fs, "username", f.UserNot)
	addEq(&fs, "domain", f.Domain)
	addNeq(&fs, "domain", f.DomainNot)
	addEq(&fs, "organization", f.Organization)
	addNeq(&fs, "organization", f.OrganizationNot)

	if len(f.Affiliation) > 0 {
		ordinals, err := mapEnumLabels("affiliation", f.Affiliation, affiliationOrdinals)
		if err != nil {
			return FilterSet{}, err
		}
		fs.Add("affiliation", OpEquals, ordinals)
	}
	if len(f.AffiliationNot) > 0 {
		ordinals, err := mapEnumLabels("affiliation", f.AffiliationNot, affiliationOrdinals)
		if err != nil {
			return FilterSet{}, err
		}
		fs.Add("affiliation", OpNotEquals, ordinals)
	}

	if f.Search != "" {
		fs.Add("username", OpText, []string{f.Search})
	}

	return fs, nil
}

type accountService struct {
	client *Client
}

func (s *accountService) Get(ctx context.Context, id string, opts ...RequestOption) (*Account, error) {
	return fetchOne[Account](ctx, s.client, kindAccounts, id, opts)
}

func (s *accountService) GetEach(ctx context.Context, ids []string, opts ...RequestOption) iter.Seq2[*Account, error] {
	return fetchEach[Account](ctx, s.client, kindAccounts, ids, opts)
}

func (s *accountService) List(ctx context.Context, filter *AccountFilter, page *ListOptions, opts ...RequestOption) (*Page[Account], error) {
	var fs FilterSet
	if filter != nil {
		var err error
		fs, err = filter.filterSet()
		if err != nil {
			return nil, err
		}
	}
	return listPage[Account](ctx, s.client, kindAccounts, fs, page, opts)
}
