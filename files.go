package casb

import (
	"context"
	"iter"
)

// FileService provides read access to monitored files.
type FileService interface {
	// Get retrieves a single file record by ID.
	Get(ctx context.Context, id string, opts ...RequestOption) (*File, error)

	// GetEach retrieves each file in ids independently, yielding the
	// result or error per identity.
	GetEach(ctx context.Context, ids []string, opts ...RequestOption) iter.Seq2[*File, error]

	// List returns one page of files matching the filter.
	List(ctx context.Context, filter *FileFilter, page *ListOptions, opts ...RequestOption) (*Page[File], error)
}

// FileFilter defines list constraints for files.
type FileFilter struct {
	// Extension matches file extensions; ExtensionNot excludes them.
	Extension    []string
	ExtensionNot []string

	// Owner matches owner usernames; OwnerNot excludes them.
	Owner    []string
	OwnerNot []string

	// Service matches the hosting app; ServiceNot excludes it.
	Service    []string
	ServiceNot []string

	// FileType selects file type classes.
	FileType    []FileType
	FileTypeNot []FileType

	// Sharing selects sharing levels.
	Sharing    []Sharing
	SharingNot []Sharing

	// Folders limits results to folders; ExcludeFolders drops them.
	// The two are mutually exclusive, as are the trashed and
	// quarantined pairs below.
	Folders        bool
	ExcludeFolders bool

	Trashed        bool
	ExcludeTrashed bool

	Quarantined        bool
	ExcludeQuarantined bool

	// Search free-text matches against file names.
	Search string
}

// filterSet translates the typed parameters into wire clauses, appended
// in declaration order.
func (f *FileFilter) filterSet() (FilterSet, error) {
	switch {
	case f.Folders && f.ExcludeFolders:
		return FilterSet{}, newValidationError("Folders and ExcludeFolders are mutually exclusive")
	case f.Trashed && f.ExcludeTrashed:
		return FilterSet{}, newValidationError("Trashed and ExcludeTrashed are mutually exclusive")
	case f.Quarantined && f.ExcludeQuarantined:
		return FilterSet{}, newValidationError("Quarantined and ExcludeQuarantined are mutually exclusive")
	}

	var fs FilterSet

	addEq(&fs, "extension", f.Extension)
	addNeq(&fs, "extension", f.ExtensionNot)
	addEq(&fs, "owner.username", f.Owner)
	addNeq(&fs, "owner.username", f.OwnerNot)
	addEq(&fs, "service", f.Service)
	addNeq(&fs, "service", f.ServiceNot)

	if len(f.FileType) > 0 {
		ordinals, err := mapEnumLabels("file type", f.FileType, fileTypeOrdinals)
		if err != nil {
			return FilterSet{}, err
		}
		fs.Add("fileType", OpEquals, ordinals)
	}
	if len(f.FileTypeNot) > 0 {
		ordinals, err := mapEnumLabels("file type", f.FileTypeNot, fileTypeOrdinals)
		if err != nil {
			return FilterSet{}, err
		}
		fs.Add("fileType", OpNotEquals, ordinals)
	}

	if len(f.Sharing) > 0 {
		ordinals, err := mapEnumLabels("sharing level", f.Sharing, sharingOrdinals)
		if err != nil {
			return FilterSet{}, err
		}
		fs.Add("sharing", OpEquals, ordinals)
	}
	if len(f.SharingNot) > 0 {
		ordinals, err := mapEnumLabels("sharing level", f.SharingNot, sharingOrdinals)
		if err != nil {
			return FilterSet{}, err
		}
		fs.Add("sharing", OpNotEquals, ordinals)
	}

	if f.Folders {
		fs.Add("folder", OpEquals, true)
	}
	if f.ExcludeFolders {
		fs.Add("folder", OpEquals, false)
	}
	if f.Trashed {
		fs.Add("trashed", OpEquals, true)
	}
	if f.ExcludeTrashed {
		fs.Add("trashed", OpEquals, false)
	}
	if f.Quarantined {
		fs.Add("quarantined", OpEquals, true)
	}
	if f.ExcludeQuarantined {
		fs.Add("quarantined", OpEquals, false)
	}

	if f.Search != "" {
		fs.Add("filename", OpText, []string{f.Search})
	}

	return fs, nil
}

type fileService struct {
	client *Client
}

func (s *fileService) Get(ctx context.Context, id string, opts ...RequestOption) (*File, error) {
	return fetchOne[File](ctx, s.client, kindFiles, id, opts)
}

func (s *fileService) GetEach(ctx context.Context, ids []string, opts ...RequestOption) iter.Seq2[*File, error] {
	return fetchEach[File](ctx, s.client, kindFiles, ids, opts)
}

func (s *fileService) List(ctx context.Context, filter *FileFilter, page *ListOptions, opts ...RequestOption) (*Page[File], error) {
	var fs FilterSet
	if filter != nil {
		var err error
		fs, err = filter.filterSet()
		if err != nil {
			return nil, err
		}
	}
	return listPage[File](ctx, s.client, kindFiles, fs, page, opts)
}
