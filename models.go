package casb

import "time"

// Affiliation classifies an account relative to the organization.
type Affiliation string

const (
	AffiliationInternal Affiliation = "Internal"
	AffiliationExternal Affiliation = "External"
)

var affiliationOrdinals = map[Affiliation]int{
	AffiliationInternal: 0,
	AffiliationExternal: 1,
}

// Severity is an alert severity label.
type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

var severityOrdinals = map[Severity]int{
	SeverityLow:    0,
	SeverityMedium: 1,
	SeverityHigh:   2,
}

// ResolutionStatus is an alert resolution state label.
type ResolutionStatus string

const (
	ResolutionOpen      ResolutionStatus = "Open"
	ResolutionDismissed ResolutionStatus = "Dismissed"
	ResolutionResolved  ResolutionStatus = "Resolved"
)

var resolutionOrdinals = map[ResolutionStatus]int{
	ResolutionOpen:      0,
	ResolutionDismissed: 1,
	ResolutionResolved:  2,
}

// IPCategory classifies the source address of an activity.
type IPCategory string

const (
	IPCategoryCorporate      IPCategory = "Corporate"
	IPCategoryAdministrative IPCategory = "Administrative"
	IPCategoryRisky          IPCategory = "Risky"
	IPCategoryVPN            IPCategory = "VPN"
	IPCategoryCloudProvider  IPCategory = "CloudProvider"
	IPCategoryOther          IPCategory = "Other"
)

var ipCategoryOrdinals = map[IPCategory]int{
	IPCategoryCorporate:      1,
	IPCategoryAdministrative: 2,
	IPCategoryRisky:          3,
	IPCategoryVPN:            4,
	IPCategoryCloudProvider:  5,
	IPCategoryOther:          6,
}

// FileType classifies a monitored file.
type FileType string

const (
	FileTypeOther        FileType = "Other"
	FileTypeDocument     FileType = "Document"
	FileTypeSpreadsheet  FileType = "Spreadsheet"
	FileTypePresentation FileType = "Presentation"
	FileTypeText         FileType = "Text"
	FileTypeImage        FileType = "Image"
	FileTypeFolder       FileType = "Folder"
)

var fileTypeOrdinals = map[FileType]int{
	FileTypeOther:        0,
	FileTypeDocument:     1,
	FileTypeSpreadsheet:  2,
	FileTypePresentation: 3,
	FileTypeText:         4,
	FileTypeImage:        5,
	FileTypeFolder:       6,
}

// Sharing is a file sharing level label.
type Sharing string

const (
	SharingPrivate        Sharing = "Private"
	SharingInternal       Sharing = "Internal"
	SharingExternal       Sharing = "External"
	SharingPublic         Sharing = "Public"
	SharingPublicInternet Sharing = "PublicInternet"
)

var sharingOrdinals = map[Sharing]int{
	SharingPrivate:        0,
	SharingInternal:       1,
	SharingExternal:       2,
	SharingPublic:         3,
	SharingPublicInternet: 4,
}

// Account represents one monitored user or service account. ID aliases
// the backend's primary key field.
type Account struct {
	ID           string `json:"_id"`
	DisplayName  string `json:"displayName,omitempty"`
	Username     string `json:"username,omitempty"`
	Email        string `json:"email,omitempty"`
	Domain       string `json:"domain,omitempty"`
	Organization string `json:"organization,omitempty"`
	IsAdmin      bool   `json:"isAdmin,omitempty"`
	IsExternal   bool   `json:"isExternal,omitempty"`

	// Raw captures any fields not explicitly modeled.
	Raw map[string]any `json:"-"`
}

// Activity represents one audited activity event.
type Activity struct {
	ID          string    `json:"_id"`
	EventType   string    `json:"eventTypeName,omitempty"`
	Description string    `json:"description,omitempty"`
	Service     string    `json:"serviceName,omitempty"`
	Username    string    `json:"userName,omitempty"`
	IPAddress   string    `json:"ipAddress,omitempty"`
	Date        time.Time `json:"date,omitzero"`

	Raw map[string]any `json:"-"`
}

// Alert represents one security alert.
type Alert struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	Severity    int       `json:"severity,omitempty"`
	Status      int       `json:"resolutionStatus,omitempty"`
	Service     string    `json:"serviceName,omitempty"`
	IsRead      bool      `json:"isRead,omitempty"`
	Date        time.Time `json:"date,omitzero"`

	Raw map[string]any `json:"-"`
}

// File represents one monitored file.
type File struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name,omitempty"`
	Extension string    `json:"fileExtension,omitempty"`
	Owner     string    `json:"ownerName,omitempty"`
	Service   string    `json:"serviceName,omitempty"`
	FileType  int       `json:"fileType,omitempty"`
	Sharing   int       `json:"sharing,omitempty"`
	IsFolder  bool      `json:"isFolder,omitempty"`
	Created   time.Time `json:"createdDate,omitzero"`
	Modified  time.Time `json:"modifiedDate,omitzero"`

	Raw map[string]any `json:"-"`
}
