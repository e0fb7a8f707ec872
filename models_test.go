package casb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The ordinal maps must be total over their declared label sets.
func TestEnumOrdinalMaps(t *testing.T) {
	t.Run("affiliation", func(t *testing.T) {
		for _, label := range []Affiliation{AffiliationInternal, AffiliationExternal} {
			_, ok := affiliationOrdinals[label]
			assert.True(t, ok, "missing ordinal for %q", label)
		}
	})

	t.Run("severity", func(t *testing.T) {
		for _, label := range []Severity{SeverityLow, SeverityMedium, SeverityHigh} {
			_, ok := severityOrdinals[label]
			assert.True(t, ok, "missing ordinal for %q", label)
		}
		assert.Equal(t, 2, severityOrdinals[SeverityHigh])
	})

	t.Run("resolution status", func(t *testing.T) {
		for _, label := range []ResolutionStatus{ResolutionOpen, ResolutionDismissed, ResolutionResolved} {
			_, ok := resolutionOrdinals[label]
			assert.True(t, ok, "missing ordinal for %q", label)
		}
	})

	t.Run("ip category", func(t *testing.T) {
		labels := []IPCategory{
			IPCategoryCorporate, IPCategoryAdministrative, IPCategoryRisky,
			IPCategoryVPN, IPCategoryCloudProvider, IPCategoryOther,
		}
		for _, label := range labels {
			_, ok := ipCategoryOrdinals[label]
			assert.True(t, ok, "missing ordinal for %q", label)
		}
	})

	t.Run("file type", func(t *testing.T) {
		labels := []FileType{
			FileTypeOther, FileTypeDocument, FileTypeSpreadsheet,
			FileTypePresentation, FileTypeText, FileTypeImage, FileTypeFolder,
		}
		for _, label := range labels {
			_, ok := fileTypeOrdinals[label]
			assert.True(t, ok, "missing ordinal for %q", label)
		}
	})

	t.Run("sharing", func(t *testing.T) {
		labels := []Sharing{
			SharingPrivate, SharingInternal, SharingExternal,
			SharingPublic, SharingPublicInternet,
		}
		for _, label := range labels {
			_, ok := sharingOrdinals[label]
			assert.True(t, ok, "missing ordinal for %q", label)
		}
	})
}

func TestMapEnumLabels(t *testing.T) {
	t.Run("maps in input order", func(t *testing.T) {
		ordinals, err := mapEnumLabels("severity", []Severity{SeverityHigh, SeverityLow}, severityOrdinals)
		assert.NoError(t, err)
		assert.Equal(t, []int{2, 0}, ordinals)
	})

	t.Run("rejects labels outside the closed set", func(t *testing.T) {
		_, err := mapEnumLabels("severity", []Severity{"Apocalyptic"}, severityOrdinals)
		var valErr *ValidationError
		assert.ErrorAs(t, err, &valErr)
		assert.Contains(t, valErr.Message, "Apocalyptic")
	})
}
