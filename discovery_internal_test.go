package casb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransferHeaders(t *testing.T) {
	t.Run("azure at exactly 64 MiB stays a block blob", func(t *testing.T) {
		headers, stream := transferHeaders(providerAzure, blockBlobCutoff)
		assert.Equal(t, "BlockBlob", headers.Get("x-ms-blob-type"))
		assert.False(t, stream)
	})

	t.Run("azure one byte over streams chunked", func(t *testing.T) {
		headers, stream := transferHeaders(providerAzure, blockBlobCutoff+1)
		assert.Empty(t, headers.Get("x-ms-blob-type"))
		assert.True(t, stream)
	})

	t.Run("other providers never get the block blob header", func(t *testing.T) {
		headers, stream := transferHeaders("generic", blockBlobCutoff+1)
		assert.Empty(t, headers.Get("x-ms-blob-type"))
		assert.False(t, stream)
	})
}

func TestLogTypeSet(t *testing.T) {
	// The appliance format set is closed.
	assert.Len(t, logTypes, 16)
	for logType := range logTypes {
		assert.NotEmpty(t, string(logType))
	}
}
