package casb

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/tphakala/go-casb/internal/api"
	"github.com/tphakala/go-casb/internal/auth"
)

// blockBlobCutoff is the largest payload azure accepts as a single
// block blob PUT; anything larger streams with chunked encoding.
const blockBlobCutoff int64 = 64 << 20

const providerAzure = "azure"

// LogType identifies the appliance format of a discovery log.
type LogType string

const (
	LogTypeBarracuda     LogType = "BARRACUDA"
	LogTypeBluecoat      LogType = "BLUECOAT"
	LogTypeCheckpoint    LogType = "CHECKPOINT"
	LogTypeCiscoASA      LogType = "CISCO_ASA"
	LogTypeCiscoFWSM     LogType = "CISCO_FWSM"
	LogTypeCiscoIronport LogType = "CISCO_IRONPORT_PROXY"
	LogTypeFortigate     LogType = "FORTIGATE"
	LogTypeJuniperSRX    LogType = "JUNIPER_SRX"
	LogTypeMcAfeeSWG     LogType = "MCAFEE_SWG"
	LogTypePaloAlto      LogType = "PALO_ALTO"
	LogTypeSonicwall     LogType = "SONICWALL_SYSLOG"
	LogTypeSophosSG      LogType = "SOPHOS_SG"
	LogTypeSquid         LogType = "SQUID"
	LogTypeWebsenseCEF   LogType = "WEBSENSE_SIEM_CEF"
	LogTypeWebsenseV75   LogType = "WEBSENSE_V7_5"
	LogTypeZscaler       LogType = "ZSCALER"
)

var logTypes = map[LogType]struct{}{
	LogTypeBarracuda:     {},
	LogTypeBluecoat:      {},
	LogTypeCheckpoint:    {},
	LogTypeCiscoASA:      {},
	LogTypeCiscoFWSM:     {},
	LogTypeCiscoIronport: {},
	LogTypeFortigate:     {},
	LogTypeJuniperSRX:    {},
	LogTypeMcAfeeSWG:     {},
	LogTypePaloAlto:      {},
	LogTypeSonicwall:     {},
	LogTypeSophosSG:      {},
	LogTypeSquid:         {},
	LogTypeWebsenseCEF:   {},
	LogTypeWebsenseV75:   {},
	LogTypeZscaler:       {},
}

// UploadRequest describes one discovery log upload.
type UploadRequest struct {
	// FilePath is the local log file to upload.
	FilePath string

	// LogType is the appliance format of the log.
	LogType LogType

	// DataSource is the named ingestion stream to associate the log with.
	DataSource string

	// DeleteAfter removes the local file once the upload is finalized.
	DeleteAfter bool
}

// UploadResult reports a finalized upload.
type UploadResult struct {
	UploadURL  string
	Provider   string
	Size       int64
	DataSource string

	// DeleteErr carries a local file deletion failure. Deletion runs
	// after the remote upload is finalized, so it never unwinds it.
	DeleteErr error
}

// uploadSession is the portal's upload_url response. It lives only
// across the three steps of one upload.
type uploadSession struct {
	URL      string `json:"url"`
	Provider string `json:"provider"`
}

// DiscoveryService uploads discovery logs for SaaS usage analysis.
type DiscoveryService interface {
	// Upload runs the full upload handshake for one file: obtain an
	// upload URL, PUT the file bytes, then finalize against the named
	// data source. Any failure before finalization is terminal; a new
	// call restarts from a fresh upload URL.
	Upload(ctx context.Context, req *UploadRequest, opts ...RequestOption) (*UploadResult, error)
}

type discoveryService struct {
	client *Client
}

func (s *discoveryService) Upload(ctx context.Context, req *UploadRequest, opts ...RequestOption) (*UploadResult, error) {
	if err := validateUploadRequest(req); err != nil {
		return nil, err
	}

	info, err := os.Stat(req.FilePath)
	if err != nil {
		return nil, newValidationError("cannot stat %q: %v", req.FilePath, err)
	}
	size := info.Size()

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	creds, err := s.client.resolveCredentials(ctx, reqCfg)
	if err != nil {
		return nil, err
	}

	session, err := s.obtainUploadURL(ctx, req, creds, reqCfg)
	if err != nil {
		return nil, err
	}

	if err := s.putFile(ctx, session, req.FilePath, size); err != nil {
		return nil, err
	}

	if err := s.finalize(ctx, session, req.DataSource, creds, reqCfg); err != nil {
		return nil, err
	}

	result := &UploadResult{
		UploadURL:  session.URL,
		Provider:   session.Provider,
		Size:       size,
		DataSource: req.DataSource,
	}

	if req.DeleteAfter {
		result.DeleteErr = os.Remove(req.FilePath)
	}

	return result, nil
}

func validateUploadRequest(req *UploadRequest) error {
	if req == nil {
		return newValidationError("upload request cannot be nil")
	}
	if req.FilePath == "" {
		return newValidationError("upload file path is required")
	}
	if req.DataSource == "" {
		return newValidationError("discovery data source is required")
	}
	if _, ok := logTypes[req.LogType]; !ok {
		return newValidationError("unknown log type %q", req.LogType)
	}
	return nil
}

// obtainUploadURL requests an upload target for the file.
func (s *discoveryService) obtainUploadURL(ctx context.Context, req *UploadRequest, creds *auth.Credentials, reqCfg *requestConfig) (*uploadSession, error) {
	query := url.Values{}
	query.Set("filename", filepath.Base(req.FilePath))
	query.Set("source", string(req.LogType))

	var session uploadSession
	resp, err := s.client.transport.DoJSON(ctx, &api.Request{
		Method:  http.MethodGet,
		Path:    "/api/v1/discovery/upload_url/",
		Query:   query,
		Headers: reqCfg.headers,
		Creds:   creds,
	}, &session)

	if err != nil {
		return nil, classifyTransport(creds.TenantHost, err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, classifyStatus(resp.StatusCode, resp.Body, resp.Headers)
	}
	if session.URL == "" {
		return nil, &UnknownBackendError{APIError: APIError{Message: "upload_url response carried no URL"}}
	}

	return &session, nil
}

// putFile sends the raw file bytes to the storage provider target.
func (s *discoveryService) putFile(ctx context.Context, session *uploadSession, path string, size int64) error {
	headers, stream := transferHeaders(session.Provider, size)

	var body any
	if stream {
		f, err := os.Open(path)
		if err != nil {
			return newValidationError("cannot open %q: %v", path, err)
		}
		defer func() { _ = f.Close() }()
		body = f
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return newValidationError("cannot read %q: %v", path, err)
		}
		body = data
	}

	resp, err := s.client.transport.Put(ctx, session.URL, headers, body)
	if err != nil {
		return classifyTransport(session.URL, err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return classifyStatus(resp.StatusCode, resp.Body, resp.Headers)
	}

	return nil
}

// finalize associates the uploaded blob with the named ingestion
// stream. A 400 here means the data-source name is unknown.
func (s *discoveryService) finalize(ctx context.Context, session *uploadSession, dataSource string, creds *auth.Credentials, reqCfg *requestConfig) error {
	body := map[string]string{
		"uploadUrl":       session.URL,
		"inputStreamName": dataSource,
	}

	resp, err := s.client.transport.Do(ctx, &api.Request{
		Method:  http.MethodPost,
		Path:    "/api/v1/discovery/done_upload/",
		Body:    body,
		Headers: reqCfg.headers,
		Creds:   creds,
	})

	if err != nil {
		return classifyTransport(creds.TenantHost, err)
	}

	if resp.StatusCode == http.StatusBadRequest {
		err := classifyStatus(resp.StatusCode, resp.Body, resp.Headers)
		if badReq, ok := err.(*BadRequestError); ok {
			badReq.DataSource = dataSource
		}
		return err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return classifyStatus(resp.StatusCode, resp.Body, resp.Headers)
	}

	return nil
}

// transferHeaders selects upload headers for the storage provider that
// issued the upload URL, and reports whether the payload must stream
// with chunked transfer encoding instead of a sized body.
func transferHeaders(provider string, size int64) (http.Header, bool) {
	headers := make(http.Header)
	if provider != providerAzure {
		return headers, false
	}
	if size <= blockBlobCutoff {
		headers.Set("x-ms-blob-type", "BlockBlob")
		return headers, false
	}
	return headers, true
}
