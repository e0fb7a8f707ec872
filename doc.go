// Package casb provides a native Go client for a cloud app security
// tenant's REST API: querying accounts, activities, alerts and files,
// and uploading discovery logs for SaaS usage analysis.
//
// # Features
//
//   - Service-based architecture for expandability
//   - Typed filters with wire-format translation handled for you
//   - Typed errors for precise error handling
//   - Functional options for flexible configuration
//   - Pluggable credential providers (static, environment)
//
// # Quick Start
//
//	client, err := casb.NewClient(
//	    casb.WithTenant("contoso.us.portal.cloudappsecurity.com", token),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// List high-severity unresolved alerts
//	filter := &casb.AlertFilter{
//	    Severity:   []casb.Severity{casb.SeverityHigh},
//	    Resolution: []casb.ResolutionStatus{casb.ResolutionOpen},
//	}
//	page, err := client.Alerts.List(ctx, filter, &casb.ListOptions{Limit: 100})
//
// List calls issue exactly one request each; advance ListOptions.Skip
// to page through larger result sets.
//
// # Error Handling
//
// The package uses typed errors that can be inspected with errors.As:
//
//	alert, err := client.Alerts.Get(ctx, id)
//	if err != nil {
//	    var notFound *casb.NotFoundError
//	    if errors.As(err, &notFound) {
//	        // Handle not found
//	    }
//	}
//
// # Batch Fetches
//
// GetEach processes identities independently; one failure does not stop
// the rest:
//
//	accounts, errs := casb.Partition(client.Accounts.GetEach(ctx, ids))
//
// # Discovery Uploads
//
// Upload runs the three-step handshake (obtain URL, PUT bytes,
// finalize) as one operation:
//
//	result, err := client.Discovery.Upload(ctx, &casb.UploadRequest{
//	    FilePath:   "/var/log/squid/access.log",
//	    LogType:    casb.LogTypeSquid,
//	    DataSource: "branch-proxy",
//	})
package casb
