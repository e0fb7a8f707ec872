package casb_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	casb "github.com/tphakala/go-casb"
)

const testActivityID = "20299894063311291111" // exactly 20 characters

func TestActivityService_Get(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/activities/"+testActivityID+"/", r.URL.Path)
			writeJSON(t, w, casb.Activity{ID: testActivityID, EventType: "Login"})
		})

		activity, err := client.Activities.Get(context.Background(), testActivityID)
		require.NoError(t, err)
		assert.Equal(t, "Login", activity.EventType)
	})

	t.Run("wrong ID length fails before any request", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request should reach the server")
		})

		_, err := client.Activities.Get(context.Background(), strings.Repeat("x", 19))
		var valErr *casb.ValidationError
		require.ErrorAs(t, err, &valErr)
	})
}

func TestActivityService_List(t *testing.T) {
	t.Run("admin and non-admin events are mutually exclusive", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request should reach the server")
		})

		_, err := client.Activities.List(context.Background(), &casb.ActivityFilter{
			AdminEvents:    true,
			NonAdminEvents: true,
		}, nil)

		var valErr *casb.ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Contains(t, valErr.Message, "AdminEvents")
		assert.Contains(t, valErr.Message, "NonAdminEvents")
	})

	t.Run("admin events filter", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.JSONEq(t, `{"activity.type":{"eq":true}}`, r.URL.Query().Get("filters"))
			writeJSON(t, w, casb.Page[casb.Activity]{})
		})

		_, err := client.Activities.List(context.Background(), &casb.ActivityFilter{AdminEvents: true}, nil)
		require.NoError(t, err)
	})

	t.Run("IP category labels map to ordinals", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.JSONEq(t, `{"ip.category":{"eq":[3,4]}}`, r.URL.Query().Get("filters"))
			writeJSON(t, w, casb.Page[casb.Activity]{})
		})

		_, err := client.Activities.List(context.Background(), &casb.ActivityFilter{
			IPCategory: []casb.IPCategory{casb.IPCategoryRisky, casb.IPCategoryVPN},
		}, nil)
		require.NoError(t, err)
	})

	t.Run("user eq and neq stay separate on the wire", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.JSONEq(t,
				`{"user.username":{"eq":["jdoe"],"neq":["svc-backup"]}}`,
				r.URL.Query().Get("filters"))
			writeJSON(t, w, casb.Page[casb.Activity]{})
		})

		_, err := client.Activities.List(context.Background(), &casb.ActivityFilter{
			User:    []string{"jdoe"},
			UserNot: []string{"svc-backup"},
		}, nil)
		require.NoError(t, err)
	})

	t.Run("limit cap is 10000 for activities", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "10000", r.URL.Query().Get("limit"))
			writeJSON(t, w, casb.Page[casb.Activity]{})
		})

		_, err := client.Activities.List(context.Background(), nil, &casb.ListOptions{Limit: 10000})
		require.NoError(t, err)

		_, err = client.Activities.List(context.Background(), nil, &casb.ListOptions{Limit: 10001})
		var valErr *casb.ValidationError
		require.ErrorAs(t, err, &valErr)
	})

	t.Run("free-text search uses the text operator", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.JSONEq(t, `{"text":{"text":["failed login"]}}`, r.URL.Query().Get("filters"))
			writeJSON(t, w, casb.Page[casb.Activity]{})
		})

		_, err := client.Activities.List(context.Background(), &casb.ActivityFilter{Search: "failed login"}, nil)
		require.NoError(t, err)
	})
}
