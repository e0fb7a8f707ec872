package casb_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	casb "github.com/tphakala/go-casb"
)

func TestFilterSet(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		var fs casb.FilterSet
		assert.True(t, fs.Empty())
		assert.Empty(t, fs.Clauses())
	})

	t.Run("clauses keep insertion order", func(t *testing.T) {
		var fs casb.FilterSet
		fs.Add("domain", casb.OpEquals, []string{"contoso.com"})
		fs.Add("username", casb.OpNotEquals, []string{"svc-account"})

		clauses := fs.Clauses()
		require.Len(t, clauses, 2)
		assert.Equal(t, "domain", clauses[0].Field)
		assert.Equal(t, "username", clauses[1].Field)
	})

	t.Run("eq and neq on one field stay separate clauses", func(t *testing.T) {
		var fs casb.FilterSet
		fs.Add("service", casb.OpEquals, []string{"11161"})
		fs.Add("service", casb.OpNotEquals, []string{"15600"})

		clauses := fs.Clauses()
		require.Len(t, clauses, 2)
		assert.Equal(t, casb.OpEquals, clauses[0].Operator)
		assert.Equal(t, casb.OpNotEquals, clauses[1].Operator)
	})
}

func TestFilterSetMarshalJSON(t *testing.T) {
	t.Run("single eq clause", func(t *testing.T) {
		var fs casb.FilterSet
		fs.Add("domain", casb.OpEquals, []string{"contoso.com"})

		data, err := json.Marshal(fs)
		require.NoError(t, err)
		assert.JSONEq(t, `{"domain":{"eq":["contoso.com"]}}`, string(data))
	})

	t.Run("clauses on the same field merge under one key", func(t *testing.T) {
		var fs casb.FilterSet
		fs.Add("service", casb.OpEquals, []string{"11161"})
		fs.Add("service", casb.OpNotEquals, []string{"15600"})

		data, err := json.Marshal(fs)
		require.NoError(t, err)
		assert.JSONEq(t, `{"service":{"eq":["11161"],"neq":["15600"]}}`, string(data))
	})

	t.Run("distinct fields get distinct keys", func(t *testing.T) {
		var fs casb.FilterSet
		fs.Add("severity", casb.OpEquals, []int{2})
		fs.Add("read", casb.OpEquals, false)

		data, err := json.Marshal(fs)
		require.NoError(t, err)
		assert.JSONEq(t, `{"severity":{"eq":[2]},"read":{"eq":false}}`, string(data))
	})

	t.Run("text operator", func(t *testing.T) {
		var fs casb.FilterSet
		fs.Add("filename", casb.OpText, []string{"quarterly report"})

		data, err := json.Marshal(fs)
		require.NoError(t, err)
		assert.JSONEq(t, `{"filename":{"text":["quarterly report"]}}`, string(data))
	})

	t.Run("empty set marshals to an empty object", func(t *testing.T) {
		var fs casb.FilterSet
		data, err := json.Marshal(fs)
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(data))
	})
}
