package pgsql

import (
	"testing"

	"github.com/SscSPs/concierge_backoffice/internal/apperrors"
	portsrepo "github.com/SscSPs/concierge_backoffice/internal/core/ports/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListQuery(t *testing.T) {
	query, args, err := buildListQuery("documents", portsrepo.Query{
		Filters: []portsrepo.Filter{
			{Field: "type", Value: "invoice"},
			{Field: "client.clientID", Value: "c1"},
		},
		OrderBy: []portsrepo.Order{
			{Field: "issueDate", Descending: true},
			{Field: "createdAt", Descending: true},
		},
		Limit:  20,
		Offset: 40,
	})
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, data, created_at, updated_at FROM records WHERE collection = $1"+
			" AND data @> $2::jsonb AND data @> $3::jsonb"+
			" ORDER BY data #> '{issueDate}' DESC, created_at DESC, id"+
			" LIMIT $4 OFFSET $5",
		query)
	require.Len(t, args, 5)
	assert.Equal(t, "documents", args[0])
	assert.JSONEq(t, `{"type":"invoice"}`, string(args[1].([]byte)))
	assert.JSONEq(t, `{"client":{"clientID":"c1"}}`, string(args[2].([]byte)))
	assert.Equal(t, 20, args[3])
	assert.Equal(t, 40, args[4])
}

func TestBuildListQueryNestedOrderAndNoPaging(t *testing.T) {
	query, args, err := buildListQuery("missions", portsrepo.Query{
		OrderBy: []portsrepo.Order{{Field: "date"}, {Field: "window.start"}},
	})
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT id, data, created_at, updated_at FROM records WHERE collection = $1"+
			" ORDER BY data #> '{date}', data #> '{window,start}', id",
		query)
	assert.Len(t, args, 1)
}

func TestBuildListQueryRejectsUnsafeFields(t *testing.T) {
	_, _, err := buildListQuery("clients", portsrepo.Query{
		Filters: []portsrepo.Filter{{Field: "name'; DROP TABLE records; --", Value: "x"}},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, _, err = buildListQuery("clients", portsrepo.Query{
		OrderBy: []portsrepo.Order{{Field: "a..b"}},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestDecodeFieldsKeepsNumbers(t *testing.T) {
	fields, err := decodeFields([]byte(`{"durationMinutes":120,"price":"58.33"}`))
	require.NoError(t, err)
	assert.Equal(t, "120", fields["durationMinutes"].(interface{ String() string }).String())
	assert.Equal(t, "58.33", fields["price"])
}
