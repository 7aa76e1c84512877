package store

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildSelectAllUsersQuery_SQLContainsParts(t *testing.T) {
	ctx := context.Background()

	query, args, err := buildSelectAllUsersQuery(ctx)
	require.NoError(t, err)
	require.Empty(t, args)

	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from users")
	require.Contains(t, q, "order by username asc")

	// password must never appear in a public projection
	require.NotContains(t, q, "password")

	for _, col := range userPublicColumns {
		require.Contains(t, q, col)
	}
}

func Test_buildSelectUserQuery(t *testing.T) {
	ctx := context.Background()

	query, args, err := buildSelectUserQuery(ctx, "u1")
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "u1", args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "where")
	require.Contains(t, q, "username")
	require.Contains(t, query, "$1")
	require.NotContains(t, q, "password")
}

func Test_buildSelectListsForUserQuery(t *testing.T) {
	ctx := context.Background()

	query, args, err := buildSelectListsForUserQuery(ctx, "u2")
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "u2", args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "from destination_lists")
	require.Contains(t, query, "$1")

	for _, col := range listColumns {
		assert.Contains(t, q, col)
	}
}

func Test_buildSelectListQuery(t *testing.T) {
	ctx := context.Background()

	query, args, err := buildSelectListQuery(ctx, 42)
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, int64(42), args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "from destination_lists")
	require.Contains(t, q, "where")
	require.Contains(t, query, "$1")
}

func Test_buildSelectItemsForListQuery(t *testing.T) {
	ctx := context.Background()

	query, args, err := buildSelectItemsForListQuery(ctx, 7)
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, int64(7), args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "from list_items")
	require.Contains(t, q, "list_id")
	require.Contains(t, query, "$1")
}

func Test_buildSelectItemQuery_JoinsParentList(t *testing.T) {
	ctx := context.Background()

	query, args, err := buildSelectItemQuery(ctx, 7)
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, int64(7), args[0])

	q := strings.ToLower(query)

	require.Contains(t, q, "left join destination_lists")
	require.Contains(t, q, "destination_lists.id = list_items.list_id")

	// join-enrichment columns from the parent list
	require.Contains(t, q, "destination_lists.searched_address")
	require.Contains(t, q, "destination_lists.arrival_date")
	require.Contains(t, q, "destination_lists.departure_date")

	require.Contains(t, query, "$1")
}
