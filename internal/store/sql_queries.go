package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, password, first_name, last_name, email, is_admin)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING username, first_name, last_name, email, is_admin;`

	findUserWithPassword = `SELECT username, password, first_name, last_name, email, is_admin
    FROM users
    WHERE username = $1;`

	deleteUser = `DELETE FROM users WHERE username = $1;`

	// updateUserBase is completed with a compiled SET fragment and the
	// placeholder index of the username key.
	updateUserBase = `UPDATE users SET %s WHERE username = $%d
    RETURNING username, first_name, last_name, email, is_admin;`

	createList = `INSERT INTO destination_lists (username, searched_address, arrival_date, departure_date)
    VALUES ($1, $2, $3, $4)
    RETURNING id, username, searched_address, arrival_date, departure_date;`

	deleteList = `DELETE FROM destination_lists WHERE id = $1;`

	updateListBase = `UPDATE destination_lists SET %s WHERE id = $%d
    RETURNING id, username, searched_address, arrival_date, departure_date;`

	createItem = `INSERT INTO list_items (list_id, category, item, qty)
    VALUES ($1, $2, $3, $4)
    RETURNING id, list_id, category, item, qty;`

	deleteItem = `DELETE FROM list_items WHERE id = $1;`

	updateItemBase = `UPDATE list_items SET %s WHERE id = $%d
    RETURNING id, list_id, category, item, qty;`
)

// userPublicColumns are the user columns safe to return to callers.
// The password hash is deliberately absent.
var userPublicColumns = []string{"username", "first_name", "last_name", "email", "is_admin"}

var listColumns = []string{"id", "username", "searched_address", "arrival_date", "departure_date"}

var itemColumns = []string{"id", "list_id", "category", "item", "qty"}

// psql is the shared squirrel statement builder configured for PostgreSQL
// $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildSelectAllUsersQuery builds the query returning every user's public
// columns ordered by username ascending.
func buildSelectAllUsersQuery(_ context.Context) (string, []any, error) {
	return psql.
		Select(userPublicColumns...).
		From("users").
		OrderBy("username ASC").
		ToSql()
}

// buildSelectUserQuery builds the public-column lookup of a single user.
func buildSelectUserQuery(_ context.Context, username string) (string, []any, error) {
	return psql.
		Select(userPublicColumns...).
		From("users").
		Where(sq.Eq{"username": username}).
		ToSql()
}

// buildSelectAllListsQuery builds the query returning every destination list.
func buildSelectAllListsQuery(_ context.Context) (string, []any, error) {
	return psql.
		Select(listColumns...).
		From("destination_lists").
		OrderBy("id ASC").
		ToSql()
}

// buildSelectListsForUserQuery builds the query returning the destination
// lists owned by one user.
func buildSelectListsForUserQuery(_ context.Context, username string) (string, []any, error) {
	return psql.
		Select(listColumns...).
		From("destination_lists").
		Where(sq.Eq{"username": username}).
		OrderBy("id ASC").
		ToSql()
}

// buildSelectListQuery builds the lookup of a single destination list.
func buildSelectListQuery(_ context.Context, id int64) (string, []any, error) {
	return psql.
		Select(listColumns...).
		From("destination_lists").
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildSelectAllItemsQuery builds the query returning every list item.
func buildSelectAllItemsQuery(_ context.Context) (string, []any, error) {
	return psql.
		Select(prefixed("list_items", itemColumns)...).
		From("list_items").
		OrderBy("list_items.id ASC").
		ToSql()
}

// buildSelectItemsForListQuery builds the query returning the items of one
// destination list.
func buildSelectItemsForListQuery(_ context.Context, listID int64) (string, []any, error) {
	return psql.
		Select(itemColumns...).
		From("list_items").
		Where(sq.Eq{"list_id": listID}).
		OrderBy("id ASC").
		ToSql()
}

// buildSelectItemQuery builds the lookup of a single list item enriched with
// the parent list's address and stay dates.
func buildSelectItemQuery(_ context.Context, id int64) (string, []any, error) {
	columns := append(prefixed("list_items", itemColumns),
		"destination_lists.searched_address",
		"destination_lists.arrival_date",
		"destination_lists.departure_date",
	)

	return psql.
		Select(columns...).
		From("list_items").
		LeftJoin("destination_lists ON destination_lists.id = list_items.list_id").
		Where(sq.Eq{"list_items.id": id}).
		ToSql()
}

// prefixed qualifies every column with the given table name.
func prefixed(table string, columns []string) []string {
	out := make([]string, 0, len(columns))
	for _, c := range columns {
		out = append(out, fmt.Sprintf("%s.%s", table, c))
	}
	return out
}
