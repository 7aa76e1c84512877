package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when an attempt to register a new user
	// fails because a user with the same username already exists.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrUserNotFound is returned when a query targets a username that does
	// not exist in the database.
	ErrUserNotFound = errors.New("user not found")

	// ErrListNotFound is returned when a query targets a destination list
	// id that does not exist in the database.
	ErrListNotFound = errors.New("destination list not found")

	// ErrItemNotFound is returned when a query targets a list item id that
	// does not exist in the database.
	ErrItemNotFound = errors.New("list item not found")

	// ErrNoUpdateData is returned by the partial-update builder when the
	// caller supplies no fields at all. An empty update is a caller bug,
	// not a recoverable condition.
	ErrNoUpdateData = errors.New("no data to update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
