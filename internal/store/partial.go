package store

import (
	"fmt"
	"strings"
)

// FieldValue is a single field of a partial update: the caller-facing field
// name together with the value to persist.
type FieldValue struct {
	Field string
	Value any
}

// Updates is the ordered set of fields supplied by a partial-update caller.
// Order is preserved all the way into the generated SQL, so the emitted
// placeholders line up with the argument slice.
type Updates []FieldValue

// Add appends a field to the update set and returns the receiver for
// chaining.
func (u Updates) Add(field string, value any) Updates {
	return append(u, FieldValue{Field: field, Value: value})
}

// Assignment is one compiled "column = $index" pair of a SET clause.
type Assignment struct {
	// Index is the 1-based placeholder number of the assignment.
	Index int

	// Column is the storage column name the assignment targets.
	Column string
}

// SetClause is the compiled artifact of a partial update: the ordered
// assignments and the parallel argument list, in the same order the fields
// were supplied.
type SetClause struct {
	Assignments []Assignment
	Args        []any
}

// Compile translates the update set into a SET clause using the given
// field-to-column mapping. Placeholders are numbered sequentially starting
// at 1, matching the order of [SetClause.Args].
//
// A field missing from columns keeps its own name as the column name. The
// leniency matches the store schema, where most logical fields are named
// after their columns; only multi-word fields need an entry.
//
// Returns [ErrNoUpdateData] when the update set is empty.
func (u Updates) Compile(columns map[string]string) (SetClause, error) {
	if len(u) == 0 {
		return SetClause{}, ErrNoUpdateData
	}

	clause := SetClause{
		Assignments: make([]Assignment, 0, len(u)),
		Args:        make([]any, 0, len(u)),
	}

	for i, fv := range u {
		column, ok := columns[fv.Field]
		if !ok {
			column = fv.Field
		}

		clause.Assignments = append(clause.Assignments, Assignment{Index: i + 1, Column: column})
		clause.Args = append(clause.Args, fv.Value)
	}

	return clause, nil
}

// Fragment renders the assignments as a comma-separated SQL SET fragment,
// e.g. `first_name = $1, email = $2`.
func (c SetClause) Fragment() string {
	parts := make([]string, 0, len(c.Assignments))
	for _, a := range c.Assignments {
		parts = append(parts, fmt.Sprintf("%s = $%d", a.Column, a.Index))
	}

	return strings.Join(parts, ", ")
}

// Next returns the next free placeholder index. Callers use it for the
// identifying key appended after the compiled arguments.
func (c SetClause) Next() int {
	return len(c.Assignments) + 1
}
