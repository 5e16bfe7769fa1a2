package tableview

import (
	"fmt"
	"reflect"
)

// Accessor computes a string from a row.
// Accessors must be total: there is no error path
// and a panicking accessor ends the render pass.
type Accessor[T any] func(row *T) string

// Column describes one column of a Table with rows of type T
// as a name and two accessors.
//
// ValueOf returns the string displayed in the column's cell for a row.
// SortKeyOf returns a string usable to order rows by this column,
// it is not used for rendering.
type Column[T any] struct {
	Name      string
	ValueOf   Accessor[T]
	SortKeyOf Accessor[T]
}

// NewColumn returns a Column for the passed name and accessors.
// No validation is performed.
func NewColumn[T any](name string, valueOf, sortKeyOf Accessor[T]) Column[T] {
	return Column[T]{
		Name:      name,
		ValueOf:   valueOf,
		SortKeyOf: sortKeyOf,
	}
}

// Value returns the display string of the column for row.
func (c Column[T]) Value(row *T) string {
	return c.ValueOf(row)
}

// SortKey returns the sort key of the column for row.
func (c Column[T]) SortKey(row *T) string {
	return c.SortKeyOf(row)
}

// String implements the fmt.Stringer interface for Column.
// Only the name and the row type are printed
// because functions can't be inspected.
func (c Column[T]) String() string {
	return fmt.Sprintf("Column[%s]{Name: %q}", reflect.TypeFor[T](), c.Name)
}

// GoString implements the fmt.GoStringer interface
// so that %#v prints the same as String.
func (c Column[T]) GoString() string {
	return c.String()
}

// ColumnNames returns the names of the passed columns in order.
func ColumnNames[T any](columns []Column[T]) []string {
	names := make([]string, len(columns))
	for i, col := range columns {
		names[i] = col.Name
	}
	return names
}
