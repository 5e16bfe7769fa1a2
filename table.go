package tableview

import "github.com/domonda/tableview/layout"

// CellSpacing is the horizontal space between two cells of a row.
const CellSpacing = 10

// CellStyle is the visual style applied to every table cell.
var CellStyle = layout.Style{
	BorderWidth:  1,
	BorderRadius: 2,
	BorderColor:  layout.Black,
}

// Table is a view of rows of type T
// displayed using an ordered list of columns.
//
// The table references its rows, it never copies or owns them.
// Rows must not be nil and must stay valid while the table is used.
type Table[T any] struct {
	// Tit is the optional title returned by the Title method
	Tit string
	// Cols in display order from left to right
	Cols []Column[T]
	// Rows in display order from top to bottom
	Rows []*T
}

var _ View = new(Table[struct{}])

// NewTable returns a Table for columns and rows.
func NewTable[T any](columns []Column[T], rows []*T) *Table[T] {
	return &Table[T]{Cols: columns, Rows: rows}
}

// Refs returns pointers to the elements of rows
// for use as Table.Rows without copying the elements.
func Refs[T any](rows []T) []*T {
	refs := make([]*T, len(rows))
	for i := range rows {
		refs[i] = &rows[i]
	}
	return refs
}

// WithTitle returns a shallow copy of the table using title.
func (t *Table[T]) WithTitle(title string) *Table[T] {
	c := *t
	c.Tit = title
	return &c
}

func (t *Table[T]) Title() string     { return t.Tit }
func (t *Table[T]) Columns() []string { return ColumnNames(t.Cols) }
func (t *Table[T]) NumRows() int      { return len(t.Rows) }

// Cell returns the display value of the column col for the row
// at index row or an empty string if row or col are out of range.
func (t *Table[T]) Cell(row, col int) string {
	if row < 0 || col < 0 || row >= len(t.Rows) || col >= len(t.Cols) {
		return ""
	}
	return t.Cols[col].ValueOf(t.Rows[row])
}

// HeaderCells returns the column names.
func (t *Table[T]) HeaderCells() []string {
	return ColumnNames(t.Cols)
}

// RowCells returns the display values of all columns
// for the row at index row.
func (t *Table[T]) RowCells(row int) []string {
	cells := make([]string, len(t.Cols))
	for col, column := range t.Cols {
		cells[col] = column.ValueOf(t.Rows[row])
	}
	return cells
}

// View returns the layout tree of the table.
//
// The result is a Container wrapping a layout.Column
// with the header row of column names as first child
// followed by one row per table row in order.
// Every cell is a layout.Text with the column name
// or the result of Column.ValueOf, wrapped in a
// Container using CellStyle and layout.Fill width.
func (t *Table[T]) View() layout.Element {
	header := layout.NewRow().WithSpacing(CellSpacing)
	for _, column := range t.Cols {
		header = header.Push(cell(column.Name))
	}
	table := layout.NewColumn().Push(header)
	for _, row := range t.Rows {
		strip := layout.NewRow().WithSpacing(CellSpacing)
		for _, column := range t.Cols {
			strip = strip.Push(cell(column.ValueOf(row)))
		}
		table = table.Push(strip)
	}
	return layout.NewContainer(table)
}

func cell(text string) layout.Element {
	style := CellStyle
	return layout.NewContainer(layout.NewText(text)).
		WithStyle(&style).
		WithWidth(layout.Fill)
}
