package tableview

import "strings"

// View is a read only table of string cells
// with a title and named columns.
//
// Table implements View so that writers can
// handle tables without knowing their row type.
type View interface {
	// Title of the table, may be empty
	Title() string
	// Columns returns the column names
	Columns() []string
	// NumRows returns the number of data rows
	NumRows() int
	// Cell returns the string of a cell
	// or an empty string if row or col are out of range.
	Cell(row, col int) string
}

// StringsView is a View implementation that uses strings as cell values.
//
// A row within Rows can have fewer slice elements than Cols,
// in which case empty strings are returned for the missing cells.
type StringsView struct {
	// Tit is the title of this view, returned by the Title() method.
	Tit string
	// Cols contains the column names defining
	// the number of columns of the view.
	Cols []string
	// Rows contains the data rows
	Rows [][]string
}

var _ View = new(StringsView)

// NewStringsView creates a new StringsView.
// If no cols are passed and rows is not empty,
// then the first row is used as column names
// and removed from the data rows.
// All column names have leading and trailing whitespace trimmed.
//
//	view := tableview.NewStringsView(
//	    "Users",
//	    [][]string{
//	        {"Name", "Age"},
//	        {"alice", "30"},
//	    },
//	)
func NewStringsView(title string, rows [][]string, cols ...string) *StringsView {
	if len(cols) == 0 && len(rows) > 0 {
		cols = rows[0]
		rows = rows[1:]
	}
	trimmed := make([]string, len(cols))
	for i, col := range cols {
		trimmed[i] = strings.TrimSpace(col)
	}
	return &StringsView{Tit: title, Cols: trimmed, Rows: rows}
}

func (view *StringsView) Title() string     { return view.Tit }
func (view *StringsView) Columns() []string { return view.Cols }
func (view *StringsView) NumRows() int      { return len(view.Rows) }

func (view *StringsView) Cell(row, col int) string {
	if row < 0 || col < 0 || row >= len(view.Rows) || col >= len(view.Cols) {
		return ""
	}
	if col >= len(view.Rows[row]) {
		return ""
	}
	return view.Rows[row][col]
}

// HeaderView is a View with a single row
// containing the column names as values.
type HeaderView struct {
	Tit  string
	Cols []string
}

var _ View = new(HeaderView)

// NewHeaderViewFrom returns a HeaderView
// with the title and columns of source.
func NewHeaderViewFrom(source View) *HeaderView {
	return &HeaderView{Tit: source.Title(), Cols: source.Columns()}
}

func (view *HeaderView) Title() string     { return view.Tit }
func (view *HeaderView) Columns() []string { return view.Cols }
func (view *HeaderView) NumRows() int      { return 1 }

func (view *HeaderView) Cell(row, col int) string {
	if row != 0 || col < 0 || col >= len(view.Cols) {
		return ""
	}
	return view.Cols[col]
}
