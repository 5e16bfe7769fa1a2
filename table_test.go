package tableview

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/domonda/tableview/layout"
)

type person struct {
	FirstName string
	LastName  string
	Age       uint32
}

func nameAgeColumns() []Column[person] {
	firstName := func(p *person) string { return p.FirstName }
	age := func(p *person) string { return strconv.FormatUint(uint64(p.Age), 10) }
	return []Column[person]{
		NewColumn("Name", firstName, firstName),
		NewColumn("Age", age, age),
	}
}

// strips returns the header and data strips of a table layout
// as rows of cell texts.
func strips(t *testing.T, el layout.Element) [][]string {
	t.Helper()
	container, ok := el.(layout.Container)
	require.True(t, ok, "table view must be a layout.Container, got %T", el)
	require.Nil(t, container.Style, "outer container has no style")
	column, ok := container.Content.(layout.Column)
	require.True(t, ok, "container content must be a layout.Column, got %T", container.Content)

	var result [][]string
	for _, child := range column.Children {
		row, ok := child.(layout.Row)
		require.True(t, ok, "strip must be a layout.Row, got %T", child)
		require.Equal(t, CellSpacing, row.Spacing)
		cells := make([]string, 0, len(row.Children))
		for _, c := range row.Children {
			cell, ok := c.(layout.Container)
			require.True(t, ok, "cell must be a layout.Container, got %T", c)
			require.Equal(t, layout.Fill, cell.Width)
			require.Equal(t, &CellStyle, cell.Style)
			text, ok := cell.Content.(layout.Text)
			require.True(t, ok, "cell content must be layout.Text, got %T", cell.Content)
			cells = append(cells, text.Content)
		}
		result = append(result, cells)
	}
	return result
}

func TestTable_View(t *testing.T) {
	rows := []person{
		{FirstName: "Ann", Age: 30},
		{FirstName: "Bo", Age: 40},
	}
	table := NewTable(nameAgeColumns(), Refs(rows))

	got := strips(t, table.View())
	require.Equal(t, [][]string{
		{"Name", "Age"},
		{"Ann", "30"},
		{"Bo", "40"},
	}, got)
}

func TestTable_View_EmptyRows(t *testing.T) {
	table := NewTable(nameAgeColumns(), nil)

	got := strips(t, table.View())
	require.Equal(t, [][]string{{"Name", "Age"}}, got)
}

func TestTable_View_StripShape(t *testing.T) {
	for numCols := 1; numCols <= 4; numCols++ {
		for numRows := 0; numRows <= 5; numRows++ {
			t.Run(fmt.Sprintf("%dx%d", numCols, numRows), func(t *testing.T) {
				var columns []Column[int]
				for c := 0; c < numCols; c++ {
					name := fmt.Sprintf("col%d", c)
					acc := func(row *int) string { return fmt.Sprintf("%s:%d", name, *row) }
					columns = append(columns, NewColumn(name, acc, acc))
				}
				data := make([]int, numRows)
				for i := range data {
					data[i] = numRows - i // descending to detect implicit sorting
				}

				got := strips(t, NewTable(columns, Refs(data)).View())

				require.Len(t, got, numRows+1)
				require.Equal(t, ColumnNames(columns), got[0])
				for r, strip := range got[1:] {
					require.Len(t, strip, numCols)
					for c, text := range strip {
						require.Equal(t, fmt.Sprintf("col%d:%d", c, data[r]), text)
					}
				}
			})
		}
	}
}

func TestTable_View_FullName(t *testing.T) {
	fullName := func(p *person) string { return p.FirstName + " " + p.LastName }
	rows := []person{{FirstName: "Michael", LastName: "Michaelowski", Age: 32}}
	table := NewTable(
		[]Column[person]{NewColumn("Full name", fullName, fullName)},
		Refs(rows),
	)

	require.Equal(t, [][]string{{"Full name"}, {"Michael Michaelowski"}}, strips(t, table.View()))
}

func TestTable_View_Idempotent(t *testing.T) {
	rows := []person{{FirstName: "Ann", Age: 30}, {FirstName: "Bo", Age: 40}}
	table := NewTable(nameAgeColumns(), Refs(rows))

	first := table.View()
	second := table.View()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("View() not idempotent (-first +second):\n%s", diff)
	}
}

func TestTable_View_SeesRowMutation(t *testing.T) {
	rows := []person{{FirstName: "Ann", Age: 30}}
	table := NewTable(nameAgeColumns(), Refs(rows))

	rows[0].Age = 31
	require.Equal(t, [][]string{{"Name", "Age"}, {"Ann", "31"}}, strips(t, table.View()))
}

func TestTable_View_NeverCallsSortKey(t *testing.T) {
	value := func(p *person) string { return p.FirstName }
	sortKey := func(p *person) string {
		t.Fatal("SortKeyOf must not be called by View")
		return ""
	}
	rows := []person{{FirstName: "Zed"}, {FirstName: "Al"}}
	table := NewTable([]Column[person]{NewColumn("Name", value, sortKey)}, Refs(rows))

	require.Equal(t, [][]string{{"Name"}, {"Zed"}, {"Al"}}, strips(t, table.View()))
}

func TestTable_View_AccessorPanic(t *testing.T) {
	boom := func(*person) string { panic("boom") }
	rows := []person{{}}
	table := NewTable([]Column[person]{NewColumn("Boom", boom, boom)}, Refs(rows))

	require.PanicsWithValue(t, "boom", func() { table.View() })
}

func TestTable_AsView(t *testing.T) {
	rows := []person{{FirstName: "Ann", LastName: "A", Age: 30}}
	table := NewTable(nameAgeColumns(), Refs(rows)).WithTitle("People")

	var view View = table
	require.Equal(t, "People", view.Title())
	require.Equal(t, []string{"Name", "Age"}, view.Columns())
	require.Equal(t, 1, view.NumRows())
	require.Equal(t, "Ann", view.Cell(0, 0))
	require.Equal(t, "30", view.Cell(0, 1))
	require.Equal(t, "", view.Cell(1, 0))
	require.Equal(t, "", view.Cell(0, 2))
	require.Equal(t, "", view.Cell(-1, 0))

	require.Equal(t, []string{"Name", "Age"}, table.HeaderCells())
	require.Equal(t, []string{"Ann", "30"}, table.RowCells(0))
}

func TestRefs(t *testing.T) {
	rows := []person{{FirstName: "Ann"}, {FirstName: "Bo"}}
	refs := Refs(rows)
	require.Len(t, refs, 2)
	require.Same(t, &rows[0], refs[0])
	require.Same(t, &rows[1], refs[1])
	require.Empty(t, Refs[person](nil))
}
