package tableview

import "unicode/utf8"

// ViewStrings returns the cells of view as a slice of string rows.
// If addHeaderRow is true, then the column names
// are returned as first row.
func ViewStrings(view View, addHeaderRow bool) (rows [][]string) {
	var (
		numCols = len(view.Columns())
		numRows = view.NumRows()
	)
	rows = make([][]string, 0, numRows+1)
	if addHeaderRow {
		header := make([]string, numCols)
		copy(header, view.Columns())
		rows = append(rows, header)
	}
	for row := 0; row < numRows; row++ {
		rowStrs := make([]string, numCols)
		for col := range rowStrs {
			rowStrs[col] = view.Cell(row, col)
		}
		rows = append(rows, rowStrs)
	}
	return rows
}

// StringColumnWidths returns the column widths of the passed
// table as count of UTF-8 runes.
// If numCols is negative, then the maximum row length is used.
func StringColumnWidths(rows [][]string, numCols int) []int {
	if numCols < 0 {
		for _, row := range rows {
			if rowCols := len(row); rowCols > numCols {
				numCols = rowCols
			}
		}
		if numCols <= 0 {
			return nil
		}
	}
	colWidths := make([]int, numCols)
	for row := range rows {
		for col := 0; col < numCols && col < len(rows[row]); col++ {
			numRunes := utf8.RuneCountInString(rows[row][col])
			if numRunes > colWidths[col] {
				colWidths[col] = numRunes
			}
		}
	}
	return colWidths
}
