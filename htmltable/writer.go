// Package htmltable writes table views as HTML table elements.
//
// Cells are HTML-escaped unless a column uses a CellFormatter
// returning raw HTML. By default the header row is written with
// th elements and every cell gets the inline style of
// tableview.CellStyle so that the output looks like the
// terminal rendering of a Table.
//
//	err := htmltable.NewWriter().
//	    WithTableClass("people").
//	    Write(ctx, os.Stdout, table)
package htmltable

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/domonda/tableview"
	"github.com/domonda/tableview/layout"
)

// Writer writes table views as HTML.
//
// Writer is immutable after creation,
// all With* methods return a modified copy.
type Writer struct {
	tableClass       string
	headerRow        bool
	cellStyle        *layout.Style
	cellSpacing      int
	columnFormatters map[int]CellFormatter
	headerTemplate   *template.Template
	rowTemplate      *template.Template
	footerTemplate   *template.Template
}

// NewWriter returns a Writer with a header row,
// tableview.CellStyle for all cells,
// tableview.CellSpacing between columns,
// and the default templates.
func NewWriter() *Writer {
	style := tableview.CellStyle
	return &Writer{
		headerRow:        true,
		cellStyle:        &style,
		cellSpacing:      tableview.CellSpacing,
		columnFormatters: make(map[int]CellFormatter),
		headerTemplate:   HeaderTemplate,
		rowTemplate:      RowTemplate,
		footerTemplate:   FooterTemplate,
	}
}

// Write writes view as HTML table to dest.
// The view title is written as caption.
func (w *Writer) Write(ctx context.Context, dest io.Writer, view tableview.View) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	var (
		columns   = view.Columns()
		templData = &RowTemplateContext{
			TemplateContext: TemplateContext{
				TableClass: w.tableClass,
				TableStyle: w.tableCSS(),
				Caption:    view.Title(),
			},
			CellStyle: StyleCSS(w.cellStyle),
			RawCells:  make([]template.HTML, len(columns)),
		}
	)

	err := w.headerTemplate.Execute(dest, templData.TemplateContext)
	if err != nil {
		return fmt.Errorf("htmltable: can't execute header template: %w", err)
	}

	if w.headerRow {
		templData.IsHeaderRow = true
		for col, title := range columns {
			templData.RawCells[col] = template.HTML(template.HTMLEscapeString(title)) //#nosec G203
		}
		err = w.rowTemplate.Execute(dest, templData)
		if err != nil {
			return fmt.Errorf("htmltable: can't execute row template for header row: %w", err)
		}
		templData.IsHeaderRow = false
		templData.RowIndex++
	}

	for row, numRows := 0, view.NumRows(); row < numRows; row++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		for col := range columns {
			formatter, ok := w.columnFormatters[col]
			if !ok {
				formatter = EscapeCellFormatter
			}
			templData.RawCells[col], err = formatter.FormatCell(ctx, view.Cell(row, col))
			if err != nil {
				return fmt.Errorf("htmltable: can't format cell of row %d column %q: %w", row, columns[col], err)
			}
		}
		err = w.rowTemplate.Execute(dest, templData)
		if err != nil {
			return fmt.Errorf("htmltable: can't execute row template for row %d: %w", row, err)
		}
		templData.RowIndex++
	}

	err = w.footerTemplate.Execute(dest, templData.TemplateContext)
	if err != nil {
		return fmt.Errorf("htmltable: can't execute footer template: %w", err)
	}
	return nil
}

func (w *Writer) tableCSS() template.CSS {
	if w.cellSpacing <= 0 {
		return "table-layout: fixed; width: 100%"
	}
	return template.CSS(fmt.Sprintf("border-collapse: separate; border-spacing: %dpx 0; table-layout: fixed; width: 100%%", w.cellSpacing)) //#nosec G203
}

// StyleCSS returns the inline CSS for a layout.Style.
// A nil style or one without border results in an empty string.
func StyleCSS(style *layout.Style) template.CSS {
	if !style.HasBorder() {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "border: %gpx solid %s", style.BorderWidth, style.BorderColor.Hex())
	if style.BorderRadius > 0 {
		fmt.Fprintf(&b, "; border-radius: %gpx", style.BorderRadius)
	}
	return template.CSS(b.String()) //#nosec G203
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// WithHeaderRow returns a new writer that writes
// the column names as header row if headerRow is true.
func (w *Writer) WithHeaderRow(headerRow bool) *Writer {
	mod := w.clone()
	mod.headerRow = headerRow
	return mod
}

// WithTableClass returns a new writer with
// the CSS class for the table element.
func (w *Writer) WithTableClass(tableClass string) *Writer {
	mod := w.clone()
	mod.tableClass = tableClass
	return mod
}

// WithCellStyle returns a new writer using style for all cells.
// Pass nil to write cells without inline style.
func (w *Writer) WithCellStyle(style *layout.Style) *Writer {
	mod := w.clone()
	mod.cellStyle = style
	return mod
}

// WithCellSpacing returns a new writer using
// spacing pixels between the columns.
func (w *Writer) WithCellSpacing(spacing int) *Writer {
	mod := w.clone()
	mod.cellSpacing = spacing
	return mod
}

// WithColumnFormatter returns a new writer with the passed formatter registered for columnIndex.
// If nil is passed as formatter, then a previous registered column formatter is removed.
func (w *Writer) WithColumnFormatter(columnIndex int, formatter CellFormatter) *Writer {
	mod := w.clone()
	mod.columnFormatters = make(map[int]CellFormatter)
	for key, val := range w.columnFormatters {
		mod.columnFormatters[key] = val
	}
	if formatter != nil {
		mod.columnFormatters[columnIndex] = formatter
	} else {
		delete(mod.columnFormatters, columnIndex)
	}
	return mod
}

// WithRawColumn returns a new writer that interprets the column
// at columnIndex as raw HTML. Only use for trusted content.
func (w *Writer) WithRawColumn(columnIndex int) *Writer {
	return w.WithColumnFormatter(columnIndex, RawCellFormatter)
}

// WithTemplate returns a new writer with custom templates.
// The header and footer templates are executed with a TemplateContext,
// the row template with a RowTemplateContext.
func (w *Writer) WithTemplate(headerTemplate, rowTemplate, footerTemplate *template.Template) *Writer {
	mod := w.clone()
	mod.headerTemplate = headerTemplate
	mod.rowTemplate = rowTemplate
	mod.footerTemplate = footerTemplate
	return mod
}

func (w *Writer) TableClass() string { return w.tableClass }

func (w *Writer) HeaderRow() bool { return w.headerRow }
