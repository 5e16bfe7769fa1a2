package htmltable

import (
	"context"
	"fmt"
	"html/template"
)

var (
	_ CellFormatter = CellFormatterFunc(nil)
	_ CellFormatter = SpanClassCellFormatter("")
	_ CellFormatter = Raw("")
)

// CellFormatter formats the string of a table cell as HTML.
type CellFormatter interface {
	FormatCell(ctx context.Context, str string) (template.HTML, error)
}

// CellFormatterFunc implements CellFormatter for a function.
type CellFormatterFunc func(ctx context.Context, str string) (template.HTML, error)

func (f CellFormatterFunc) FormatCell(ctx context.Context, str string) (template.HTML, error) {
	return f(ctx, str)
}

var (
	// EscapeCellFormatter escapes the cell string for HTML.
	// It is used for all columns without a CellFormatter.
	EscapeCellFormatter CellFormatterFunc = func(ctx context.Context, str string) (template.HTML, error) {
		return template.HTML(template.HTMLEscapeString(str)), nil //#nosec G203
	}

	// RawCellFormatter uses the cell string as raw HTML.
	// Only use it for trusted content.
	RawCellFormatter CellFormatterFunc = func(ctx context.Context, str string) (template.HTML, error) {
		return template.HTML(str), nil //#nosec G203
	}

	// PreCellFormatter wraps the escaped cell string in a pre element.
	PreCellFormatter CellFormatterFunc = func(ctx context.Context, str string) (template.HTML, error) {
		return template.HTML("<pre>" + template.HTMLEscapeString(str) + "</pre>"), nil //#nosec G203
	}

	// CodeCellFormatter wraps the escaped cell string in a code element.
	CodeCellFormatter CellFormatterFunc = func(ctx context.Context, str string) (template.HTML, error) {
		return template.HTML("<code>" + template.HTMLEscapeString(str) + "</code>"), nil //#nosec G203
	}
)

// SpanClassCellFormatter formats the escaped cell string within
// an HTML span element with the class of the underlying string value.
type SpanClassCellFormatter string

func (class SpanClassCellFormatter) FormatCell(ctx context.Context, str string) (template.HTML, error) {
	text := template.HTMLEscapeString(str)
	return template.HTML(fmt.Sprintf("<span class='%s'>%s</span>", template.HTMLEscapeString(string(class)), text)), nil //#nosec G203
}

// Raw ignores the cell string and always returns
// its underlying string as HTML.
type Raw string

func (r Raw) FormatCell(ctx context.Context, str string) (template.HTML, error) {
	return template.HTML(r), nil //#nosec G203
}
