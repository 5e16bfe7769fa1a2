// Package csvtable writes table views as CSV.
package csvtable

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/domonda/go-types/charset"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/domonda/tableview"
)

// Encoder is an interface to encode byte strings.
type Encoder interface {
	Bytes([]byte) ([]byte, error)
}

// EncoderFunc implements the Encoder interface for a function.
type EncoderFunc func([]byte) ([]byte, error)

func (f EncoderFunc) Bytes(data []byte) ([]byte, error) {
	return f(data)
}

// PassthroughEncoder returns an Encoder that returns the passed data unchanged.
func PassthroughEncoder() Encoder {
	return EncoderFunc(func(data []byte) ([]byte, error) {
		return data, nil
	})
}

// CharsetEncoder returns an Encoder that encodes UTF-8
// to the character set with the passed name.
// An empty name or "UTF-8" result in a nil Encoder
// because the written rows are already UTF-8.
//
// IANA names and aliases like "ISO-8859-1", "latin1" or "windows-1252"
// are looked up first, then the display names of the charset package
// like "ISO 8859-1".
func CharsetEncoder(name string) (Encoder, error) {
	if name == "" || strings.EqualFold(name, "UTF-8") || strings.EqualFold(name, "UTF8") {
		return nil, nil
	}
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return EncoderFunc(enc.NewEncoder().Bytes), nil
	}
	enc, err := charset.GetEncoding(name)
	if err != nil {
		return nil, fmt.Errorf("csvtable: unsupported charset %q: %w", name, err)
	}
	return EncoderFunc(enc.Encode), nil
}

type Padding int

const (
	NoPadding Padding = iota
	AlignLeft
	AlignRight
	AlignCenter
)

func (p Padding) String() string {
	switch p {
	case NoPadding:
		return "NoPadding"
	case AlignLeft:
		return "AlignLeft"
	case AlignRight:
		return "AlignRight"
	case AlignCenter:
		return "AlignCenter"
	}
	return fmt.Sprintf("Padding(%d)", int(p))
}

// Writer writes table views as CSV.
//
// Writer is immutable after creation,
// all With* methods return a modified copy.
type Writer struct {
	padding          Padding
	headerRow        bool
	quoteAllFields   bool
	quoteEmptyFields bool
	escapeQuotes     string
	delimiter        rune
	newLine          string
	encoder          Encoder
}

// NewWriter returns a Writer using ';' as delimiter,
// "\r\n" as new line, doubled quotes for escaping,
// and no header row.
func NewWriter() *Writer {
	return &Writer{
		padding:          NoPadding,
		headerRow:        false,
		quoteAllFields:   false,
		quoteEmptyFields: false,
		escapeQuotes:     `""`,
		delimiter:        ';',
		newLine:          "\r\n",
		encoder:          nil,
	}
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// Write writes the view to dest formatted as CSV.
func (w *Writer) Write(ctx context.Context, dest io.Writer, view tableview.View) error {
	if w.padding != NoPadding {
		return w.writeViewPadded(ctx, dest, view)
	}

	if w.headerRow {
		err := w.writeView(ctx, dest, tableview.NewHeaderViewFrom(view))
		if err != nil {
			return err
		}
	}
	return w.writeView(ctx, dest, view)
}

func (w *Writer) writeView(ctx context.Context, dest io.Writer, view tableview.View) error {
	var (
		numCols = len(view.Columns())
		rowBuf  = bytes.NewBuffer(make([]byte, 0, 1024))
	)
	for row, numRows := 0, view.NumRows(); row < numRows; row++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		for col := 0; col < numCols; col++ {
			if col > 0 {
				rowBuf.WriteRune(w.delimiter)
			}
			rowBuf.WriteString(w.escapeString(view.Cell(row, col)))
		}
		err := w.writeLine(dest, rowBuf)
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeViewPadded(ctx context.Context, dest io.Writer, view tableview.View) error {
	rows := w.ViewStrings(view)

	// Collect column widths
	colRuneCount := tableview.StringColumnWidths(rows, len(view.Columns()))

	rowBuf := bytes.NewBuffer(make([]byte, 0, 1024))
	for row := range rows {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		for col, str := range rows[row] {
			if col > 0 {
				rowBuf.WriteRune(w.delimiter)
			}
			var (
				padTotal = colRuneCount[col] - utf8.RuneCountInString(str)
				padLeft  = 0
				padRight = 0
			)
			switch w.padding {
			case AlignLeft:
				padRight = padTotal
			case AlignRight:
				padLeft = padTotal
			case AlignCenter:
				padLeft = padTotal / 2
				padRight = (padTotal + 1) / 2
			}
			rowBuf.WriteString(strings.Repeat(" ", padLeft))
			rowBuf.WriteString(str)
			rowBuf.WriteString(strings.Repeat(" ", padRight))
		}
		err := w.writeLine(dest, rowBuf)
		if err != nil {
			return err
		}
	}
	return nil
}

// writeLine terminates the buffered row, encodes it,
// writes it to dest, and resets rowBuf.
func (w *Writer) writeLine(dest io.Writer, rowBuf *bytes.Buffer) error {
	rowBuf.WriteString(w.newLine)
	line := rowBuf.Bytes()
	if w.encoder != nil {
		encoded, err := w.encoder.Bytes(line)
		if err != nil {
			return fmt.Errorf("csvtable: can't encode row: %w", err)
		}
		line = encoded
	}
	_, err := dest.Write(line)
	rowBuf.Reset()
	return err
}

// ViewStrings returns the view as a slice of escaped string rows
// including the header row if configured.
func (w *Writer) ViewStrings(view tableview.View) [][]string {
	rows := tableview.ViewStrings(view, w.headerRow)
	for _, row := range rows {
		for col := range row {
			row[col] = w.escapeString(row[col])
		}
	}
	return rows
}

func (w *Writer) escapeString(str string) string {
	// Just in case remove all \r,
	// \n alone is valid within quotes
	str = strings.ReplaceAll(str, "\r", "")
	switch {
	case w.quoteAllFields || strings.ContainsRune(str, w.delimiter) || strings.ContainsRune(str, '\n') || strings.ContainsRune(str, '"'):
		return `"` + strings.ReplaceAll(str, `"`, w.escapeQuotes) + `"`
	case w.quoteEmptyFields && str == "":
		return `""`
	}
	return strings.ReplaceAll(str, `"`, w.escapeQuotes)
}

func (w *Writer) WithHeaderRow(headerRow bool) *Writer {
	mod := w.clone()
	mod.headerRow = headerRow
	return mod
}

func (w *Writer) WithPadding(padding Padding) *Writer {
	mod := w.clone()
	mod.padding = padding
	return mod
}

func (w *Writer) WithQuoteAllFields(quoteAllFields bool) *Writer {
	mod := w.clone()
	mod.quoteAllFields = quoteAllFields
	return mod
}

func (w *Writer) WithQuoteEmptyFields(quoteEmptyFields bool) *Writer {
	mod := w.clone()
	mod.quoteEmptyFields = quoteEmptyFields
	return mod
}

func (w *Writer) WithEscapeQuotes(escapeQuotes string) *Writer {
	mod := w.clone()
	mod.escapeQuotes = escapeQuotes
	return mod
}

func (w *Writer) WithDelimiter(delimiter rune) *Writer {
	mod := w.clone()
	mod.delimiter = delimiter
	return mod
}

func (w *Writer) WithNewLine(newLine string) *Writer {
	mod := w.clone()
	mod.newLine = newLine
	return mod
}

func (w *Writer) WithEncoder(encoder Encoder) *Writer {
	mod := w.clone()
	mod.encoder = encoder
	return mod
}

// WithCharset returns a new writer encoding
// all rows with the named character set.
func (w *Writer) WithCharset(name string) (*Writer, error) {
	encoder, err := CharsetEncoder(name)
	if err != nil {
		return nil, err
	}
	return w.WithEncoder(encoder), nil
}

func (w *Writer) HeaderRow() bool        { return w.headerRow }
func (w *Writer) Padding() Padding       { return w.padding }
func (w *Writer) QuoteAllFields() bool   { return w.quoteAllFields }
func (w *Writer) QuoteEmptyFields() bool { return w.quoteEmptyFields }
func (w *Writer) Delimiter() rune        { return w.delimiter }
func (w *Writer) EscapeQuotes() string   { return w.escapeQuotes }
func (w *Writer) NewLine() string        { return w.newLine }
func (w *Writer) Encoder() Encoder       { return w.encoder }
