package csvtable

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/domonda/tableview"
)

func TestWriter_Write(t *testing.T) {
	ctx := context.Background()
	abc := &tableview.StringsView{
		Cols: []string{"A", "B", "Blah"},
		Rows: [][]string{
			{"1", "Hello", ""},
			{"123", "world!", "0"},
		},
	}
	tests := []struct {
		name     string
		writer   *Writer
		view     tableview.View
		wantDest string
		wantErr  bool
	}{
		{
			name:     "empty view",
			writer:   NewWriter(),
			view:     &tableview.StringsView{},
			wantDest: ``,
		},
		{
			name: "simple",
			writer: NewWriter().
				WithHeaderRow(true),
			view: abc,
			wantDest: "" +
				`A;B;Blah` + "\r\n" +
				`1;Hello;` + "\r\n" +
				`123;world!;0` + "\r\n",
		},
		{
			name: "simple no header",
			writer: NewWriter().
				WithHeaderRow(true).
				WithHeaderRow(false),
			view: abc,
			wantDest: "" +
				`1;Hello;` + "\r\n" +
				`123;world!;0` + "\r\n",
		},
		{
			name: "simple padded align left",
			writer: NewWriter().
				WithHeaderRow(true).
				WithDelimiter('|').
				WithPadding(AlignLeft),
			view: abc,
			wantDest: "" +
				`A  |B     |Blah` + "\r\n" +
				`1  |Hello |    ` + "\r\n" +
				`123|world!|0   ` + "\r\n",
		},
		{
			name: "simple padded align center",
			writer: NewWriter().
				WithHeaderRow(true).
				WithDelimiter('|').
				WithPadding(AlignCenter),
			view: abc,
			wantDest: "" +
				` A |  B   |Blah` + "\r\n" +
				` 1 |Hello |    ` + "\r\n" +
				`123|world!| 0  ` + "\r\n",
		},
		{
			name: "simple padded align right",
			writer: NewWriter().
				WithHeaderRow(true).
				WithDelimiter('|').
				WithPadding(AlignRight),
			view: abc,
			wantDest: "" +
				`  A|     B|Blah` + "\r\n" +
				`  1| Hello|    ` + "\r\n" +
				`123|world!|   0` + "\r\n",
		},
		{
			name: "comma and quoted fields",
			writer: NewWriter().
				WithHeaderRow(true).
				WithDelimiter(',').
				WithQuoteAllFields(true),
			view: &tableview.StringsView{
				Cols: []string{" A ", "B", "C"},
				Rows: [][]string{
					{"1", "Hello", ""},
					{"2", `say "hi"`, "0"},
				},
			},
			wantDest: "" +
				`" A ","B","C"` + "\r\n" +
				`"1","Hello",""` + "\r\n" +
				`"2","say ""hi""","0"` + "\r\n",
		},
		{
			name: "quote delimiter newline and empty",
			writer: NewWriter().
				WithQuoteEmptyFields(true).
				WithNewLine("\n"),
			view: &tableview.StringsView{
				Cols: []string{"A", "B", "C"},
				Rows: [][]string{
					{"a;b", "line\r\nbreak", ""},
				},
			},
			wantDest: `"a;b";"line` + "\n" + `break";""` + "\n",
		},
		{
			name: "encoder error",
			writer: NewWriter().WithEncoder(EncoderFunc(func([]byte) ([]byte, error) {
				return nil, errors.New("encoding error")
			})),
			view:    abc,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dest bytes.Buffer
			if err := tt.writer.Write(ctx, &dest, tt.view); (err != nil) != tt.wantErr {
				t.Errorf("Writer.Write() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if gotDest := dest.String(); gotDest != tt.wantDest {
				t.Errorf("Writer.Write() wrote:\n%s\nbut want:\n%s", gotDest, tt.wantDest)
			}
		})
	}
}

func TestWriter_WriteTable(t *testing.T) {
	type Person struct {
		FirstName string
		Age       int
	}
	people := []Person{{FirstName: "Ann", Age: 30}, {FirstName: "Bo", Age: 40}}
	table := tableview.NewTable(
		tableview.StructColumns[Person](&tableview.DefaultStructFieldNaming),
		tableview.Refs(people),
	)

	var dest bytes.Buffer
	err := NewWriter().WithHeaderRow(true).WithDelimiter(',').Write(context.Background(), &dest, table)
	require.NoError(t, err)
	require.Equal(t, "First Name,Age\r\nAnn,30\r\nBo,40\r\n", dest.String())
}

func TestWriter_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	view := tableview.NewStringsView("", [][]string{{"1"}}, "A")

	err := NewWriter().Write(ctx, new(bytes.Buffer), view)
	require.ErrorIs(t, err, context.Canceled)

	err = NewWriter().WithPadding(AlignLeft).Write(ctx, new(bytes.Buffer), view)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCharsetEncoder(t *testing.T) {
	for _, name := range []string{"", "UTF-8", "utf-8"} {
		enc, err := CharsetEncoder(name)
		require.NoError(t, err, name)
		require.Nil(t, enc, name)
	}

	_, err := CharsetEncoder("no-such-charset")
	require.Error(t, err)

	tests := []struct {
		name string
		str  string
		want []byte
	}{
		{name: "ISO-8859-1", str: "ä", want: []byte{0xE4}},
		{name: "iso-8859-1", str: "ä", want: []byte{0xE4}},
		{name: "latin1", str: "ä", want: []byte{0xE4}},
		{name: "ISO 8859-1", str: "ä", want: []byte{0xE4}},
		{name: "windows-1252", str: "€", want: []byte{0x80}},
		{name: "Windows 1252", str: "€", want: []byte{0x80}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := CharsetEncoder(tt.name)
			require.NoError(t, err)
			require.NotNil(t, enc)
			encoded, err := enc.Bytes([]byte(tt.str))
			require.NoError(t, err)
			require.Equal(t, tt.want, encoded)
		})
	}
}

func TestPassthroughEncoder(t *testing.T) {
	data := []byte("Müller")
	encoded, err := PassthroughEncoder().Bytes(data)
	require.NoError(t, err)
	require.Equal(t, data, encoded)

	var dest bytes.Buffer
	err = NewWriter().
		WithEncoder(PassthroughEncoder()).
		Write(context.Background(), &dest, tableview.NewStringsView("", [][]string{{"Müller"}}, "Name"))
	require.NoError(t, err)
	require.Equal(t, "Müller\r\n", dest.String())
}

func TestWriter_QuotesReadable(t *testing.T) {
	view := tableview.NewStringsView("", [][]string{{`a"b`, `"x"`, "plain"}}, "A", "B", "C")

	var dest bytes.Buffer
	err := NewWriter().WithDelimiter(',').Write(context.Background(), &dest, view)
	require.NoError(t, err)
	require.Equal(t, `"a""b","""x""",plain`+"\r\n", dest.String())

	records, err := csv.NewReader(&dest).ReadAll()
	require.NoError(t, err)
	require.Equal(t, [][]string{{`a"b`, `"x"`, "plain"}}, records)
}

func TestWriter_WithCharset(t *testing.T) {
	w, err := NewWriter().WithCharset("ISO-8859-1")
	require.NoError(t, err)
	require.NotNil(t, w.Encoder())

	var dest bytes.Buffer
	err = w.Write(context.Background(), &dest, tableview.NewStringsView("", [][]string{{"Müller"}}, "Name"))
	require.NoError(t, err)
	require.Equal(t, []byte("M\xfcller\r\n"), dest.Bytes())

	w, err = NewWriter().WithCharset("windows-1252")
	require.NoError(t, err)
	dest.Reset()
	err = w.Write(context.Background(), &dest, tableview.NewStringsView("", [][]string{{"5 €"}}, "Price"))
	require.NoError(t, err)
	require.Equal(t, []byte("5 \x80\r\n"), dest.Bytes())

	_, err = NewWriter().WithCharset("no-such-charset")
	require.Error(t, err)
}

func TestPadding_String(t *testing.T) {
	require.Equal(t, "AlignCenter", AlignCenter.String())
	require.Equal(t, "Padding(9)", Padding(9).String())
}
