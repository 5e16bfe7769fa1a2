package htmltable

import "html/template"

var (
	HeaderTemplate = template.Must(template.New("header").Parse(
		"<table{{if .TableClass}} class='{{.TableClass}}'{{end}}{{if .TableStyle}} style='{{.TableStyle}}'{{end}}>\n" +
			"{{if .Caption}}  <caption>{{.Caption}}</caption>\n{{end}}",
	))

	RowTemplate = template.Must(template.New("row").Parse("" +
		"{{if .IsHeaderRow}}" +
		"  <tr>{{range $cell := .RawCells}}<th{{if $.CellStyle}} style='{{$.CellStyle}}'{{end}}>{{$cell}}</th>{{end}}</tr>\n" +
		"{{else}}" +
		"  <tr>{{range $cell := .RawCells}}<td{{if $.CellStyle}} style='{{$.CellStyle}}'{{end}}>{{$cell}}</td>{{end}}</tr>\n" +
		"{{end}}",
	))

	FooterTemplate = template.Must(template.New("footer").Parse(
		"</table>\n",
	))
)

type TemplateContext struct {
	TableClass string
	TableStyle template.CSS
	Caption    string
}

type RowTemplateContext struct {
	TemplateContext

	CellStyle   template.CSS
	IsHeaderRow bool
	RowIndex    int
	RawCells    []template.HTML
}
