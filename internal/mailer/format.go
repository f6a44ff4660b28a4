package mailer

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
)

// OrderLine is one row of the product table.
type OrderLine struct {
	Product    string
	Sku        string
	Color      string
	Size       string
	Units      int
	ResizeFrom string
	Notes      string
}

type OrderMessage struct {
	OrderNumber string
	VendorName  string
	FirstName   string
	Message     string
	Lines       []OrderLine
}

type Rendered struct {
	Subject string
	Text    string
	HTML    string
}

var htmlBody = htmltemplate.Must(htmltemplate.New("order.html").Funcs(htmltemplate.FuncMap{
	"paragraphs": paragraphs,
}).Parse(`<div style="font-family:Helvetica,Arial,sans-serif;font-size:14px">
<p>Hi {{.Greeting}},</p>
{{range paragraphs .Message}}<p>{{range $i, $l := .}}{{if $i}}<br>{{end}}{{$l}}{{end}}</p>
{{end}}<table cellpadding="6" cellspacing="0" border="1" style="border-collapse:collapse">
<thead><tr><th>Product</th><th>SKU</th><th>Color</th><th>Size</th><th>Units</th><th>Resize From</th><th>Notes</th></tr></thead>
<tbody>
{{range .Lines}}<tr><td>{{.Product}}</td><td>{{.Sku}}</td><td>{{.Color}}</td><td>{{.Size}}</td><td>{{.Units}}</td><td>{{.ResizeFrom}}</td><td>{{.Notes}}</td></tr>
{{end}}</tbody>
</table>
<p>Order {{.OrderNumber}}</p>
</div>
`))

var textBody = texttemplate.Must(texttemplate.New("order.txt").Parse(`Hi {{.Greeting}},

{{if .Message}}{{.Message}}

{{end}}{{range .Lines}}- {{.Product}}{{if .Sku}} [{{.Sku}}]{{end}}{{if .Color}}, {{.Color}}{{end}}{{if .Size}}, size {{.Size}}{{end}}: {{.Units}} unit(s){{if .ResizeFrom}}, resize from {{.ResizeFrom}}{{end}}{{if .Notes}} ({{.Notes}}){{end}}
{{end}}
Order {{.OrderNumber}}
`))

type view struct {
	OrderMessage
	Greeting string
}

// FormatVendorOrder renders the subject, plain text and HTML bodies of a vendor order email.
func FormatVendorOrder(m OrderMessage) (Rendered, error) {
	v := view{OrderMessage: m, Greeting: strings.TrimSpace(m.FirstName)}
	if v.Greeting == "" {
		v.Greeting = strings.TrimSpace(m.VendorName)
	}
	if v.Greeting == "" {
		v.Greeting = "there"
	}
	v.Message = strings.TrimSpace(strings.ReplaceAll(m.Message, "\r\n", "\n"))

	var html, text bytes.Buffer
	if err := htmlBody.Execute(&html, v); err != nil {
		return Rendered{}, fmt.Errorf("render html body: %w", err)
	}
	if err := textBody.Execute(&text, v); err != nil {
		return Rendered{}, fmt.Errorf("render text body: %w", err)
	}
	return Rendered{
		Subject: "Vendor Order " + m.OrderNumber,
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}

// paragraphs splits on blank lines, then each paragraph into its lines.
func paragraphs(s string) [][]string {
	if s == "" {
		return nil
	}
	var out [][]string
	for _, p := range strings.Split(s, "\n\n") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, strings.Split(p, "\n"))
	}
	return out
}
