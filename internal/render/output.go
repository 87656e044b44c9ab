package render

import (
	"fmt"
	"html/template"
	"io"
	"strings"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; max-width: 40rem; margin: 2rem auto; padding: 0 1rem; color: #262730; }
.metric { margin: 1rem 0; }
.metric .label { font-size: 0.9rem; color: #555; }
.metric .value { font-size: 2rem; }
.caption { font-size: 0.85rem; color: #777; margin: 0.25rem 0; }
.error { background: #fde8e8; color: #9b1c1c; padding: 1rem; border-radius: 0.5rem; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p>{{.Description}}</p>
{{- if .Error}}
<div class="error" role="alert">{{.Error}}</div>
{{- else}}
{{- range .Inputs}}
<div class="metric"><div class="label">{{.Label}}</div><div class="value">{{.Value}}</div></div>
{{- end}}
<hr>
{{- with .Composite}}
<div class="metric composite"><div class="label">{{.Label}}</div><div class="value">{{.Value}}</div></div>
{{- end}}
{{- range .Captions}}
<p class="caption">{{.}}</p>
{{- end}}
{{- end}}
</body>
</html>
`))

// HTML writes the page as a standalone HTML document.
func HTML(w io.Writer, p Page) error {
	return pageTemplate.Execute(w, p)
}

// Text writes the page for a terminal.
func Text(w io.Writer, p Page) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n%s\n\n", p.Title, p.Description)
	if p.Failed() {
		fmt.Fprintf(&b, "ERROR: %s\n", p.Error)
		_, err := io.WriteString(w, b.String())
		return err
	}

	for _, m := range p.Inputs {
		fmt.Fprintf(&b, "%-30s %s\n", m.Label, m.Value)
	}
	b.WriteString("---\n")
	if p.Composite != nil {
		fmt.Fprintf(&b, "%-30s %s\n", p.Composite.Label, p.Composite.Value)
	}
	for _, c := range p.Captions {
		fmt.Fprintf(&b, "%s\n", c)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
