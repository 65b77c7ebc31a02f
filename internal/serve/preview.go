package serve

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/viewportlabs/breakline/internal/generate"
	"github.com/viewportlabs/breakline/pkg/mediaquery"
)

// previewTemplate renders one row per breakpoint. Each row carries a
// media-gated style rule, so the rows matching the current viewport
// light up as the browser is resized.
var previewTemplate = template.Must(template.New("preview").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>breakline preview</title>
<style>
  body { font-family: ui-monospace, monospace; margin: 2rem; }
  h1 { font-size: 1.2rem; }
  table { border-collapse: collapse; }
  td, th { border: 1px solid #ccc; padding: 0.4rem 0.8rem; text-align: left; }
  tr.bp { opacity: 0.45; }
{{- range .Rows }}
  {{ .Media }} { #bp-{{ .ID }} { opacity: 1; background: #e6f4e6; } }
{{- end }}
</style>
</head>
<body>
<h1>breakline preview</h1>
<p>Resize this window; active breakpoints highlight.</p>
<table>
<tr><th>path</th><th>envelope</th><th>condition</th></tr>
{{- range .Rows }}
<tr class="bp" id="bp-{{ .ID }}"><td>{{ .Path }}</td><td>{{ .Envelope }}</td><td>{{ .Condition }}</td></tr>
{{- end }}
</table>
<script>
  new EventSource("/__reload").onmessage = function (e) {
    if (e.data === "reload") location.reload();
  };
</script>
</body>
</html>
`))

type previewRow struct {
	ID        string
	Path      string
	Envelope  string
	Media     template.CSS
	Condition string
}

type previewData struct {
	Rows []previewRow
}

func renderPreview(entries []generate.Entry, conv mediaquery.Converter) ([]byte, error) {
	data := previewData{}
	for _, e := range entries {
		q := mediaquery.FromRange(e.Range, conv)
		data.Rows = append(data.Rows, previewRow{
			ID:        e.Name,
			Path:      strings.Join(e.Path, "."),
			Envelope:  e.Range.String(),
			Media:     template.CSS(q.String()),
			Condition: q.Condition(),
		})
	}

	var buf bytes.Buffer
	if err := previewTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
