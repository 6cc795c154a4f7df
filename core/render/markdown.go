package render

import (
	"bytes"
	"fmt"
	"html/template"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/trailboard/norquay/core"
)

// reportHTML lays the report out as HTML; html-to-markdown turns it into
// Markdown so that escaping of scraped names is handled in one place.
var reportHTML = template.Must(template.New("report").Funcs(template.FuncMap{
	"cm":    Cm,
	"temp":  TempC,
	"note":  Note,
	"stamp": Stamp,
	"runs":  SortedRuns,
}).Parse(`<h1>Norquay conditions</h1>
<p><em>Source: {{.Source}}. Updated {{stamp .UpdatedAt}}.</em></p>
{{with .Conditions}}
<h2>Weather</h2>
<ul>
<li><strong>Temperature:</strong> {{temp .TempC}}</li>
<li><strong>Note:</strong> {{note .Note}}</li>
</ul>
<h2>New snow</h2>
<ul>
<li><strong>Overnight:</strong> {{cm .NewSnow.OvernightCm}}</li>
<li><strong>Last 24h:</strong> {{cm .NewSnow.Last24Cm}}</li>
<li><strong>Last 7d:</strong> {{cm .NewSnow.Last7DaysCm}}</li>
</ul>
<h2>Snow base</h2>
<ul>
<li><strong>Lower:</strong> {{cm .SnowBase.LowerCm}}</li>
<li><strong>Upper:</strong> {{cm .SnowBase.UpperCm}}</li>
<li><strong>YTD snowfall:</strong> {{cm .SnowBase.YTDSnowfallCm}}{{with .SnowBase.YTDSnowfall2Cm}} / {{cm .}}{{end}}</li>
</ul>
{{end}}
{{with .Lifts}}
<h2>Lifts</h2>
<ul>
{{range runs .}}<li><strong>{{.Name}}</strong>: {{.Status}}</li>
{{end}}</ul>
{{end}}
{{with .Runs}}
<h2>Runs</h2>
<ul>
{{range runs .}}<li><strong>{{.Name}}</strong>: {{.Status}}{{if .Groomed}} (groomed){{end}}</li>
{{end}}</ul>
{{end}}
{{if or .Applied .NotFound}}
<p>Applied: {{.Applied}}. Not found: {{.NotFound}}.</p>
{{with .Missing}}<ul>{{range .}}<li>{{.}}</li>{{end}}</ul>{{end}}
{{end}}`))

// MarkdownRenderer renders the report as Markdown.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render executes the report layout and converts it to Markdown.
func (r *MarkdownRenderer) Render(report core.Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := reportHTML.Execute(&buf, report); err != nil {
		return nil, fmt.Errorf("executing report template: %w", err)
	}

	markdown, err := htmltomarkdown.ConvertString(buf.String())
	if err != nil {
		return nil, fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return []byte(markdown + "\n"), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
