// internal/report/markdown.go

package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"stylepulse/internal/domain/trend"
)

// ReportFileName is the markdown report path relative to the output
// directory.
const ReportFileName = "report_summary.md"

const summaryTemplate = `# Weekly Fashion Trend Summary

**Run ID:** {{.RunID}}

**Input file:** ` + "`{{.InputFile}}`" + `

{{if .RisingTags -}}
**Top rising tags (last {{.RecentWeeks}} weeks):** {{join .RisingTags ", "}}
{{- else -}}
**Top rising tags:** none detected
{{- end}}

**Tags with highest average engagement:**
{{range .TopEngagement}}
- {{.Tag}}: {{printf "%.1f" .AvgEngagement}}
{{- else}}
- none
{{- end}}

{{if .HasChart -}}
![Top Trends]({{.ChartPath}})

{{end -}}
**Notes:** Counts come from simple tag/keyword matching.
{{- if .SentimentEnabled}} Sentiment uses the VADER lexicon.{{end}}
`

// Summary holds the data the markdown report is rendered from.
type Summary struct {
	RunID            string
	InputFile        string
	RecentWeeks      int
	RisingTags       []string
	TopEngagement    []trend.TagEngagement
	HasChart         bool
	ChartPath        string
	SentimentEnabled bool
}

var reportTemplate = template.Must(
	template.New("report").Funcs(template.FuncMap{"join": strings.Join}).Parse(summaryTemplate),
)

// RenderSummary writes the markdown report to w.
func RenderSummary(w io.Writer, summary Summary) error {
	return reportTemplate.Execute(w, summary)
}

// WriteSummary renders the markdown report under the output directory.
func WriteSummary(outputDir string, summary Summary) (string, error) {
	path := filepath.Join(outputDir, ReportFileName)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("error creating report file: %w", err)
	}
	defer f.Close()

	if err := RenderSummary(f, summary); err != nil {
		return "", fmt.Errorf("error rendering report: %w", err)
	}
	return path, nil
}
