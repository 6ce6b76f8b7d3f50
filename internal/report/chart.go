// internal/report/chart.go

package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"

	"stylepulse/internal/domain/trend"
)

// ChartFileName is the chart path relative to the output directory.
const ChartFileName = "charts/top_trends.png"

// RenderTrendChart draws counts-over-time lines for the rising tags and
// writes the PNG to w. The chart needs at least two observed weeks and
// one rising tag; callers should check CanChart first.
func RenderTrendChart(w io.Writer, snap *trend.Snapshot) error {
	ticks := make([]chart.Tick, len(snap.Weeks))
	xs := make([]float64, len(snap.Weeks))
	for i, week := range snap.Weeks {
		ticks[i] = chart.Tick{Value: float64(i), Label: week}
		xs[i] = float64(i)
	}

	series := make([]chart.Series, 0, len(snap.Rising))
	for _, rising := range snap.Rising {
		tagSeries, ok := snap.Series(rising.Tag)
		if !ok {
			continue
		}
		ys := make([]float64, len(tagSeries.Posts))
		for i, posts := range tagSeries.Posts {
			ys[i] = float64(posts)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    rising.Tag,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: 2.0,
				DotWidth:    3.0,
			},
		})
	}

	graph := chart.Chart{
		Title:  "Rising Fashion Tags (posts per week)",
		Width:  1024,
		Height: 512,
		XAxis: chart.XAxis{
			Name:  "ISO Week",
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name: "Posts",
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(chart.PNG, w)
}

// CanChart reports whether there is enough data to draw a trend chart.
func CanChart(snap *trend.Snapshot) bool {
	return len(snap.Rising) > 0 && len(snap.Weeks) >= 2
}

// WriteTrendChart renders the chart under the output directory,
// creating the charts subdirectory as needed.
func WriteTrendChart(outputDir string, snap *trend.Snapshot) (string, error) {
	path := filepath.Join(outputDir, filepath.FromSlash(ChartFileName))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("error creating charts directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("error creating chart file: %w", err)
	}
	defer f.Close()

	if err := RenderTrendChart(f, snap); err != nil {
		return "", fmt.Errorf("error rendering chart: %w", err)
	}
	return path, nil
}
