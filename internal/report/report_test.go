package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stylepulse/internal/domain/trend"
)

func testSnapshot() *trend.Snapshot {
	return &trend.Snapshot{
		RunID:       "run-1234",
		InputFile:   "sample_posts.csv",
		GeneratedAt: time.Now(),
		Weeks:       []string{"2025-W27", "2025-W28", "2025-W29", "2025-W30"},
		Buckets: []trend.WeekBucket{
			{Week: "2025-W27", Tag: "denim", Posts: 1, AvgEngagement: 10},
			{Week: "2025-W28", Tag: "denim", Posts: 2, AvgEngagement: 20},
			{Week: "2025-W29", Tag: "denim", Posts: 4, AvgEngagement: 30},
			{Week: "2025-W30", Tag: "denim", Posts: 6, AvgEngagement: 40},
			{Week: "2025-W30", Tag: "red", Posts: 1, AvgEngagement: 99},
		},
		Rising: []trend.RisingTag{
			{Tag: "denim", Recent: 10, Prior: 3, Delta: 7},
			{Tag: "red", Recent: 1, Prior: 0, Delta: 1},
		},
	}
}

func TestRenderTrendChartProducesPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTrendChart(&buf, testSnapshot()))

	// PNG magic bytes
	require.Greater(t, buf.Len(), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, buf.Bytes()[:4])
}

func TestWriteTrendChartCreatesChartsDir(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteTrendChart(dir, testSnapshot())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "charts", "top_trends.png"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestCanChart(t *testing.T) {
	snap := testSnapshot()
	assert.True(t, CanChart(snap))

	assert.False(t, CanChart(&trend.Snapshot{Weeks: snap.Weeks}))
	assert.False(t, CanChart(&trend.Snapshot{Weeks: []string{"2025-W30"}, Rising: snap.Rising}))
}

func TestRenderSummarySections(t *testing.T) {
	var buf bytes.Buffer
	err := RenderSummary(&buf, Summary{
		RunID:       "run-1234",
		InputFile:   "sample_posts.csv",
		RecentWeeks: 2,
		RisingTags:  []string{"denim", "red"},
		TopEngagement: []trend.TagEngagement{
			{Tag: "red", AvgEngagement: 99},
			{Tag: "denim", AvgEngagement: 25.25},
		},
		HasChart:         true,
		ChartPath:        ChartFileName,
		SentimentEnabled: true,
	})
	require.NoError(t, err)

	rendered := buf.String()
	assert.Contains(t, rendered, "# Weekly Fashion Trend Summary")
	assert.Contains(t, rendered, "**Run ID:** run-1234")
	assert.Contains(t, rendered, "**Input file:** `sample_posts.csv`")
	assert.Contains(t, rendered, "**Top rising tags (last 2 weeks):** denim, red")
	assert.Contains(t, rendered, "- red: 99.0")
	assert.Contains(t, rendered, "- denim: 25.2")
	assert.Contains(t, rendered, "![Top Trends](charts/top_trends.png)")
	assert.Contains(t, rendered, "Sentiment uses the VADER lexicon")
}

func TestRenderSummaryEmptyRun(t *testing.T) {
	var buf bytes.Buffer
	err := RenderSummary(&buf, Summary{
		RunID:     "run-5678",
		InputFile: "empty.csv",
	})
	require.NoError(t, err)

	rendered := buf.String()
	assert.Contains(t, rendered, "**Top rising tags:** none detected")
	assert.Contains(t, rendered, "- none")
	assert.NotContains(t, rendered, "![Top Trends]")
	assert.NotContains(t, rendered, "VADER")
}
