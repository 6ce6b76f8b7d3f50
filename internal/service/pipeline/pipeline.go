// internal/service/pipeline/pipeline.go

package pipeline

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"stylepulse/internal/adapter/storage"
	"stylepulse/internal/domain/post"
	"stylepulse/internal/domain/trend"
	"stylepulse/internal/report"
	"stylepulse/internal/service/sentiment"
	"stylepulse/internal/service/tagging"
)

// SummaryFileName is the summary CSV path relative to the output
// directory.
const SummaryFileName = "weekly_tag_summary.csv"

// Config contains configuration for a pipeline run
type Config struct {
	InputCSV    string
	OutputDir   string
	TopN        int
	RecentWeeks int
}

// Pipeline runs the full batch job: load, tag, aggregate, rank, and
// write the three output artifacts. One Pipeline value is good for one
// configuration; Run may be called repeatedly.
type Pipeline struct {
	reader     *storage.PostReader
	tagger     *tagging.Tagger
	scorer     sentiment.Scorer
	aggregator trend.Aggregator
	ranker     trend.Ranker
	summaries  *storage.SummaryStore
	config     Config
}

// New creates a new pipeline. scorer may be nil, which disables
// sentiment output entirely.
func New(
	tagger *tagging.Tagger,
	scorer sentiment.Scorer,
	aggregator trend.Aggregator,
	ranker trend.Ranker,
	config Config,
) *Pipeline {
	return &Pipeline{
		reader:     storage.NewPostReader(),
		tagger:     tagger,
		scorer:     scorer,
		aggregator: aggregator,
		ranker:     ranker,
		summaries:  storage.NewSummaryStore(),
		config:     config,
	}
}

// Run executes the pipeline and returns the computed snapshot.
func (p *Pipeline) Run() (*trend.Snapshot, error) {
	if err := os.MkdirAll(p.config.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating output directory: %w", err)
	}

	posts, err := p.reader.ReadFile(p.config.InputCSV)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %d posts from %s", len(posts), p.config.InputCSV)

	tagged := p.tagPosts(posts)
	snapshot := p.Analyze(tagged)

	if snapshot.TotalMatches() == 0 {
		log.Printf("Warning: no vocabulary matches in input, writing empty outputs")
	}

	if err := p.writeOutputs(snapshot); err != nil {
		return nil, err
	}

	return snapshot, nil
}

// Analyze computes the snapshot for already-tagged posts without
// touching the filesystem.
func (p *Pipeline) Analyze(tagged []post.TaggedPost) *trend.Snapshot {
	buckets := p.aggregator.Aggregate(tagged)
	rising := p.ranker.Rising(buckets)

	weeks := []string{}
	seen := map[string]struct{}{}
	for _, b := range buckets {
		if _, ok := seen[b.Week]; !ok {
			seen[b.Week] = struct{}{}
			weeks = append(weeks, b.Week)
		}
	}

	return &trend.Snapshot{
		RunID:            uuid.NewString(),
		InputFile:        filepath.Base(p.config.InputCSV),
		GeneratedAt:      time.Now(),
		SentimentEnabled: p.scorer != nil,
		Weeks:            weeks,
		Buckets:          buckets,
		Rising:           rising,
	}
}

// tagPosts runs tagging and optional sentiment over the loaded posts.
func (p *Pipeline) tagPosts(posts []post.Post) []post.TaggedPost {
	tagged := make([]post.TaggedPost, 0, len(posts))
	for _, raw := range posts {
		tp := p.tagger.Tag(raw)
		if p.scorer != nil {
			score := p.scorer.Score(tp.Text)
			tp.Sentiment = &score
		}
		tagged = append(tagged, tp)
	}
	return tagged
}

// writeOutputs writes the summary CSV, the trend chart and the
// markdown report under the output directory.
func (p *Pipeline) writeOutputs(snapshot *trend.Snapshot) error {
	summaryPath := filepath.Join(p.config.OutputDir, SummaryFileName)
	if err := p.summaries.WriteFile(summaryPath, snapshot.Buckets, snapshot.SentimentEnabled); err != nil {
		return err
	}
	log.Printf("Wrote weekly summary: %s", summaryPath)

	hasChart := false
	if report.CanChart(snapshot) {
		chartPath, err := report.WriteTrendChart(p.config.OutputDir, snapshot)
		if err != nil {
			return err
		}
		hasChart = true
		log.Printf("Wrote trend chart: %s", chartPath)
	} else {
		log.Printf("Warning: not enough data for a trend chart, skipping")
	}

	risingTags := make([]string, 0, len(snapshot.Rising))
	for _, r := range snapshot.Rising {
		risingTags = append(risingTags, r.Tag)
	}

	reportPath, err := report.WriteSummary(p.config.OutputDir, report.Summary{
		RunID:            snapshot.RunID,
		InputFile:        snapshot.InputFile,
		RecentWeeks:      p.config.RecentWeeks,
		RisingTags:       risingTags,
		TopEngagement:    p.aggregator.TopEngagement(snapshot.Buckets, p.config.TopN),
		HasChart:         hasChart,
		ChartPath:        report.ChartFileName,
		SentimentEnabled: snapshot.SentimentEnabled,
	})
	if err != nil {
		return err
	}
	log.Printf("Wrote report: %s", reportPath)

	return nil
}
