// cmd/stylepulse/run.go

package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"stylepulse/internal/config"
	"stylepulse/internal/service/analytics"
	"stylepulse/internal/service/pipeline"
	"stylepulse/internal/service/sentiment"
	"stylepulse/internal/service/tagging"
)

// runCmd executes the batch pipeline once
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the trend pipeline over the input CSV",
	Long: `Loads the input CSV, tags each post against the keyword vocabulary,
aggregates weekly per-tag statistics and writes weekly_tag_summary.csv,
charts/top_trends.png and report_summary.md to the output directory.`,
	RunE: runPipeline,
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	p, err := buildPipeline(cfg)
	if err != nil {
		return err
	}

	snapshot, err := p.Run()
	if err != nil {
		return err
	}

	log.Printf("Pipeline finished: %d weeks, %d buckets, %d rising tags (run %s)",
		len(snapshot.Weeks), len(snapshot.Buckets), len(snapshot.Rising), snapshot.RunID)
	return nil
}

// buildPipeline wires the pipeline services from configuration, with
// CLI flags taking precedence over the environment.
func buildPipeline(cfg config.Config) (*pipeline.Pipeline, error) {
	if inputCSV != "" {
		cfg.Pipeline.InputCSV = inputCSV
	}
	if outputDir != "" {
		cfg.Pipeline.OutputDir = outputDir
	}

	vocabulary := tagging.DefaultVocabulary()
	if cfg.Pipeline.VocabFile != "" {
		loaded, err := tagging.LoadVocabulary(cfg.Pipeline.VocabFile)
		if err != nil {
			return nil, err
		}
		vocabulary = loaded
	}

	var scorer sentiment.Scorer
	if cfg.Pipeline.Sentiment {
		scorer = sentiment.NewAnalyzer()
	} else {
		log.Printf("Sentiment scoring disabled, avg_sentiment will be omitted")
	}

	return pipeline.New(
		tagging.NewTagger(vocabulary),
		scorer,
		analytics.NewAggregator(),
		analytics.NewRanker(analytics.RankerConfig{
			RecentWeeks: cfg.Pipeline.RecentWeeks,
			TopN:        cfg.Pipeline.TopN,
		}),
		pipeline.Config{
			InputCSV:    cfg.Pipeline.InputCSV,
			OutputDir:   cfg.Pipeline.OutputDir,
			TopN:        cfg.Pipeline.TopN,
			RecentWeeks: cfg.Pipeline.RecentWeeks,
		},
	), nil
}
