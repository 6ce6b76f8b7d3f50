// cmd/stylepulse/fetch.go

package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"stylepulse/internal/adapter/social"
	"stylepulse/internal/adapter/storage"
	"stylepulse/internal/config"
)

var (
	fetchQuery string
	fetchOut   string
	fetchMax   int
)

// fetchCmd pulls recent posts from Twitter into the input CSV format
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch recent Twitter posts into the input CSV format",
	Long: `Runs a one-shot recent search against the Twitter API and writes the
results in the pipeline's input CSV format. Requires TWITTER_BEARER_TOKEN.`,
	RunE: fetchPosts,
}

func init() {
	fetchCmd.Flags().StringVar(&fetchQuery, "query", "", "search query, e.g. \"#ootd fashion\"")
	fetchCmd.Flags().StringVar(&fetchOut, "out", "data/fetched_posts.csv", "path to write the posts CSV")
	fetchCmd.Flags().IntVar(&fetchMax, "max", 0, "maximum results to fetch (overrides TWITTER_MAX_RESULTS)")
	fetchCmd.MarkFlagRequired("query")
}

func fetchPosts(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	client, err := social.NewTwitterClient(cfg.Twitter.BearerToken)
	if err != nil {
		return err
	}

	maxResults := cfg.Twitter.MaxResults
	if fetchMax > 0 {
		maxResults = fetchMax
	}

	posts, err := client.RecentPosts(cmd.Context(), fetchQuery, maxResults)
	if err != nil {
		return err
	}

	if err := storage.WritePosts(fetchOut, posts); err != nil {
		return err
	}

	log.Printf("Fetched %d posts to %s", len(posts), fetchOut)
	return nil
}
