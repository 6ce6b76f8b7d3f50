// cmd/stylepulse/main.go

package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	inputCSV  string
	outputDir string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "stylepulse",
	Short: "Weekly fashion trend analytics over social-media posts",
	Long: `stylepulse ingests a CSV of social-media fashion posts, derives weekly
keyword-tag trend statistics, an engagement score and optional sentiment,
and writes a summary CSV, a trend chart and a short markdown report.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&inputCSV, "input_csv", "", "path to the posts CSV (overrides STYLEPULSE_INPUT_CSV)")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output_dir", "", "directory for output files (overrides STYLEPULSE_OUTPUT_DIR)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(fetchCmd)
}

func main() {
	// A .env file is optional
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
