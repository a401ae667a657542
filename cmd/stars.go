// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aknsh/devtools/internal/domain"
	"github.com/aknsh/devtools/internal/gateway"
	"github.com/aknsh/devtools/internal/usecase"
)

var starsCmd = &cobra.Command{
	Use:   "stars",
	Short: "Finds the most starred repositories created in a date range",
	Long: `Searches GitHub for repositories created in the given date range, ranks
them by star count and prints the top results as a table. The range defaults
to the last 30 days. Set GITHUB_TOKEN to raise the API rate limit;
unauthenticated requests work at a lower one.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		// Get the verbose flag from the root command to set up the logger.
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := log.New(io.Discard, "", log.LstdFlags) // Default: discard all logs.
		if verbose {
			logger.SetOutput(os.Stderr) // If verbose, log to standard error.
		}

		// Get other flags.
		fromStr, _ := cmd.Flags().GetString("from")
		toStr, _ := cmd.Flags().GetString("to")
		count, _ := cmd.Flags().GetInt("count")
		language, _ := cmd.Flags().GetString("language")
		exportPath, _ := cmd.Flags().GetString("export")

		if count <= 0 {
			fmt.Fprintln(os.Stderr, "Error: --count must be greater than 0")
			os.Exit(1)
		}

		dateRange, err := domain.ResolveDateRange(fromStr, toStr, time.Now())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		// The token is optional; absence just means a lower rate limit.
		token := os.Getenv("GITHUB_TOKEN")

		fmt.Fprintf(os.Stderr, "Searching for the top %d repositories by stars\n", count)
		fmt.Fprintf(os.Stderr, "Date range: %s\n", dateRange)
		if language != "" {
			fmt.Fprintf(os.Stderr, "Language: %s\n", language)
		}
		fmt.Fprintln(os.Stderr)

		githubGateway, err := gateway.NewGitHubGateway(token, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create GitHub gateway: %v\n", err)
			os.Exit(1)
		}

		repos, err := githubGateway.SearchRepositories(ctx, dateRange, language, count)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if len(repos) == 0 {
			fmt.Println("No repositories found in the specified date range.")
			return
		}

		ranked := usecase.Rank(repos, count)
		if err := usecase.RenderTable(os.Stdout, ranked); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to render results: %v\n", err)
			os.Exit(1)
		}

		summary := usecase.SummarizeStars(ranked)
		fmt.Printf("\n%d repositories, mean stars %.1f, median %.1f\n", len(ranked), summary.Mean, summary.Median)

		if exportPath != "" {
			written, err := usecase.ExportJSON(exportPath, ranked)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Results exported to %s\n", written)
		}
	},
}

func init() {
	rootCmd.AddCommand(starsCmd)
	starsCmd.Flags().String("from", "", "Start date (YYYY-MM-DD, default: 30 days ago)")
	starsCmd.Flags().String("to", "", "End date (YYYY-MM-DD, default: today)")
	starsCmd.Flags().IntP("count", "c", 10, "Number of repositories to display")
	starsCmd.Flags().StringP("language", "l", "", "Filter repositories by programming language")
	starsCmd.Flags().StringP("export", "e", "", "Export results to a JSON file")
}
