package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "articled",
		Short:   "Article content extraction service",
		Version: version,
		Long: `articled extracts the main textual content of article web pages
rendered by a headless browser, discarding navigation, ads, and
boilerplate. It runs either as an HTTP service or as a one-shot
command-line scraper.`,
		Example: `  # Start the HTTP service
  articled serve

  # Extract one article to stdout
  articled scrape https://medicalxpress.com/news/some-article.html

  # Extract as markdown with a custom timeout
  articled scrape -f markdown -t 60s https://example.com/post

  # Skip the browser and extract from raw HTML
  articled scrape --static https://example.com/post`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newScrapeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
