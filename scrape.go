package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"articled/internal/article"
	"articled/internal/browser"
	"articled/internal/format"
	"articled/internal/logger"
	"articled/internal/scrape"
	"articled/internal/static"
)

func newScrapeCmd() *cobra.Command {
	var (
		outputFormat string
		outputFile   string
		timeout      time.Duration
		useStatic    bool
		showUI       bool
		proxyURL     string
		debug        bool
	)

	cmd := &cobra.Command{
		Use:   "scrape [URL]",
		Short: "Extract one article and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(outputFormat); err != nil {
				return err
			}

			target := scrape.NormalizeURL(args[0])

			log, err := logger.New(debug)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer log.Sync()

			res, err := runScrape(context.Background(), log, target, timeout, useStatic, showUI, proxyURL)
			if err != nil {
				return err
			}
			if !res.Succeeded {
				return fmt.Errorf("no content found at %s", target)
			}

			out, err := format.Format(res, outputFormat)
			if err != nil {
				return fmt.Errorf("failed to format output: %w", err)
			}

			if outputFile != "" {
				if err := os.WriteFile(outputFile, []byte(out), 0644); err != nil {
					return fmt.Errorf("failed to write to file: %w", err)
				}
				fmt.Fprintf(os.Stderr, "Output written to: %s\n", outputFile)
				return nil
			}
			fmt.Println(out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format (text, json, markdown)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file path")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 30*time.Second, "Navigation timeout")
	cmd.Flags().BoolVar(&useStatic, "static", false, "Fetch raw HTML instead of rendering in a browser")
	cmd.Flags().BoolVar(&showUI, "showui", false, "Show browser UI (disable headless mode)")
	cmd.Flags().StringVarP(&proxyURL, "proxy", "p", os.Getenv("ARTICLED_PROXY"), "Proxy URL, defaults to ARTICLED_PROXY env var")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")

	return cmd
}

func runScrape(ctx context.Context, log *zap.Logger, target string, timeout time.Duration, useStatic, showUI bool, proxyURL string) (article.Result, error) {
	if useStatic {
		return static.New(log).Extract(ctx, target)
	}

	b, err := browser.New(browser.Config{
		ProxyURL: proxyURL,
		Headless: !showUI,
	})
	if err != nil {
		return article.Result{}, fmt.Errorf("failed to create browser: %w", err)
	}
	defer b.Close()

	svc := scrape.New(b, article.New(log), static.New(log), log)
	return svc.Scrape(ctx, target, timeout)
}

func validateFormat(f string) error {
	switch f {
	case "text", "json", "markdown":
		return nil
	}
	return fmt.Errorf("invalid output format: %s", f)
}
