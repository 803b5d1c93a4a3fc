package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"articled/internal/article"
	"articled/internal/browser"
	"articled/internal/config"
	"articled/internal/logger"
	"articled/internal/scrape"
	"articled/internal/server"
	"articled/internal/static"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the article extraction HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if port != 0 {
				cfg.Port = port
			}
			return runServe(cfg)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "P", 0, "Listen port (overrides ARTICLED_PORT)")

	return cmd
}

func runServe(cfg *config.Config) error {
	log, err := logger.New(cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync()

	b, err := browser.New(browser.Config{
		ProxyURL: cfg.ProxyURL,
		Headless: cfg.Headless,
	})
	if err != nil {
		return fmt.Errorf("failed to create browser: %w", err)
	}
	defer b.Close()

	var fallback *static.Extractor
	if cfg.StaticFallback {
		fallback = static.New(log)
	}

	svc := scrape.New(b, article.New(log), fallback, log)

	srv := server.New(server.Config{
		Port:           cfg.Port,
		DefaultTimeout: cfg.Timeout,
		AllowedOrigins: cfg.AllowedOrigins,
		ServiceVersion: version,
		Debug:          cfg.Debug,
	}, svc, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		return <-errCh
	}
}
