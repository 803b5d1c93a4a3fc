// Package scrape drives the browser through one full scrape: page creation,
// navigation, load waits, and extraction. One page per request, released on
// every path.
package scrape

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"

	"articled/internal/article"
	"articled/internal/browser"
	"articled/internal/dom"
	"articled/internal/static"
)

// settleDelay gives JS-driven pages time to finish populating content after
// the network goes idle.
const settleDelay = 2 * time.Second

// Service scrapes article content from URLs using a shared browser process.
// Pages are created per call and never shared between in-flight scrapes.
type Service struct {
	browser   *browser.Browser
	extractor *article.Extractor
	fallback  *static.Extractor
	log       *zap.Logger
}

// New creates a scrape Service. fallback may be nil to disable the static
// fetch retry when rendering fails.
func New(b *browser.Browser, extractor *article.Extractor, fallback *static.Extractor, log *zap.Logger) *Service {
	return &Service{
		browser:   b,
		extractor: extractor,
		fallback:  fallback,
		log:       log,
	}
}

// Scrape loads target in the browser and extracts its article content. A
// browser or navigation failure is an error; a page that loads but yields
// no acceptable content is an unsuccessful Result with a nil error.
func (s *Service) Scrape(ctx context.Context, target string, timeout time.Duration) (article.Result, error) {
	res, err := s.render(ctx, target, timeout)
	if err != nil {
		if s.fallback == nil {
			return article.Result{}, err
		}
		s.log.Warn("browser scrape failed, retrying with static fetch",
			zap.String("url", target),
			zap.Error(err))
		return s.fallback.Extract(ctx, target)
	}
	return res, nil
}

func (s *Service) render(ctx context.Context, target string, timeout time.Duration) (article.Result, error) {
	start := time.Now()

	page, err := s.browser.NewPage()
	if err != nil {
		return article.Result{}, fmt.Errorf("failed to create page: %w", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Timeout(timeout).Navigate(target); err != nil {
		return article.Result{}, fmt.Errorf("failed to navigate: %w", err)
	}
	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return article.Result{}, fmt.Errorf("failed to wait for page load: %w", err)
	}

	// Wait for network idle so JS-driven pages finish populating dynamic
	// content before extraction.
	wait := page.Timeout(timeout).WaitRequestIdle(
		500*time.Millisecond, nil, nil,
		[]proto.NetworkResourceType{proto.NetworkResourceTypeImage, proto.NetworkResourceTypeMedia},
	)
	wait()

	select {
	case <-time.After(settleDelay):
	case <-ctx.Done():
		return article.Result{}, ctx.Err()
	}

	res := s.extractor.Extract(ctx, dom.FromRod(page), target)

	s.log.Info("extraction finished",
		zap.String("url", target),
		zap.Bool("success", res.Succeeded),
		zap.Int("word_count", article.WordCount(res.Content)),
		zap.Duration("elapsed", time.Since(start)))

	return res, nil
}

// NormalizeURL adds http:// when the URL has no protocol prefix.
func NormalizeURL(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return rawURL
	}
	lower := strings.ToLower(rawURL)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return "http://" + rawURL
	}
	return rawURL
}
