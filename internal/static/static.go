// Package static extracts article content from raw HTML without a browser.
// It mirrors the generic extractor's decision rules (same selector order,
// paragraph filter, and acceptance gate) over a plain HTTP fetch, and is
// used when the page cannot be rendered.
package static

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"go.uber.org/zap"

	"articled/internal/article"
)

const (
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// maxBodySize caps how much HTML is read from a page.
	maxBodySize = 10 << 20

	minParagraphLength = 50
	acceptWordCount    = 100
)

// Extractor fetches a page over plain HTTP and extracts its article body.
type Extractor struct {
	client *http.Client
	log    *zap.Logger
}

// New creates a static Extractor.
func New(log *zap.Logger) *Extractor {
	return &Extractor{
		client: &http.Client{Timeout: 30 * time.Second},
		log:    log,
	}
}

// Extract fetches pageURL and runs selector extraction over the raw HTML,
// with readability as a last resort. A fetch or parse failure is an error;
// finding no acceptable content is an unsuccessful Result.
func (e *Extractor) Extract(ctx context.Context, pageURL string) (article.Result, error) {
	raw, err := e.fetch(ctx, pageURL)
	if err != nil {
		return article.Result{}, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return article.Result{}, fmt.Errorf("failed to parse HTML: %w", err)
	}

	for _, selector := range article.GenericSelectors {
		if res, ok := trySelection(doc.Find(selector).First()); ok {
			return res, nil
		}
	}

	return e.extractReadability(pageURL, raw), nil
}

func (e *Extractor) fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d fetching page", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("failed to read page body: %w", err)
	}
	return string(body), nil
}

// trySelection applies the paragraph filter and acceptance gate to one
// container candidate.
func trySelection(sel *goquery.Selection) (article.Result, bool) {
	if sel.Length() == 0 {
		return article.Result{}, false
	}

	var texts []string
	sel.Find("p").Each(func(_ int, p *goquery.Selection) {
		texts = append(texts, p.Text())
	})

	texts = article.FilterParagraphs(texts, minParagraphLength, true)
	if len(texts) == 0 {
		return article.Result{}, false
	}

	content := strings.Join(texts, "\n\n")
	if article.WordCount(content) <= acceptWordCount {
		return article.Result{}, false
	}

	html, _ := goquery.OuterHtml(sel)
	return article.Result{Content: content, HTML: html, Succeeded: true}, true
}

// extractReadability lets go-readability pick the main content when no
// known container selector matched. The same filter and gate still apply.
func (e *Extractor) extractReadability(pageURL, raw string) article.Result {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return article.Result{}
	}

	parser := readability.NewParser()
	a, err := parser.Parse(strings.NewReader(raw), parsedURL)
	if err != nil {
		e.log.Warn("readability extraction failed", zap.Error(err))
		return article.Result{}
	}

	texts := article.FilterParagraphs(strings.Split(a.TextContent, "\n"), minParagraphLength, true)
	if len(texts) == 0 {
		return article.Result{}
	}

	content := strings.Join(texts, "\n\n")
	if article.WordCount(content) <= acceptWordCount {
		return article.Result{}
	}

	return article.Result{Content: content, HTML: a.Content, Succeeded: true}
}
