package article

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"articled/internal/dom"
)

// ExtractFunc is a single extraction strategy. Strategies absorb their own
// failures and report them as an unsuccessful Result.
type ExtractFunc func(ctx context.Context, page dom.Page) Result

// SiteRule binds a URL substring pattern to a site-specific extraction
// routine. Rules are evaluated top-to-bottom; the first match wins.
type SiteRule struct {
	Pattern string
	Extract ExtractFunc
}

// Extractor dispatches a page to the matching site rule and falls back to
// the generic selector strategies. The rule table is built once and never
// mutated, so an Extractor is safe for concurrent use.
type Extractor struct {
	rules   []SiteRule
	generic ExtractFunc
	log     *zap.Logger
}

// New creates an Extractor with the built-in site rules registered.
func New(log *zap.Logger) *Extractor {
	e := &Extractor{log: log}
	e.rules = []SiteRule{
		{Pattern: "medicalxpress.com", Extract: e.extractMedicalXpress},
		{Pattern: "sciencedaily.com", Extract: e.extractScienceDaily},
	}
	e.generic = e.extractGeneric
	return e
}

// Extract runs the matching site routine, if any, and returns its result
// when it succeeds. Otherwise the generic fallback is tried. Both failing
// yields an unsuccessful empty Result, which is a normal outcome.
func (e *Extractor) Extract(ctx context.Context, page dom.Page, url string) Result {
	for _, rule := range e.rules {
		if !strings.Contains(url, rule.Pattern) {
			continue
		}
		if res := rule.Extract(ctx, page); res.Succeeded {
			return res
		}
		break
	}
	return e.generic(ctx, page)
}
