package article

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"articled/internal/dom"
)

// GenericSelectors are the fallback container strategies, in decreasing
// specificity. Order matters: the acceptance gate depends on trying them
// top-to-bottom.
var GenericSelectors = []string{
	"article",
	`[role="main"]`,
	".article-content",
	".entry-content",
	".post-content",
	"main",
}

const (
	// genericMinLength drops short paragraphs (navigation, captions, ads).
	genericMinLength = 50
	// acceptWordCount is the gate between "found something" and "found
	// enough": a candidate at or below it is discarded and the search
	// continues with the next selector.
	acceptWordCount = 100
)

// extractGeneric tries each fallback selector in order until one yields a
// candidate that clears the acceptance gate. A failing selector is logged
// and treated as no match for that selector only.
func (e *Extractor) extractGeneric(ctx context.Context, page dom.Page) Result {
	for _, selector := range GenericSelectors {
		if ctx.Err() != nil {
			return Result{}
		}
		res, err := e.trySelector(ctx, page, selector)
		if err != nil {
			e.log.Warn("selector strategy failed",
				zap.String("selector", selector),
				zap.Error(err))
			continue
		}
		if res.Succeeded {
			return res
		}
	}
	return Result{}
}

func (e *Extractor) trySelector(ctx context.Context, page dom.Page, selector string) (Result, error) {
	root, err := page.Query(ctx, selector)
	if err != nil {
		return Result{}, err
	}
	if root == nil {
		return Result{}, nil
	}

	els, err := root.QueryAll(ctx, "p")
	if err != nil {
		return Result{}, err
	}

	texts := make([]string, 0, len(els))
	for _, el := range els {
		text, err := el.Text(ctx)
		if err != nil {
			return Result{}, err
		}
		texts = append(texts, text)
	}

	texts = FilterParagraphs(texts, genericMinLength, true)
	if len(texts) == 0 {
		return Result{}, nil
	}

	content := strings.Join(texts, paragraphSeparator)
	if WordCount(content) <= acceptWordCount {
		// Non-empty but too short to trust, e.g. a lone caption inside
		// an <article>. Keep searching.
		return Result{}, nil
	}

	html, _ := root.HTML(ctx)
	return Result{Content: content, HTML: html, Succeeded: true}, nil
}
