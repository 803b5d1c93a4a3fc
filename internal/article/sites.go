package article

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"articled/internal/dom"
)

// siteWaitTimeout bounds the wait for a site's article container. It is a
// sub-deadline nested inside the caller's overall timeout via ctx.
const siteWaitTimeout = 5 * time.Second

func (e *Extractor) extractMedicalXpress(ctx context.Context, page dom.Page) Result {
	return e.extractSite(ctx, page, "medicalxpress", "article", "article p", 50)
}

func (e *Extractor) extractScienceDaily(ctx context.Context, page dom.Page) Result {
	return e.extractSite(ctx, page, "sciencedaily", "#story_text", "#story_text p", 30)
}

// extractSite waits for the site's known article container, reads all
// paragraphs under it, and keeps those longer than minLength. Any wait or
// query failure is absorbed here and reported as an unsuccessful Result so
// the orchestrator can fall back to the generic strategies.
func (e *Extractor) extractSite(ctx context.Context, page dom.Page, site, container, paragraphs string, minLength int) Result {
	if err := page.WaitFor(ctx, container, siteWaitTimeout); err != nil {
		e.log.Warn("site extraction failed",
			zap.String("site", site),
			zap.String("container", container),
			zap.Error(err))
		return Result{}
	}

	els, err := page.QueryAll(ctx, paragraphs)
	if err != nil {
		e.log.Warn("site extraction failed",
			zap.String("site", site),
			zap.Error(err))
		return Result{}
	}

	texts := make([]string, 0, len(els))
	for _, el := range els {
		text, err := el.Text(ctx)
		if err != nil {
			e.log.Warn("site extraction failed",
				zap.String("site", site),
				zap.Error(err))
			return Result{}
		}
		texts = append(texts, text)
	}

	texts = FilterParagraphs(texts, minLength, false)
	if len(texts) == 0 {
		return Result{}
	}

	return Result{
		Content:   strings.Join(texts, paragraphSeparator),
		HTML:      e.containerHTML(ctx, page, container),
		Succeeded: true,
	}
}

// containerHTML captures the container markup for the markdown formatter.
// Best effort only; extraction already succeeded at this point.
func (e *Extractor) containerHTML(ctx context.Context, page dom.Page, container string) string {
	el, err := page.Query(ctx, container)
	if err != nil || el == nil {
		return ""
	}
	html, err := el.HTML(ctx)
	if err != nil {
		return ""
	}
	return html
}
