package dom

import (
	"context"
	"time"

	"github.com/go-rod/rod"
)

// rodPage adapts a *rod.Page to the Page interface.
type rodPage struct {
	page *rod.Page
}

// FromRod wraps a live rod page so the extraction code can query it through
// the Page interface.
func FromRod(page *rod.Page) Page {
	return &rodPage{page: page}
}

func (p *rodPage) WaitFor(ctx context.Context, selector string, timeout time.Duration) error {
	// The default sleeper retries until the element appears or the nested
	// deadline (bounded by ctx) expires.
	_, err := p.page.Context(ctx).Timeout(timeout).Element(selector)
	return err
}

func (p *rodPage) Query(ctx context.Context, selector string) (Element, error) {
	has, el, err := p.page.Context(ctx).Has(selector)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, nil
	}
	return &rodElement{el: el}, nil
}

func (p *rodPage) QueryAll(ctx context.Context, selector string) ([]Element, error) {
	els, err := p.page.Context(ctx).Elements(selector)
	if err != nil {
		return nil, err
	}
	return wrapElements(els), nil
}

// rodElement adapts a *rod.Element to the Element interface.
type rodElement struct {
	el *rod.Element
}

func (e *rodElement) Text(ctx context.Context) (string, error) {
	return e.el.Context(ctx).Text()
}

func (e *rodElement) HTML(ctx context.Context) (string, error) {
	return e.el.Context(ctx).HTML()
}

func (e *rodElement) QueryAll(ctx context.Context, selector string) ([]Element, error) {
	els, err := e.el.Context(ctx).Elements(selector)
	if err != nil {
		return nil, err
	}
	return wrapElements(els), nil
}

func wrapElements(els rod.Elements) []Element {
	wrapped := make([]Element, 0, len(els))
	for _, el := range els {
		wrapped = append(wrapped, &rodElement{el: el})
	}
	return wrapped
}
