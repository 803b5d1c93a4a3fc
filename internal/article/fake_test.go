package article

import (
	"context"
	"errors"
	"strings"
	"time"

	"articled/internal/dom"
)

// fakeElement is an in-memory dom.Element.
type fakeElement struct {
	text     string
	html     string
	children map[string][]*fakeElement
	textErr  error
}

func (e *fakeElement) Text(ctx context.Context) (string, error) {
	return e.text, e.textErr
}

func (e *fakeElement) HTML(ctx context.Context) (string, error) {
	return e.html, nil
}

func (e *fakeElement) QueryAll(ctx context.Context, selector string) ([]dom.Element, error) {
	return wrapFakes(e.children[selector]), nil
}

// fakePage is an in-memory dom.Page. containers answers WaitFor and Query;
// flat answers page-level QueryAll (e.g. "article p").
type fakePage struct {
	containers map[string]*fakeElement
	flat       map[string][]*fakeElement
}

func (p *fakePage) WaitFor(ctx context.Context, selector string, timeout time.Duration) error {
	if _, ok := p.containers[selector]; ok {
		return nil
	}
	return errors.New("timed out waiting for " + selector)
}

func (p *fakePage) Query(ctx context.Context, selector string) (dom.Element, error) {
	if el, ok := p.containers[selector]; ok {
		return el, nil
	}
	return nil, nil
}

func (p *fakePage) QueryAll(ctx context.Context, selector string) ([]dom.Element, error) {
	return wrapFakes(p.flat[selector]), nil
}

func wrapFakes(els []*fakeElement) []dom.Element {
	out := make([]dom.Element, 0, len(els))
	for _, el := range els {
		out = append(out, el)
	}
	return out
}

// pageWithContainer builds a page where containerSel holds the given
// paragraphs, reachable both as container children and via the page-level
// "<container> p" query the site routines use.
func pageWithContainer(containerSel string, paragraphs ...string) *fakePage {
	els := make([]*fakeElement, 0, len(paragraphs))
	for _, text := range paragraphs {
		els = append(els, &fakeElement{text: text})
	}
	container := &fakeElement{
		html:     "<" + containerSel + ">...</" + containerSel + ">",
		children: map[string][]*fakeElement{"p": els},
	}
	return &fakePage{
		containers: map[string]*fakeElement{containerSel: container},
		flat:       map[string][]*fakeElement{containerSel + " p": els},
	}
}

// words returns a paragraph of n filler words.
func words(n int) string {
	out := make([]string, n)
	for i := range out {
		out[i] = "lorem"
	}
	return strings.Join(out, " ")
}
