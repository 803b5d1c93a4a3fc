// Package dom abstracts the structural query capability of the rendering
// engine. The extraction code depends on these interfaces only, so it can be
// exercised against an in-memory document in tests.
package dom

import (
	"context"
	"time"
)

// Page is one fully loaded document available for querying. A Page is owned
// by the single request that created it and must not be shared.
type Page interface {
	// WaitFor blocks until an element matching selector appears, or the
	// timeout (bounded by ctx) expires.
	WaitFor(ctx context.Context, selector string, timeout time.Duration) error
	// Query returns the first element matching selector, or (nil, nil)
	// when nothing matches.
	Query(ctx context.Context, selector string) (Element, error)
	// QueryAll returns all elements matching selector in document order.
	QueryAll(ctx context.Context, selector string) ([]Element, error)
}

// Element is a single element within a Page.
type Element interface {
	// Text returns the element's collapsed visible text.
	Text(ctx context.Context) (string, error)
	// HTML returns the element's outer HTML.
	HTML(ctx context.Context) (string, error)
	// QueryAll returns all descendant elements matching selector in
	// document order.
	QueryAll(ctx context.Context, selector string) ([]Element, error)
}
