// Package article decides what part of a rendered page is the article body.
// Site-specific routines are tried first, then a generic selector fallback;
// both produce a Result and never a hard error.
package article

import "strings"

// paragraphSeparator joins accepted paragraphs in the final content.
const paragraphSeparator = "\n\n"

// Result is the outcome of one extraction attempt. Succeeded is false for
// the normal "no content found" case as well; that is not an error.
type Result struct {
	// Content is the cleaned article text, paragraphs joined by blank
	// lines. Empty when Succeeded is false.
	Content string
	// HTML is the markup of the container the accepted strategy matched,
	// when it could be captured. Used for markdown output only.
	HTML string
	// Succeeded reports whether any strategy produced acceptable content.
	Succeeded bool
}

// WordCount counts whitespace-delimited tokens.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
