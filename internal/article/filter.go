package article

import "strings"

// boilerplateMarkers flag a paragraph as non-article noise regardless of
// its length. Matched case-insensitively against the whole paragraph.
var boilerplateMarkers = []string{"cookie", "subscribe", "advertisement"}

// FilterParagraphs trims each paragraph and keeps those longer than
// minLength, preserving document order. With dropBoilerplate set,
// paragraphs containing a boilerplate marker are removed as well; the
// site-specific routines filter by length only.
func FilterParagraphs(paragraphs []string, minLength int, dropBoilerplate bool) []string {
	kept := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		text := strings.TrimSpace(p)
		if len(text) <= minLength {
			continue
		}
		if dropBoilerplate && containsBoilerplate(text) {
			continue
		}
		kept = append(kept, text)
	}
	return kept
}

func containsBoilerplate(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range boilerplateMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
