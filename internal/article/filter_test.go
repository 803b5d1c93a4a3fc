package article

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterParagraphsLength(t *testing.T) {
	long := words(20) // 119 chars

	got := FilterParagraphs([]string{
		"short",
		long,
		"  " + long + "  ",
		strings.Repeat("x", 50), // exactly minLength, dropped
	}, 50, false)

	assert.Equal(t, []string{long, long}, got)
}

func TestFilterParagraphsTrimsBeforeMeasuring(t *testing.T) {
	// 40 chars of text padded with whitespace past the threshold.
	padded := strings.Repeat(" ", 30) + strings.Repeat("a", 40) + strings.Repeat(" ", 30)

	got := FilterParagraphs([]string{padded}, 50, false)
	assert.Empty(t, got)

	got = FilterParagraphs([]string{padded}, 30, false)
	assert.Equal(t, []string{strings.Repeat("a", 40)}, got)
}

func TestFilterParagraphsBoilerplate(t *testing.T) {
	keep := "This paragraph is long enough and talks about actual science results."
	cases := []string{
		"This site uses a Cookie banner that is definitely long enough to pass.",
		"SUBSCRIBE to our newsletter today for more stories like this one here.",
		"This long paragraph is brought to you by an advertisement partner deal.",
	}

	for _, noise := range cases {
		got := FilterParagraphs([]string{noise, keep}, 50, true)
		assert.Equal(t, []string{keep}, got, "marker paragraph should be dropped: %q", noise)

		// Length-only mode keeps the same paragraph.
		got = FilterParagraphs([]string{noise, keep}, 50, false)
		assert.Equal(t, []string{noise, keep}, got)
	}
}

func TestFilterParagraphsPreservesOrderAndDuplicates(t *testing.T) {
	a := words(15)
	b := words(12)

	got := FilterParagraphs([]string{a, b, a}, 50, true)
	assert.Equal(t, []string{a, b, a}, got)
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 0, WordCount("   \n\t"))
	assert.Equal(t, 3, WordCount("one two three"))
	assert.Equal(t, 3, WordCount("  one\ntwo\t three "))
}
