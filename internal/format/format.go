// Package format renders an extraction result for CLI output.
package format

import (
	"encoding/json"
	"fmt"

	md "github.com/JohannesKaufmann/html-to-markdown"

	"articled/internal/article"
)

// Format renders res in the requested output format (text, json, markdown).
func Format(res article.Result, format string) (string, error) {
	switch format {
	case "text":
		return res.Content, nil
	case "json":
		return toJSON(res)
	case "markdown":
		return toMarkdown(res)
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}

func toJSON(res article.Result) (string, error) {
	type jsonOutput struct {
		Success   bool   `json:"success"`
		Content   string `json:"content"`
		WordCount int    `json:"word_count"`
	}

	b, err := json.MarshalIndent(jsonOutput{
		Success:   res.Succeeded,
		Content:   res.Content,
		WordCount: article.WordCount(res.Content),
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(b), nil
}

// toMarkdown converts the matched container markup to Markdown, falling
// back to the plain text content when no markup was captured.
func toMarkdown(res article.Result) (string, error) {
	if res.HTML == "" {
		return res.Content, nil
	}

	converter := md.NewConverter("", true, nil)
	markdown, err := converter.ConvertString(res.HTML)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to Markdown: %w", err)
	}
	return markdown, nil
}
