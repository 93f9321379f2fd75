package converter

import (
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// HTMLToMarkdown converts HTML item content to Markdown
func HTMLToMarkdown(html string) (string, error) {
	markdown, err := md.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to Markdown: %w", err)
	}

	return cleanMarkdown(markdown), nil
}

// cleanMarkdown cleans up converted markdown
func cleanMarkdown(markdown string) string {
	for strings.Contains(markdown, "\n\n\n\n") {
		markdown = strings.ReplaceAll(markdown, "\n\n\n\n", "\n\n\n")
	}
	return strings.TrimSpace(markdown)
}

// IsHTML reports whether an item file holds HTML content, judged from
// its extension
func IsHTML(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm")
}
