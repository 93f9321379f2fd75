package converter

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// DetectEncoding detects the character encoding of item content
func DetectEncoding(content []byte) string {
	contentStr := string(content[:min(1024, len(content))])

	// HTML item files may declare their charset in a meta tag
	if enc := extractCharsetFromMeta(contentStr); enc != "" {
		return enc
	}

	_, name, _ := charset.DetermineEncoding(content, "")
	if name != "" {
		return name
	}

	return "utf-8"
}

// extractCharsetFromMeta extracts charset from a meta tag
func extractCharsetFromMeta(html string) string {
	html = strings.ToLower(html)

	if idx := strings.Index(html, "charset="); idx != -1 {
		start := idx + 8
		end := start

		if start < len(html) && (html[start] == '"' || html[start] == '\'') {
			start++
		}

		for end = start; end < len(html); end++ {
			c := html[end]
			if c == '"' || c == '\'' || c == ';' || c == '>' || c == ' ' {
				break
			}
		}

		if end > start {
			return strings.TrimSpace(html[start:end])
		}
	}

	return ""
}

// ToUTF8 converts content from its detected encoding to UTF-8
func ToUTF8(content []byte) ([]byte, error) {
	enc := DetectEncoding(content)

	if enc == "utf-8" || enc == "utf8" {
		return content, nil
	}

	e, err := htmlindex.Get(enc)
	if err != nil {
		// Unknown encoding, return as-is
		return content, nil
	}

	reader := transform.NewReader(bytes.NewReader(content), e.NewDecoder())
	return io.ReadAll(reader)
}
