package utils

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.Table, extension.Strikethrough),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// RenderMarkdown converts post markdown source to sanitized HTML. Fenced
// code blocks and tables are supported; anything bluemonday's UGC policy
// rejects is stripped.
func RenderMarkdown(source string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		// Fall back to the sanitized source rather than failing the page.
		return sanitizer.Sanitize(source)
	}
	return sanitizer.Sanitize(buf.String())
}

// Sanitize cleans raw HTML input (comments, free-text names) to prevent XSS.
func Sanitize(input string) string {
	return sanitizer.Sanitize(input)
}
