package pipeline

import (
	"regexp"
	"strings"
)

// Highlight placeholders use Unicode Private Use Area characters so they
// pass through goldmark untouched without enabling raw HTML.
const (
	markStart = "\uE000"
	markEnd   = "\uE001"
)

var (
	crlfOrCR           = regexp.MustCompile(`\r\n?`)
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
	highlightPattern   = regexp.MustCompile(`==(.+?)==`)
)

// PreprocessMarkdown normalizes line endings, collapses runs of blank lines
// and turns ==text== into highlight placeholders.
func PreprocessMarkdown(content string) string {
	content = crlfOrCR.ReplaceAllString(content, "\n")
	content = highlightPattern.ReplaceAllString(content, markStart+"$1"+markEnd)
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// FinishHighlights replaces highlight placeholders in rendered HTML with
// <mark> elements.
func FinishHighlights(htmlContent string) string {
	return strings.NewReplacer(markStart, "<mark>", markEnd, "</mark>").Replace(htmlContent)
}
