package pipeline

import (
	"github.com/microcosm-cc/bluemonday"
)

// inlineElements are the elements heading markup may keep once sanitized.
var inlineElements = []string{
	"abbr", "b", "bdi", "bdo", "cite", "code", "del", "dfn", "em", "i",
	"ins", "kbd", "mark", "q", "s", "samp", "small", "span", "strong", "sub",
	"sup", "time", "u", "var",
}

// HeadingSanitizer strips heading markup down to inline formatting.
// It is safe for concurrent use.
type HeadingSanitizer struct {
	policy *bluemonday.Policy
}

// NewHeadingSanitizer creates a sanitizer that keeps inline formatting
// elements and drops everything else. Links are unwrapped to their text
// since outline items are links themselves.
func NewHeadingSanitizer() *HeadingSanitizer {
	p := bluemonday.NewPolicy()
	p.AllowElements(inlineElements...)
	p.AllowNoAttrs().OnElements(inlineElements...)
	p.AllowAttrs("class").OnElements("code", "span")
	p.AllowAttrs("title").OnElements("abbr", "dfn")
	p.AllowAttrs("datetime").OnElements("time")
	return &HeadingSanitizer{policy: p}
}

// Sanitize returns markup with disallowed elements and attributes removed.
func (s *HeadingSanitizer) Sanitize(markup string) string {
	return s.policy.Sanitize(markup)
}
