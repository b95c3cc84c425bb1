// Package pipeline turns Markdown sources into HTML pages that satisfy the
// outline generator's structural contract.
//
// Stages, in order:
//   - front matter parsing (title, language, outline opt-out)
//   - Markdown preprocessing (line normalization, ==highlight== syntax)
//   - Markdown to HTML conversion via goldmark (GFM, chroma highlighting)
//   - title extraction and sectioning of the flat heading sequence
//   - rewriting of relative .md links to their .html pages
//   - page template rendering
//
// HeadingSanitizer is used by the outline stage itself to restrict heading
// markup copied into the navigation.
package pipeline
