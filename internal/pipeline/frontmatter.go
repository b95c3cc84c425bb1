package pipeline

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/adrg/frontmatter"

	"github.com/alnah/go-outline/internal/manifest"
)

// ErrFrontMatter indicates the page front matter could not be parsed.
var ErrFrontMatter = errors.New("invalid front matter")

// FrontMatter holds page metadata. Title and Lang are lifted out of Params
// when they are strings.
type FrontMatter struct {
	Title  string
	Lang   string
	Params map[string]any
}

// Flag reports whether the metadata value under key is set to true, using
// the same rules as build manifest metadata.
func (f FrontMatter) Flag(key string) bool {
	return manifest.Truthy(f.Params[key])
}

// ParseFrontMatter splits source into front matter and Markdown body.
// YAML, TOML and JSON front matter are accepted. Sources without front
// matter yield an empty FrontMatter and the full body.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	params := map[string]any{}
	body, err := frontmatter.Parse(bytes.NewReader(source), &params)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}

	meta := FrontMatter{Params: params}
	meta.Title, _ = params["title"].(string)
	meta.Lang, _ = params["lang"].(string)
	return meta, body, nil
}
