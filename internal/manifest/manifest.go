// Package manifest reads the build manifest a documentation site generator
// writes next to its output, and selects the pages eligible for an outline.
package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// FileName is the manifest's name inside an output folder.
const FileName = "manifest.json"

// TypeConceptual is the document type of authored article pages.
const TypeConceptual = "Conceptual"

// htmlExtension keys the HTML entry of an item's output map.
const htmlExtension = ".html"

// Sentinel errors for manifest loading.
var (
	ErrRead  = errors.New("cannot read manifest")
	ErrParse = errors.New("invalid manifest")
)

//go:embed schema.json
var schemaJSON []byte

var schema = jsonschema.MustCompileString("manifest.schema.json", string(schemaJSON))

// Manifest lists the files produced by a site build.
type Manifest struct {
	Files []Item `json:"files"`
}

// Item is one source document and the files generated from it.
type Item struct {
	Type               string                `json:"type"`
	SourceRelativePath string                `json:"source_relative_path"`
	Output             map[string]OutputFile `json:"output"`
	Metadata           map[string]any        `json:"metadata"`
}

// OutputFile is one generated file, relative to the output folder.
type OutputFile struct {
	RelativePath string `json:"relative_path"`
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is provided by the caller
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return Parse(data)
}

// Parse validates data against the manifest schema and decodes it.
func Parse(data []byte) (*Manifest, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParse, describe(err))
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return &m, nil
}

// Conceptual returns the items of type Conceptual in manifest order.
func (m *Manifest) Conceptual() []Item {
	var items []Item
	for _, it := range m.Files {
		if it.Type == TypeConceptual {
			items = append(items, it)
		}
	}
	return items
}

// HTMLRelPath returns the path of the item's HTML output relative to the
// output folder.
func (it Item) HTMLRelPath() (string, bool) {
	out, ok := it.Output[htmlExtension]
	if !ok || out.RelativePath == "" {
		return "", false
	}
	return out.RelativePath, true
}

// Flag reports whether the metadata value under key is set to true.
func (it Item) Flag(key string) bool {
	return Truthy(it.Metadata[key])
}

// Truthy interprets a metadata value as a flag. Booleans and the strings
// "true"/"false" are understood; anything else, including nil, is false.
// Accepting the string form is deliberate: older generators emit quoted
// booleans, which a strict boolean check would silently ignore.
func Truthy(v any) bool {
	switch v := v.(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(strings.TrimSpace(v), "true")
	default:
		return false
	}
}

// describe flattens a schema validation error into its leaf messages.
func describe(err error) string {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return err.Error()
	}

	var parts []string
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if len(node.Causes) == 0 {
			loc := node.InstanceLocation
			if loc == "" {
				loc = "/"
			}
			parts = append(parts, loc+": "+node.Message)
			return
		}
		for _, c := range node.Causes {
			walk(c)
		}
	}
	walk(verr)
	return strings.Join(parts, "; ")
}
