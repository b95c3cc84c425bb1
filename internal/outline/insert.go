package outline

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/alnah/go-outline/internal/dom"
)

// Insert places the rendered title as the first child of the outline
// container and appends the list to the container's scrollable region.
// The scrollable region is resolved before anything is mutated, so a missing
// region leaves the document untouched.
func Insert(container *html.Node, scrollable *dom.Selector, title, list *html.Node) error {
	if container == nil {
		return fmt.Errorf("%w: outline container", ErrMissingContainer)
	}
	region := scrollable.First(container)
	if region == nil {
		return fmt.Errorf("%w: scrollable region %s", ErrMissingContainer, scrollable)
	}

	dom.Prepend(container, title)
	region.AppendChild(list)
	return nil
}
