package outline

import "errors"

// Sentinel errors for outline generation. Both are fatal for the document
// being processed.
var (
	ErrMissingContainer = errors.New("required container element not found")
	ErrMissingHeading   = errors.New("section has no heading in its header")
)
