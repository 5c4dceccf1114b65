package untag

import "errors"

var (
	// ErrInvalidDocument means the input was not a syntactically valid
	// JSON document with an object at the top level.
	ErrInvalidDocument = errors.New("untag: invalid JSON document")

	// ErrDepthExceeded means the document nests deeper than the
	// processor's configured limit.
	ErrDepthExceeded = errors.New("untag: maximum nesting depth exceeded")
)
