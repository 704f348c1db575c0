package note

import "errors"

// ErrMissingFields indicates a note payload whose title or content is empty
// after trimming. The sync layer drops such messages without replying.
var ErrMissingFields = errors.New("both title and content are required for a note")
