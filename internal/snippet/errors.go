package snippet

import "errors"

// ErrEmptyContent is returned when a snippet with no content is stored.
var ErrEmptyContent = errors.New("snippet content is empty")

// ErrNotFound is returned when a snippet id, an import path, or a stored
// snippet file does not exist. Callers inside the interactive session treat
// a missing stored file as recoverable.
var ErrNotFound = errors.New("not found")
