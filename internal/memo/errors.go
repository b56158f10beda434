package memo

import (
	"errors"
	"fmt"
)

// ErrMultilineText is returned for memo text containing a line terminator.
// An entry always occupies exactly one line of the note.
var ErrMultilineText = errors.New("memo text must be a single line")

// WriteFailedError reports that the final write of a note failed. Earlier
// read and create failures are returned as they come from storage.
type WriteFailedError struct {
	Path string
	Err  error
}

func (e *WriteFailedError) Error() string {
	return fmt.Sprintf("failed to write: %s", e.Path)
}

func (e *WriteFailedError) Unwrap() error {
	return e.Err
}
