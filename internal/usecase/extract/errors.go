package extract

import "errors"

// ErrNoText indicates the document collaborator yielded no extractable text.
// Not fatal to the process: callers surface it as a recoverable condition and
// may fall back to manually supplied text.
var ErrNoText = errors.New("no extractable text found")
