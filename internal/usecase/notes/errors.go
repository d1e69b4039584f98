package notes

import "fmt"

// ChunkError reports a provider failure for a single chunk. The whole
// summarization request fails with this error; no partial output is
// returned alongside it.
type ChunkError struct {
	// Index is the zero-based position of the failing chunk.
	Index int
	// Total is the number of chunks in the request.
	Total int
	// Err is the underlying provider failure.
	Err error
}

// Error returns a message identifying the failing chunk.
func (e *ChunkError) Error() string {
	return fmt.Sprintf("summarization failed at chunk %d of %d: %v", e.Index, e.Total, e.Err)
}

// Unwrap returns the underlying provider error.
func (e *ChunkError) Unwrap() error {
	return e.Err
}
