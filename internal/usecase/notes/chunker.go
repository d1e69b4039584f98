package notes

import (
	"fmt"

	"studynotes/internal/domain/entity"
)

// DefaultChunkSize is the chunk length (in runes) used by the service
// when no explicit size is configured.
const DefaultChunkSize = 1000

// Chunk partitions text into contiguous, non-overlapping spans of exactly
// size runes; the final span may be shorter. There is no trimming and no
// snapping to word or sentence boundaries, so a chunk may split a word
// mid-token. Joining the returned chunks in order reproduces text exactly.
//
// Empty text yields an empty slice. A non-positive size is a caller
// contract violation and returns entity.ErrInvalidInput.
func Chunk(text string, size int) ([]string, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be positive, got %d", entity.ErrInvalidInput, size)
	}
	if text == "" {
		return []string{}, nil
	}

	runes := []rune(text)
	chunks := make([]string, 0, (len(runes)+size-1)/size)
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks, nil
}
