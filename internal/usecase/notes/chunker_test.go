package notes

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studynotes/internal/domain/entity"
)

func TestChunk(t *testing.T) {
	tests := []struct {
		name string
		text string
		size int
		want []string
	}{
		{
			name: "empty text yields empty sequence",
			text: "",
			size: 1000,
			want: []string{},
		},
		{
			name: "text shorter than size yields one chunk",
			text: "short text",
			size: 1000,
			want: []string{"short text"},
		},
		{
			name: "exact multiple of size",
			text: "abcdef",
			size: 3,
			want: []string{"abc", "def"},
		},
		{
			name: "final chunk shorter",
			text: "abcdefg",
			size: 3,
			want: []string{"abc", "def", "g"},
		},
		{
			name: "splits mid-word without boundary snapping",
			text: "hello world",
			size: 4,
			want: []string{"hell", "o wo", "rld"},
		},
		{
			name: "size one",
			text: "abc",
			size: 1,
			want: []string{"a", "b", "c"},
		},
		{
			name: "multibyte runes are never split",
			text: "日本語テキスト",
			size: 3,
			want: []string{"日本語", "テキス", "ト"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Chunk(tt.text, tt.size)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Chunk() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestChunk_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1, -1000} {
		_, err := Chunk("some text", size)
		require.Error(t, err)
		assert.True(t, errors.Is(err, entity.ErrInvalidInput))
	}
}

// Joining the chunks in order must reproduce the input exactly, and the
// chunk count must equal ceil(runes/size).
func TestChunk_LosslessPartition(t *testing.T) {
	inputs := []string{
		"",
		"a",
		strings.Repeat("x", 999),
		strings.Repeat("x", 1000),
		strings.Repeat("x", 1001),
		strings.Repeat("lorem ipsum dolor sit amet ", 500),
		strings.Repeat("要約対象の日本語テキスト。", 300),
	}
	sizes := []int{1, 7, 100, 1000}

	for _, input := range inputs {
		for _, size := range sizes {
			chunks, err := Chunk(input, size)
			require.NoError(t, err)

			assert.Equal(t, input, strings.Join(chunks, ""),
				"lossless reconstruction failed for len=%d size=%d", len(input), size)

			runes := len([]rune(input))
			wantCount := (runes + size - 1) / size
			assert.Len(t, chunks, wantCount,
				"chunk count mismatch for runes=%d size=%d", runes, size)

			for i, chunk := range chunks {
				if i < len(chunks)-1 {
					assert.Equal(t, size, len([]rune(chunk)),
						"non-final chunk %d must be exactly size", i)
				} else {
					assert.LessOrEqual(t, len([]rune(chunk)), size)
				}
			}
		}
	}
}
