package notes

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToBullets(t *testing.T) {
	tests := []struct {
		name    string
		summary string
		want    []string
	}{
		{
			name:    "drops short fragments",
			summary: "AI is great. Go. Study hard and review daily.",
			want:    []string{"• AI is great", "• Study hard and review daily."},
		},
		{
			name:    "empty summary yields no bullets",
			summary: "",
			want:    []string{},
		},
		{
			name:    "no delimiter yields single bullet",
			summary: "A single sentence without trailing space-period",
			want:    []string{"• A single sentence without trailing space-period"},
		},
		{
			name:    "no delimiter and too short yields nothing",
			summary: "Go.",
			want:    []string{},
		},
		{
			name:    "whitespace-only summary yields nothing",
			summary: "   ",
			want:    []string{},
		},
		{
			name:    "fragments are trimmed",
			summary: "  First point here.   Second point follows. ",
			want:    []string{"• First point here", "• Second point follows"},
		},
		{
			name:    "period at end keeps trailing period on last fragment",
			summary: "First idea goes here. Second idea goes here.",
			want:    []string{"• First idea goes here", "• Second idea goes here."},
		},
		{
			name:    "exactly five runes is dropped",
			summary: "Valid sentence here. abcde. Another valid one here.",
			want:    []string{"• Valid sentence here", "• Another valid one here."},
		},
		{
			name:    "six runes survives",
			summary: "abcdef. Something longer follows here.",
			want:    []string{"• abcdef", "• Something longer follows here."},
		},
		{
			name:    "abbreviations mis-segment by design",
			summary: "Dr. Smith wrote this. The e.g. case splits oddly.",
			want:    []string{"• Smith wrote this", "• The e.g", "• case splits oddly."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToBullets(tt.summary)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ToBullets(%q) mismatch (-want +got):\n%s", tt.summary, diff)
			}
		})
	}
}
