package notes

import (
	"strings"

	"studynotes/internal/utils/text"
)

// bulletMarker prefixes every rendered study-note line.
const bulletMarker = "• "

// minBulletRunes is the trimmed length below which a fragment is dropped.
const minBulletRunes = 5

// ToBullets converts an assembled summary into note-style bullet lines.
// The summary is split on the literal delimiter ". " (period followed by one
// space); each fragment is whitespace-trimmed, fragments of trimmed length
// <= 5 runes are discarded, and surviving fragments are prefixed with the
// bullet marker in original order.
//
// Known limitation: this is a naive lexical split, not sentence-boundary
// detection. Abbreviations, decimal numbers, or a period without a trailing
// space will mis-segment. The approximation is part of the contract.
func ToBullets(summary string) []string {
	fragments := strings.Split(summary, ". ")
	bullets := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		trimmed := strings.TrimSpace(fragment)
		if text.CountRunes(trimmed) <= minBulletRunes {
			continue
		}
		bullets = append(bullets, bulletMarker+trimmed)
	}
	return bullets
}
