// Package entity defines the core domain types of the study notes service:
// length tiers, the length policy table, and the generated notes value object.
package entity

import (
	"fmt"
	"strings"
)

// Tier identifies one of the fixed summary verbosity levels.
// The set is closed: only Short, Medium, and Detailed exist.
type Tier string

const (
	// TierShort produces the most condensed summaries.
	TierShort Tier = "Short"
	// TierMedium is the balanced default.
	TierMedium Tier = "Medium"
	// TierDetailed produces the most verbose summaries.
	TierDetailed Tier = "Detailed"
)

// LengthPolicy bounds how verbose a generated chunk summary should be.
// MaxLen and MinLen are word targets passed to the summarization provider.
// The provider may violate them for very short chunks; callers must not
// assume strict bounds on the returned text.
type LengthPolicy struct {
	MaxLen int
	MinLen int
}

// lengthTable is the fixed tier-to-bounds mapping. It is not user-extensible.
var lengthTable = map[Tier]LengthPolicy{
	TierShort:    {MaxLen: 60, MinLen: 20},
	TierMedium:   {MaxLen: 120, MinLen: 40},
	TierDetailed: {MaxLen: 200, MinLen: 70},
}

// ResolvePolicy looks up the length policy for the given tier.
// An unknown tier is a caller contract violation and returns ErrUnknownTier.
func ResolvePolicy(tier Tier) (LengthPolicy, error) {
	policy, ok := lengthTable[tier]
	if !ok {
		return LengthPolicy{}, fmt.Errorf("%w: %q", ErrUnknownTier, tier)
	}
	return policy, nil
}

// ParseTier converts user-supplied text (HTTP/CLI input) into a Tier.
// Matching is case-insensitive; anything outside the fixed set fails.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "short":
		return TierShort, nil
	case "medium":
		return TierMedium, nil
	case "detailed":
		return TierDetailed, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTier, s)
	}
}

// Tiers returns the closed set of valid tiers, for help text and validation messages.
func Tiers() []Tier {
	return []Tier{TierShort, TierMedium, TierDetailed}
}
