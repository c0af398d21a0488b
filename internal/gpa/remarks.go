package gpa

import "github.com/jonathan/gpa-calculator/internal/types"

// Remarks maps each tier to its display text and media reference.
type Remarks map[types.RemarkTier]types.Remark

// DefaultRemarks returns the built-in remark catalog.
func DefaultRemarks() Remarks {
	return Remarks{
		types.TierOutstanding: {
			Text:  "Outstanding performance!",
			Media: "https://media.giphy.com/media/l0MYB8Ory7Hqefo9a/giphy.gif",
		},
		types.TierGreat: {
			Text:  "Great job! You're doing really well.",
			Media: "https://media.giphy.com/media/xT5LMDsUy5QGmk0LrO/giphy.gif",
		},
		types.TierGood: {
			Text:  "Good work! Keep pushing forward.",
			Media: "https://media.giphy.com/media/26AHONQ79FdWZhAI0/giphy.gif",
		},
		types.TierAverage: {
			Text:  "You're on track. Aim higher next time!",
			Media: "https://media.giphy.com/media/3o6ZsXGfFfdzW5slT6/giphy.gif",
		},
		types.TierTryAgain: {
			Text:  "Don't be discouraged! Reflect and try again.",
			Media: "https://media.giphy.com/media/xT8qBuhwqoaXxF2zDi/giphy.gif",
		},
	}
}

// For returns the remark for tier.
func (r Remarks) For(tier types.RemarkTier) types.Remark {
	return r[tier]
}

// WithOverrides returns a copy of r where every non-empty override field replaces the default.
// Overrides for unknown tiers are ignored.
func (r Remarks) WithOverrides(overrides map[types.RemarkTier]types.Remark) Remarks {
	out := make(Remarks, len(r))
	for tier, remark := range r {
		out[tier] = remark
	}
	for tier, o := range overrides {
		if !tier.Valid() {
			continue
		}
		remark := out[tier]
		if o.Text != "" {
			remark.Text = o.Text
		}
		if o.Media != "" {
			remark.Media = o.Media
		}
		out[tier] = remark
	}
	return out
}

// Classify places a GPA into its remark tier. Lower bounds are inclusive.
func Classify(gpa float64) types.RemarkTier {
	switch {
	case gpa >= 9:
		return types.TierOutstanding
	case gpa >= 8:
		return types.TierGreat
	case gpa >= 7:
		return types.TierGood
	case gpa >= 5:
		return types.TierAverage
	default:
		return types.TierTryAgain
	}
}
