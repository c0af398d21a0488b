//nolint:revive // types is a standard Go package name pattern
package types

// RemarkTier is one of the five qualitative bands a GPA falls into, ordered high to low.
type RemarkTier string

const (
	TierOutstanding RemarkTier = "outstanding"
	TierGreat       RemarkTier = "great"
	TierGood        RemarkTier = "good"
	TierAverage     RemarkTier = "average"
	TierTryAgain    RemarkTier = "try_again"
)

// AllTiers lists every remark tier from highest to lowest.
var AllTiers = []RemarkTier{TierOutstanding, TierGreat, TierGood, TierAverage, TierTryAgain}

// Valid reports whether t is one of the known tiers.
func (t RemarkTier) Valid() bool {
	for _, known := range AllTiers {
		if t == known {
			return true
		}
	}
	return false
}

// Remark is the display text and illustrative media reference attached to a tier.
type Remark struct {
	Text  string `json:"text"`
	Media string `json:"media" validate:"omitempty,url"`
}

// Result is the outcome of one GPA computation.
type Result struct {
	GPA          float64    `json:"gpa"`
	Display      string     `json:"display"` // GPA with exactly two decimals
	TotalCredits float64    `json:"total_credits"`
	Tier         RemarkTier `json:"tier"`
	Remark       string     `json:"remark"`
	Media        string     `json:"media"`
	// Celebrate is set when the GPA is strictly above 9
	Celebrate bool `json:"celebrate"`
}
