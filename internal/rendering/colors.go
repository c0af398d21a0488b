package rendering

import (
	"github.com/fatih/color"
	"github.com/jonathan/gpa-calculator/internal/types"
)

// palette holds the colors used for one render call.
type palette struct {
	heading   *color.Color
	good      *color.Color
	fair      *color.Color
	poor      *color.Color
	celebrate *color.Color
	muted     *color.Color
}

func newPalette(noColor bool) *palette {
	p := &palette{
		heading:   color.New(color.FgGreen, color.Bold),
		good:      color.New(color.FgGreen),
		fair:      color.New(color.FgYellow),
		poor:      color.New(color.FgRed),
		celebrate: color.New(color.FgMagenta, color.Bold),
		muted:     color.New(color.Faint),
	}
	if noColor {
		for _, c := range []*color.Color{p.heading, p.good, p.fair, p.poor, p.celebrate, p.muted} {
			c.DisableColor()
		}
	}
	return p
}

// forTier picks green for great and above, yellow for good and average, red otherwise.
func (p *palette) forTier(tier types.RemarkTier) *color.Color {
	switch tier {
	case types.TierOutstanding, types.TierGreat:
		return p.good
	case types.TierGood, types.TierAverage:
		return p.fair
	default:
		return p.poor
	}
}
