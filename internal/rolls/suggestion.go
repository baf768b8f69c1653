package rolls

import "math"

// DefaultMaxWidth is the usable width in millimetres when none is given.
const DefaultMaxWidth = 312

// Suggestion pairs a remaining roll with the width that would fill the
// rest of the maximum usable width.
type Suggestion struct {
	OriginalWidth  float64 `json:"originalWidth"`
	SuggestedWidth float64 `json:"suggestedWidth"`
	Quantity       float64 `json:"quantity"`
}

// EffectiveMaxWidth returns maxWidth, or DefaultMaxWidth when it is zero
// or NaN.
func EffectiveMaxWidth(maxWidth float64) float64 {
	if maxWidth == 0 || math.IsNaN(maxWidth) {
		return DefaultMaxWidth
	}
	return maxWidth
}

// Compute returns one suggestion per roll that has quantity left, a
// non-zero width and room left under maxWidth. Input order is kept.
// A zero width or quantity counts as missing and the roll is skipped.
func Compute(rolls []Roll, maxWidth float64) []Suggestion {
	if len(rolls) == 0 {
		return nil
	}
	maxWidth = EffectiveMaxWidth(maxWidth)

	var out []Suggestion
	for _, r := range rolls {
		if !(r.Quantity > 0) {
			continue
		}

		suggested := maxWidth - r.Width
		// NaN widths fail the comparison as well
		if r.Width == 0 || !(suggested > 0) {
			continue
		}

		out = append(out, Suggestion{
			OriginalWidth:  r.Width,
			SuggestedWidth: suggested,
			Quantity:       r.Quantity,
		})
	}
	return out
}

// ComputeRaw is Compute over an undecoded value, see Parse.
func ComputeRaw(raw any, maxWidth float64) []Suggestion {
	return Compute(Parse(raw), maxWidth)
}
