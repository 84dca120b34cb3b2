// Package scoring turns raw questionnaire answers into dimension scores,
// population percentiles, attachment classifications and compatibility
// judgments. Everything here is pure and safe for concurrent use.
package scoring

import "strconv"

// TablesVersion identifies the question maps, norms and text tables compiled
// into this package. It is stamped on every persisted result.
const TablesVersion = "2024.1"

// Responses maps a question id to the numeric answer given. A missing key
// means the question was not answered.
type Responses map[string]float64

// Clone returns a shallow copy of r.
func (r Responses) Clone() Responses {
	out := make(Responses, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Scale is the inclusive answer range of a questionnaire.
type Scale struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Built-in answer scales: Big Five items are 1-5, attachment items 1-7.
var (
	LikertFive  = Scale{Min: 1, Max: 5}
	LikertSeven = Scale{Min: 1, Max: 7}
)

// Contains reports whether v lies within the scale bounds.
func (s Scale) Contains(v float64) bool {
	return v >= s.Min && v <= s.Max
}

// Reflect mirrors v around the midpoint of the scale.
func (s Scale) Reflect(v float64) float64 {
	return s.Min + s.Max - v
}

func (s Scale) String() string {
	return formatNumber(s.Min) + "-" + formatNumber(s.Max)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
