package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErf(t *testing.T) {
	assert.InDelta(t, 0, Erf(0), 1e-6)
	assert.Greater(t, Erf(4), 0.9999)
	assert.Less(t, Erf(-4), -0.9999)

	for _, x := range []float64{0.1, 0.5, 1, 1.7, 2.5, 3} {
		assert.InDelta(t, -Erf(x), Erf(-x), 1e-15, "erf must be odd at %v", x)
	}

	// Table value erf(1) = 0.8427007929.
	assert.InDelta(t, 0.8427007929, Erf(1), 2e-7)
}

func TestNormalCDF(t *testing.T) {
	assert.InDelta(t, 0.5, NormalCDF(0), 1e-6)
	assert.InDelta(t, 0.8413447, NormalCDF(1), 1e-6)
	assert.InDelta(t, 0.0227501, NormalCDF(-2), 1e-6)
}

func TestPercentile_AtMeanIsFifty(t *testing.T) {
	for name, n := range BigFive().Norms {
		assert.Equal(t, 50, Percentile(n.Mean, n), name)
		assert.Equal(t, 50, DimensionPercentile(Dimension(name), n.Mean), name)
	}
}

func TestPercentile_Monotonic(t *testing.T) {
	for _, d := range Dimensions {
		prev := -1
		for score := 1.0; score <= 5.0; score += 0.05 {
			p := DimensionPercentile(d, score)
			assert.GreaterOrEqual(t, p, prev, "%s at %.2f", d, score)
			assert.GreaterOrEqual(t, p, 0)
			assert.LessOrEqual(t, p, 100)
			prev = p
		}
	}
}

func TestPercentile_KnownValues(t *testing.T) {
	tests := []struct {
		name      string
		dimension Dimension
		score     float64
		expected  int
	}{
		{"one sd above", Extraversion, 4.2, 84},
		{"two sd below", Openness, 2.0, 2},
		{"far above rounds to 100", Neuroticism, 5.0, 100},
		{"unknown dimension", Dimension("honesty"), 4.9, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DimensionPercentile(tt.dimension, tt.score))
		})
	}
}

func TestPercentile_DegenerateNorm(t *testing.T) {
	assert.Equal(t, 50, Percentile(4, Norm{Mean: 3, SD: 0}))
}
