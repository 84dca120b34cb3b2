package scoring

import "math"

// Abramowitz and Stegun formula 7.1.26.
const (
	erfP  = 0.3275911
	erfA1 = 0.254829592
	erfA2 = -0.284496736
	erfA3 = 1.421413741
	erfA4 = -1.453152027
	erfA5 = 1.061405429
)

// Norm is the population mean and standard deviation of a dimension.
type Norm struct {
	Mean float64 `json:"mean"`
	SD   float64 `json:"sd"`
}

// Erf approximates the error function with a maximum absolute error of about
// 1.5e-7. Persisted percentiles depend on this polynomial; do not swap in
// math.Erf.
func Erf(x float64) float64 {
	sign := 1.0
	if x < 0 {
		sign = -1
		x = -x
	}
	t := 1 / (1 + erfP*x)
	y := 1 - ((((erfA5*t+erfA4)*t+erfA3)*t+erfA2)*t+erfA1)*t*math.Exp(-x*x)
	return sign * y
}

// NormalCDF is the standard normal cumulative distribution at z.
func NormalCDF(z float64) float64 {
	return 0.5 * (1 + Erf(z/math.Sqrt2))
}

// ZScore standardizes score against n. A non-positive SD yields 0.
func ZScore(score float64, n Norm) float64 {
	if n.SD <= 0 {
		return 0
	}
	return (score - n.Mean) / n.SD
}

// Percentile maps score onto 0..100 using the normal approximation of the
// population described by n. Halves round up.
func Percentile(score float64, n Norm) int {
	p := math.Floor(NormalCDF(ZScore(score, n))*100 + 0.5)
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return int(p)
}
