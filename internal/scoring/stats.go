package scoring

import (
	"fmt"
	"math"
	"time"
)

type ConfidenceInterval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Level float64 `json:"level"`
}

// NewConfidenceInterval computes a Wald interval for a proportion. Only 0.95
// maps to z=1.96; any other level uses 1.645. Bounds are clamped to [0,1]. A
// sample size below 1 yields the full interval.
func NewConfidenceInterval(score float64, n int, level float64) ConfidenceInterval {
	if n < 1 {
		return ConfidenceInterval{Lower: 0, Upper: 1, Level: level}
	}
	z := 1.645
	if level == 0.95 {
		z = 1.96
	}
	p := clamp(score, 0, 1)
	margin := z * math.Sqrt(p*(1-p)/float64(n))
	return ConfidenceInterval{
		Lower: math.Max(0, p-margin),
		Upper: math.Min(1, p+margin),
		Level: level,
	}
}

var expirationDays = map[AssessmentType]int{
	TypeBigFive:               365,
	TypeAttachment:            180,
	TypeMBTI:                  730,
	TypeEnneagram:             365,
	TypeDISC:                  180,
	TypeEmotionalIntelligence: 365,
}

const defaultExpirationDays = 365

// ExpirationDays is how long a result of type t stays current.
func ExpirationDays(t AssessmentType) int {
	if d, ok := expirationDays[t]; ok {
		return d
	}
	return defaultExpirationDays
}

// DaysBetween returns the fractional days from completed to now.
func DaysBetween(completed, now time.Time) float64 {
	return now.Sub(completed).Hours() / 24
}

// IsOutdatedAt reports whether more than ExpirationDays(t) have elapsed
// between completed and now.
func IsOutdatedAt(completed, now time.Time, t AssessmentType) bool {
	return DaysBetween(completed, now) > float64(ExpirationDays(t))
}

func IsOutdated(completed time.Time, t AssessmentType) bool {
	return IsOutdatedAt(completed, time.Now(), t)
}

// ExpiresAt is the instant after which a result completed at completed is
// outdated.
func ExpiresAt(completed time.Time, t AssessmentType) time.Time {
	return completed.AddDate(0, 0, ExpirationDays(t))
}

var completedDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseCompletedDate accepts RFC 3339 timestamps, zone-less timestamps and
// plain dates. Zone-less values are read as UTC.
func ParseCompletedDate(s string) (time.Time, error) {
	for _, layout := range completedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized completion date %q", s)
}
