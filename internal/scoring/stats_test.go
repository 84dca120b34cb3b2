package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfidenceInterval(t *testing.T) {
	tests := []struct {
		name          string
		score         float64
		n             int
		level         float64
		expectedLower float64
		expectedUpper float64
	}{
		{"95 percent", 0.5, 100, 0.95, 0.402, 0.598},
		{"other levels use 1.645", 0.5, 100, 0.90, 0.41775, 0.58225},
		{"upper bound clamped", 0.99, 10, 0.95, 0.9283, 1},
		{"lower bound clamped", 0.01, 10, 0.95, 0, 0.0717},
		{"no samples", 0.5, 0, 0.95, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ci := NewConfidenceInterval(tt.score, tt.n, tt.level)
			assert.InDelta(t, tt.expectedLower, ci.Lower, 1e-3)
			assert.InDelta(t, tt.expectedUpper, ci.Upper, 1e-3)
			assert.Equal(t, tt.level, ci.Level)
		})
	}
}

func TestIsOutdatedAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name      string
		t         AssessmentType
		daysAgo   int
		extraTime time.Duration
		expected  bool
	}{
		{"attachment 200 days", TypeAttachment, 200, 0, true},
		{"attachment 100 days", TypeAttachment, 100, 0, false},
		{"exactly at threshold", TypeAttachment, 180, 0, false},
		{"just past threshold", TypeAttachment, 180, time.Hour, true},
		{"mbti two years", TypeMBTI, 700, 0, false},
		{"unknown type defaults to a year", AssessmentType("astrology"), 366, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completed := now.AddDate(0, 0, -tt.daysAgo).Add(-tt.extraTime)
			assert.Equal(t, tt.expected, IsOutdatedAt(completed, now, tt.t))
		})
	}
}

func TestIsOutdated_UsesWallClock(t *testing.T) {
	assert.True(t, IsOutdated(time.Now().AddDate(0, 0, -200), TypeAttachment))
	assert.False(t, IsOutdated(time.Now().AddDate(0, 0, -100), TypeAttachment))
}

func TestExpirationDays(t *testing.T) {
	assert.Equal(t, 365, ExpirationDays(TypeBigFive))
	assert.Equal(t, 180, ExpirationDays(TypeAttachment))
	assert.Equal(t, 730, ExpirationDays(TypeMBTI))
	assert.Equal(t, 365, ExpirationDays(TypeEnneagram))
	assert.Equal(t, 180, ExpirationDays(TypeDISC))
	assert.Equal(t, 365, ExpirationDays(TypeEmotionalIntelligence))
	assert.Equal(t, 365, ExpirationDays(AssessmentType("")))
}

func TestParseCompletedDate(t *testing.T) {
	for _, in := range []string{"2025-01-02T03:04:05Z", "2025-01-02T03:04:05.123+02:00", "2025-01-02T03:04:05", "2025-01-02"} {
		got, err := ParseCompletedDate(in)
		require.NoError(t, err, in)
		assert.Equal(t, 2025, got.Year())
	}
	_, err := ParseCompletedDate("02/01/2025")
	assert.Error(t, err)
}

func TestCategoryOf(t *testing.T) {
	assert.Equal(t, CategoryRelational, CategoryOf(TypeAttachment))
	assert.Equal(t, CategoryPersonality, CategoryOf(TypeBigFive))
	assert.Equal(t, CategoryAlternative, CategoryOf(AssessmentType("astrology")))
}
