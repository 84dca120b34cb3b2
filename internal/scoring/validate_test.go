package scoring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func expectedIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("q%d", i+1)
	}
	return ids
}

func TestValidateResponses(t *testing.T) {
	tests := []struct {
		name           string
		responses      Responses
		expected       []string
		scale          Scale
		expectedValid  bool
		expectedErrors []string
	}{
		{
			name: "missing and out of range",
			responses: Responses{
				"q1": 1, "q2": 2, "q3": 3, "q4": 4, "q5": 8,
				"q6": 1, "q7": 2, "q8": 3, "q9": 4, "q10": 5,
			},
			expected:      expectedIDs(12),
			scale:         LikertFive,
			expectedValid: false,
			expectedErrors: []string{
				"Missing responses for questions: q11, q12",
				"Invalid response for q5: 8 (expected 1-5)",
			},
		},
		{
			name:           "complete and varied",
			responses:      Responses{"q1": 1, "q2": 5, "q3": 3},
			expected:       expectedIDs(3),
			scale:          LikertFive,
			expectedValid:  true,
			expectedErrors: []string{},
		},
		{
			name:      "each bad value reported separately",
			responses: Responses{"q1": 0, "q2": 7.5, "q3": 7},
			expected:  expectedIDs(3),
			scale:     LikertSeven,
			expectedErrors: []string{
				"Invalid response for q1: 0 (expected 1-7)",
				"Invalid response for q2: 7.5 (expected 1-7)",
			},
		},
		{
			name:      "unexpected ids checked after expected in natural order",
			responses: Responses{"q1": 3, "q10": 9, "q2": 9, "x": 2},
			expected:  []string{"q1"},
			scale:     LikertFive,
			expectedErrors: []string{
				"Invalid response for q2: 9 (expected 1-5)",
				"Invalid response for q10: 9 (expected 1-5)",
			},
		},
		{
			name:      "straight lining over ten answers",
			responses: uniformResponses(11, 3),
			expected:  expectedIDs(11),
			scale:     LikertFive,
			expectedErrors: []string{
				"All responses are identical - please answer more thoughtfully",
			},
		},
		{
			name:           "ten identical answers allowed",
			responses:      uniformResponses(10, 3),
			expected:       expectedIDs(10),
			scale:          LikertFive,
			expectedValid:  true,
			expectedErrors: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := ValidateResponses(tt.responses, tt.expected, tt.scale)
			assert.Equal(t, tt.expectedErrors, report.Errors)
			assert.Equal(t, len(tt.expectedErrors) == 0, report.IsValid)
			assert.Equal(t, tt.expectedValid, report.IsValid)
		})
	}
}

func TestValidateResponses_AccumulatesAllChecks(t *testing.T) {
	responses := uniformResponses(12, 9)
	report := ValidateResponses(responses, expectedIDs(13), LikertFive)

	assert.False(t, report.IsValid)
	assert.Len(t, report.Errors, 1+12+1)
	assert.Equal(t, "Missing responses for questions: q13", report.Errors[0])
	assert.Equal(t, "All responses are identical - please answer more thoughtfully", report.Errors[13])
}

func TestDefinitionValidate(t *testing.T) {
	report := BigFive().Validate(uniformResponses(50, 3))
	assert.False(t, report.IsValid)
	assert.Equal(t, []string{"All responses are identical - please answer more thoughtfully"}, report.Errors)

	report = Attachment().Validate(Responses{"q1": 4})
	assert.False(t, report.IsValid)
	assert.Contains(t, report.Errors[0], "Missing responses for questions: q5, q9, q13")
}

func TestNaturalLess(t *testing.T) {
	assert.True(t, naturalLess("q2", "q10"))
	assert.False(t, naturalLess("q10", "q2"))
	assert.True(t, naturalLess("a1", "b0"))
	assert.True(t, naturalLess("q", "q1"))
}
