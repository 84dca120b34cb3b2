package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreAttachment(t *testing.T) {
	anxious := uniformResponses(30, 1)
	for _, id := range Attachment().Groups[1].Questions {
		anxious[id] = 7
	}

	tests := []struct {
		name               string
		input              Responses
		expectedStyle      AttachmentStyle
		expectedConfidence float64
	}{
		{"all equal resolves to secure", uniformResponses(30, 4), StyleSecure, 0},
		{"clear anxious lead", anxious, StyleAnxiousPreoccupied, 6.0 / 7.0},
		{"no answers", Responses{}, StyleSecure, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ScoreAttachment(tt.input)
			assert.Equal(t, tt.expectedStyle, p.PrimaryStyle)
			assert.InDelta(t, tt.expectedConfidence, p.StyleConfidence, 1e-12)
			assert.Len(t, p.Scores, 4)
		})
	}
}

func TestAttachment_QuestionLayout(t *testing.T) {
	def := Attachment()
	assert.Len(t, def.QuestionIDs(), 30)
	assert.Equal(t, LikertSeven, def.Scale)
	assert.Empty(t, def.Reverse)
	assert.Equal(t, []string{"q3", "q7", "q11", "q15", "q19", "q23", "q27"}, def.Groups[2].Questions)
}

func TestClassifyAttachment(t *testing.T) {
	tests := []struct {
		name               string
		scores             map[AttachmentStyle]float64
		expectedStyle      AttachmentStyle
		expectedConfidence float64
	}{
		{
			name: "tie at the top keeps declared order",
			scores: map[AttachmentStyle]float64{
				StyleSecure: 2, StyleAnxiousPreoccupied: 5, StyleDismissiveAvoidant: 5, StyleFearfulAvoidant: 1,
			},
			expectedStyle:      StyleAnxiousPreoccupied,
			expectedConfidence: 0,
		},
		{
			name: "gap divided by seven",
			scores: map[AttachmentStyle]float64{
				StyleSecure: 3, StyleAnxiousPreoccupied: 2, StyleDismissiveAvoidant: 6.5, StyleFearfulAvoidant: 3,
			},
			expectedStyle:      StyleDismissiveAvoidant,
			expectedConfidence: 3.5 / 7,
		},
		{
			name: "out of scale gap clamps to one",
			scores: map[AttachmentStyle]float64{
				StyleFearfulAvoidant: 20,
			},
			expectedStyle:      StyleFearfulAvoidant,
			expectedConfidence: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style, confidence := ClassifyAttachment(tt.scores)
			assert.Equal(t, tt.expectedStyle, style)
			assert.InDelta(t, tt.expectedConfidence, confidence, 1e-12)
		})
	}
}

func TestCompatibility_Symmetric(t *testing.T) {
	for _, a := range AttachmentStyles {
		for _, b := range AttachmentStyles {
			ab, okAB := LookupCompatibility(a, b)
			ba, okBA := LookupCompatibility(b, a)
			assert.True(t, okAB, "%s/%s missing from matrix", a, b)
			assert.True(t, okBA)
			assert.Equal(t, ab, ba, "%s/%s", a, b)
		}
	}
	assert.Equal(t, 70, Compatibility(StyleSecure, StyleDismissiveAvoidant).Score)
	assert.Equal(t, Compatibility(StyleSecure, StyleDismissiveAvoidant), Compatibility(StyleDismissiveAvoidant, StyleSecure))
}

func TestCompatibility_Fallback(t *testing.T) {
	j, found := LookupCompatibility(StyleSecure, AttachmentStyle("disorganized"))
	assert.False(t, found)
	assert.Equal(t, 50, j.Score)
	assert.Equal(t, "Compatibility depends on individual growth and communication.", j.Description)
	assert.Equal(t, []string{"Unknown compatibility pattern"}, j.Challenges)
	assert.Equal(t, []string{"Focus on healthy communication", "Individual self-awareness work"}, j.Advice)
}

func TestCompatibility_ReturnsCopies(t *testing.T) {
	j := Compatibility(StyleAnxiousPreoccupied, StyleDismissiveAvoidant)
	require.NotEmpty(t, j.Advice)
	j.Advice[0] = "tampered"
	j.Challenges = append(j.Challenges, "extra")

	again := Compatibility(StyleDismissiveAvoidant, StyleAnxiousPreoccupied)
	assert.Equal(t, "Both need individual therapy", again.Advice[0])
	assert.Len(t, again.Challenges, 3)
	assert.Equal(t, 40, again.Score)
}

func TestParseAttachmentStyle(t *testing.T) {
	s, ok := ParseAttachmentStyle("fearful_avoidant")
	assert.True(t, ok)
	assert.Equal(t, StyleFearfulAvoidant, s)

	_, ok = ParseAttachmentStyle("Secure")
	assert.False(t, ok)
}
