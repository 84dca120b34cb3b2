package scoring

import "sort"

type AttachmentStyle string

const (
	StyleSecure             AttachmentStyle = "secure"
	StyleAnxiousPreoccupied AttachmentStyle = "anxious_preoccupied"
	StyleDismissiveAvoidant AttachmentStyle = "dismissive_avoidant"
	StyleFearfulAvoidant    AttachmentStyle = "fearful_avoidant"
)

// AttachmentStyles in declared order. Ties during classification resolve to
// the earlier entry.
var AttachmentStyles = []AttachmentStyle{
	StyleSecure,
	StyleAnxiousPreoccupied,
	StyleDismissiveAvoidant,
	StyleFearfulAvoidant,
}

// confidenceSpan normalizes the gap between the two leading styles.
const confidenceSpan = 7.0

var attachment = Definition{
	Type:     TypeAttachment,
	Category: CategoryRelational,
	Scale:    LikertSeven,
	Groups: []Group{
		{Name: string(StyleSecure), Questions: strided(1, 4, 8)},
		{Name: string(StyleAnxiousPreoccupied), Questions: strided(2, 4, 8)},
		{Name: string(StyleDismissiveAvoidant), Questions: strided(3, 4, 7)},
		{Name: string(StyleFearfulAvoidant), Questions: strided(4, 4, 7)},
	},
	Reverse: map[string]struct{}{},
}

// Attachment returns a copy of the thirty-item attachment definition.
func Attachment() Definition {
	return attachment.clone()
}

// ParseAttachmentStyle matches s against the four known styles.
func ParseAttachmentStyle(s string) (AttachmentStyle, bool) {
	for _, st := range AttachmentStyles {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

type AttachmentProfile struct {
	Scores          map[AttachmentStyle]float64 `json:"scores"`
	PrimaryStyle    AttachmentStyle             `json:"primaryStyle"`
	StyleConfidence float64                     `json:"styleConfidence"`
}

// ScoreAttachment averages each style's questions and classifies the result.
func ScoreAttachment(responses Responses) AttachmentProfile {
	means := AggregateGroups(attachment.Groups, responses)
	scores := make(map[AttachmentStyle]float64, len(AttachmentStyles))
	for _, st := range AttachmentStyles {
		scores[st] = means[string(st)]
	}
	primary, confidence := ClassifyAttachment(scores)
	return AttachmentProfile{
		Scores:          scores,
		PrimaryStyle:    primary,
		StyleConfidence: confidence,
	}
}

// ClassifyAttachment picks the highest scoring style. Confidence is the lead
// over the runner-up divided by 7, clamped to [0,1]. Styles absent from
// scores count as 0.
func ClassifyAttachment(scores map[AttachmentStyle]float64) (AttachmentStyle, float64) {
	ranked := append([]AttachmentStyle(nil), AttachmentStyles...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})

	gap := scores[ranked[0]] - scores[ranked[1]]
	return ranked[0], clamp(gap/confidenceSpan, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
