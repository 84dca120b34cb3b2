package scoring

type Level string

const (
	LevelVeryLow  Level = "very_low"
	LevelLow      Level = "low"
	LevelAverage  Level = "average"
	LevelHigh     Level = "high"
	LevelVeryHigh Level = "very_high"
)

const noDescription = "No description available"

// LevelFor bands a 1-5 dimension score. The first matching upper bound wins.
func LevelFor(score float64) Level {
	switch {
	case score < 2.0:
		return LevelVeryLow
	case score < 2.8:
		return LevelLow
	case score < 3.7:
		return LevelAverage
	case score < 4.5:
		return LevelHigh
	default:
		return LevelVeryHigh
	}
}

// Interpretation is the per-dimension summary handed back to clients.
type Interpretation struct {
	Score       float64 `json:"score"`
	Percentile  int     `json:"percentile"`
	Level       Level   `json:"level"`
	Description string  `json:"description"`
}

var descriptions = map[Dimension]map[Level]string{
	Openness: {
		LevelVeryLow:  "Very practical and conventional. Prefers familiar experiences and traditional approaches.",
		LevelLow:      "Generally practical with some openness to new experiences when necessary.",
		LevelAverage:  "Balanced between practical and creative approaches. Open to some new experiences.",
		LevelHigh:     "Creative and curious. Enjoys exploring new ideas and experiences.",
		LevelVeryHigh: "Highly imaginative and intellectually curious. Constantly seeks novel experiences and abstract ideas.",
	},
	Conscientiousness: {
		LevelVeryLow:  "Very spontaneous and flexible. May struggle with organization and follow-through.",
		LevelLow:      "Somewhat disorganized but adaptable. Prefers flexibility over rigid planning.",
		LevelAverage:  "Generally organized with some flexibility. Balances planning with spontaneity.",
		LevelHigh:     "Well-organized and reliable. Good at following through on commitments.",
		LevelVeryHigh: "Extremely organized and disciplined. May be seen as perfectionist or rigid.",
	},
	Extraversion: {
		LevelVeryLow:  "Very introverted. Strongly prefers solitude and quiet environments.",
		LevelLow:      "Generally quiet and reserved. Comfortable in small groups or alone.",
		LevelAverage:  "Balanced between social and solitary activities. Comfortable in various social settings.",
		LevelHigh:     "Outgoing and energetic. Enjoys social interaction and group activities.",
		LevelVeryHigh: "Extremely sociable and assertive. Thrives on social interaction and attention.",
	},
	Agreeableness: {
		LevelVeryLow:  "Very competitive and skeptical. May appear blunt or unsympathetic.",
		LevelLow:      "Somewhat competitive. Values honesty over harmony in interactions.",
		LevelAverage:  "Generally cooperative with some assertiveness when needed.",
		LevelHigh:     "Cooperative and trusting. Values harmony and helping others.",
		LevelVeryHigh: "Extremely cooperative and empathetic. May have difficulty asserting own needs.",
	},
	Neuroticism: {
		LevelVeryLow:  "Exceptionally calm and emotionally stable. Rarely experiences stress or negative emotions.",
		LevelLow:      "Generally calm and resilient. Handles stress well most of the time.",
		LevelAverage:  "Experiences normal range of emotions. Generally stable with occasional stress.",
		LevelHigh:     "Somewhat prone to worry and emotional reactions. May need stress management strategies.",
		LevelVeryHigh: "Highly sensitive to stress and prone to anxiety. May benefit from emotional support strategies.",
	},
}

// Describe returns the canned text for a dimension and band.
func Describe(dimension string, level Level) string {
	if byLevel, ok := descriptions[Dimension(dimension)]; ok {
		if text, ok := byLevel[level]; ok {
			return text
		}
	}
	return noDescription
}

// Interpret builds the summary for one dimension score.
func Interpret(dimension string, score float64, percentile int) Interpretation {
	level := LevelFor(score)
	return Interpretation{
		Score:       score,
		Percentile:  percentile,
		Level:       level,
		Description: Describe(dimension, level),
	}
}
