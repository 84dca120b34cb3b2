package scoring

// CompatibilityJudgment describes how two attachment styles tend to pair.
type CompatibilityJudgment struct {
	Score       int      `json:"score"`
	Description string   `json:"description"`
	Challenges  []string `json:"challenges"`
	Advice      []string `json:"advice"`
}

func (j CompatibilityJudgment) clone() CompatibilityJudgment {
	j.Challenges = append([]string(nil), j.Challenges...)
	j.Advice = append([]string(nil), j.Advice...)
	return j
}

type stylePair struct {
	a, b AttachmentStyle
}

// Each unordered pair appears once; lookups try both orientations.
var compatibilityMatrix = map[stylePair]CompatibilityJudgment{
	{StyleSecure, StyleSecure}: {
		Score:       95,
		Description: "Excellent compatibility. Both partners are emotionally stable and supportive.",
		Challenges:  []string{"May become complacent", "Could benefit from more growth challenges"},
		Advice:      []string{"Continue open communication", "Support individual growth", "Maintain appreciation"},
	},
	{StyleSecure, StyleAnxiousPreoccupied}: {
		Score:       80,
		Description: "Good compatibility. Secure partner provides stability for anxious partner's growth.",
		Challenges:  []string{"Anxious partner may test the relationship", "Different needs for reassurance"},
		Advice:      []string{"Consistent reassurance from secure partner", "Anxious partner should develop self-soothing", "Patient understanding"},
	},
	{StyleSecure, StyleDismissiveAvoidant}: {
		Score:       70,
		Description: "Moderate compatibility. Secure partner can help avoidant partner open up gradually.",
		Challenges:  []string{"Avoidant partner may withdraw under pressure", "Different comfort levels with intimacy"},
		Advice:      []string{"Respect need for independence", "Gradual intimacy building", "Don't take withdrawal personally"},
	},
	{StyleSecure, StyleFearfulAvoidant}: {
		Score:       75,
		Description: "Good potential with patience. Secure partner provides safe space for healing.",
		Challenges:  []string{"Fearful partner's push-pull dynamic", "Need for consistent safety"},
		Advice:      []string{"Consistent, non-threatening presence", "Professional support helpful", "Celebrate small steps"},
	},
	{StyleAnxiousPreoccupied, StyleAnxiousPreoccupied}: {
		Score:       60,
		Description: "Moderate compatibility. High emotional intensity - can be very supportive or volatile.",
		Challenges:  []string{"Emotional flooding", "Codependent patterns", "High drama potential"},
		Advice:      []string{"Individual emotional regulation work", "Maintain separate identities", "Set boundaries"},
	},
	{StyleAnxiousPreoccupied, StyleDismissiveAvoidant}: {
		Score:       40,
		Description: "Challenging compatibility. Classic pursuer-distancer dynamic.",
		Challenges:  []string{"Anxious pursues, avoidant withdraws", "Escalating conflict cycles", "Mismatched needs"},
		Advice:      []string{"Both need individual therapy", "Understand each other's triggers", "Professional couples support"},
	},
	{StyleAnxiousPreoccupied, StyleFearfulAvoidant}: {
		Score:       55,
		Description: "Complex compatibility. Both partners have relationship anxiety but different expressions.",
		Challenges:  []string{"Double anxiety patterns", "Unpredictable dynamics", "Trust issues"},
		Advice:      []string{"Focus on individual healing first", "Trauma-informed support", "Go slowly with commitment"},
	},
	{StyleDismissiveAvoidant, StyleDismissiveAvoidant}: {
		Score:       65,
		Description: "Moderate compatibility. Low conflict but potentially low intimacy.",
		Challenges:  []string{"Emotional distance", "Lack of deep connection", "Parallel rather than intimate lives"},
		Advice:      []string{"Intentional intimacy practices", "Schedule relationship check-ins", "Vulnerability exercises"},
	},
	{StyleDismissiveAvoidant, StyleFearfulAvoidant}: {
		Score:       50,
		Description: "Complex compatibility. Both avoid intimacy but for different reasons.",
		Challenges:  []string{"Double avoidance patterns", "Mixed signals", "Difficulty building trust"},
		Advice:      []string{"Individual attachment work", "Very gradual trust building", "Professional guidance recommended"},
	},
	{StyleFearfulAvoidant, StyleFearfulAvoidant}: {
		Score:       45,
		Description: "Challenging compatibility. Both partners struggle with approach-avoidance conflicts.",
		Challenges:  []string{"Double push-pull dynamics", "Triggered reactions", "Inconsistent behavior"},
		Advice:      []string{"Individual trauma work essential", "External support system", "Clear communication agreements"},
	},
}

var defaultCompatibility = CompatibilityJudgment{
	Score:       50,
	Description: "Compatibility depends on individual growth and communication.",
	Challenges:  []string{"Unknown compatibility pattern"},
	Advice:      []string{"Focus on healthy communication", "Individual self-awareness work"},
}

// LookupCompatibility returns the judgment for a pair of styles and whether it
// came from the matrix. Order of the arguments does not matter.
func LookupCompatibility(a, b AttachmentStyle) (CompatibilityJudgment, bool) {
	if j, ok := compatibilityMatrix[stylePair{a, b}]; ok {
		return j.clone(), true
	}
	if j, ok := compatibilityMatrix[stylePair{b, a}]; ok {
		return j.clone(), true
	}
	return defaultCompatibility.clone(), false
}

// Compatibility is LookupCompatibility without the origin flag.
func Compatibility(a, b AttachmentStyle) CompatibilityJudgment {
	j, _ := LookupCompatibility(a, b)
	return j
}
