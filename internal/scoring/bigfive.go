package scoring

import "fmt"

// Dimension names one of the five factors.
type Dimension string

const (
	Openness          Dimension = "openness"
	Conscientiousness Dimension = "conscientiousness"
	Extraversion      Dimension = "extraversion"
	Agreeableness     Dimension = "agreeableness"
	Neuroticism       Dimension = "neuroticism"
)

// Dimensions in questionnaire order.
var Dimensions = []Dimension{Extraversion, Agreeableness, Conscientiousness, Neuroticism, Openness}

var bigFive = Definition{
	Type:     TypeBigFive,
	Category: CategoryPersonality,
	Scale:    LikertFive,
	Groups: []Group{
		{Name: string(Extraversion), Questions: strided(1, 5, 10)},
		{Name: string(Agreeableness), Questions: strided(2, 5, 10)},
		{Name: string(Conscientiousness), Questions: strided(3, 5, 10)},
		{Name: string(Neuroticism), Questions: strided(4, 5, 10)},
		{Name: string(Openness), Questions: strided(5, 5, 10)},
	},
	Reverse: idSet(
		"q2", "q6", "q8", "q9", "q10", "q12", "q16", "q18", "q19", "q20",
		"q22", "q26", "q28", "q30", "q32", "q36", "q38", "q46",
	),
	Norms: map[string]Norm{
		string(Openness):          {Mean: 3.4, SD: 0.7},
		string(Conscientiousness): {Mean: 3.6, SD: 0.8},
		string(Extraversion):      {Mean: 3.3, SD: 0.9},
		string(Agreeableness):     {Mean: 3.7, SD: 0.7},
		string(Neuroticism):       {Mean: 2.9, SD: 0.8},
	},
}

// BigFive returns a copy of the fifty-item five factor definition.
func BigFive() Definition {
	return bigFive.clone()
}

// BigFiveScores holds the five factor means and their percentiles.
type BigFiveScores struct {
	Openness          float64           `json:"openness"`
	Conscientiousness float64           `json:"conscientiousness"`
	Extraversion      float64           `json:"extraversion"`
	Agreeableness     float64           `json:"agreeableness"`
	Neuroticism       float64           `json:"neuroticism"`
	Percentiles       map[Dimension]int `json:"percentiles"`
}

func (s BigFiveScores) Score(d Dimension) float64 {
	switch d {
	case Openness:
		return s.Openness
	case Conscientiousness:
		return s.Conscientiousness
	case Extraversion:
		return s.Extraversion
	case Agreeableness:
		return s.Agreeableness
	case Neuroticism:
		return s.Neuroticism
	}
	return 0
}

// ScoreBigFive reverse-scores, aggregates and ranks a five factor submission.
func ScoreBigFive(responses Responses) BigFiveScores {
	dims := AggregateGroups(bigFive.Groups, bigFive.Normalize(responses))
	scores := BigFiveScores{
		Openness:          dims[string(Openness)],
		Conscientiousness: dims[string(Conscientiousness)],
		Extraversion:      dims[string(Extraversion)],
		Agreeableness:     dims[string(Agreeableness)],
		Neuroticism:       dims[string(Neuroticism)],
		Percentiles:       make(map[Dimension]int, len(Dimensions)),
	}
	for _, d := range Dimensions {
		scores.Percentiles[d] = DimensionPercentile(d, scores.Score(d))
	}
	return scores
}

// DimensionPercentile ranks score against the population norm of d. A
// dimension without a norm sits at the 50th percentile.
func DimensionPercentile(d Dimension, score float64) int {
	n, ok := bigFive.Norms[string(d)]
	if !ok {
		return 50
	}
	return Percentile(score, n)
}

// InterpretBigFive summarizes every dimension of scores.
func InterpretBigFive(scores BigFiveScores) map[Dimension]Interpretation {
	out := make(map[Dimension]Interpretation, len(Dimensions))
	for _, d := range Dimensions {
		score := scores.Score(d)
		p, ok := scores.Percentiles[d]
		if !ok {
			p = DimensionPercentile(d, score)
		}
		out[d] = Interpret(string(d), score, p)
	}
	return out
}

func strided(first, step, count int) []string {
	ids := make([]string, count)
	for i := range ids {
		ids[i] = fmt.Sprintf("q%d", first+i*step)
	}
	return ids
}

func idSet(ids ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
