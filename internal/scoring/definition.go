package scoring

import (
	"errors"
	"fmt"

	"assessment-workers/internal/models"
)

type AssessmentType string

const (
	TypeBigFive               AssessmentType = "big_five"
	TypeAttachment            AssessmentType = "attachment"
	TypeMBTI                  AssessmentType = "mbti"
	TypeEnneagram             AssessmentType = "enneagram"
	TypeDISC                  AssessmentType = "disc"
	TypeEmotionalIntelligence AssessmentType = "emotional_intelligence"
)

type Category string

const (
	CategoryPersonality Category = "personality"
	CategoryRelational  Category = "relational"
	CategoryEmotional   Category = "emotional"
	CategoryAlternative Category = "alternative"
)

var typeCategories = map[AssessmentType]Category{
	TypeBigFive:               CategoryPersonality,
	TypeMBTI:                  CategoryPersonality,
	TypeEnneagram:             CategoryPersonality,
	TypeDISC:                  CategoryPersonality,
	TypeAttachment:            CategoryRelational,
	TypeEmotionalIntelligence: CategoryEmotional,
}

// CategoryOf returns the catalogue category for t. Unknown types are
// alternative.
func CategoryOf(t AssessmentType) Category {
	if c, ok := typeCategories[t]; ok {
		return c
	}
	return CategoryAlternative
}

// Group is a named, ordered set of questions averaged into one score.
type Group struct {
	Name      string   `json:"name"`
	Questions []string `json:"questions"`
}

// Definition bundles everything needed to score one questionnaire.
type Definition struct {
	Type     AssessmentType
	Category Category
	Scale    Scale
	Groups   []Group
	Reverse  map[string]struct{}
	Norms    map[string]Norm
}

// QuestionIDs lists every expected question in group order without
// duplicates.
func (d Definition) QuestionIDs() []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, g := range d.Groups {
		for _, id := range g.Questions {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

func (d Definition) Normalize(responses Responses) Responses {
	return ReverseScore(responses, d.Reverse, d.Scale)
}

func (d Definition) Validate(responses Responses) ValidationReport {
	return ValidateResponses(responses, d.QuestionIDs(), d.Scale)
}

func (d Definition) clone() Definition {
	out := d
	out.Groups = make([]Group, len(d.Groups))
	for i, g := range d.Groups {
		out.Groups[i] = Group{Name: g.Name, Questions: append([]string(nil), g.Questions...)}
	}
	out.Reverse = make(map[string]struct{}, len(d.Reverse))
	for k := range d.Reverse {
		out.Reverse[k] = struct{}{}
	}
	if d.Norms != nil {
		out.Norms = make(map[string]Norm, len(d.Norms))
		for k, v := range d.Norms {
			out.Norms[k] = v
		}
	}
	return out
}

// Question is the scoring-relevant metadata of a single item.
type Question struct {
	ID            string
	Dimension     string
	ReverseScored bool
	Scale         Scale
}

// QuestionFromModel reads the scoring metadata of a stored question. Items
// without an explicit scale are five-point Likert.
func QuestionFromModel(q models.AssessmentQuestion) Question {
	scale := LikertFive
	if q.Scale != nil {
		scale = Scale{Min: q.Scale.Min, Max: q.Scale.Max}
	}
	return Question{ID: q.ID, Dimension: q.Dimension, ReverseScored: q.ReverseScored, Scale: scale}
}

var ErrEmptyQuestionSet = errors.New("question set is empty")

// DefinitionFromQuestions derives a definition for a custom questionnaire.
// Dimensions keep the order in which they first appear. Every question must
// share one scale and name a dimension.
func DefinitionFromQuestions(t AssessmentType, questions []Question, norms map[string]Norm) (Definition, error) {
	if len(questions) == 0 {
		return Definition{}, ErrEmptyQuestionSet
	}

	def := Definition{
		Type:     t,
		Category: CategoryOf(t),
		Scale:    questions[0].Scale,
		Reverse:  make(map[string]struct{}),
		Norms:    norms,
	}
	if def.Scale.Max <= def.Scale.Min {
		return Definition{}, fmt.Errorf("question %s: invalid scale %s", questions[0].ID, def.Scale)
	}

	index := make(map[string]int)
	for _, q := range questions {
		if q.ID == "" {
			return Definition{}, errors.New("question without id")
		}
		if q.Dimension == "" {
			return Definition{}, fmt.Errorf("question %s: no dimension", q.ID)
		}
		if q.Scale != def.Scale {
			return Definition{}, fmt.Errorf("question %s: scale %s differs from %s", q.ID, q.Scale, def.Scale)
		}
		i, ok := index[q.Dimension]
		if !ok {
			i = len(def.Groups)
			index[q.Dimension] = i
			def.Groups = append(def.Groups, Group{Name: q.Dimension})
		}
		def.Groups[i].Questions = append(def.Groups[i].Questions, q.ID)
		if q.ReverseScored {
			def.Reverse[q.ID] = struct{}{}
		}
	}
	return def, nil
}

// DefinitionFromModels derives a definition from stored question metadata.
func DefinitionFromModels(t AssessmentType, questions []models.AssessmentQuestion, norms map[string]Norm) (Definition, error) {
	qs := make([]Question, 0, len(questions))
	for _, q := range questions {
		qs = append(qs, QuestionFromModel(q))
	}
	return DefinitionFromQuestions(t, qs, norms)
}

// Score normalizes and aggregates responses. Dimensions with a norm also get
// a percentile.
func (d Definition) Score(responses Responses) *DimensionalResult {
	normalized := d.Normalize(responses)
	res := &DimensionalResult{
		Type:        d.Type,
		Dimensions:  AggregateGroups(d.Groups, normalized),
		Percentiles: make(map[string]int),
	}
	for name, score := range res.Dimensions {
		if n, ok := d.Norms[name]; ok {
			res.Percentiles[name] = Percentile(score, n)
		}
	}
	return res
}

// Result scores responses into the variant suited to the definition. Types
// with a fixed scores layout or any normed dimension stay dimensional; the
// rest keep only their raw dimension means.
func (d Definition) Result(responses Responses) Result {
	res := d.Score(responses)
	if hasDimensionalLayout(d.Type) || len(res.Percentiles) > 0 {
		return res
	}
	return &GenericResult{Type: d.Type, RawScores: res.Dimensions}
}

func hasDimensionalLayout(t AssessmentType) bool {
	switch t {
	case TypeBigFive, TypeDISC, TypeEmotionalIntelligence:
		return true
	}
	return false
}

// Lookup returns a copy of the built-in definition for t.
func Lookup(t AssessmentType) (Definition, bool) {
	switch t {
	case TypeBigFive:
		return BigFive(), true
	case TypeAttachment:
		return Attachment(), true
	}
	return Definition{}, false
}
