package scoring

import "assessment-workers/internal/models"

// Result is the closed set of scoring outcomes. Each variant knows how to
// render itself as the persisted scores document.
type Result interface {
	AssessmentType() AssessmentType
	Scores() models.AssessmentScores
	isResult()
}

// DimensionalResult is produced by questionnaires that average answers into
// named dimensions.
type DimensionalResult struct {
	Type            AssessmentType            `json:"assessmentType"`
	Dimensions      map[string]float64        `json:"dimensions"`
	Percentiles     map[string]int            `json:"percentiles"`
	Interpretations map[string]Interpretation `json:"interpretations,omitempty"`
}

// CategoricalResult is produced by questionnaires that pick one category.
type CategoricalResult struct {
	Type    AssessmentType    `json:"assessmentType"`
	Profile AttachmentProfile `json:"profile"`
}

// GenericResult carries raw scores for questionnaires without a dedicated
// layout.
type GenericResult struct {
	Type      AssessmentType     `json:"assessmentType"`
	RawScores map[string]float64 `json:"rawScores"`
}

func (*DimensionalResult) isResult() {}
func (*CategoricalResult) isResult() {}
func (*GenericResult) isResult()     {}

func (r *DimensionalResult) AssessmentType() AssessmentType { return r.Type }
func (r *CategoricalResult) AssessmentType() AssessmentType { return r.Type }
func (r *GenericResult) AssessmentType() AssessmentType     { return r.Type }

// NewBigFiveResult wraps five factor scores with their interpretations.
func NewBigFiveResult(s BigFiveScores) *DimensionalResult {
	res := &DimensionalResult{
		Type:            TypeBigFive,
		Dimensions:      make(map[string]float64, len(Dimensions)),
		Percentiles:     make(map[string]int, len(Dimensions)),
		Interpretations: make(map[string]Interpretation, len(Dimensions)),
	}
	for d, in := range InterpretBigFive(s) {
		res.Dimensions[string(d)] = in.Score
		res.Percentiles[string(d)] = in.Percentile
		res.Interpretations[string(d)] = in
	}
	return res
}

func NewAttachmentResult(p AttachmentProfile) *CategoricalResult {
	return &CategoricalResult{Type: TypeAttachment, Profile: p}
}

func (r *DimensionalResult) Scores() models.AssessmentScores {
	out := models.AssessmentScores{
		RawScores:   copyFloats(r.Dimensions),
		Percentiles: make(map[string]int, len(r.Percentiles)),
	}
	for k, v := range r.Percentiles {
		out.Percentiles[k] = v
	}
	if len(r.Interpretations) > 0 {
		out.Interpretations = make(map[string]string, len(r.Interpretations))
		for k, in := range r.Interpretations {
			out.Interpretations[k] = in.Description
		}
	}

	if r.Type == TypeBigFive {
		out.Openness = floatField(r.Dimensions, string(Openness))
		out.Conscientiousness = floatField(r.Dimensions, string(Conscientiousness))
		out.Extraversion = floatField(r.Dimensions, string(Extraversion))
		out.Agreeableness = floatField(r.Dimensions, string(Agreeableness))
		out.Neuroticism = floatField(r.Dimensions, string(Neuroticism))
	}
	if r.Type == TypeEmotionalIntelligence {
		out.SelfAwareness = floatField(r.Dimensions, "self_awareness")
		out.SelfManagement = floatField(r.Dimensions, "self_management")
		out.SocialAwareness = floatField(r.Dimensions, "social_awareness")
		out.RelationshipManagement = floatField(r.Dimensions, "relationship_management")
	}
	if r.Type == TypeDISC {
		out.Dominance = floatField(r.Dimensions, "dominance")
		out.Influence = floatField(r.Dimensions, "influence")
		out.Steadiness = floatField(r.Dimensions, "steadiness")
		out.Compliance = floatField(r.Dimensions, "compliance")
	}
	return out
}

func (r *CategoricalResult) Scores() models.AssessmentScores {
	style := string(r.Profile.PrimaryStyle)
	scores := make(map[string]float64, len(r.Profile.Scores))
	for k, v := range r.Profile.Scores {
		scores[string(k)] = v
	}
	return models.AssessmentScores{
		AttachmentStyle:  &style,
		AttachmentScores: scores,
	}
}

func (r *GenericResult) Scores() models.AssessmentScores {
	return models.AssessmentScores{RawScores: copyFloats(r.RawScores)}
}

// AttachmentProfileFromScores rebuilds a profile from a stored scores
// document. It reports false when no attachment style was recorded.
func AttachmentProfileFromScores(s models.AssessmentScores) (AttachmentProfile, bool) {
	if s.AttachmentStyle == nil {
		return AttachmentProfile{}, false
	}
	style, ok := ParseAttachmentStyle(*s.AttachmentStyle)
	if !ok {
		return AttachmentProfile{}, false
	}
	p := AttachmentProfile{
		Scores:       make(map[AttachmentStyle]float64, len(s.AttachmentScores)),
		PrimaryStyle: style,
	}
	for k, v := range s.AttachmentScores {
		p.Scores[AttachmentStyle(k)] = v
	}
	if len(p.Scores) > 0 {
		_, p.StyleConfidence = ClassifyAttachment(p.Scores)
	}
	return p, true
}

func floatField(m map[string]float64, key string) *float64 {
	v, ok := m[key]
	if !ok {
		return nil
	}
	return &v
}

func copyFloats(m map[string]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
