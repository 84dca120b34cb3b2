package models

import (
	"encoding/json"
	"time"
)

// AssessmentScores is the calculated_scores document stored with every
// result. Only the fields of the assessment that produced it are set.
type AssessmentScores struct {
	// Big Five
	Openness          *float64 `json:"openness,omitempty"`
	Conscientiousness *float64 `json:"conscientiousness,omitempty"`
	Extraversion      *float64 `json:"extraversion,omitempty"`
	Agreeableness     *float64 `json:"agreeableness,omitempty"`
	Neuroticism       *float64 `json:"neuroticism,omitempty"`

	// MBTI
	MBTIType *string  `json:"mbti_type,omitempty"`
	EIScore  *float64 `json:"e_i_score,omitempty"`
	SNScore  *float64 `json:"s_n_score,omitempty"`
	TFScore  *float64 `json:"t_f_score,omitempty"`
	JPScore  *float64 `json:"j_p_score,omitempty"`

	// Enneagram
	EnneagramType   *int    `json:"enneagram_type,omitempty"`
	Wing            *string `json:"wing,omitempty"`
	InstinctVariant *string `json:"instinct_variant,omitempty"`

	// DISC
	Dominance  *float64 `json:"dominance,omitempty"`
	Influence  *float64 `json:"influence,omitempty"`
	Steadiness *float64 `json:"steadiness,omitempty"`
	Compliance *float64 `json:"compliance,omitempty"`

	// Attachment
	AttachmentStyle  *string           `json:"attachment_style,omitempty"`
	AttachmentScores map[string]float64 `json:"attachment_scores,omitempty"`

	// Emotional intelligence
	SelfAwareness          *float64 `json:"self_awareness,omitempty"`
	SelfManagement         *float64 `json:"self_management,omitempty"`
	SocialAwareness        *float64 `json:"social_awareness,omitempty"`
	RelationshipManagement *float64 `json:"relationship_management,omitempty"`

	RawScores       map[string]float64 `json:"raw_scores,omitempty"`
	Percentiles     map[string]int     `json:"percentiles,omitempty"`
	Interpretations map[string]string  `json:"interpretations,omitempty"`
}

// AssessmentResult is a row of person_assessment_results.
type AssessmentResult struct {
	ID              string           `json:"id"`
	PersonID        string           `json:"personId"`
	AssessmentID    string           `json:"assessmentId,omitempty"`
	AssessmentType  string           `json:"assessmentType"`
	RawResponses    json.RawMessage  `json:"rawResponses"`
	Scores          AssessmentScores `json:"calculatedScores"`
	ConfidenceLevel float64          `json:"confidenceLevel"`
	ScoringVersion  string           `json:"scoringVersion"`
	CompletedAt     time.Time        `json:"completedAt"`
	ExpiresAt       *time.Time       `json:"expiresAt,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
}

// AssessmentSubmission is a row of assessment_submissions: raw answers
// awaiting scoring.
type AssessmentSubmission struct {
	ID             string             `json:"id"`
	PersonID       string             `json:"personId"`
	AssessmentType string             `json:"assessmentType"`
	Responses      map[string]float64 `json:"responses"`
	SubmittedAt    time.Time          `json:"submittedAt"`
}

// AssessmentQuestion describes one questionnaire item.
type AssessmentQuestion struct {
	ID            string         `json:"id"`
	Text          string         `json:"text"`
	Type          string         `json:"type"` // likert, multiple_choice, boolean, ranking
	Options       []string       `json:"options,omitempty"`
	Scale         *QuestionScale `json:"scale,omitempty"`
	Dimension     string         `json:"dimension,omitempty"`
	ReverseScored bool           `json:"reverse_scored,omitempty"`
}

type QuestionScale struct {
	Min    float64  `json:"min"`
	Max    float64  `json:"max"`
	Labels []string `json:"labels"`
}

// Contact is how a person can be reached for reminders.
type Contact struct {
	PersonID string `json:"personId"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}
