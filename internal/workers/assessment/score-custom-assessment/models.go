package scorecustom

import (
	"assessment-workers/internal/models"
	"assessment-workers/internal/scoring"
	"assessment-workers/internal/workers/assessment/jobs"
)

type Input struct {
	PersonID       string                      `json:"personId"`
	UserID         string                      `json:"userId,omitempty"`
	AssessmentType string                      `json:"assessmentType,omitempty"`
	Questions      []models.AssessmentQuestion `json:"questions"`
	Norms          map[string]scoring.Norm     `json:"norms,omitempty"`
	CompletedAt    string                      `json:"completedAt,omitempty"`
	jobs.ResponseSource
}

// Result variants reported in Output.Variant.
const (
	VariantDimensional = "dimensional"
	VariantGeneric     = "generic"
)

type Output struct {
	ResultID           string             `json:"resultId"`
	PersonID           string             `json:"personId"`
	AssessmentType     string             `json:"assessmentType"`
	Category           string             `json:"category"`
	Variant            string             `json:"variant"`
	Scores             map[string]float64 `json:"scores"`
	Percentiles        map[string]int     `json:"percentiles,omitempty"`
	ConfidenceLevel    float64            `json:"confidenceLevel"`
	ValidationWarnings []string           `json:"validationWarnings"`
	CompletedAt        string             `json:"completedAt"`
	ExpiresAt          string             `json:"expiresAt"`
	ScoringVersion     string             `json:"scoringVersion"`
}
