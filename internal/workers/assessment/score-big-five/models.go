package scorebigfive

import (
	"assessment-workers/internal/scoring"
	"assessment-workers/internal/workers/assessment/jobs"
)

type Input struct {
	PersonID    string `json:"personId"`
	UserID      string `json:"userId,omitempty"`
	CompletedAt string `json:"completedAt,omitempty"`
	jobs.ResponseSource
}

type Output struct {
	ResultID           string                            `json:"resultId"`
	PersonID           string                            `json:"personId"`
	Scores             map[string]float64                `json:"scores"`
	Percentiles        map[string]int                    `json:"percentiles"`
	Interpretations    map[string]scoring.Interpretation `json:"interpretations"`
	ConfidenceLevel    float64                           `json:"confidenceLevel"`
	ValidationWarnings []string                          `json:"validationWarnings"`
	CompletedAt        string                            `json:"completedAt"`
	ExpiresAt          string                            `json:"expiresAt"`
	ScoringVersion     string                            `json:"scoringVersion"`
}
