package scoreattachment

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
	ResultID           string                     `json:"resultId"`
	PersonID           string                     `json:"personId"`
	PrimaryStyle       string                     `json:"primaryStyle"`
	StyleConfidence    float64                    `json:"styleConfidence"`
	Scores             map[string]float64         `json:"scores"`
	ConfidenceInterval scoring.ConfidenceInterval `json:"confidenceInterval"`
	ValidationWarnings []string                   `json:"validationWarnings"`
	CompletedAt        string                     `json:"completedAt"`
	ExpiresAt          string                     `json:"expiresAt"`
	ScoringVersion     string                     `json:"scoringVersion"`
}
