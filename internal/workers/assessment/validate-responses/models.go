package validateresponses

import (
	"assessment-workers/internal/models"
	"assessment-workers/internal/workers/assessment/jobs"
)

type Input struct {
	AssessmentType string `json:"assessmentType,omitempty"`
	// Questions describe a custom questionnaire. They are only consulted
	// when the assessment type has no built-in definition.
	Questions []models.AssessmentQuestion `json:"questions,omitempty"`
	jobs.ResponseSource
}

type Output struct {
	AssessmentType string   `json:"assessmentType"`
	IsValid        bool     `json:"isValid"`
	Errors         []string `json:"errors"`
	ExpectedCount  int      `json:"expectedCount"`
	AnsweredCount  int      `json:"answeredCount"`
}
