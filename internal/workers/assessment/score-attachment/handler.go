package scoreattachment

import (
	"context"
	"time"

	"assessment-workers/internal/common/errors"
	"assessment-workers/internal/common/metrics"
	"assessment-workers/internal/scoring"
	"assessment-workers/internal/workers/assessment/jobs"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const TaskType = "score-attachment"

type Handler struct {
	config      *Config
	deps        jobs.Deps
	submissions jobs.SubmissionLoader
	persister   *jobs.Persister
	now         func() time.Time
	newID       func() string
}

func NewHandler(config *Config, deps jobs.Deps, submissions jobs.SubmissionLoader, persister *jobs.Persister) *Handler {
	return &Handler{
		config:      config,
		deps:        deps,
		submissions: submissions,
		persister:   persister,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	jobs.Process(client, job, TaskType, h.config.Timeout, h.deps, h.Execute)
}

// Execute classifies the primary attachment style and stores the profile.
// The stored confidence is the style confidence, not the answer coverage.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	responses, sub, err := input.Resolve(ctx, TaskType, h.submissions)
	if err != nil {
		return nil, err
	}
	if sub != nil && sub.AssessmentType != "" && sub.AssessmentType != string(scoring.TypeAttachment) {
		return nil, errors.NewUnknownAssessmentTypeError(sub.AssessmentType)
	}

	def := scoring.Attachment()
	report := def.Validate(responses)
	if !report.IsValid {
		metrics.ResponseValidationFailures.WithLabelValues(string(scoring.TypeAttachment)).Inc()
		if h.config.StrictValidation {
			return nil, errors.NewResponsesInvalidError(report.Errors)
		}
	}

	completed, err := jobs.CompletionTime(input.CompletedAt, sub, h.now())
	if err != nil {
		return nil, err
	}

	profile := scoring.ScoreAttachment(responses)
	answered := scoring.AnsweredCount(def.QuestionIDs(), responses)
	interval := scoring.NewConfidenceInterval(profile.StyleConfidence, answered, h.config.ConfidenceLevel)

	record, err := jobs.NewResult(h.newID(), input.PersonID, scoring.NewAttachmentResult(profile),
		responses, profile.StyleConfidence, completed, sub)
	if err != nil {
		return nil, err
	}
	if err := h.persister.Persist(ctx, record); err != nil {
		return nil, err
	}
	metrics.AssessmentsScored.WithLabelValues(string(scoring.TypeAttachment)).Inc()

	scores := make(map[string]float64, len(profile.Scores))
	for style, v := range profile.Scores {
		scores[string(style)] = v
	}

	return &Output{
		ResultID:           record.ID,
		PersonID:           record.PersonID,
		PrimaryStyle:       string(profile.PrimaryStyle),
		StyleConfidence:    profile.StyleConfidence,
		Scores:             scores,
		ConfidenceInterval: interval,
		ValidationWarnings: report.Errors,
		CompletedAt:        completed.Format(time.RFC3339),
		ExpiresAt:          record.ExpiresAt.Format(time.RFC3339),
		ScoringVersion:     record.ScoringVersion,
	}, nil
}
