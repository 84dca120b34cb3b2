package scorecustom

import (
	"context"
	"fmt"
	"time"

	"assessment-workers/internal/common/errors"
	"assessment-workers/internal/common/metrics"
	"assessment-workers/internal/scoring"
	"assessment-workers/internal/workers/assessment/jobs"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const TaskType = "score-custom-assessment"

// Handler scores questionnaires whose layout arrives with the job as
// question metadata.
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

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	responses, sub, err := input.Resolve(ctx, TaskType, h.submissions)
	if err != nil {
		return nil, err
	}
	assessmentType := input.AssessmentType
	if assessmentType == "" && sub != nil {
		assessmentType = sub.AssessmentType
	}
	if _, builtIn := scoring.Lookup(scoring.AssessmentType(assessmentType)); builtIn {
		return nil, errors.NewInputSchemaInvalidError(TaskType, []string{
			fmt.Sprintf("assessment type %s has a dedicated scoring worker", assessmentType),
		})
	}

	def, err := jobs.ResolveDefinition(TaskType, assessmentType, input.Questions, input.Norms)
	if err != nil {
		return nil, err
	}

	report := def.Validate(responses)
	if !report.IsValid {
		metrics.ResponseValidationFailures.WithLabelValues(assessmentType).Inc()
		if h.config.StrictValidation {
			return nil, errors.NewResponsesInvalidError(report.Errors)
		}
	}

	completed, err := jobs.CompletionTime(input.CompletedAt, sub, h.now())
	if err != nil {
		return nil, err
	}

	result := def.Result(responses)
	expected := def.QuestionIDs()
	confidence := float64(scoring.AnsweredCount(expected, responses)) / float64(len(expected))

	record, err := jobs.NewResult(h.newID(), input.PersonID, result, responses, confidence, completed, sub)
	if err != nil {
		return nil, err
	}
	if err := h.persister.Persist(ctx, record); err != nil {
		return nil, err
	}
	metrics.AssessmentsScored.WithLabelValues(assessmentType).Inc()

	out := &Output{
		ResultID:           record.ID,
		PersonID:           record.PersonID,
		AssessmentType:     assessmentType,
		Category:           string(def.Category),
		ConfidenceLevel:    confidence,
		ValidationWarnings: report.Errors,
		CompletedAt:        completed.Format(time.RFC3339),
		ExpiresAt:          record.ExpiresAt.Format(time.RFC3339),
		ScoringVersion:     record.ScoringVersion,
	}
	switch r := result.(type) {
	case *scoring.DimensionalResult:
		out.Variant = VariantDimensional
		out.Scores = r.Dimensions
		out.Percentiles = r.Percentiles
	case *scoring.GenericResult:
		out.Variant = VariantGeneric
		out.Scores = r.RawScores
	}
	return out, nil
}
