package validateresponses

import (
	"context"

	"assessment-workers/internal/common/metrics"
	"assessment-workers/internal/scoring"
	"assessment-workers/internal/workers/assessment/jobs"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "validate-responses"

type Handler struct {
	config      *Config
	deps        jobs.Deps
	submissions jobs.SubmissionLoader
}

func NewHandler(config *Config, deps jobs.Deps, submissions jobs.SubmissionLoader) *Handler {
	return &Handler{config: config, deps: deps, submissions: submissions}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	jobs.Process(client, job, TaskType, h.config.Timeout, h.deps, h.Execute)
}

// Execute reports on a response set without rejecting it. An invalid set is
// a successful job with isValid=false.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	responses, sub, err := input.Resolve(ctx, TaskType, h.submissions)
	if err != nil {
		return nil, err
	}

	assessmentType := input.AssessmentType
	if assessmentType == "" && sub != nil {
		assessmentType = sub.AssessmentType
	}

	def, err := jobs.ResolveDefinition(TaskType, assessmentType, input.Questions, nil)
	if err != nil {
		return nil, err
	}

	report := def.Validate(responses)
	if !report.IsValid {
		metrics.ResponseValidationFailures.WithLabelValues(assessmentType).Inc()
	}

	expected := def.QuestionIDs()
	return &Output{
		AssessmentType: assessmentType,
		IsValid:        report.IsValid,
		Errors:         report.Errors,
		ExpectedCount:  len(expected),
		AnsweredCount:  scoring.AnsweredCount(expected, responses),
	}, nil
}
