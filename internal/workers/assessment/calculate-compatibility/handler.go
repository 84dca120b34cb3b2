package calculatecompatibility

import (
	"context"

	"assessment-workers/internal/common/errors"
	"assessment-workers/internal/common/metrics"
	"assessment-workers/internal/scoring"
	"assessment-workers/internal/store"
	"assessment-workers/internal/workers/assessment/jobs"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "calculate-compatibility"

type Handler struct {
	config  *Config
	deps    jobs.Deps
	results store.ResultReader
}

func NewHandler(config *Config, deps jobs.Deps, results store.ResultReader) *Handler {
	return &Handler{config: config, deps: deps, results: results}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	jobs.Process(client, job, TaskType, h.config.Timeout, h.deps, h.Execute)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	style1, style2 := input.Style1, input.Style2
	if style1 == "" || style2 == "" {
		if input.PersonID1 == "" || input.PersonID2 == "" {
			return nil, errors.NewInputSchemaInvalidError(TaskType,
				[]string{"style1 and style2, or personId1 and personId2, are required"})
		}
		var err error
		if style1, err = h.latestStyle(ctx, input.PersonID1); err != nil {
			return nil, err
		}
		if style2, err = h.latestStyle(ctx, input.PersonID2); err != nil {
			return nil, err
		}
	}

	judgment, known := scoring.LookupCompatibility(scoring.AttachmentStyle(style1), scoring.AttachmentStyle(style2))
	source := SourceFallback
	if known {
		source = SourceTable
	}
	metrics.CompatibilityLookups.WithLabelValues(source).Inc()

	return &Output{
		Style1:      style1,
		Style2:      style2,
		Score:       judgment.Score,
		Description: judgment.Description,
		Challenges:  judgment.Challenges,
		Advice:      judgment.Advice,
		Source:      source,
	}, nil
}

func (h *Handler) latestStyle(ctx context.Context, personID string) (string, error) {
	if h.results == nil {
		return "", errors.NewResultNotFoundError(personID, string(scoring.TypeAttachment))
	}
	r, err := h.results.LatestResult(ctx, personID, string(scoring.TypeAttachment))
	if err != nil {
		return "", err
	}
	profile, ok := scoring.AttachmentProfileFromScores(r.Scores)
	if !ok {
		return "", errors.NewResultNotFoundError(personID, string(scoring.TypeAttachment))
	}
	return string(profile.PrimaryStyle), nil
}
