package checkstaleness

import (
	"context"
	"math"
	"time"

	"assessment-workers/internal/common/errors"
	"assessment-workers/internal/scoring"
	"assessment-workers/internal/store"
	"assessment-workers/internal/workers/assessment/jobs"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "check-assessment-staleness"

type Handler struct {
	config  *Config
	deps    jobs.Deps
	results store.ResultReader
	now     func() time.Time
}

func NewHandler(config *Config, deps jobs.Deps, results store.ResultReader) *Handler {
	return &Handler{config: config, deps: deps, results: results, now: time.Now}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	jobs.Process(client, job, TaskType, h.config.Timeout, h.deps, h.Execute)
}

// Execute compares the completion date against the expiration window of the
// assessment type. Unknown types use the default window.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	completed, err := h.completedAt(ctx, input)
	if err != nil {
		return nil, err
	}

	t := scoring.AssessmentType(input.AssessmentType)
	now := h.now().UTC()

	return &Output{
		AssessmentType:     input.AssessmentType,
		IsOutdated:         scoring.IsOutdatedAt(completed, now, t),
		ExpirationDays:     scoring.ExpirationDays(t),
		DaysSinceCompleted: int(math.Floor(scoring.DaysBetween(completed, now))),
		CompletedAt:        completed.Format(time.RFC3339),
		ExpiresAt:          scoring.ExpiresAt(completed, t).Format(time.RFC3339),
	}, nil
}

func (h *Handler) completedAt(ctx context.Context, input *Input) (time.Time, error) {
	if input.CompletedDate != "" {
		t, err := scoring.ParseCompletedDate(input.CompletedDate)
		if err != nil {
			return time.Time{}, errors.NewParseError(err)
		}
		return t.UTC(), nil
	}
	if input.PersonID == "" {
		return time.Time{}, errors.NewInputSchemaInvalidError(TaskType, []string{"completedDate or personId is required"})
	}
	if h.results == nil {
		return time.Time{}, errors.NewResultNotFoundError(input.PersonID, input.AssessmentType)
	}
	r, err := h.results.LatestResult(ctx, input.PersonID, input.AssessmentType)
	if err != nil {
		return time.Time{}, err
	}
	return r.CompletedAt.UTC(), nil
}
