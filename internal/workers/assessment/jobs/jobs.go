// Package jobs holds the plumbing every assessment worker shares: decoding
// job variables, completing jobs and persisting scored results.
package jobs

import (
	"context"
	"encoding/json"
	"time"

	"assessment-workers/internal/common/errors"
	"assessment-workers/internal/common/logger"
	"assessment-workers/internal/common/observability"
	"assessment-workers/internal/common/validation"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

// Deps are the cross-cutting collaborators of a handler. Schemas and
// Telemetry may be nil.
type Deps struct {
	Logger    logger.Logger
	Errors    *errors.ErrorHandler
	Schemas   *validation.SchemaValidator
	Telemetry *observability.Observability
}

func (d Deps) forTask(taskType string) Deps {
	if d.Logger == nil {
		d.Logger = logger.NewNoOpLogger()
	}
	d.Logger = d.Logger.WithFields(map[string]interface{}{"taskType": taskType})
	if d.Errors == nil {
		d.Errors = errors.NewErrorHandler(d.Logger)
	}
	return d
}

// Process runs one job: decode, execute under timeout, then complete the job
// or hand the error to the error handler.
func Process[I any, O any](
	client worker.JobClient,
	job entities.Job,
	taskType string,
	timeout time.Duration,
	deps Deps,
	execute func(context.Context, *I) (*O, error),
) {
	deps = deps.forTask(taskType)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ctx, span := deps.Telemetry.StartJob(ctx, taskType, job.Key)

	deps.Logger.Info("processing job", map[string]interface{}{
		"jobKey":             job.Key,
		"processInstanceKey": job.ProcessInstanceKey,
	})

	var input I
	err := Decode(job, taskType, deps.Schemas, &input)
	if err == nil {
		var output *O
		output, err = execute(ctx, &input)
		if err == nil {
			err = Complete(ctx, client, job, output)
			if err != nil {
				deps.Logger.Error("failed to complete job", map[string]interface{}{
					"jobKey": job.Key,
					"error":  err.Error(),
				})
				span.End(err)
				return
			}
			deps.Logger.Info("job completed", map[string]interface{}{"jobKey": job.Key})
		}
	}
	if err != nil {
		deps.Errors.HandleJobError(ctx, client, job, err)
	}
	span.End(err)
}

// Decode checks the job variables against the registered input schema and
// unmarshals them into input.
func Decode(job entities.Job, taskType string, schemas *validation.SchemaValidator, input interface{}) error {
	vars, err := job.GetVariablesAsMap()
	if err != nil {
		return errors.NewParseError(err)
	}

	result, err := schemas.ValidateInput(taskType, vars)
	if err != nil {
		return errors.NewInputSchemaInvalidError(taskType, []string{err.Error()})
	}
	if !result.Valid {
		return errors.NewInputSchemaInvalidError(taskType, result.GetErrorMessages())
	}

	if err := json.Unmarshal([]byte(job.Variables), input); err != nil {
		return errors.NewParseError(err)
	}
	return nil
}

// Complete sends the output as the job's result variables.
func Complete(ctx context.Context, client worker.JobClient, job entities.Job, output interface{}) error {
	cmd, err := client.NewCompleteJobCommand().JobKey(job.Key).VariablesFromObject(output)
	if err != nil {
		return err
	}
	_, err = cmd.Send(ctx)
	return err
}
