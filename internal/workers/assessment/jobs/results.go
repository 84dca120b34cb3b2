package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"assessment-workers/internal/common/errors"
	"assessment-workers/internal/common/logger"
	"assessment-workers/internal/models"
	"assessment-workers/internal/scoring"
)

type SubmissionLoader interface {
	LoadSubmission(ctx context.Context, id string) (*models.AssessmentSubmission, error)
}

type ResultSaver interface {
	SaveResult(ctx context.Context, r *models.AssessmentResult) error
}

type ResultCache interface {
	Put(ctx context.Context, r *models.AssessmentResult)
}

type ResultIndexer interface {
	Index(ctx context.Context, r *models.AssessmentResult) error
}

// ResponseSource is how a job supplies answers: inline or by submission id.
type ResponseSource struct {
	Responses    map[string]float64 `json:"responses,omitempty"`
	SubmissionID string             `json:"submissionId,omitempty"`
}

// Resolve returns the inline responses when present, otherwise the stored
// submission. An explicit empty set counts as inline. The submission is nil
// for inline responses.
func (s ResponseSource) Resolve(ctx context.Context, taskType string, loader SubmissionLoader) (scoring.Responses, *models.AssessmentSubmission, error) {
	if s.Responses != nil {
		return scoring.Responses(s.Responses).Clone(), nil, nil
	}
	if s.SubmissionID == "" || loader == nil {
		return nil, nil, errors.NewInputSchemaInvalidError(taskType, []string{"responses or submissionId is required"})
	}
	sub, err := loader.LoadSubmission(ctx, s.SubmissionID)
	if err != nil {
		return nil, nil, err
	}
	return scoring.Responses(sub.Responses), sub, nil
}

// ResolveDefinition returns the built-in definition for assessmentType, or
// derives one from questions when the type has none.
func ResolveDefinition(taskType, assessmentType string, questions []models.AssessmentQuestion, norms map[string]scoring.Norm) (scoring.Definition, error) {
	t := scoring.AssessmentType(assessmentType)
	if def, ok := scoring.Lookup(t); ok {
		return def, nil
	}
	if assessmentType == "" || len(questions) == 0 {
		return scoring.Definition{}, errors.NewUnknownAssessmentTypeError(assessmentType)
	}
	def, err := scoring.DefinitionFromModels(t, questions, norms)
	if err != nil {
		return scoring.Definition{}, errors.NewInputSchemaInvalidError(taskType, []string{err.Error()})
	}
	return def, nil
}

// CompletionTime picks the explicit completion date, then the submission
// time, then now.
func CompletionTime(explicit string, sub *models.AssessmentSubmission, now time.Time) (time.Time, error) {
	if explicit != "" {
		t, err := scoring.ParseCompletedDate(explicit)
		if err != nil {
			return time.Time{}, errors.NewParseError(err)
		}
		return t.UTC(), nil
	}
	if sub != nil && !sub.SubmittedAt.IsZero() {
		return sub.SubmittedAt.UTC(), nil
	}
	return now.UTC(), nil
}

// NewResult assembles the row for a freshly scored submission.
func NewResult(id, personID string, res scoring.Result, responses scoring.Responses, confidence float64, completed time.Time, sub *models.AssessmentSubmission) (*models.AssessmentResult, error) {
	raw, err := json.Marshal(responses)
	if err != nil {
		return nil, errors.NewParseError(fmt.Errorf("encode responses: %w", err))
	}
	expires := scoring.ExpiresAt(completed, res.AssessmentType())

	r := &models.AssessmentResult{
		ID:              id,
		PersonID:        personID,
		AssessmentType:  string(res.AssessmentType()),
		RawResponses:    raw,
		Scores:          res.Scores(),
		ConfidenceLevel: confidence,
		ScoringVersion:  scoring.TablesVersion,
		CompletedAt:     completed,
		ExpiresAt:       &expires,
	}
	if sub != nil {
		r.AssessmentID = sub.ID
		if r.PersonID == "" {
			r.PersonID = sub.PersonID
		}
	}
	return r, nil
}

// Persister writes a result to the store, then refreshes the cache and the
// search index. Only the store write can fail the job.
type Persister struct {
	Saver   ResultSaver
	Cache   ResultCache
	Indexer ResultIndexer
	Logger  logger.Logger
}

func (p *Persister) Persist(ctx context.Context, r *models.AssessmentResult) error {
	if err := p.Saver.SaveResult(ctx, r); err != nil {
		return err
	}
	if p.Cache != nil {
		p.Cache.Put(ctx, r)
	}
	if p.Indexer != nil {
		if err := p.Indexer.Index(ctx, r); err != nil && p.Logger != nil {
			p.Logger.Warn("result indexing failed", map[string]interface{}{
				"resultId": r.ID,
				"error":    err.Error(),
			})
		}
	}
	return nil
}
