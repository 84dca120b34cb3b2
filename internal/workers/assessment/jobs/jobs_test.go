package jobs

import (
	"context"
	"testing"
	"time"

	"assessment-workers/internal/common/camunda/camundatest"
	"assessment-workers/internal/common/errors"
	"assessment-workers/internal/common/logger"
	"assessment-workers/internal/common/validation"
	"assessment-workers/internal/models"
	"assessment-workers/internal/scoring"
	"assessment-workers/pkg/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoInput struct {
	Name string `json:"name"`
}

type echoOutput struct {
	Greeting string `json:"greeting"`
}

func echo(_ context.Context, in *echoInput) (*echoOutput, error) {
	if in.Name == "db-down" {
		return nil, errors.NewDatabaseConnectionFailedError(assert.AnError)
	}
	return &echoOutput{Greeting: "hello " + in.Name}, nil
}

func testSchemas(t *testing.T) *validation.SchemaValidator {
	t.Helper()
	v, err := validation.NewSchemaValidator(&registry.ActivityRegistry{Activities: []registry.Activity{{
		ID:       "test.echo.run",
		TaskType: "echo",
		InputSchema: map[string]interface{}{
			"type":     "object",
			"required": []interface{}{"name"},
		},
	}}})
	require.NoError(t, err)
	return v
}

func TestProcess(t *testing.T) {
	tests := []struct {
		name           string
		variables      interface{}
		validateOutput func(t *testing.T, client *camundatest.JobClient)
	}{
		{
			name:      "completes with output variables",
			variables: map[string]interface{}{"name": "Ada"},
			validateOutput: func(t *testing.T, client *camundatest.JobClient) {
				vars, ok := client.CompletedVariables()
				require.True(t, ok)
				assert.Equal(t, "hello Ada", vars["greeting"])
			},
		},
		{
			name:      "schema violation is thrown",
			variables: map[string]interface{}{"other": 1},
			validateOutput: func(t *testing.T, client *camundatest.JobClient) {
				thrown := client.Thrown()
				require.Len(t, thrown, 1)
				assert.Equal(t, "INVALID_INPUT", thrown[0].ErrorCode)
			},
		},
		{
			name:      "malformed variables are thrown",
			variables: `{"name":`,
			validateOutput: func(t *testing.T, client *camundatest.JobClient) {
				thrown := client.Thrown()
				require.Len(t, thrown, 1)
				assert.Equal(t, "INVALID_INPUT", thrown[0].ErrorCode)
			},
		},
		{
			name:      "infrastructure error fails for retry",
			variables: map[string]interface{}{"name": "db-down"},
			validateOutput: func(t *testing.T, client *camundatest.JobClient) {
				failed := client.Failed()
				require.Len(t, failed, 1)
				assert.Equal(t, int32(2), failed[0].Retries)
				assert.Empty(t, client.Completed())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := camundatest.NewJobClient()
			job := camundatest.NewJob(1, "echo", tt.variables)

			Process(client, job, "echo", time.Second, Deps{
				Logger:  logger.NewTestLogger(t),
				Schemas: testSchemas(t),
			}, echo)

			tt.validateOutput(t, client)
		})
	}
}

type stubLoader struct {
	sub *models.AssessmentSubmission
	err error
}

func (s stubLoader) LoadSubmission(context.Context, string) (*models.AssessmentSubmission, error) {
	return s.sub, s.err
}

func TestResponseSource_Resolve(t *testing.T) {
	stored := &models.AssessmentSubmission{ID: "sub-1", PersonID: "p-1", Responses: map[string]float64{"q1": 2}}

	tests := []struct {
		name     string
		source   ResponseSource
		loader   SubmissionLoader
		expected scoring.Responses
		wantSub  bool
		wantCode errors.ErrorCode
	}{
		{
			name:     "inline wins",
			source:   ResponseSource{Responses: map[string]float64{"q1": 5}, SubmissionID: "sub-1"},
			loader:   stubLoader{sub: stored},
			expected: scoring.Responses{"q1": 5},
		},
		{
			name:     "loads submission",
			source:   ResponseSource{SubmissionID: "sub-1"},
			loader:   stubLoader{sub: stored},
			expected: scoring.Responses{"q1": 2},
			wantSub:  true,
		},
		{
			name:     "missing submission",
			source:   ResponseSource{SubmissionID: "sub-404"},
			loader:   stubLoader{err: errors.NewSubmissionNotFoundError("sub-404")},
			wantCode: errors.ErrCodeSubmissionNotFound,
		},
		{
			name:     "explicit empty set is inline",
			source:   ResponseSource{Responses: map[string]float64{}, SubmissionID: "sub-1"},
			loader:   stubLoader{sub: stored},
			expected: scoring.Responses{},
		},
		{
			name:     "nothing supplied",
			source:   ResponseSource{},
			loader:   stubLoader{},
			wantCode: errors.ErrCodeInputSchemaInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			responses, sub, err := tt.source.Resolve(context.Background(), "score-big-five", tt.loader)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, responses)
			assert.Equal(t, tt.wantSub, sub != nil)
		})
	}
}

func TestCompletionTime(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	submitted := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	got, err := CompletionTime("2024-06-01", nil, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = CompletionTime("", &models.AssessmentSubmission{SubmittedAt: submitted}, now)
	require.NoError(t, err)
	assert.Equal(t, submitted, got)

	got, err = CompletionTime("", nil, now)
	require.NoError(t, err)
	assert.Equal(t, now, got)

	_, err = CompletionTime("last tuesday", nil, now)
	assert.Equal(t, errors.ErrCodeParseError, errors.CodeOf(err))
}

type recordingSaver struct {
	saved []*models.AssessmentResult
	err   error
}

func (s *recordingSaver) SaveResult(_ context.Context, r *models.AssessmentResult) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, r)
	return nil
}

type recordingCache struct{ puts int }

func (c *recordingCache) Put(context.Context, *models.AssessmentResult) { c.puts++ }

type failingIndexer struct{ calls int }

func (f *failingIndexer) Index(context.Context, *models.AssessmentResult) error {
	f.calls++
	return errors.NewResultIndexFailedError("assessment-results", assert.AnError)
}

func TestPersister(t *testing.T) {
	completed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	res := scoring.NewBigFiveResult(scoring.ScoreBigFive(scoring.Responses{"q1": 5}))
	r, err := NewResult("res-1", "", res, scoring.Responses{"q1": 5}, 0.02, completed,
		&models.AssessmentSubmission{ID: "sub-1", PersonID: "p-1"})
	require.NoError(t, err)
	assert.Equal(t, "p-1", r.PersonID)
	assert.Equal(t, "sub-1", r.AssessmentID)
	assert.Equal(t, completed.AddDate(0, 0, 365), *r.ExpiresAt)
	assert.Equal(t, scoring.TablesVersion, r.ScoringVersion)

	t.Run("index failure is not fatal", func(t *testing.T) {
		saver, cache, indexer := &recordingSaver{}, &recordingCache{}, &failingIndexer{}
		p := &Persister{Saver: saver, Cache: cache, Indexer: indexer, Logger: logger.NewTestLogger(t)}

		require.NoError(t, p.Persist(context.Background(), r))
		assert.Len(t, saver.saved, 1)
		assert.Equal(t, 1, cache.puts)
		assert.Equal(t, 1, indexer.calls)
	})

	t.Run("store failure stops the pipeline", func(t *testing.T) {
		saver := &recordingSaver{err: errors.NewResultStoreFailedError(assert.AnError)}
		cache := &recordingCache{}
		p := &Persister{Saver: saver, Cache: cache}

		err := p.Persist(context.Background(), r)
		assert.Equal(t, errors.ErrCodeResultStoreFailed, errors.CodeOf(err))
		assert.Zero(t, cache.puts)
	})
}

func TestResolveDefinition(t *testing.T) {
	custom := []models.AssessmentQuestion{
		{ID: "g1", Dimension: "grit"},
		{ID: "g2", Dimension: "grit", ReverseScored: true},
	}

	tests := []struct {
		name           string
		assessmentType string
		questions      []models.AssessmentQuestion
		wantCode       errors.ErrorCode
		validateOutput func(t *testing.T, def scoring.Definition)
	}{
		{
			name:           "built-in type ignores questions",
			assessmentType: "attachment",
			questions:      custom,
			validateOutput: func(t *testing.T, def scoring.Definition) {
				assert.Len(t, def.QuestionIDs(), 30)
			},
		},
		{
			name:           "custom type from questions",
			assessmentType: "grit_scale",
			questions:      custom,
			validateOutput: func(t *testing.T, def scoring.Definition) {
				assert.Equal(t, []string{"g1", "g2"}, def.QuestionIDs())
				assert.Contains(t, def.Reverse, "g2")
			},
		},
		{
			name:           "custom type without questions",
			assessmentType: "grit_scale",
			wantCode:       errors.ErrCodeUnknownAssessmentType,
		},
		{
			name:           "question without dimension",
			assessmentType: "grit_scale",
			questions:      []models.AssessmentQuestion{{ID: "g1"}},
			wantCode:       errors.ErrCodeInputSchemaInvalid,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := ResolveDefinition("validate-responses", tt.assessmentType, tt.questions, nil)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			tt.validateOutput(t, def)
		})
	}
}
