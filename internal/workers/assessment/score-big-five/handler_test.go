package scorebigfive

import (
	"context"
	"fmt"
	"testing"
	"time"

	"assessment-workers/internal/common/camunda/camundatest"
	"assessment-workers/internal/common/errors"
	"assessment-workers/internal/common/logger"
	"assessment-workers/internal/scoring"
	"assessment-workers/internal/store"
	"assessment-workers/internal/workers/assessment/jobs"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct {
	t *testing.T
}

func (tl *testLogger) Debug(msg string, fields map[string]interface{}) {
	tl.t.Logf("DEBUG: %s %v", msg, fields)
}

func (tl *testLogger) Info(msg string, fields map[string]interface{}) {
	tl.t.Logf("INFO: %s %v", msg, fields)
}

func (tl *testLogger) Warn(msg string, fields map[string]interface{}) {
	tl.t.Logf("WARN: %s %v", msg, fields)
}

func (tl *testLogger) Error(msg string, fields map[string]interface{}) {
	tl.t.Logf("ERROR: %s %v", msg, fields)
}

func (tl *testLogger) WithFields(map[string]interface{}) logger.Logger { return tl }
func (tl *testLogger) WithError(error) logger.Logger                  { return tl }
func (tl *testLogger) With(map[string]interface{}) logger.Logger      { return tl }

var fixedNow = time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

func allFives() map[string]float64 {
	out := make(map[string]float64, 50)
	for i := 1; i <= 50; i++ {
		out[fmt.Sprintf("q%d", i)] = 5
	}
	return out
}

func newTestHandler(t *testing.T, strict bool) (*Handler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	results := store.NewResultStore(db)
	log := &testLogger{t: t}
	h := NewHandler(
		&Config{Timeout: 5 * time.Second, StrictValidation: strict},
		jobs.Deps{Logger: log},
		results,
		&jobs.Persister{Saver: results, Logger: log},
	)
	h.now = func() time.Time { return fixedNow }
	h.newID = func() string { return "res-fixed" }
	return h, mock
}

func expectInsert(mock sqlmock.Sqlmock, completed time.Time) {
	mock.ExpectExec("INSERT INTO person_assessment_results").
		WithArgs("res-fixed", "person-1", sqlmock.AnyArg(), "big_five", sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), scoring.TablesVersion, completed, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
}

func TestHandler_Execute(t *testing.T) {
	tests := []struct {
		name           string
		strict         bool
		input          *Input
		setupMock      func(mock sqlmock.Sqlmock)
		wantCode       errors.ErrorCode
		validateOutput func(t *testing.T, output *Output)
	}{
		{
			name:   "all fives",
			input:  &Input{PersonID: "person-1", ResponseSource: jobs.ResponseSource{Responses: allFives()}},
			setupMock: func(mock sqlmock.Sqlmock) {
				expectInsert(mock, fixedNow)
			},
			validateOutput: func(t *testing.T, output *Output) {
				assert.Equal(t, "res-fixed", output.ResultID)
				assert.InDelta(t, 3.0, output.Scores["extraversion"], 1e-9)
				assert.InDelta(t, 3.4, output.Scores["agreeableness"], 1e-9)
				assert.InDelta(t, 3.4, output.Scores["conscientiousness"], 1e-9)
				assert.InDelta(t, 4.2, output.Scores["neuroticism"], 1e-9)
				assert.InDelta(t, 3.8, output.Scores["openness"], 1e-9)
				assert.Equal(t, map[string]int{
					"extraversion":      37,
					"agreeableness":     33,
					"conscientiousness": 40,
					"neuroticism":       95,
					"openness":          72,
				}, output.Percentiles)
				assert.Equal(t, scoring.LevelHigh, output.Interpretations["openness"].Level)
				assert.Equal(t, 1.0, output.ConfidenceLevel)
				// fifty identical answers trip the straight-line check
				assert.Len(t, output.ValidationWarnings, 1)
				assert.Equal(t, "2026-02-01T12:00:00Z", output.ExpiresAt)
			},
		},
		{
			name:   "partial set scores with warnings",
			input:  &Input{PersonID: "person-1", CompletedAt: "2024-06-01", ResponseSource: jobs.ResponseSource{Responses: map[string]float64{"q1": 4, "q5": 2}}},
			setupMock: func(mock sqlmock.Sqlmock) {
				expectInsert(mock, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
			},
			validateOutput: func(t *testing.T, output *Output) {
				assert.InDelta(t, 0.4, output.Scores["extraversion"], 1e-9)
				assert.Equal(t, 0.04, output.ConfidenceLevel)
				require.NotEmpty(t, output.ValidationWarnings)
				assert.Contains(t, output.ValidationWarnings[0], "Missing responses for questions:")
				assert.Equal(t, "2024-06-01T00:00:00Z", output.CompletedAt)
			},
		},
		{
			name:     "strict mode rejects invalid sets",
			strict:   true,
			input:    &Input{PersonID: "person-1", ResponseSource: jobs.ResponseSource{Responses: map[string]float64{"q1": 4}}},
			wantCode: errors.ErrCodeResponsesInvalid,
		},
		{
			name:  "submission of another type",
			input: &Input{PersonID: "person-1", ResponseSource: jobs.ResponseSource{SubmissionID: "sub-1"}},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM assessment_submissions").
					WithArgs("sub-1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "person_id", "assessment_type", "responses", "submitted_at"}).
						AddRow("sub-1", "person-1", "attachment", []byte(`{"q1":4}`), fixedNow))
			},
			wantCode: errors.ErrCodeUnknownAssessmentType,
		},
		{
			name:  "store failure",
			input: &Input{PersonID: "person-1", ResponseSource: jobs.ResponseSource{Responses: allFives()}},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO person_assessment_results").WillReturnError(assert.AnError)
			},
			wantCode: errors.ErrCodeResultStoreFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mock := newTestHandler(t, tt.strict)
			if tt.setupMock != nil {
				tt.setupMock(mock)
			}

			output, err := h.Execute(context.Background(), tt.input)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errors.CodeOf(err))
			} else {
				require.NoError(t, err)
				tt.validateOutput(t, output)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestHandler_Handle(t *testing.T) {
	h, mock := newTestHandler(t, false)
	expectInsert(mock, fixedNow)

	client := camundatest.NewJobClient()
	h.Handle(client, camundatest.NewJob(21, TaskType, map[string]interface{}{
		"personId":  "person-1",
		"responses": allFives(),
	}))

	vars, ok := client.CompletedVariables()
	require.True(t, ok)
	assert.Equal(t, "res-fixed", vars["resultId"])
	assert.Contains(t, vars, "interpretations")
	assert.NoError(t, mock.ExpectationsWereMet())
}
