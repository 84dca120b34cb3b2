package registry

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repoFile(t *testing.T, rel string) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(file), "..", "..", rel)
}

func TestLoadRegistry_Shipped(t *testing.T) {
	reg, err := LoadRegistry(repoFile(t, "configs/activity-registry.json"))
	require.NoError(t, err)

	for _, taskType := range []string{
		"validate-responses",
		"score-big-five",
		"score-attachment",
		"score-custom-assessment",
		"calculate-compatibility",
		"check-assessment-staleness",
		"send-reassessment-reminder",
	} {
		a, ok := reg.Find(taskType)
		require.True(t, ok, taskType)
		assert.NotEmpty(t, a.InputSchema, taskType)
	}

	_, ok := reg.Find("score-mbti")
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "valid",
			body: `{"version":"1","activities":[{"id":"assessment.scoring.bigfive","taskType":"score-big-five"}]}`,
		},
		{
			name:    "bad id",
			body:    `{"activities":[{"id":"score-big-five","taskType":"score-big-five"}]}`,
			wantErr: "domain.subdomain.action",
		},
		{
			name: "duplicate task type",
			body: `{"activities":[
				{"id":"assessment.scoring.bigfive","taskType":"score-big-five"},
				{"id":"assessment.scoring.other","taskType":"score-big-five"}]}`,
			wantErr: "registered by both",
		},
		{
			name:    "missing task type",
			body:    `{"activities":[{"id":"assessment.scoring.bigfive"}]}`,
			wantErr: "taskType is required",
		},
		{
			name:    "malformed",
			body:    `{"activities":`,
			wantErr: "decode activity registry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.body))
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	reg, err := LoadRegistry(repoFile(t, "configs/activity-registry.json"))
	require.NoError(t, err)

	a, ok := reg.Find("score-attachment")
	require.True(t, ok)
	a.ImplementationStatus = "verified"

	path := filepath.Join(t.TempDir(), "nested", "registry.json")
	require.NoError(t, reg.Save(path))

	reloaded, err := LoadRegistry(path)
	require.NoError(t, err)
	got, ok := reloaded.Find("score-attachment")
	require.True(t, ok)
	assert.Equal(t, StatusVerified, got.ImplementationStatus)
	assert.Len(t, reloaded.Activities, len(reg.Activities))
}

func TestParseStatus(t *testing.T) {
	st, ok := ParseStatus("in-progress")
	assert.True(t, ok)
	assert.Equal(t, StatusInProgress, st)

	_, ok = ParseStatus("done")
	assert.False(t, ok)
	assert.Len(t, Statuses(), 4)
}
