package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseYAML = `
camunda:
  broker_address: ${TEST_ZEEBE_ADDRESS}
database:
  postgres:
    host: localhost
    database: assessments
    user: scorer
  redis:
    address: localhost:6379
workers:
  score-big-five:
    enabled: true
    timeout: 15000
  send-reassessment-reminder:
    enabled: false
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		env            map[string]string
		wantErr        string
		validateOutput func(t *testing.T, cfg *Config)
	}{
		{
			name: "defaults and env expansion",
			body: baseYAML,
			env:  map[string]string{"TEST_ZEEBE_ADDRESS": "zeebe:26500"},
			validateOutput: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "zeebe:26500", cfg.Camunda.BrokerAddress)
				assert.Equal(t, 5432, cfg.Database.Postgres.Port)
				assert.Equal(t, "disable", cfg.Database.Postgres.SSLMode)
				assert.Equal(t, 0.95, cfg.Scoring.ConfidenceLevel)
				assert.Equal(t, 3600, cfg.Scoring.CacheTTL)
				assert.Equal(t, "assessment-results", cfg.Scoring.ResultsIndex)
				assert.Equal(t, "high", cfg.Notifications.SMS.PriorityThreshold)
				assert.False(t, cfg.Database.Elasticsearch.Enabled())

				w := GetWorkerConfig(cfg, "score-big-five")
				assert.Equal(t, 15000, w.Timeout)
				assert.Equal(t, 10, w.MaxJobsActive)
				assert.Equal(t, 3, w.MaxRetries)
				assert.Equal(t, 15*time.Second, GetDuration(w.Timeout))
			},
		},
		{
			name: "worker toggles",
			body: baseYAML,
			env:  map[string]string{"TEST_ZEEBE_ADDRESS": "zeebe:26500"},
			validateOutput: func(t *testing.T, cfg *Config) {
				assert.True(t, IsWorkerEnabled(cfg, "score-big-five"))
				assert.False(t, IsWorkerEnabled(cfg, "send-reassessment-reminder"))
				assert.True(t, IsWorkerEnabled(cfg, "validate-responses"))
			},
		},
		{
			name: "environment overrides file values",
			body: baseYAML,
			env: map[string]string{
				"TEST_ZEEBE_ADDRESS":        "zeebe:26500",
				"SCORING_STRICT_VALIDATION": "true",
			},
			validateOutput: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.Scoring.StrictValidation)
			},
		},
		{
			name:    "broker address is required",
			body:    strings.Replace(baseYAML, "${TEST_ZEEBE_ADDRESS}", `""`, 1),
			wantErr: "camunda.broker_address is required",
		},
		{
			name:    "confidence level out of range",
			body:    baseYAML + "scoring:\n  confidence_level: 1.5\n",
			env:     map[string]string{"TEST_ZEEBE_ADDRESS": "zeebe:26500"},
			wantErr: "scoring.confidence_level",
		},
		{
			name:    "email needs a sender",
			body:    baseYAML + "notifications:\n  email:\n    enabled: true\n",
			env:     map[string]string{"TEST_ZEEBE_ADDRESS": "zeebe:26500"},
			wantErr: "notifications.email.from_email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadFromFile(writeConfig(t, tt.body))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.validateOutput(t, cfg)
		})
	}
}

func TestElasticsearchURLFallback(t *testing.T) {
	cfg := ElasticsearchConfig{Addresses: []string{"http://es-1:9200", "http://es-2:9200"}}
	assert.Equal(t, "http://es-1:9200", cfg.GetURL())

	cfg.URL = "http://es:9200"
	assert.Equal(t, "http://es:9200", cfg.GetURL())
}
