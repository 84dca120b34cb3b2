package scorebigfive

import (
	"time"

	"assessment-workers/internal/common/config"
)

type Config struct {
	Timeout time.Duration
	// StrictValidation rejects invalid response sets instead of scoring them
	// with warnings.
	StrictValidation bool
}

func NewConfig(cfg *config.Config) *Config {
	w := config.GetWorkerConfig(cfg, TaskType)
	return &Config{
		Timeout:          config.GetDuration(w.Timeout),
		StrictValidation: cfg.Scoring.StrictValidation,
	}
}
