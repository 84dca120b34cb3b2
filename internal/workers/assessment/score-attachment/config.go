package scoreattachment

import (
	"time"

	"assessment-workers/internal/common/config"
)

type Config struct {
	Timeout          time.Duration
	StrictValidation bool
	// ConfidenceLevel selects the z value of the style confidence interval.
	ConfidenceLevel float64
}

func NewConfig(cfg *config.Config) *Config {
	w := config.GetWorkerConfig(cfg, TaskType)
	return &Config{
		Timeout:          config.GetDuration(w.Timeout),
		StrictValidation: cfg.Scoring.StrictValidation,
		ConfidenceLevel:  cfg.Scoring.ConfidenceLevel,
	}
}
