package scorecustom

import (
	"time"

	"assessment-workers/internal/common/config"
)

type Config struct {
	Timeout          time.Duration
	StrictValidation bool
}

func NewConfig(cfg *config.Config) *Config {
	w := config.GetWorkerConfig(cfg, TaskType)
	return &Config{
		Timeout:          config.GetDuration(w.Timeout),
		StrictValidation: cfg.Scoring.StrictValidation,
	}
}
