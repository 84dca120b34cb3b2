package validateresponses

import (
	"time"

	"assessment-workers/internal/common/config"
)

type Config struct {
	Timeout time.Duration
}

func NewConfig(cfg *config.Config) *Config {
	w := config.GetWorkerConfig(cfg, TaskType)
	return &Config{Timeout: config.GetDuration(w.Timeout)}
}
