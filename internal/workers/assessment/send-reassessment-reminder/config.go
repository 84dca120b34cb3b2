package sendreminder

import (
	"time"

	"assessment-workers/internal/common/config"
)

type Config struct {
	Timeout      time.Duration
	EmailEnabled bool
	SMSEnabled   bool
	// SMSPriorityThreshold is the lowest priority that also goes out by text.
	SMSPriorityThreshold string
}

func NewConfig(cfg *config.Config) *Config {
	return &Config{
		Timeout:              config.GetDuration(config.GetWorkerConfig(cfg, TaskType).Timeout),
		EmailEnabled:         cfg.Notifications.Email.Enabled,
		SMSEnabled:           cfg.Notifications.SMS.Enabled,
		SMSPriorityThreshold: cfg.Notifications.SMS.PriorityThreshold,
	}
}
