package config

import "errors"

func ValidateForRun(cfg *Config) error {
	if cfg.TasksAPIURL == "" {
		return errors.New("TASKS_API_URL environment variable is required")
	}
	if cfg.CronSecret == "" {
		return errors.New("CRON_SECRET environment variable is required")
	}
	return nil
}
