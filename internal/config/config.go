package config

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

type Config struct {
	TasksAPIURL string
	Port        string
	LogLevel    slog.Level
	// CronSecret guards the cron sweep and admin reset endpoints.
	CronSecret string
	// Location is the calendar-day boundary for urgency classification and
	// the midnight sweep.
	Location *time.Location
	Redis    *RedisConfig
	Refresh  *RefreshConfig
}

func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	loc := time.UTC
	if tz := os.Getenv("TIMEZONE"); tz != "" {
		parsed, err := time.LoadLocation(tz)
		if err != nil {
			return nil, ErrInvalidTimezone
		}
		loc = parsed
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		TasksAPIURL: os.Getenv("TASKS_API_URL"),
		Port:        port,
		LogLevel:    parseLogLevel(os.Getenv("LOG_LEVEL")),
		CronSecret:  os.Getenv("CRON_SECRET"),
		Location:    loc,
		Redis:       redisConfig,
		Refresh:     LoadRefreshConfig(),
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
