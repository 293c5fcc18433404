package config

import (
	"os"
	"strconv"
	"time"
)

const (
	refreshThrottleSecondsEnv = "REFRESH_THROTTLE_SECONDS"
	retentionDaysEnv          = "NOTIFICATION_RETENTION_DAYS"
	activeUserTTLDaysEnv      = "ACTIVE_USER_TTL_DAYS"
	sweepIntervalMinutesEnv   = "SWEEP_INTERVAL_MINUTES"

	defaultRefreshThrottleSeconds = 60
	defaultRetentionDays          = 30
	defaultActiveUserTTLDays      = 7
	// 0 disables the periodic sweep; the midnight sweep always runs.
	defaultSweepIntervalMinutes = 0
)

type RefreshConfig struct {
	// ThrottleInterval is the minimum gap between two refresh passes for the
	// same user.
	ThrottleInterval time.Duration
	// Retention bounds how long dismissed/read notifications stay queryable.
	Retention time.Duration
	// ActiveUserTTL bounds how long an idle user stays in the sweep set.
	ActiveUserTTL time.Duration
	// SweepInterval adds a fixed-interval sweep on top of the midnight one
	// when positive.
	SweepInterval time.Duration
}

func LoadRefreshConfig() *RefreshConfig {
	throttleSeconds := defaultRefreshThrottleSeconds
	if v := os.Getenv(refreshThrottleSecondsEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			throttleSeconds = parsed
		}
	}

	retentionDays := defaultRetentionDays
	if v := os.Getenv(retentionDaysEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			retentionDays = parsed
		}
	}

	activeUserTTLDays := defaultActiveUserTTLDays
	if v := os.Getenv(activeUserTTLDaysEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			activeUserTTLDays = parsed
		}
	}

	sweepIntervalMinutes := defaultSweepIntervalMinutes
	if v := os.Getenv(sweepIntervalMinutesEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			sweepIntervalMinutes = parsed
		}
	}

	return &RefreshConfig{
		ThrottleInterval: time.Duration(throttleSeconds) * time.Second,
		Retention:        time.Duration(retentionDays) * 24 * time.Hour,
		ActiveUserTTL:    time.Duration(activeUserTTLDays) * 24 * time.Hour,
		SweepInterval:    time.Duration(sweepIntervalMinutes) * time.Minute,
	}
}
