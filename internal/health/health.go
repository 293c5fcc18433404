package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Status represents the health status of the service or a dependency.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

// CheckResult is the health check result for a single dependency.
type CheckResult struct {
	Status    Status `json:"status"`
	LatencyMs int64  `json:"latency_ms,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Report is the aggregate health of the service across its dependencies.
type Report struct {
	Status  Status                 `json:"status"`
	Version string                 `json:"version,omitempty"`
	Checks  map[string]CheckResult `json:"checks,omitempty"`
}

// Checker probes the notification store and the upstream tasks API.
type Checker struct {
	redisClient *redis.Client
	tasksAPIURL string
	httpClient  *http.Client
	version     string
}

func NewChecker(redisClient *redis.Client, tasksAPIURL, version string) *Checker {
	return &Checker{
		redisClient: redisClient,
		tasksAPIURL: tasksAPIURL,
		httpClient:  &http.Client{Timeout: 5 * time.Second},
		version:     version,
	}
}

// Check probes all dependencies and returns the aggregate report.
func (c *Checker) Check(ctx context.Context) *Report {
	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	report := &Report{
		Status:  StatusHealthy,
		Version: c.version,
		Checks:  make(map[string]CheckResult),
	}

	if c.redisClient != nil {
		report.Checks["redis"] = c.checkRedis(checkCtx, report)
	}
	if c.tasksAPIURL != "" {
		report.Checks["tasks_api"] = c.checkTasksAPI(checkCtx, report)
	}

	return report
}

func (c *Checker) checkRedis(ctx context.Context, report *Report) CheckResult {
	start := time.Now()
	if err := c.redisClient.Ping(ctx).Err(); err != nil {
		report.Status = StatusUnhealthy
		return CheckResult{Status: StatusUnhealthy, Error: err.Error()}
	}

	return CheckResult{
		Status:    StatusHealthy,
		LatencyMs: time.Since(start).Milliseconds(),
	}
}

// checkTasksAPI only verifies reachability. Any HTTP response counts as
// healthy so upstream auth rules do not fail the probe.
func (c *Checker) checkTasksAPI(ctx context.Context, report *Report) CheckResult {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.tasksAPIURL, nil)
	if err != nil {
		report.Status = StatusUnhealthy
		return CheckResult{Status: StatusUnhealthy, Error: err.Error()}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		report.Status = StatusUnhealthy
		return CheckResult{Status: StatusUnhealthy, Error: err.Error()}
	}
	defer resp.Body.Close()

	return CheckResult{
		Status:    StatusHealthy,
		LatencyMs: time.Since(start).Milliseconds(),
	}
}

// LiveHandler returns a Gin handler for liveness probes.
func (c *Checker) LiveHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// ReadyHandler returns a Gin handler for readiness probes.
func (c *Checker) ReadyHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		report := c.Check(ctx.Request.Context())

		httpStatus := http.StatusOK
		if report.Status != StatusHealthy {
			httpStatus = http.StatusServiceUnavailable
		}

		ctx.JSON(httpStatus, report)
	}
}
