package tasksource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/esdrassantos06/tarevity-notification-core/internal/domain"
	"github.com/esdrassantos06/tarevity-notification-core/internal/observability/logging"
	"github.com/esdrassantos06/tarevity-notification-core/internal/observability/tracing"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) ListOpenTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = "/api/internal/tasks"
	q := u.Query()
	q.Set("user_id", userID)
	q.Set("status", "open")
	u.RawQuery = q.Encode()

	slog.Debug("fetching open tasks from tasks API",
		slog.String("url", u.String()),
	)

	ctx, span := tracing.StartExternalAPISpan(ctx, "list_open_tasks", u.String())
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	requestID := logging.ValidateAndExtractRequestID(logging.RequestIDFromContext(ctx))
	req.Header.Set("x-request-id", requestID)
	tracing.InjectToHTTPRequest(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("failed to send request to tasks API",
			slog.String("url", u.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Error("unexpected status code from tasks API",
			slog.String("url", u.String()),
			slog.Int("status_code", resp.StatusCode),
		)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Error("failed to read response body from tasks API",
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var tasksResp tasksResponse
	if err := json.Unmarshal(body, &tasksResp); err != nil {
		slog.Error("failed to decode response from tasks API",
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	slog.Debug("successfully fetched open tasks",
		slog.Int("count", tasksResp.Count),
	)

	return tasksResp.toDomain(), nil
}
