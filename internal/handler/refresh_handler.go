package handler

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/esdrassantos06/tarevity-notification-core/internal/service/refresh"
)

type RefreshHandler struct {
	refreshService *refresh.Service
	cronSecret     string
}

func NewRefreshHandler(refreshService *refresh.Service, cronSecret string) *RefreshHandler {
	return &RefreshHandler{
		refreshService: refreshService,
		cronSecret:     cronSecret,
	}
}

// HandleRefresh runs one reconciliation pass for the calling user.
func (h *RefreshHandler) HandleRefresh(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		respondError(c, http.StatusUnauthorized, "missing user identity")
		return
	}

	runID := c.GetHeader("X-Run-ID")

	outcome, err := h.refreshService.RefreshUser(ctx, userID, time.Now(), runID, refresh.TriggerUser)
	if err != nil {
		slog.ErrorContext(ctx, "refresh failed",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "failed to refresh notifications")
		return
	}

	message := "notifications refreshed"
	if outcome.Throttled {
		message = "refresh throttled, try again later"
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   message,
		"updates":   outcome.Updates(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleRefreshAll sweeps every recently active user. Intended for the
// external cron trigger, guarded by the shared secret.
func (h *RefreshHandler) HandleRefreshAll(c *gin.Context) {
	ctx := c.Request.Context()

	if !bearerAuthorized(c, h.cronSecret) {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	sweep, err := h.refreshService.SweepAll(ctx, time.Now(), refresh.TriggerCron)
	if err != nil {
		slog.ErrorContext(ctx, "sweep failed",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "failed to refresh notifications")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "notifications refreshed",
		"users":     sweep.Users,
		"failed":    sweep.Failed,
		"updates":   sweep.Updates,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// bearerAuthorized checks the Authorization header against the shared secret.
// An unset secret denies everything rather than failing open.
func bearerAuthorized(c *gin.Context, secret string) bool {
	if secret == "" {
		return false
	}

	token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !ok {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(token), []byte(secret)) == 1
}
