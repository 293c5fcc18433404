package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/esdrassantos06/tarevity-notification-core/internal/domain"
)

type NotificationHandler struct {
	notificationRepo domain.NotificationRepository
	cronSecret       string
}

func NewNotificationHandler(notificationRepo domain.NotificationRepository, cronSecret string) *NotificationHandler {
	return &NotificationHandler{
		notificationRepo: notificationRepo,
		cronSecret:       cronSecret,
	}
}

type notificationItem struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"task_id"`
	OriginKey string    `json:"origin_key"`
	Bucket    string    `json:"bucket"`
	Severity  string    `json:"severity"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	DueDate   time.Time `json:"due_date"`
	Read      bool      `json:"read"`
	Dismissed bool      `json:"dismissed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *NotificationHandler) HandleList(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		respondError(c, http.StatusUnauthorized, "missing user identity")
		return
	}

	notifications, err := h.notificationRepo.ListAll(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list notifications",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "failed to list notifications")
		return
	}

	items := make([]notificationItem, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, notificationItem{
			ID:        n.ID,
			TaskID:    n.TaskID,
			OriginKey: n.Origin.String(),
			Bucket:    n.Bucket.String(),
			Severity:  n.Origin.Severity.String(),
			Title:     n.Title,
			Message:   n.Message,
			DueDate:   n.DueDate,
			Read:      n.Read,
			Dismissed: n.Dismissed,
			CreatedAt: n.CreatedAt,
			UpdatedAt: n.UpdatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": items,
		"count":         len(items),
	})
}

func (h *NotificationHandler) HandleMarkRead(c *gin.Context) {
	h.mutateOne(c, "read", h.notificationRepo.MarkRead)
}

func (h *NotificationHandler) HandleDismiss(c *gin.Context) {
	h.mutateOne(c, "dismissed", h.notificationRepo.Dismiss)
}

func (h *NotificationHandler) HandleMarkAllRead(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		respondError(c, http.StatusUnauthorized, "missing user identity")
		return
	}

	marked, err := h.notificationRepo.MarkAllRead(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to mark all read",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "failed to update notifications")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "notifications marked read",
		"updates": marked,
	})
}

// HandleReset permanently removes a user's notifications. Administrative
// only, guarded by the shared secret.
func (h *NotificationHandler) HandleReset(c *gin.Context) {
	ctx := c.Request.Context()

	if !bearerAuthorized(c, h.cronSecret) {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		respondError(c, http.StatusBadRequest, "missing user identity")
		return
	}

	deleted, err := h.notificationRepo.DeleteAll(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to reset notifications",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "failed to reset notifications")
		return
	}

	slog.InfoContext(ctx, "notifications reset",
		slog.String("user_id", userID),
		slog.Int("deleted", deleted),
	)

	c.JSON(http.StatusOK, gin.H{
		"message": "notifications reset",
		"deleted": deleted,
	})
}

func (h *NotificationHandler) mutateOne(c *gin.Context, action string, mutate func(ctx context.Context, userID, notificationID string) error) {
	ctx := c.Request.Context()

	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		respondError(c, http.StatusUnauthorized, "missing user identity")
		return
	}

	notificationID := c.Param("id")
	if notificationID == "" {
		respondError(c, http.StatusBadRequest, "missing notification id")
		return
	}

	if err := mutate(ctx, userID, notificationID); err != nil {
		if errors.Is(err, domain.ErrNotificationNotFound) {
			respondError(c, http.StatusNotFound, "notification not found")
			return
		}

		slog.ErrorContext(ctx, "failed to update notification",
			slog.String("user_id", userID),
			slog.String("notification_id", notificationID),
			slog.String("action", action),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "failed to update notification")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "notification " + action})
}
