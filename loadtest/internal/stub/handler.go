package stub

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Handler serves a fake tasks API backed by in-memory storage, so refresh
// load tests do not need the real task management service.
type Handler struct {
	storage *TaskStorage
}

func NewHandler(storage *TaskStorage) *Handler {
	return &Handler{storage: storage}
}

func (h *Handler) Register(r *gin.Engine) {
	r.GET("/api/internal/tasks", h.HandleListTasks)
	r.POST("/stub/seed", h.HandleSeed)
	r.PATCH("/stub/users/:user_id/tasks/:task_id", h.HandleUpdateTask)
	r.POST("/stub/reset", h.HandleReset)
}

func (h *Handler) HandleListTasks(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	tasks := h.storage.ListOpen(userID)

	items := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, TaskResponse{
			ID:        task.ID,
			UserID:    task.UserID,
			Title:     task.Title,
			DueDate:   task.DueDate,
			Completed: task.Completed,
		})
	}

	c.JSON(http.StatusOK, TasksResponse{
		Tasks: items,
		Count: len(items),
	})
}

func (h *Handler) HandleSeed(c *gin.Context) {
	var req SeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()

	totalTasks := 0
	for _, user := range req.Users {
		created := h.storage.Seed(user.UserID, user.Tasks, now)
		totalTasks += len(created)
	}

	slog.Info("seeded stub tasks",
		slog.Int("users", len(req.Users)),
		slog.Int("tasks", totalTasks),
	)

	c.JSON(http.StatusOK, gin.H{
		"status": "seeded",
		"users":  len(req.Users),
		"tasks":  totalTasks,
	})
}

// HandleUpdateTask mutates one task mid-run, to exercise bucket transitions
// and completion dismissals between refresh passes.
func (h *Handler) HandleUpdateTask(c *gin.Context) {
	userID := c.Param("user_id")
	taskID := c.Param("task_id")

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, ok := h.storage.Update(userID, taskID, req, time.Now())
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	c.JSON(http.StatusOK, TaskResponse{
		ID:        task.ID,
		UserID:    task.UserID,
		Title:     task.Title,
		DueDate:   task.DueDate,
		Completed: task.Completed,
	})
}

func (h *Handler) HandleReset(c *gin.Context) {
	if userID := c.Query("user_id"); userID != "" {
		h.storage.Reset(userID)
		slog.Info("reset stub tasks", slog.String("user_id", userID))
		c.JSON(http.StatusOK, gin.H{"status": "reset complete", "user_id": userID})
		return
	}

	h.storage.ResetAll()
	slog.Info("reset all stub tasks")
	c.JSON(http.StatusOK, gin.H{"status": "reset complete"})
}
