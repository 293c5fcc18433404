package stub

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

type Task struct {
	ID        string
	UserID    string
	Title     string
	DueDate   *time.Time
	Completed bool
}

type TaskStorage struct {
	mu    sync.RWMutex
	tasks map[string]map[string]*Task // userID -> taskID -> task
}

func NewTaskStorage() *TaskStorage {
	return &TaskStorage{
		tasks: make(map[string]map[string]*Task),
	}
}

func (s *TaskStorage) Reset(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tasks, userID)
}

func (s *TaskStorage) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = make(map[string]map[string]*Task)
}

// Seed materializes one user's task set. Due dates are placed at local noon
// of the offset day so midnight boundary crossings during a run do not move
// tasks between buckets mid-test unless the test intends it.
func (s *TaskStorage) Seed(userID string, seeds []SeedTask, now time.Time) []*Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tasks[userID] == nil {
		s.tasks[userID] = make(map[string]*Task)
	}

	created := make([]*Task, 0, len(seeds))
	for i, seed := range seeds {
		var dueDate *time.Time
		if seed.DueOffsetDays != nil {
			year, month, day := now.AddDate(0, 0, *seed.DueOffsetDays).Date()
			noon := time.Date(year, month, day, 12, 0, 0, 0, now.Location())
			dueDate = &noon
		}

		task := &Task{
			ID:        generateTaskID(userID, seed.Title, i),
			UserID:    userID,
			Title:     seed.Title,
			DueDate:   dueDate,
			Completed: seed.Completed,
		}
		s.tasks[userID][task.ID] = task
		created = append(created, task)
	}

	return created
}

// ListOpen returns the user's incomplete tasks, matching what the
// notification service asks the real tasks API for.
func (s *TaskStorage) ListOpen(userID string) []*Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	open := make([]*Task, 0)
	for _, task := range s.tasks[userID] {
		if !task.Completed {
			open = append(open, task)
		}
	}

	return open
}

func (s *TaskStorage) Update(userID, taskID string, update UpdateTaskRequest, now time.Time) (*Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[userID][taskID]
	if !ok {
		return nil, false
	}

	if update.Completed != nil {
		task.Completed = *update.Completed
	}
	if update.DueOffsetDays != nil {
		year, month, day := now.AddDate(0, 0, *update.DueOffsetDays).Date()
		noon := time.Date(year, month, day, 12, 0, 0, 0, now.Location())
		task.DueDate = &noon
	}

	return task, true
}

func generateTaskID(userID, title string, index int) string {
	input := fmt.Sprintf("%s-%s-%d", userID, title, index)
	hash := sha256.Sum256([]byte(input))
	return "task-" + hex.EncodeToString(hash[:8])
}
