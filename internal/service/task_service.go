package service

import (
	"context"
	"strings"

	"github.com/Nesia-inc/todo-app-ekram/internal/domain"
)

type CreateTaskInput struct {
	Title   string
	Content string
	Status  string
	UserID  uint
}

type TaskService struct {
	tasks domain.TaskRepository
}

func NewTaskService(tasks domain.TaskRepository) *TaskService {
	return &TaskService{tasks: tasks}
}

func (s *TaskService) Create(ctx context.Context, in CreateTaskInput) (*domain.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, domain.Validation("title is required")
	}
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, domain.Validation("content is required")
	}
	if in.UserID == 0 {
		return nil, domain.Validation("a user must be selected")
	}
	status := domain.StatusUnfinished
	if in.Status != "" {
		st, ok := domain.ParseStatus(in.Status)
		if !ok {
			return nil, domain.Validation("invalid status: " + in.Status)
		}
		status = st
	}
	t := &domain.Task{Title: title, Content: content, Status: status, UserID: in.UserID}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// ChangeStatus sets a task's status, scoped to its owning user. A task
// that exists but belongs to someone else is indistinguishable from a
// missing one.
func (s *TaskService) ChangeStatus(ctx context.Context, userID, taskID uint, status string) (*domain.Task, error) {
	st, ok := domain.ParseStatus(status)
	if !ok {
		return nil, domain.Validation("invalid status: " + status)
	}
	t, err := s.tasks.FindForUser(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.NotFound("task not found or does not belong to this user")
	}
	return s.tasks.UpdateStatus(ctx, t.ID, st)
}
