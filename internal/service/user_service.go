package service

import (
	"context"
	"strings"
	"time"

	"github.com/Nesia-inc/todo-app-ekram/internal/domain"
)

// StatusCounts is the per-status breakdown rendered next to a user.
type StatusCounts struct {
	Unfinished int `json:"unfinished"`
	InProgress int `json:"inProgress"`
	Finished   int `json:"finished"`
}

func countByStatus(tasks []domain.Task) StatusCounts {
	var c StatusCounts
	for _, t := range tasks {
		switch t.Status {
		case domain.StatusFinished:
			c.Finished++
		case domain.StatusInProgress:
			c.InProgress++
		default:
			c.Unfinished++
		}
	}
	return c
}

type UserSummary struct {
	ID        uint         `json:"id"`
	Name      string       `json:"name"`
	CreatedAt time.Time    `json:"createdAt"`
	TaskCount int          `json:"taskCount"`
	Counts    StatusCounts `json:"counts"`
}

type UserDetail struct {
	ID        uint          `json:"id"`
	Name      string        `json:"name"`
	CreatedAt time.Time     `json:"createdAt"`
	Tasks     []domain.Task `json:"tasks"`
	Counts    StatusCounts  `json:"counts"`
}

type UserService struct {
	users domain.UserRepository
}

func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context) ([]UserSummary, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, UserSummary{
			ID:        u.ID,
			Name:      u.Name,
			CreatedAt: u.CreatedAt,
			TaskCount: len(u.Tasks),
			Counts:    countByStatus(u.Tasks),
		})
	}
	return out, nil
}

func (s *UserService) Get(ctx context.Context, id uint) (*UserDetail, error) {
	u, err := s.users.FindByIDWithTasks(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.NotFound("user not found")
	}
	tasks := u.Tasks
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return &UserDetail{
		ID:        u.ID,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		Tasks:     tasks,
		Counts:    countByStatus(u.Tasks),
	}, nil
}

func (s *UserService) Create(ctx context.Context, name string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.Validation("name is required")
	}
	u := &domain.User{Name: name}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) Rename(ctx context.Context, id uint, name string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.Validation("name is required")
	}
	return s.users.UpdateName(ctx, id, name)
}

// Delete runs the cascading deletion protocol. The existence check
// happens before any transaction is opened; the repository re-validates
// inside the transaction boundary.
func (s *UserService) Delete(ctx context.Context, id uint) (*domain.DeleteReport, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.NotFound("user not found")
	}
	return s.users.DeleteCascade(ctx, id)
}
