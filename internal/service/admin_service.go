package service

import (
	"context"
	"time"

	"github.com/Nesia-inc/todo-app-ekram/internal/domain"
)

type AdminUserRow struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	TaskCount int       `json:"taskCount"`
}

type AdminUserList struct {
	Total int64          `json:"total"`
	Items []AdminUserRow `json:"items"`
}

// AdminService backs the back-office views.
type AdminService struct {
	users domain.UserRepository
}

func NewAdminService(users domain.UserRepository) *AdminService {
	return &AdminService{users: users}
}

func (s *AdminService) ListUsers(ctx context.Context, offset, limit int) (*AdminUserList, error) {
	users, total, err := s.users.ListPage(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	out := &AdminUserList{Total: total, Items: make([]AdminUserRow, 0, len(users))}
	for _, u := range users {
		out.Items = append(out.Items, AdminUserRow{
			ID: u.ID, Name: u.Name, CreatedAt: u.CreatedAt, TaskCount: len(u.Tasks),
		})
	}
	return out, nil
}
