package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Nesia-inc/todo-app-ekram/internal/domain"
)

type TaskRepo struct{ db *gorm.DB }

func NewTaskRepo(db *gorm.DB) *TaskRepo { return &TaskRepo{db: db} }

func (r *TaskRepo) Create(ctx context.Context, t *domain.Task) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return domain.Internal("create task failed", err)
	}
	return nil
}

func (r *TaskRepo) FindForUser(ctx context.Context, taskID, userID uint) (*domain.Task, error) {
	var t domain.Task
	err := r.db.WithContext(ctx).First(&t, "id = ? AND user_id = ?", taskID, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.Internal("find task failed", err)
	}
	return &t, nil
}

func (r *TaskRepo) UpdateStatus(ctx context.Context, taskID uint, s domain.Status) (*domain.Task, error) {
	var t domain.Task
	err := r.db.WithContext(ctx).First(&t, "id = ?", taskID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NotFound("task not found")
	}
	if err != nil {
		return nil, domain.Internal("find task failed", err)
	}
	t.Status = s
	if err := r.db.WithContext(ctx).Model(&t).Update("status", s).Error; err != nil {
		return nil, domain.Internal("update task status failed", err)
	}
	return &t, nil
}

func (r *TaskRepo) CountByStatus(ctx context.Context) (map[domain.Status]int64, error) {
	var rows []struct {
		Status domain.Status
		N      int64
	}
	err := r.db.WithContext(ctx).Model(&domain.Task{}).
		Select("status, count(*) AS n").Group("status").Scan(&rows).Error
	if err != nil {
		return nil, domain.Internal("count tasks failed", err)
	}
	out := make(map[domain.Status]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.N
	}
	return out, nil
}
