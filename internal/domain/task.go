package domain

import (
	"context"
	"time"
)

// Status is the tri-state task status. There is no workflow: any status
// may follow any other, including itself.
type Status string

const (
	StatusUnfinished Status = "UNFINISHED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusFinished   Status = "FINISHED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusUnfinished, StatusInProgress, StatusFinished:
		return true
	}
	return false
}

// ParseStatus accepts exactly the three persisted tokens.
func ParseStatus(s string) (Status, bool) {
	st := Status(s)
	return st, st.Valid()
}

type Task struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:191;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Status    Status    `gorm:"type:varchar(16);not null;default:UNFINISHED" json:"status"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

type TaskRepository interface {
	Create(ctx context.Context, t *Task) error
	// FindForUser returns nil when the task does not exist or belongs to
	// another user; callers cannot tell the two apart.
	FindForUser(ctx context.Context, taskID, userID uint) (*Task, error)
	UpdateStatus(ctx context.Context, taskID uint, s Status) (*Task, error)
	CountByStatus(ctx context.Context) (map[Status]int64, error)
}
