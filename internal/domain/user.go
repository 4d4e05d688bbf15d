package domain

import (
	"context"
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:64;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	Tasks     []Task    `gorm:"foreignKey:UserID" json:"tasks,omitempty"`
}

// DeleteReport describes what a cascading user deletion removed.
type DeleteReport struct {
	UserID       uint   `json:"userId"`
	Name         string `json:"name"`
	DeletedTasks int    `json:"deletedTasks"`
}

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByIDWithTasks(ctx context.Context, id uint) (*User, error)
	List(ctx context.Context) ([]User, error)
	ListPage(ctx context.Context, offset, limit int) ([]User, int64, error)
	Count(ctx context.Context) (int64, error)
	UpdateName(ctx context.Context, id uint, name string) (*User, error)
	// DeleteCascade removes the user and every task it owns in one
	// transaction. Tasks go first so no task ever references a missing user.
	DeleteCascade(ctx context.Context, id uint) (*DeleteReport, error)
}
