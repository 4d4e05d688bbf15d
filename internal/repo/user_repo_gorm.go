package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Nesia-inc/todo-app-ekram/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isDupKey(err) {
			return domain.Conflict("user name already in use")
		}
		return domain.Internal("create user failed", err)
	}
	return nil
}

func (r *UserRepo) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.Internal("find user failed", err)
	}
	return &u, nil
}

func (r *UserRepo) FindByIDWithTasks(ctx context.Context, id uint) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).
		Preload("Tasks", func(q *gorm.DB) *gorm.DB { return q.Order("created_at DESC") }).
		First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.Internal("find user failed", err)
	}
	return &u, nil
}

func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := r.db.WithContext(ctx).Preload("Tasks").Order("name ASC").Find(&users).Error
	if err != nil {
		return nil, domain.Internal("list users failed", err)
	}
	return users, nil
}

func (r *UserRepo) ListPage(ctx context.Context, offset, limit int) ([]domain.User, int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.User{})
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, domain.Internal("count users failed", err)
	}
	var users []domain.User
	err := tx.Preload("Tasks").Order("created_at DESC").Offset(offset).Limit(limit).Find(&users).Error
	if err != nil {
		return nil, 0, domain.Internal("list users failed", err)
	}
	return users, total, nil
}

func (r *UserRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.User{}).Count(&n).Error; err != nil {
		return 0, domain.Internal("count users failed", err)
	}
	return n, nil
}

func (r *UserRepo) UpdateName(ctx context.Context, id uint, name string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NotFound("user not found")
	}
	if err != nil {
		return nil, domain.Internal("find user failed", err)
	}
	u.Name = name
	if err := r.db.WithContext(ctx).Save(&u).Error; err != nil {
		if isDupKey(err) {
			return nil, domain.Conflict("user name already in use")
		}
		return nil, domain.Internal("update user failed", err)
	}
	return &u, nil
}

// DeleteCascade removes the user and its tasks as one atomic unit. The
// user is re-read inside the transaction so a delete racing another
// delete still reports NotFound instead of committing half the work.
func (r *UserRepo) DeleteCascade(ctx context.Context, id uint) (*domain.DeleteReport, error) {
	var report *domain.DeleteReport
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u domain.User
		if err := tx.Preload("Tasks").First(&u, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NotFound("user not found")
			}
			return err
		}
		// Tasks strictly before the user row, to honor the FK at every
		// point inside the transaction.
		if len(u.Tasks) > 0 {
			if err := tx.Where("user_id = ?", u.ID).Delete(&domain.Task{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Delete(&domain.User{}, u.ID).Error; err != nil {
			return err
		}
		report = &domain.DeleteReport{UserID: u.ID, Name: u.Name, DeletedTasks: len(u.Tasks)}
		return nil
	})
	if err != nil {
		var de *domain.Error
		if errors.As(err, &de) {
			return nil, err
		}
		return nil, domain.Internal("delete user failed", err)
	}
	return report, nil
}

func isDupKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// Fallback for drivers that do not translate constraint errors.
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
