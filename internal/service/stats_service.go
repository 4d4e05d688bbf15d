package service

import (
	"context"
	"time"

	"github.com/Nesia-inc/todo-app-ekram/internal/core/cache"
	"github.com/Nesia-inc/todo-app-ekram/internal/domain"
)

const statsCacheKey = "stats:overview"

// TeamStats is the team-wide overview computed from current store state.
type TeamStats struct {
	Users           int64   `json:"users"`
	Tasks           int64   `json:"tasks"`
	Unfinished      int64   `json:"unfinished"`
	InProgress      int64   `json:"inProgress"`
	Finished        int64   `json:"finished"`
	AvgTasksPerUser float64 `json:"avgTasksPerUser"`
}

type StatsService struct {
	users domain.UserRepository
	tasks domain.TaskRepository
	cache *cache.Cache // nil means every read goes to the store
	ttl   time.Duration
}

func NewStatsService(users domain.UserRepository, tasks domain.TaskRepository, c *cache.Cache, ttl time.Duration) *StatsService {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &StatsService{users: users, tasks: tasks, cache: c, ttl: ttl}
}

func (s *StatsService) Overview(ctx context.Context) (*TeamStats, error) {
	if s.cache == nil {
		return s.load(ctx)
	}
	return cache.GetOrLoadJSON(s.cache, ctx, statsCacheKey, s.ttl, s.load)
}

// Invalidate drops the cached overview after a write.
func (s *StatsService) Invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, statsCacheKey)
	}
}

func (s *StatsService) load(ctx context.Context) (*TeamStats, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.tasks.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	st := &TeamStats{
		Users:      users,
		Unfinished: byStatus[domain.StatusUnfinished],
		InProgress: byStatus[domain.StatusInProgress],
		Finished:   byStatus[domain.StatusFinished],
	}
	st.Tasks = st.Unfinished + st.InProgress + st.Finished
	if users > 0 {
		st.AvgTasksPerUser = float64(st.Tasks) / float64(users)
	}
	return st, nil
}
