package service

import (
	"context"
	"testing"

	"github.com/Nesia-inc/todo-app-ekram/internal/repo"
	"github.com/Nesia-inc/todo-app-ekram/internal/testutil"
)

func TestStatsService_Overview(t *testing.T) {
	db := testutil.OpenTestDB(t, "statssvc")
	userRepo := repo.NewUserRepo(db)
	taskRepo := repo.NewTaskRepo(db)
	users := NewUserService(userRepo)
	tasks := NewTaskService(taskRepo)
	stats := NewStatsService(userRepo, taskRepo, nil, 0)
	ctx := context.Background()

	st, err := stats.Overview(ctx)
	if err != nil || st.Users != 0 || st.Tasks != 0 || st.AvgTasksPerUser != 0 {
		t.Fatalf("empty overview: %v %+v", err, st)
	}

	a, _ := users.Create(ctx, "alice")
	b, _ := users.Create(ctx, "bob")
	for _, in := range []CreateTaskInput{
		{Title: "t1", Content: "c", UserID: a.ID},
		{Title: "t2", Content: "c", Status: "IN_PROGRESS", UserID: a.ID},
		{Title: "t3", Content: "c", Status: "FINISHED", UserID: b.ID},
	} {
		if _, err := tasks.Create(ctx, in); err != nil {
			t.Fatalf("create task: %v", err)
		}
	}

	st, err = stats.Overview(ctx)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if st.Users != 2 || st.Tasks != 3 {
		t.Fatalf("totals wrong: %+v", st)
	}
	if st.Unfinished != 1 || st.InProgress != 1 || st.Finished != 1 {
		t.Fatalf("breakdown wrong: %+v", st)
	}
	if st.AvgTasksPerUser != 1.5 {
		t.Fatalf("avg wrong: %+v", st)
	}
}
