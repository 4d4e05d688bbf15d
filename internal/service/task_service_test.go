package service

import (
	"context"
	"testing"

	"github.com/Nesia-inc/todo-app-ekram/internal/domain"
	"github.com/Nesia-inc/todo-app-ekram/internal/repo"
	"github.com/Nesia-inc/todo-app-ekram/internal/testutil"
	"gorm.io/gorm"
)

func newTaskFixture(t *testing.T, name string) (*gorm.DB, *UserService, *TaskService) {
	t.Helper()
	db := testutil.OpenTestDB(t, name)
	return db, NewUserService(repo.NewUserRepo(db)), NewTaskService(repo.NewTaskRepo(db))
}

func TestTaskService_Create_Validation(t *testing.T) {
	db, users, tasks := newTaskFixture(t, "tasksvc_validate")
	ctx := context.Background()

	u, err := users.Create(ctx, "alice")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	cases := []struct {
		name string
		in   CreateTaskInput
	}{
		{"blank title", CreateTaskInput{Title: "   ", Content: "c", UserID: u.ID}},
		{"blank content", CreateTaskInput{Title: "t", Content: " \t ", UserID: u.ID}},
		{"missing user", CreateTaskInput{Title: "t", Content: "c"}},
		{"bad status", CreateTaskInput{Title: "t", Content: "c", Status: "DONE", UserID: u.ID}},
	}
	for _, tc := range cases {
		if _, err := tasks.Create(ctx, tc.in); domain.KindOf(err) != domain.KindValidation {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}

	var n int64
	if err := db.Model(&domain.Task{}).Count(&n).Error; err != nil || n != 0 {
		t.Fatalf("expected no rows after rejected creates, got %d err=%v", n, err)
	}
}

func TestTaskService_Create_DefaultsAndTrims(t *testing.T) {
	_, users, tasks := newTaskFixture(t, "tasksvc_defaults")
	ctx := context.Background()

	u, err := users.Create(ctx, "alice")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	task, err := tasks.Create(ctx, CreateTaskInput{Title: "  Ship v1  ", Content: " Release ", UserID: u.ID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if task.Title != "Ship v1" || task.Content != "Release" {
		t.Fatalf("fields not trimmed: %+v", task)
	}
	if task.Status != domain.StatusUnfinished {
		t.Fatalf("expected UNFINISHED default, got %s", task.Status)
	}

	explicit, err := tasks.Create(ctx, CreateTaskInput{Title: "t", Content: "c", Status: "FINISHED", UserID: u.ID})
	if err != nil || explicit.Status != domain.StatusFinished {
		t.Fatalf("explicit status: %v %+v", err, explicit)
	}
}

func TestTaskService_ChangeStatus_RoundTrip(t *testing.T) {
	_, users, tasks := newTaskFixture(t, "tasksvc_roundtrip")
	ctx := context.Background()

	u, _ := users.Create(ctx, "alice")
	task, err := tasks.Create(ctx, CreateTaskInput{Title: "t", Content: "c", UserID: u.ID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// any status may follow any other, including going back
	for _, st := range []string{"FINISHED", "UNFINISHED", "UNFINISHED", "IN_PROGRESS"} {
		got, err := tasks.ChangeStatus(ctx, u.ID, task.ID, st)
		if err != nil || string(got.Status) != st {
			t.Fatalf("transition to %s: %v %+v", st, err, got)
		}
	}
	final, _ := tasks.tasks.FindForUser(ctx, task.ID, u.ID)
	if final.Status != domain.StatusInProgress {
		t.Fatalf("final status not persisted: %+v", final)
	}
}

func TestTaskService_ChangeStatus_InvalidStatus(t *testing.T) {
	_, users, tasks := newTaskFixture(t, "tasksvc_badstatus")
	ctx := context.Background()

	u, _ := users.Create(ctx, "alice")
	task, _ := tasks.Create(ctx, CreateTaskInput{Title: "t", Content: "c", UserID: u.ID})

	if _, err := tasks.ChangeStatus(ctx, u.ID, task.ID, "finished"); domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("lowercase token accepted: %v", err)
	}
	if _, err := tasks.ChangeStatus(ctx, u.ID, task.ID, ""); domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("empty status accepted: %v", err)
	}
}

func TestTaskService_ChangeStatus_WrongOwner(t *testing.T) {
	_, users, tasks := newTaskFixture(t, "tasksvc_owner")
	ctx := context.Background()

	owner, _ := users.Create(ctx, "owner")
	intruder, _ := users.Create(ctx, "intruder")
	task, err := tasks.Create(ctx, CreateTaskInput{Title: "t", Content: "c", UserID: owner.ID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = tasks.ChangeStatus(ctx, intruder.ID, task.ID, "FINISHED")
	if domain.KindOf(err) != domain.KindNotFound {
		t.Fatalf("expected not found for foreign task, got %v", err)
	}

	// the failed attempt must not have touched the task
	got, _ := tasks.tasks.FindForUser(ctx, task.ID, owner.ID)
	if got.Status != domain.StatusUnfinished {
		t.Fatalf("status changed by foreign request: %+v", got)
	}
}
