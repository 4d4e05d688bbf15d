package repo

import (
	"context"
	"testing"

	"github.com/Nesia-inc/todo-app-ekram/internal/domain"
	"github.com/Nesia-inc/todo-app-ekram/internal/testutil"
)

func TestTaskRepo_FindForUser_Scoping(t *testing.T) {
	db := testutil.OpenTestDB(t, "taskrepo_scope")
	users := NewUserRepo(db)
	tasks := NewTaskRepo(db)
	ctx := context.Background()

	owner := &domain.User{Name: "owner"}
	other := &domain.User{Name: "other"}
	for _, u := range []*domain.User{owner, other} {
		if err := users.Create(ctx, u); err != nil {
			t.Fatalf("create user: %v", err)
		}
	}
	task := &domain.Task{Title: "ship", Content: "release", Status: domain.StatusUnfinished, UserID: owner.ID}
	if err := tasks.Create(ctx, task); err != nil {
		t.Fatalf("create task: %v", err)
	}

	got, err := tasks.FindForUser(ctx, task.ID, owner.ID)
	if err != nil || got == nil || got.ID != task.ID {
		t.Fatalf("find for owner: %v %+v", err, got)
	}

	// scoped to the wrong user the task is invisible
	miss, err := tasks.FindForUser(ctx, task.ID, other.ID)
	if err != nil || miss != nil {
		t.Fatalf("expected miss for other user, got %+v err=%v", miss, err)
	}
}

func TestTaskRepo_UpdateStatus(t *testing.T) {
	db := testutil.OpenTestDB(t, "taskrepo_status")
	users := NewUserRepo(db)
	tasks := NewTaskRepo(db)
	ctx := context.Background()

	u := &domain.User{Name: "worker"}
	if err := users.Create(ctx, u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	task := &domain.Task{Title: "t", Content: "c", Status: domain.StatusUnfinished, UserID: u.ID}
	if err := tasks.Create(ctx, task); err != nil {
		t.Fatalf("create task: %v", err)
	}

	got, err := tasks.UpdateStatus(ctx, task.ID, domain.StatusFinished)
	if err != nil || got.Status != domain.StatusFinished {
		t.Fatalf("update status: %v %+v", err, got)
	}
	reread, _ := tasks.FindForUser(ctx, task.ID, u.ID)
	if reread.Status != domain.StatusFinished {
		t.Fatalf("status not persisted: %+v", reread)
	}

	if _, err := tasks.UpdateStatus(ctx, 9999, domain.StatusFinished); domain.KindOf(err) != domain.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestTaskRepo_CountByStatus(t *testing.T) {
	db := testutil.OpenTestDB(t, "taskrepo_counts")
	users := NewUserRepo(db)
	tasks := NewTaskRepo(db)
	ctx := context.Background()

	u := &domain.User{Name: "worker"}
	if err := users.Create(ctx, u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	for _, st := range []domain.Status{
		domain.StatusUnfinished, domain.StatusUnfinished,
		domain.StatusInProgress,
		domain.StatusFinished, domain.StatusFinished, domain.StatusFinished,
	} {
		if err := tasks.Create(ctx, &domain.Task{Title: "t", Content: "c", Status: st, UserID: u.ID}); err != nil {
			t.Fatalf("create task: %v", err)
		}
	}

	counts, err := tasks.CountByStatus(ctx)
	if err != nil {
		t.Fatalf("count by status: %v", err)
	}
	if counts[domain.StatusUnfinished] != 2 || counts[domain.StatusInProgress] != 1 || counts[domain.StatusFinished] != 3 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}
