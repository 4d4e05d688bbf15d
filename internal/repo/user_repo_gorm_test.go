package repo

import (
	"context"
	"testing"

	"github.com/Nesia-inc/todo-app-ekram/internal/domain"
	"github.com/Nesia-inc/todo-app-ekram/internal/testutil"
)

func TestUserRepo_CreateAndFind(t *testing.T) {
	db := testutil.OpenTestDB(t, "userrepo_create")
	users := NewUserRepo(db)
	ctx := context.Background()

	u := &domain.User{Name: "alice"}
	if err := users.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID == 0 {
		t.Fatalf("expected generated id, got %+v", u)
	}

	got, err := users.FindByID(ctx, u.ID)
	if err != nil || got == nil || got.Name != "alice" {
		t.Fatalf("find by id: %v %+v", err, got)
	}

	missing, err := users.FindByID(ctx, 9999)
	if err != nil || missing != nil {
		t.Fatalf("expected absent user, got %+v err=%v", missing, err)
	}
}

func TestUserRepo_Create_DuplicateName(t *testing.T) {
	db := testutil.OpenTestDB(t, "userrepo_dup")
	users := NewUserRepo(db)
	ctx := context.Background()

	if err := users.Create(ctx, &domain.User{Name: "Alice"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	err := users.Create(ctx, &domain.User{Name: "Alice"})
	if err == nil || domain.KindOf(err) != domain.KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}

	n, err := users.Count(ctx)
	if err != nil || n != 1 {
		t.Fatalf("expected exactly one Alice, got %d err=%v", n, err)
	}
}

func TestUserRepo_UpdateName(t *testing.T) {
	db := testutil.OpenTestDB(t, "userrepo_rename")
	users := NewUserRepo(db)
	ctx := context.Background()

	a := &domain.User{Name: "alice"}
	b := &domain.User{Name: "bob"}
	for _, u := range []*domain.User{a, b} {
		if err := users.Create(ctx, u); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, err := users.UpdateName(ctx, a.ID, "alicia")
	if err != nil || got.Name != "alicia" {
		t.Fatalf("rename: %v %+v", err, got)
	}

	if _, err := users.UpdateName(ctx, a.ID, "bob"); domain.KindOf(err) != domain.KindConflict {
		t.Fatalf("expected conflict renaming onto bob, got %v", err)
	}
	if _, err := users.UpdateName(ctx, 9999, "ghost"); domain.KindOf(err) != domain.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUserRepo_DeleteCascade(t *testing.T) {
	db := testutil.OpenTestDB(t, "userrepo_cascade")
	users := NewUserRepo(db)
	tasks := NewTaskRepo(db)
	ctx := context.Background()

	victim := &domain.User{Name: "victim"}
	bystander := &domain.User{Name: "bystander"}
	for _, u := range []*domain.User{victim, bystander} {
		if err := users.Create(ctx, u); err != nil {
			t.Fatalf("create user: %v", err)
		}
	}
	for i, title := range []string{"one", "two", "three"} {
		task := &domain.Task{Title: title, Content: "c", Status: domain.StatusUnfinished, UserID: victim.ID}
		if i == 1 {
			task.Status = domain.StatusFinished
		}
		if err := tasks.Create(ctx, task); err != nil {
			t.Fatalf("create task: %v", err)
		}
	}
	keep := &domain.Task{Title: "keep", Content: "c", Status: domain.StatusInProgress, UserID: bystander.ID}
	if err := tasks.Create(ctx, keep); err != nil {
		t.Fatalf("create task: %v", err)
	}

	report, err := users.DeleteCascade(ctx, victim.ID)
	if err != nil {
		t.Fatalf("delete cascade: %v", err)
	}
	if report.DeletedTasks != 3 || report.Name != "victim" || report.UserID != victim.ID {
		t.Fatalf("unexpected report: %+v", report)
	}

	if gone, _ := users.FindByID(ctx, victim.ID); gone != nil {
		t.Fatalf("user survived cascade: %+v", gone)
	}
	var orphaned int64
	if err := db.Model(&domain.Task{}).Where("user_id = ?", victim.ID).Count(&orphaned).Error; err != nil {
		t.Fatalf("count orphans: %v", err)
	}
	if orphaned != 0 {
		t.Fatalf("expected no orphaned tasks, got %d", orphaned)
	}

	// the other user's task is untouched
	got, err := tasks.FindForUser(ctx, keep.ID, bystander.ID)
	if err != nil || got == nil {
		t.Fatalf("bystander task lost: %v %+v", err, got)
	}
}

func TestUserRepo_DeleteCascade_ZeroTasks(t *testing.T) {
	db := testutil.OpenTestDB(t, "userrepo_cascade_empty")
	users := NewUserRepo(db)
	ctx := context.Background()

	u := &domain.User{Name: "loner"}
	if err := users.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}
	report, err := users.DeleteCascade(ctx, u.ID)
	if err != nil || report.DeletedTasks != 0 {
		t.Fatalf("delete without tasks: %v %+v", err, report)
	}
	if gone, _ := users.FindByID(ctx, u.ID); gone != nil {
		t.Fatalf("user survived: %+v", gone)
	}
}

func TestUserRepo_DeleteCascade_NotFound(t *testing.T) {
	db := testutil.OpenTestDB(t, "userrepo_cascade_missing")
	users := NewUserRepo(db)
	tasks := NewTaskRepo(db)
	ctx := context.Background()

	u := &domain.User{Name: "alice"}
	if err := users.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := tasks.Create(ctx, &domain.Task{Title: "t", Content: "c", Status: domain.StatusUnfinished, UserID: u.ID}); err != nil {
		t.Fatalf("create task: %v", err)
	}

	usersBefore, _ := users.Count(ctx)
	var tasksBefore int64
	_ = db.Model(&domain.Task{}).Count(&tasksBefore).Error

	_, err := users.DeleteCascade(ctx, 424242)
	if domain.KindOf(err) != domain.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}

	usersAfter, _ := users.Count(ctx)
	var tasksAfter int64
	_ = db.Model(&domain.Task{}).Count(&tasksAfter).Error
	if usersAfter != usersBefore || tasksAfter != tasksBefore {
		t.Fatalf("store changed: users %d->%d tasks %d->%d", usersBefore, usersAfter, tasksBefore, tasksAfter)
	}
}

func TestUserRepo_ListPage(t *testing.T) {
	db := testutil.OpenTestDB(t, "userrepo_page")
	users := NewUserRepo(db)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		if err := users.Create(ctx, &domain.User{Name: name}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	page, total, err := users.ListPage(ctx, 0, 2)
	if err != nil || total != 3 || len(page) != 2 {
		t.Fatalf("page: %v total=%d len=%d", err, total, len(page))
	}
}
