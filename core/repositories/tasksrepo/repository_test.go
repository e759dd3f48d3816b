package tasksrepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jrazmi/taskdeck/core/repositories/tasksrepo"
	"github.com/jrazmi/taskdeck/infrastructure/postgresdb"
	"github.com/jrazmi/taskdeck/sdk/logger"
)

// ============================================================================
// Stub Storer
// ============================================================================

type stubStorer struct {
	createFunc func(ctx context.Context, task tasksrepo.Task, parentID *string) error
	getFunc    func(ctx context.Context, taskID string) (tasksrepo.Task, error)
	deleteFunc func(ctx context.Context, taskID string) error
}

func (s *stubStorer) List(ctx context.Context) ([]tasksrepo.Task, error) { return nil, nil }

func (s *stubStorer) GetByID(ctx context.Context, taskID string) (tasksrepo.Task, error) {
	if s.getFunc != nil {
		return s.getFunc(ctx, taskID)
	}
	return tasksrepo.Task{}, postgresdb.ErrDBNotFound
}

func (s *stubStorer) Search(ctx context.Context, term string) ([]tasksrepo.Task, error) {
	return nil, nil
}

func (s *stubStorer) ListByState(ctx context.Context, state string) ([]tasksrepo.Task, error) {
	return nil, nil
}

func (s *stubStorer) ListByLabelID(ctx context.Context, labelID int64) ([]tasksrepo.Task, error) {
	return nil, nil
}

func (s *stubStorer) ListOverdue(ctx context.Context, now time.Time) ([]tasksrepo.Task, error) {
	return nil, nil
}

func (s *stubStorer) Create(ctx context.Context, task tasksrepo.Task, parentID *string) error {
	if s.createFunc != nil {
		return s.createFunc(ctx, task, parentID)
	}
	return nil
}

func (s *stubStorer) Update(ctx context.Context, taskID string, input tasksrepo.UpdateTask, updatedAt time.Time) (tasksrepo.Task, error) {
	return tasksrepo.Task{}, postgresdb.ErrDBNotFound
}

func (s *stubStorer) Delete(ctx context.Context, taskID string) error {
	if s.deleteFunc != nil {
		return s.deleteFunc(ctx, taskID)
	}
	return nil
}

// ============================================================================
// Repository Tests
// ============================================================================

func TestCreateAssignsDefaults(t *testing.T) {
	var stored tasksrepo.Task
	storer := &stubStorer{
		createFunc: func(ctx context.Context, task tasksrepo.Task, parentID *string) error {
			stored = task
			return nil
		},
	}
	repo := tasksrepo.NewRepository(logger.NewDefault(), storer)

	before := time.Now().UTC().Add(-time.Second)
	task, err := repo.Create(context.Background(), tasksrepo.CreateTask{Title: "fresh"})
	if err != nil {
		t.Fatalf("creating task: %s", err)
	}

	if task.TaskID == "" {
		t.Error("expected a generated id")
	}
	if task.State != tasksrepo.StateTodo {
		t.Errorf("state = %q, want todo", task.State)
	}
	if task.CreatedAt.Before(before) || !task.CreatedAt.Equal(task.UpdatedAt) {
		t.Errorf("timestamps = %s / %s, want both set to now", task.CreatedAt, task.UpdatedAt)
	}
	if stored.TaskID != task.TaskID {
		t.Errorf("stored id %q differs from returned id %q", stored.TaskID, task.TaskID)
	}
}

func TestCreateKeepsProvidedIDAndState(t *testing.T) {
	repo := tasksrepo.NewRepository(logger.NewDefault(), &stubStorer{})

	task, err := repo.Create(context.Background(), tasksrepo.CreateTask{
		TaskID: "fixed-id",
		Title:  "pinned",
		State:  tasksrepo.StateDone,
	})
	if err != nil {
		t.Fatalf("creating task: %s", err)
	}
	if task.TaskID != "fixed-id" || task.State != tasksrepo.StateDone {
		t.Errorf("task = %+v, want the provided id and state", task)
	}
}

func TestCreatePassesParentThrough(t *testing.T) {
	var gotParent *string
	storer := &stubStorer{
		createFunc: func(ctx context.Context, task tasksrepo.Task, parentID *string) error {
			gotParent = parentID
			return nil
		},
	}
	repo := tasksrepo.NewRepository(logger.NewDefault(), storer)

	parent := "parent-1"
	if _, err := repo.Create(context.Background(), tasksrepo.CreateTask{Title: "child", ParentID: &parent}); err != nil {
		t.Fatalf("creating task: %s", err)
	}
	if gotParent == nil || *gotParent != "parent-1" {
		t.Errorf("parent = %v, want parent-1", gotParent)
	}
}

func TestNotFoundTranslation(t *testing.T) {
	storer := &stubStorer{
		deleteFunc: func(ctx context.Context, taskID string) error {
			return postgresdb.ErrDBNotFound
		},
	}
	repo := tasksrepo.NewRepository(logger.NewDefault(), storer)

	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, tasksrepo.ErrTaskNotFound) {
		t.Errorf("GetByID error = %v, want ErrTaskNotFound", err)
	}
	if _, err := repo.Update(context.Background(), "missing", tasksrepo.UpdateTask{}); !errors.Is(err, tasksrepo.ErrTaskNotFound) {
		t.Errorf("Update error = %v, want ErrTaskNotFound", err)
	}
	if err := repo.Delete(context.Background(), "missing"); !errors.Is(err, tasksrepo.ErrTaskNotFound) {
		t.Errorf("Delete error = %v, want ErrTaskNotFound", err)
	}
}
