package graphqlbridge_test

import (
	"testing"
	"time"

	"github.com/jrazmi/taskdeck/bridge/graphqlbridge"
	"github.com/jrazmi/taskdeck/core/repositories/commentsrepo"
	"github.com/jrazmi/taskdeck/core/repositories/tasksrepo"
	"github.com/jrazmi/taskdeck/sdk/validation"
)

// ============================================================================
// Marshal Tests
// ============================================================================

func TestMarshalTaskToBridge(t *testing.T) {
	created := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	due := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	task := tasksrepo.Task{
		TaskID:      "task-1",
		Title:       "Write the report",
		Description: validation.StringPtr("quarterly numbers"),
		State:       tasksrepo.StateInProgress,
		DueAt:       &due,
		CreatedAt:   created,
		UpdatedAt:   created,
	}

	got := graphqlbridge.MarshalTaskToBridge(task)

	if got.ID != "task-1" {
		t.Errorf("id = %q", got.ID)
	}
	if got.Status != "in_progress" {
		t.Errorf("status = %q, want in_progress", got.Status)
	}
	if got.CreatedAt != "2025-03-14T09:30:00Z" {
		t.Errorf("createdAt = %q", got.CreatedAt)
	}
	if got.DueAt == nil || *got.DueAt != "2025-04-01T00:00:00Z" {
		t.Errorf("dueAt = %v", got.DueAt)
	}
	if got.ClosedAt != nil {
		t.Errorf("closedAt = %v, want nil", got.ClosedAt)
	}
}

func TestMarshalTaskZeroTimestampsBecomeNow(t *testing.T) {
	before := time.Now().UTC().Add(-time.Second)

	got := graphqlbridge.MarshalTaskToBridge(tasksrepo.Task{TaskID: "task-1", Title: "untracked"})

	created, err := time.Parse(time.RFC3339, got.CreatedAt)
	if err != nil {
		t.Fatalf("createdAt not RFC3339: %q", got.CreatedAt)
	}
	if created.Before(before) {
		t.Errorf("createdAt = %s, want a current timestamp", got.CreatedAt)
	}
	if got.DueAt != nil {
		t.Errorf("dueAt = %v, want nil", got.DueAt)
	}
}

func TestMarshalCommentToBridge(t *testing.T) {
	created := time.Date(2025, 5, 2, 12, 0, 0, 0, time.UTC)

	got := graphqlbridge.MarshalCommentToBridge(commentsrepo.Comment{
		CommentID: 7,
		TaskID:    "task-1",
		Content:   "needs review",
		CreatedAt: created,
	})

	if got.ID != 7 || got.TaskID != "task-1" || got.Content != "needs review" {
		t.Errorf("comment = %+v", got)
	}
	if got.CreatedAt != "2025-05-02T12:00:00Z" {
		t.Errorf("createdAt = %q", got.CreatedAt)
	}
}
