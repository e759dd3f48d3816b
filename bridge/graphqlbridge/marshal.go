package graphqlbridge

import (
	"time"

	"github.com/jrazmi/taskdeck/core/repositories/commentsrepo"
	"github.com/jrazmi/taskdeck/core/repositories/labelsrepo"
	"github.com/jrazmi/taskdeck/core/repositories/tasksrepo"
	"github.com/jrazmi/taskdeck/sdk/validation"
)

// MarshalTaskToBridge converts a core task to its API shape. A zero
// created/updated timestamp is substituted with "now"; this default filling
// is a documented quirk, absent due/closed dates stay null.
func MarshalTaskToBridge(task tasksrepo.Task) Task {
	return Task{
		ID:          task.TaskID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.State,
		DueAt:       formatTimePtr(task.DueAt),
		CreatedAt:   formatTimeOrNow(task.CreatedAt),
		UpdatedAt:   formatTimeOrNow(task.UpdatedAt),
		ClosedAt:    formatTimePtr(task.ClosedAt),
	}
}

// MarshalTaskListToBridge converts a list of core tasks to API shapes.
func MarshalTaskListToBridge(tasks []tasksrepo.Task) []Task {
	bridgeTasks := make([]Task, len(tasks))
	for i, task := range tasks {
		bridgeTasks[i] = MarshalTaskToBridge(task)
	}
	return bridgeTasks
}

// MarshalLabelToBridge converts a core label to its API shape.
func MarshalLabelToBridge(label labelsrepo.Label) Label {
	return Label{
		ID:        label.LabelID,
		Name:      label.Name,
		Color:     label.Color,
		CreatedAt: formatTimeOrNow(label.CreatedAt),
	}
}

// MarshalLabelListToBridge converts a list of core labels to API shapes.
func MarshalLabelListToBridge(labels []labelsrepo.Label) []Label {
	bridgeLabels := make([]Label, len(labels))
	for i, label := range labels {
		bridgeLabels[i] = MarshalLabelToBridge(label)
	}
	return bridgeLabels
}

// MarshalCommentToBridge converts a core comment to its API shape.
func MarshalCommentToBridge(comment commentsrepo.Comment) Comment {
	return Comment{
		ID:        comment.CommentID,
		TaskID:    comment.TaskID,
		Content:   comment.Content,
		CreatedAt: formatTimeOrNow(comment.CreatedAt),
	}
}

// MarshalCommentListToBridge converts a list of core comments to API shapes.
func MarshalCommentListToBridge(comments []commentsrepo.Comment) []Comment {
	bridgeComments := make([]Comment, len(comments))
	for i, comment := range comments {
		bridgeComments[i] = MarshalCommentToBridge(comment)
	}
	return bridgeComments
}

func formatTimeOrNow(t time.Time) string {
	if t.IsZero() {
		t = time.Now().UTC()
	}
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	return validation.StringPtr(t.UTC().Format(time.RFC3339))
}
