package graphqlbridge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/graphql-go/graphql"
	"github.com/jrazmi/taskdeck/core/repositories/tasksrepo"
	"github.com/jrazmi/taskdeck/sdk/validation"
)

// resolveTasks lists tasks with at most one filter applied. The filters are
// not combined: a non-empty search wins, then parentId, then labelId.
func (b *Bridge) resolveTasks(p graphql.ResolveParams) (interface{}, error) {
	search, _ := stringArg(p.Args, "search")
	parentID, _ := stringArg(p.Args, "parentId")
	labelID, hasLabel := intArg(p.Args, "labelId")

	var tasks []tasksrepo.Task
	var err error

	switch {
	case search != "":
		tasks, err = b.tasks.Search(p.Context, search)
	case parentID != "":
		tasks, err = b.links.ListChildren(p.Context, parentID)
	case hasLabel:
		tasks, err = b.tasks.ListByLabelID(p.Context, labelID)
	default:
		tasks, err = b.tasks.List(p.Context)
	}
	if err != nil {
		return nil, err
	}

	return MarshalTaskListToBridge(tasks), nil
}

func (b *Bridge) resolveTask(p graphql.ResolveParams) (interface{}, error) {
	id, _ := stringArg(p.Args, "id")

	task, err := b.tasks.GetByID(p.Context, id)
	if err != nil {
		if errors.Is(err, tasksrepo.ErrTaskNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return MarshalTaskToBridge(task), nil
}

func (b *Bridge) resolveOverdueTasks(p graphql.ResolveParams) (interface{}, error) {
	tasks, err := b.tasks.ListOverdue(p.Context)
	if err != nil {
		return nil, err
	}
	return MarshalTaskListToBridge(tasks), nil
}

func (b *Bridge) resolveTasksByStatus(p graphql.ResolveParams) (interface{}, error) {
	status, _ := stringArg(p.Args, "status")
	if !tasksrepo.KnownState(status) {
		return nil, fmt.Errorf("unknown status: %s", status)
	}

	tasks, err := b.tasks.ListByState(p.Context, status)
	if err != nil {
		return nil, err
	}
	return MarshalTaskListToBridge(tasks), nil
}

func (b *Bridge) resolveCreateTask(p graphql.ResolveParams) (interface{}, error) {
	input, err := parseCreateTaskInput(p.Args["input"])
	if err != nil {
		return nil, err
	}
	if err := validateCreateTaskInput(input); err != nil {
		return nil, err
	}

	create := tasksrepo.CreateTask{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		State:       NormalizeStatus(input.Status),
		ParentID:    input.ParentID,
	}
	if input.DueAt != nil {
		dueAt, err := validation.ParseFlexibleDate(*input.DueAt)
		if err != nil {
			return nil, err
		}
		create.DueAt = &dueAt
	}

	task, err := b.tasks.Create(p.Context, create)
	if err != nil {
		return nil, err
	}

	return MarshalTaskToBridge(task), nil
}

func (b *Bridge) resolveUpdateTask(p graphql.ResolveParams) (interface{}, error) {
	id, _ := stringArg(p.Args, "id")

	input, err := parseUpdateTaskInput(p.Args["input"])
	if err != nil {
		return nil, err
	}
	if err := validateUpdateTaskInput(input); err != nil {
		return nil, err
	}

	var update tasksrepo.UpdateTask
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		update.Title = &title
	}
	switch {
	case input.ClearDescription:
		update.ClearDescription = true
	case input.Description != nil:
		update.Description = input.Description
	}
	if input.Status != nil {
		state := NormalizeStatus(input.Status)
		update.State = &state
	}
	switch {
	case input.ClearDueAt:
		update.ClearDueAt = true
	case input.DueAt != nil:
		dueAt, err := validation.ParseFlexibleDate(*input.DueAt)
		if err != nil {
			return nil, err
		}
		update.DueAt = &dueAt
	}
	switch {
	case input.ClearParent:
		update.SetParent = true
	case input.ParentID != nil:
		update.SetParent = true
		update.ParentID = input.ParentID
	}

	task, err := b.tasks.Update(p.Context, id, update)
	if err != nil {
		if errors.Is(err, tasksrepo.ErrTaskNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return MarshalTaskToBridge(task), nil
}

// resolveDeleteTask removes the task and returns its id, or null when the id
// does not exist.
func (b *Bridge) resolveDeleteTask(p graphql.ResolveParams) (interface{}, error) {
	id, _ := stringArg(p.Args, "id")

	if err := b.tasks.Delete(p.Context, id); err != nil {
		if errors.Is(err, tasksrepo.ErrTaskNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return id, nil
}

// =============================================================================
// Nested fields

func (b *Bridge) resolveTaskParent(p graphql.ResolveParams) (interface{}, error) {
	task, ok := p.Source.(Task)
	if !ok {
		return nil, fmt.Errorf("unexpected source type %T", p.Source)
	}

	parent, err := b.links.GetParent(p.Context, task.ID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, nil
	}

	return MarshalTaskToBridge(*parent), nil
}

func (b *Bridge) resolveTaskChildren(p graphql.ResolveParams) (interface{}, error) {
	task, ok := p.Source.(Task)
	if !ok {
		return nil, fmt.Errorf("unexpected source type %T", p.Source)
	}

	children, err := b.links.ListChildren(p.Context, task.ID)
	if err != nil {
		return nil, err
	}

	return MarshalTaskListToBridge(children), nil
}

func (b *Bridge) resolveTaskLabels(p graphql.ResolveParams) (interface{}, error) {
	task, ok := p.Source.(Task)
	if !ok {
		return nil, fmt.Errorf("unexpected source type %T", p.Source)
	}

	labels, err := b.labels.ListByTaskID(p.Context, task.ID)
	if err != nil {
		return nil, err
	}

	return MarshalLabelListToBridge(labels), nil
}

func (b *Bridge) resolveTaskComments(p graphql.ResolveParams) (interface{}, error) {
	task, ok := p.Source.(Task)
	if !ok {
		return nil, fmt.Errorf("unexpected source type %T", p.Source)
	}

	comments, err := b.comments.ListByTaskID(p.Context, task.ID)
	if err != nil {
		return nil, err
	}

	return MarshalCommentListToBridge(comments), nil
}
