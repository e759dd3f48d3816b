package graphqlbridge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/graphql-go/graphql"
	"github.com/jrazmi/taskdeck/core/repositories/labelsrepo"
	"github.com/jrazmi/taskdeck/core/repositories/tasksrepo"
)

func (b *Bridge) resolveLabels(p graphql.ResolveParams) (interface{}, error) {
	labels, err := b.labels.List(p.Context)
	if err != nil {
		return nil, err
	}
	return MarshalLabelListToBridge(labels), nil
}

func (b *Bridge) resolveLabel(p graphql.ResolveParams) (interface{}, error) {
	id, _ := intArg(p.Args, "id")

	label, err := b.labels.GetByID(p.Context, id)
	if err != nil {
		if errors.Is(err, labelsrepo.ErrLabelNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return MarshalLabelToBridge(label), nil
}

func (b *Bridge) resolveCreateLabel(p graphql.ResolveParams) (interface{}, error) {
	input, err := parseCreateLabelInput(p.Args["input"])
	if err != nil {
		return nil, err
	}
	if err := validateCreateLabelInput(input); err != nil {
		return nil, err
	}

	label, err := b.labels.Create(p.Context, labelsrepo.CreateLabel{
		Name:  strings.TrimSpace(input.Name),
		Color: input.Color,
	})
	if err != nil {
		return nil, err
	}

	return MarshalLabelToBridge(label), nil
}

func (b *Bridge) resolveUpdateLabel(p graphql.ResolveParams) (interface{}, error) {
	id, _ := intArg(p.Args, "id")

	input, err := parseUpdateLabelInput(p.Args["input"])
	if err != nil {
		return nil, err
	}
	if err := validateUpdateLabelInput(input); err != nil {
		return nil, err
	}

	var update labelsrepo.UpdateLabel
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		update.Name = &name
	}
	switch {
	case input.ClearColor:
		update.ClearColor = true
	case input.Color != nil:
		update.Color = input.Color
	}

	label, err := b.labels.Update(p.Context, id, update)
	if err != nil {
		if errors.Is(err, labelsrepo.ErrLabelNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return MarshalLabelToBridge(label), nil
}

// resolveDeleteLabel removes the label and returns its id, or null when the
// id does not exist. Its task attachments go with it.
func (b *Bridge) resolveDeleteLabel(p graphql.ResolveParams) (interface{}, error) {
	id, _ := intArg(p.Args, "id")

	if err := b.labels.Delete(p.Context, id); err != nil {
		if errors.Is(err, labelsrepo.ErrLabelNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return id, nil
}

// resolveAddTaskLabel attaches a label to a task and returns the task.
// Attaching twice is a no-op; a missing task or label resolves to null.
func (b *Bridge) resolveAddTaskLabel(p graphql.ResolveParams) (interface{}, error) {
	taskID, _ := stringArg(p.Args, "taskId")
	labelID, _ := intArg(p.Args, "labelId")

	task, err := b.tasks.GetByID(p.Context, taskID)
	if err != nil {
		if errors.Is(err, tasksrepo.ErrTaskNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if _, err := b.labels.GetByID(p.Context, labelID); err != nil {
		if errors.Is(err, labelsrepo.ErrLabelNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err := b.labels.AddTaskLabel(p.Context, taskID, labelID); err != nil {
		return nil, err
	}

	return MarshalTaskToBridge(task), nil
}

// resolveRemoveTaskLabel detaches a label from a task and returns the task.
// Detaching an unattached label is a no-op.
func (b *Bridge) resolveRemoveTaskLabel(p graphql.ResolveParams) (interface{}, error) {
	taskID, _ := stringArg(p.Args, "taskId")
	labelID, _ := intArg(p.Args, "labelId")

	task, err := b.tasks.GetByID(p.Context, taskID)
	if err != nil {
		if errors.Is(err, tasksrepo.ErrTaskNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err := b.labels.RemoveTaskLabel(p.Context, taskID, labelID); err != nil {
		return nil, err
	}

	return MarshalTaskToBridge(task), nil
}

// resolveLabelTasks is the Label.tasks nested field.
func (b *Bridge) resolveLabelTasks(p graphql.ResolveParams) (interface{}, error) {
	label, ok := p.Source.(Label)
	if !ok {
		return nil, fmt.Errorf("unexpected source type %T", p.Source)
	}

	tasks, err := b.tasks.ListByLabelID(p.Context, label.ID)
	if err != nil {
		return nil, err
	}

	return MarshalTaskListToBridge(tasks), nil
}
