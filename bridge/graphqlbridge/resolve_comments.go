package graphqlbridge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/graphql-go/graphql"
	"github.com/jrazmi/taskdeck/core/repositories/commentsrepo"
	"github.com/jrazmi/taskdeck/core/repositories/tasksrepo"
	"github.com/jrazmi/taskdeck/infrastructure/postgresdb"
)

func (b *Bridge) resolveComments(p graphql.ResolveParams) (interface{}, error) {
	comments, err := b.comments.List(p.Context)
	if err != nil {
		return nil, err
	}
	return MarshalCommentListToBridge(comments), nil
}

func (b *Bridge) resolveCreateComment(p graphql.ResolveParams) (interface{}, error) {
	m, ok := p.Args["input"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("input is not an object")
	}

	taskID, _ := stringArg(m, "taskId")
	content, _ := stringArg(m, "content")

	if err := validateCommentContent(content); err != nil {
		return nil, err
	}

	comment, err := b.comments.Create(p.Context, commentsrepo.CreateComment{
		TaskID:  taskID,
		Content: strings.TrimSpace(content),
	})
	if err != nil {
		// The FK catches a comment against a task that does not exist.
		if errors.Is(err, postgresdb.ErrDBForeignKeyBroken) {
			return nil, fmt.Errorf("task not found: %s", taskID)
		}
		return nil, err
	}

	return MarshalCommentToBridge(comment), nil
}

func (b *Bridge) resolveUpdateComment(p graphql.ResolveParams) (interface{}, error) {
	id, _ := intArg(p.Args, "id")

	m, ok := p.Args["input"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("input is not an object")
	}
	content, _ := stringArg(m, "content")

	if err := validateCommentContent(content); err != nil {
		return nil, err
	}

	comment, err := b.comments.Update(p.Context, id, strings.TrimSpace(content))
	if err != nil {
		if errors.Is(err, commentsrepo.ErrCommentNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return MarshalCommentToBridge(comment), nil
}

// resolveDeleteComment removes the comment and returns its id, or null when
// the id does not exist.
func (b *Bridge) resolveDeleteComment(p graphql.ResolveParams) (interface{}, error) {
	id, _ := intArg(p.Args, "id")

	if err := b.comments.Delete(p.Context, id); err != nil {
		if errors.Is(err, commentsrepo.ErrCommentNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return id, nil
}

// resolveCommentTask is the Comment.task nested field.
func (b *Bridge) resolveCommentTask(p graphql.ResolveParams) (interface{}, error) {
	comment, ok := p.Source.(Comment)
	if !ok {
		return nil, fmt.Errorf("unexpected source type %T", p.Source)
	}

	task, err := b.tasks.GetByID(p.Context, comment.TaskID)
	if err != nil {
		if errors.Is(err, tasksrepo.ErrTaskNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return MarshalTaskToBridge(task), nil
}
