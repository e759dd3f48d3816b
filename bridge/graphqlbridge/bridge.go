// Package graphqlbridge exposes the task management repositories as a
// GraphQL API.
package graphqlbridge

import (
	"fmt"

	"github.com/graphql-go/graphql"
	"github.com/jrazmi/taskdeck/core/repositories/commentsrepo"
	"github.com/jrazmi/taskdeck/core/repositories/labelsrepo"
	"github.com/jrazmi/taskdeck/core/repositories/tasklinksrepo"
	"github.com/jrazmi/taskdeck/core/repositories/tasksrepo"
	"github.com/jrazmi/taskdeck/sdk/logger"
)

// Config holds the dependencies of the GraphQL bridge.
type Config struct {
	Log      *logger.Logger
	Tasks    *tasksrepo.Repository
	Labels   *labelsrepo.Repository
	Links    *tasklinksrepo.Repository
	Comments *commentsrepo.Repository
}

// Bridge resolves GraphQL operations against the repositories.
type Bridge struct {
	log      *logger.Logger
	tasks    *tasksrepo.Repository
	labels   *labelsrepo.Repository
	links    *tasklinksrepo.Repository
	comments *commentsrepo.Repository
	schema   graphql.Schema
}

// NewBridge constructs the bridge and assembles its schema.
func NewBridge(cfg Config) (*Bridge, error) {
	b := Bridge{
		log:      cfg.Log,
		tasks:    cfg.Tasks,
		labels:   cfg.Labels,
		links:    cfg.Links,
		comments: cfg.Comments,
	}

	schema, err := b.buildSchema()
	if err != nil {
		return nil, fmt.Errorf("building schema: %w", err)
	}
	b.schema = schema

	return &b, nil
}

// Schema returns the assembled GraphQL schema.
func (b *Bridge) Schema() graphql.Schema {
	return b.schema
}

// =============================================================================
// Argument helpers. graphql-go hands resolver arguments as untyped maps.
// Null values never reach the map: a null literal is rejected by the parser
// and a null variable is dropped during coercion, which is why clearing a
// field is a dedicated Boolean input rather than an explicit null.

func stringArg(args map[string]interface{}, key string) (string, bool) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func intArg(args map[string]interface{}, key string) (int64, bool) {
	v, ok := args[key]
	if !ok || v == nil {
		return 0, false
	}
	n, ok := v.(int)
	if !ok {
		return 0, false
	}
	return int64(n), true
}

func optStringArg(args map[string]interface{}, key string) *string {
	s, ok := stringArg(args, key)
	if !ok {
		return nil
	}
	return &s
}

func boolArg(args map[string]interface{}, key string) bool {
	v, ok := args[key].(bool)
	return ok && v
}

func parseCreateTaskInput(arg interface{}) (CreateTaskInput, error) {
	m, ok := arg.(map[string]interface{})
	if !ok {
		return CreateTaskInput{}, fmt.Errorf("input is not an object")
	}

	var input CreateTaskInput
	input.Title, _ = stringArg(m, "title")
	input.Description = optStringArg(m, "description")
	input.Status = optStringArg(m, "status")
	input.DueAt = optStringArg(m, "dueAt")
	input.ParentID = optStringArg(m, "parentId")

	return input, nil
}

func parseUpdateTaskInput(arg interface{}) (UpdateTaskInput, error) {
	m, ok := arg.(map[string]interface{})
	if !ok {
		return UpdateTaskInput{}, fmt.Errorf("input is not an object")
	}

	var input UpdateTaskInput
	input.Title = optStringArg(m, "title")
	input.Description = optStringArg(m, "description")
	input.ClearDescription = boolArg(m, "clearDescription")
	input.Status = optStringArg(m, "status")
	input.DueAt = optStringArg(m, "dueAt")
	input.ClearDueAt = boolArg(m, "clearDueAt")
	input.ParentID = optStringArg(m, "parentId")
	input.ClearParent = boolArg(m, "clearParent")

	return input, nil
}

func parseCreateLabelInput(arg interface{}) (CreateLabelInput, error) {
	m, ok := arg.(map[string]interface{})
	if !ok {
		return CreateLabelInput{}, fmt.Errorf("input is not an object")
	}

	var input CreateLabelInput
	input.Name, _ = stringArg(m, "name")
	input.Color = optStringArg(m, "color")

	return input, nil
}

func parseUpdateLabelInput(arg interface{}) (UpdateLabelInput, error) {
	m, ok := arg.(map[string]interface{})
	if !ok {
		return UpdateLabelInput{}, fmt.Errorf("input is not an object")
	}

	var input UpdateLabelInput
	input.Name = optStringArg(m, "name")
	input.Color = optStringArg(m, "color")
	input.ClearColor = boolArg(m, "clearColor")

	return input, nil
}
