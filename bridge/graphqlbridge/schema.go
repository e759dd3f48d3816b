package graphqlbridge

import (
	"github.com/graphql-go/graphql"
)

// buildSchema assembles the GraphQL schema programmatically. The circular
// fields (Task.parent, Label.tasks, Comment.task) are attached after the
// object types exist.
func (b *Bridge) buildSchema() (graphql.Schema, error) {
	taskType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Task",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"title":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.Field{Type: graphql.String},
			"status":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"dueAt":       &graphql.Field{Type: graphql.String},
			"createdAt":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"updatedAt":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"closedAt":    &graphql.Field{Type: graphql.String},
		},
	})

	labelType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Label",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"color":     &graphql.Field{Type: graphql.String},
			"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	commentType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Comment",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"taskId":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"content":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	taskType.AddFieldConfig("parent", &graphql.Field{
		Type:    taskType,
		Resolve: b.resolveTaskParent,
	})
	taskType.AddFieldConfig("children", &graphql.Field{
		Type:    graphql.NewList(graphql.NewNonNull(taskType)),
		Resolve: b.resolveTaskChildren,
	})
	taskType.AddFieldConfig("labels", &graphql.Field{
		Type:    graphql.NewList(graphql.NewNonNull(labelType)),
		Resolve: b.resolveTaskLabels,
	})
	taskType.AddFieldConfig("comments", &graphql.Field{
		Type:    graphql.NewList(graphql.NewNonNull(commentType)),
		Resolve: b.resolveTaskComments,
	})
	labelType.AddFieldConfig("tasks", &graphql.Field{
		Type:    graphql.NewList(graphql.NewNonNull(taskType)),
		Resolve: b.resolveLabelTasks,
	})
	commentType.AddFieldConfig("task", &graphql.Field{
		Type:    taskType,
		Resolve: b.resolveCommentTask,
	})

	createTaskInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateTaskInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"title":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"status":      &graphql.InputObjectFieldConfig{Type: graphql.String},
			"dueAt":       &graphql.InputObjectFieldConfig{Type: graphql.String},
			"parentId":    &graphql.InputObjectFieldConfig{Type: graphql.ID},
		},
	})

	updateTaskInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateTaskInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"title":            &graphql.InputObjectFieldConfig{Type: graphql.String},
			"description":      &graphql.InputObjectFieldConfig{Type: graphql.String},
			"clearDescription": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
			"status":           &graphql.InputObjectFieldConfig{Type: graphql.String},
			"dueAt":            &graphql.InputObjectFieldConfig{Type: graphql.String},
			"clearDueAt":       &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
			"parentId":         &graphql.InputObjectFieldConfig{Type: graphql.ID},
			"clearParent":      &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		},
	})

	createLabelInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateLabelInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"color": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	updateLabelInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateLabelInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":       &graphql.InputObjectFieldConfig{Type: graphql.String},
			"color":      &graphql.InputObjectFieldConfig{Type: graphql.String},
			"clearColor": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		},
	})

	createCommentInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateCommentInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"taskId":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"content": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	updateCommentInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateCommentInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"content": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"tasks": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(taskType)),
				Args: graphql.FieldConfigArgument{
					"search":   &graphql.ArgumentConfig{Type: graphql.String},
					"parentId": &graphql.ArgumentConfig{Type: graphql.ID},
					"labelId":  &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: b.resolveTasks,
			},
			"task": &graphql.Field{
				Type: taskType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: b.resolveTask,
			},
			"overdueTasks": &graphql.Field{
				Type:    graphql.NewList(graphql.NewNonNull(taskType)),
				Resolve: b.resolveOverdueTasks,
			},
			"tasksByStatus": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(taskType)),
				Args: graphql.FieldConfigArgument{
					"status": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: b.resolveTasksByStatus,
			},
			"labels": &graphql.Field{
				Type:    graphql.NewList(graphql.NewNonNull(labelType)),
				Resolve: b.resolveLabels,
			},
			"label": &graphql.Field{
				Type: labelType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: b.resolveLabel,
			},
			"comments": &graphql.Field{
				Type:    graphql.NewList(graphql.NewNonNull(commentType)),
				Resolve: b.resolveComments,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createTask": &graphql.Field{
				Type: taskType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createTaskInput)},
				},
				Resolve: b.resolveCreateTask,
			},
			"updateTask": &graphql.Field{
				Type: taskType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateTaskInput)},
				},
				Resolve: b.resolveUpdateTask,
			},
			"deleteTask": &graphql.Field{
				Type: graphql.ID,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: b.resolveDeleteTask,
			},
			"createLabel": &graphql.Field{
				Type: labelType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createLabelInput)},
				},
				Resolve: b.resolveCreateLabel,
			},
			"updateLabel": &graphql.Field{
				Type: labelType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateLabelInput)},
				},
				Resolve: b.resolveUpdateLabel,
			},
			"deleteLabel": &graphql.Field{
				Type: graphql.Int,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: b.resolveDeleteLabel,
			},
			"addTaskLabel": &graphql.Field{
				Type: taskType,
				Args: graphql.FieldConfigArgument{
					"taskId":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"labelId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: b.resolveAddTaskLabel,
			},
			"removeTaskLabel": &graphql.Field{
				Type: taskType,
				Args: graphql.FieldConfigArgument{
					"taskId":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"labelId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: b.resolveRemoveTaskLabel,
			},
			"createComment": &graphql.Field{
				Type: commentType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createCommentInput)},
				},
				Resolve: b.resolveCreateComment,
			},
			"updateComment": &graphql.Field{
				Type: commentType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateCommentInput)},
				},
				Resolve: b.resolveUpdateComment,
			},
			"deleteComment": &graphql.Field{
				Type: graphql.Int,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: b.resolveDeleteComment,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
