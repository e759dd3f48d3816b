package graphqlbridge

import (
	"strings"
	"unicode/utf8"

	"github.com/jrazmi/taskdeck/bridge/scaffolding/errs"
	"github.com/jrazmi/taskdeck/core/repositories/tasksrepo"
	"github.com/jrazmi/taskdeck/sdk/validation"
)

const (
	maxTitleLength       = 100
	maxDescriptionLength = 1000
	maxLabelNameLength   = 50
)

// NormalizeStatus maps an absent, empty, or unknown status to todo. Status
// is deliberately not rejected by validation; anything unrecognized falls
// back to the default state.
func NormalizeStatus(status *string) string {
	if status == nil || !tasksrepo.KnownState(*status) {
		return tasksrepo.StateTodo
	}
	return *status
}

func validateCreateTaskInput(input CreateTaskInput) error {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return errs.Newf(errs.InvalidArgument, "title is required")
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return errs.Newf(errs.InvalidArgument, "title must be at most %d characters", maxTitleLength)
	}

	if input.Description != nil && utf8.RuneCountInString(*input.Description) > maxDescriptionLength {
		return errs.Newf(errs.InvalidArgument, "description must be at most %d characters", maxDescriptionLength)
	}

	if input.DueAt != nil {
		if _, err := validation.ParseFlexibleDate(*input.DueAt); err != nil {
			return errs.Newf(errs.InvalidArgument, "dueAt is not a valid date: %s", *input.DueAt)
		}
	}

	return nil
}

func validateUpdateTaskInput(input UpdateTaskInput) error {
	if input.Title == nil && input.Description == nil && !input.ClearDescription &&
		input.Status == nil && input.DueAt == nil && !input.ClearDueAt &&
		input.ParentID == nil && !input.ClearParent {
		return errs.Newf(errs.InvalidArgument, "at least one field must be provided")
	}

	if input.Description != nil && input.ClearDescription {
		return errs.Newf(errs.InvalidArgument, "description and clearDescription are mutually exclusive")
	}
	if input.DueAt != nil && input.ClearDueAt {
		return errs.Newf(errs.InvalidArgument, "dueAt and clearDueAt are mutually exclusive")
	}
	if input.ParentID != nil && input.ClearParent {
		return errs.Newf(errs.InvalidArgument, "parentId and clearParent are mutually exclusive")
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return errs.Newf(errs.InvalidArgument, "title must not be empty")
		}
		if utf8.RuneCountInString(title) > maxTitleLength {
			return errs.Newf(errs.InvalidArgument, "title must be at most %d characters", maxTitleLength)
		}
	}

	if input.Description != nil && utf8.RuneCountInString(*input.Description) > maxDescriptionLength {
		return errs.Newf(errs.InvalidArgument, "description must be at most %d characters", maxDescriptionLength)
	}

	if input.DueAt != nil {
		if _, err := validation.ParseFlexibleDate(*input.DueAt); err != nil {
			return errs.Newf(errs.InvalidArgument, "dueAt is not a valid date: %s", *input.DueAt)
		}
	}

	return nil
}

func validateCreateLabelInput(input CreateLabelInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return errs.Newf(errs.InvalidArgument, "name is required")
	}
	if utf8.RuneCountInString(name) > maxLabelNameLength {
		return errs.Newf(errs.InvalidArgument, "name must be at most %d characters", maxLabelNameLength)
	}
	return nil
}

func validateUpdateLabelInput(input UpdateLabelInput) error {
	if input.Name == nil && input.Color == nil && !input.ClearColor {
		return errs.Newf(errs.InvalidArgument, "at least one field must be provided")
	}

	if input.Color != nil && input.ClearColor {
		return errs.Newf(errs.InvalidArgument, "color and clearColor are mutually exclusive")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return errs.Newf(errs.InvalidArgument, "name must not be empty")
		}
		if utf8.RuneCountInString(name) > maxLabelNameLength {
			return errs.Newf(errs.InvalidArgument, "name must be at most %d characters", maxLabelNameLength)
		}
	}

	return nil
}

func validateCommentContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return errs.Newf(errs.InvalidArgument, "content is required")
	}
	return nil
}
