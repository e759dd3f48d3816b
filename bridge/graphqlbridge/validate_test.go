package graphqlbridge

import (
	"strings"
	"testing"

	"github.com/jrazmi/taskdeck/sdk/validation"
)

// ============================================================================
// Status Normalization Tests
// ============================================================================

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		name   string
		status *string
		want   string
	}{
		{"nil", nil, "todo"},
		{"empty", validation.StringPtr(""), "todo"},
		{"unknown", validation.StringPtr("blocked"), "todo"},
		{"todo", validation.StringPtr("todo"), "todo"},
		{"in_progress", validation.StringPtr("in_progress"), "in_progress"},
		{"done", validation.StringPtr("done"), "done"},
		{"cancelled", validation.StringPtr("cancelled"), "cancelled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeStatus(tt.status); got != tt.want {
				t.Errorf("NormalizeStatus = %q, want %q", got, tt.want)
			}
		})
	}
}

// ============================================================================
// Input Validation Tests
// ============================================================================

func TestValidateCreateTaskInput(t *testing.T) {
	tests := []struct {
		name    string
		input   CreateTaskInput
		wantErr bool
	}{
		{"valid", CreateTaskInput{Title: "write tests"}, false},
		{"valid with due date", CreateTaskInput{Title: "x", DueAt: validation.StringPtr("2025-06-01")}, false},
		{"blank title", CreateTaskInput{Title: "   "}, true},
		{"title too long", CreateTaskInput{Title: strings.Repeat("a", 101)}, true},
		{"title at limit", CreateTaskInput{Title: strings.Repeat("a", 100)}, false},
		{"description too long", CreateTaskInput{Title: "x", Description: validation.StringPtr(strings.Repeat("d", 1001))}, true},
		{"bad due date", CreateTaskInput{Title: "x", DueAt: validation.StringPtr("soonish")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCreateTaskInput(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateCreateTaskInput = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateUpdateTaskInput(t *testing.T) {
	tests := []struct {
		name    string
		input   UpdateTaskInput
		wantErr bool
	}{
		{"no fields", UpdateTaskInput{}, true},
		{"title only", UpdateTaskInput{Title: validation.StringPtr("new title")}, false},
		{"blank title", UpdateTaskInput{Title: validation.StringPtr("  ")}, true},
		{"clearing description counts as a field", UpdateTaskInput{ClearDescription: true}, false},
		{"clearing due date counts as a field", UpdateTaskInput{ClearDueAt: true}, false},
		{"clearing parent counts as a field", UpdateTaskInput{ClearParent: true}, false},
		{"description set and clear conflict", UpdateTaskInput{Description: validation.StringPtr("x"), ClearDescription: true}, true},
		{"due date set and clear conflict", UpdateTaskInput{DueAt: validation.StringPtr("2025-06-01"), ClearDueAt: true}, true},
		{"parent set and clear conflict", UpdateTaskInput{ParentID: validation.StringPtr("p"), ClearParent: true}, true},
		{"bad due date", UpdateTaskInput{DueAt: validation.StringPtr("nope")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateUpdateTaskInput(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateUpdateTaskInput = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateLabelInputs(t *testing.T) {
	if err := validateCreateLabelInput(CreateLabelInput{Name: "urgent"}); err != nil {
		t.Errorf("valid create: %s", err)
	}
	if err := validateCreateLabelInput(CreateLabelInput{Name: "  "}); err == nil {
		t.Error("blank name: expected an error")
	}
	if err := validateCreateLabelInput(CreateLabelInput{Name: strings.Repeat("n", 51)}); err == nil {
		t.Error("long name: expected an error")
	}

	if err := validateUpdateLabelInput(UpdateLabelInput{}); err == nil {
		t.Error("empty update: expected an error")
	}
	if err := validateUpdateLabelInput(UpdateLabelInput{ClearColor: true}); err != nil {
		t.Errorf("clearing the color alone is a valid update: %s", err)
	}
	if err := validateUpdateLabelInput(UpdateLabelInput{Color: validation.StringPtr("#fff"), ClearColor: true}); err == nil {
		t.Error("setting and clearing the color together: expected an error")
	}
}

func TestValidateCommentContent(t *testing.T) {
	if err := validateCommentContent("fine"); err != nil {
		t.Errorf("valid content: %s", err)
	}
	if err := validateCommentContent("   "); err == nil {
		t.Error("blank content: expected an error")
	}
}
