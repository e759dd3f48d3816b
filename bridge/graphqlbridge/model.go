package graphqlbridge

// Task is the API representation of a task. Timestamps are RFC3339 strings;
// the stored state column surfaces as status.
type Task struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	DueAt       *string `json:"dueAt"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
	ClosedAt    *string `json:"closedAt"`
}

// Label is the API representation of a label.
type Label struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Color     *string `json:"color"`
	CreatedAt string  `json:"createdAt"`
}

// Comment is the API representation of a comment.
type Comment struct {
	ID        int64  `json:"id"`
	TaskID    string `json:"taskId"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

// CreateTaskInput carries the createTask mutation input.
type CreateTaskInput struct {
	Title       string
	Description *string
	Status      *string
	DueAt       *string
	ParentID    *string
}

// UpdateTaskInput carries the updateTask mutation input. The engine drops
// null input values before resolution, so clearing is expressed through the
// Clear flags: clearDescription and clearDueAt erase the stored value,
// clearParent detaches the task from the hierarchy.
type UpdateTaskInput struct {
	Title            *string
	Description      *string
	ClearDescription bool
	Status           *string
	DueAt            *string
	ClearDueAt       bool
	ParentID         *string
	ClearParent      bool
}

// CreateLabelInput carries the createLabel mutation input.
type CreateLabelInput struct {
	Name  string
	Color *string
}

// UpdateLabelInput carries the updateLabel mutation input. ClearColor
// erases the stored color; see UpdateTaskInput for why a flag and not null.
type UpdateLabelInput struct {
	Name       *string
	Color      *string
	ClearColor bool
}
