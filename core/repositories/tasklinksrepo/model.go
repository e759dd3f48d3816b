package tasklinksrepo

// RelationSubtask is the parent/child edge of the task hierarchy. A task has
// at most one subtask parent.
const RelationSubtask = "subtask"

// TaskLink is a directed edge between two tasks.
type TaskLink struct {
	TaskLinkID int64  `db:"task_link_id" json:"task_link_id"`
	ParentID   string `db:"parent_id" json:"parent_id"`
	ChildID    string `db:"child_id" json:"child_id"`
	Relation   string `db:"relation" json:"relation"`
}
