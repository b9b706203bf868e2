package lifedata

// Priority follows the P1 (urgent) to P4 (someday) convention.
type Priority string

const (
	PriorityP1 Priority = "P1"
	PriorityP2 Priority = "P2"
	PriorityP3 Priority = "P3"
	PriorityP4 Priority = "P4"
)

type TaskCategory string

const (
	TaskCategoryInbox        TaskCategory = "Inbox"
	TaskCategoryProfessional TaskCategory = "Professional"
	TaskCategoryFinancial    TaskCategory = "Financial"
	TaskCategoryWellness     TaskCategory = "Wellness"
	TaskCategoryRelationship TaskCategory = "Relationship"
	TaskCategoryPersonal     TaskCategory = "Personal"
	TaskCategoryVision       TaskCategory = "Vision"
)

type Task struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Completed    bool         `json:"completed"`
	Category     TaskCategory `json:"category"`
	Priority     Priority     `json:"priority"`
	IsTodayFocus bool         `json:"isTodayFocus"`
	DueDate      string       `json:"dueDate,omitempty"`
	ProjectID    string       `json:"projectId,omitempty"`
}

// TaskPatch carries a partial update; nil fields are left untouched.
type TaskPatch struct {
	Title        *string       `json:"title"`
	Completed    *bool         `json:"completed"`
	Category     *TaskCategory `json:"category"`
	Priority     *Priority     `json:"priority"`
	IsTodayFocus *bool         `json:"isTodayFocus"`
	DueDate      *string       `json:"dueDate"`
	ProjectID    *string       `json:"projectId"`
}

func (t Task) applyPatch(patch TaskPatch) Task {
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	if patch.Category != nil {
		t.Category = *patch.Category
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.IsTodayFocus != nil {
		t.IsTodayFocus = *patch.IsTodayFocus
	}
	if patch.DueDate != nil {
		t.DueDate = *patch.DueDate
	}
	if patch.ProjectID != nil {
		t.ProjectID = *patch.ProjectID
	}
	return t
}
