package domain

import "time"

// Task is owned by exactly one user. The owner reference is set once at
// creation, to the authenticated creator, and never changes afterwards
// (a username rename updates the denormalized Owner field in bulk).
type Task struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	CreatedOn   time.Time `json:"date_of_creation"`
	DueDate     time.Time `json:"due_date,omitempty"`
	Completed   bool      `json:"completed"`
	Owner       string    `json:"user"`
	OwnerID     int64     `json:"-"`
}

// CompletedLabel renders the completion flag in the API's historical
// string form.
func (t *Task) CompletedLabel() string {
	if t.Completed {
		return "Completed"
	}
	return "Not completed"
}
