package domain

import "time"

// DefaultCategory is the sentinel category assigned when a task is created
// without one.
const DefaultCategory = "uncategorized"

type Task struct {
	ID        int64
	UserID    int64 // Foreign key to users table
	Title     string
	Category  string
	Completed bool
	CreatedAt time.Time
}

// TaskChanges describes a partial update. A nil field means "leave the column
// alone"; a non-nil field overwrites it, including with the empty string.
type TaskChanges struct {
	Title     *string
	Category  *string
	Completed *bool
}

// IsZero reports whether no field is set.
func (c TaskChanges) IsZero() bool {
	return c.Title == nil && c.Category == nil && c.Completed == nil
}
