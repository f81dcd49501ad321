package task

import "time"

// Task status values. A task is born pending and can only ever move to
// completed; there is no reverse transition.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Task is a unit of work an admin assigned to one employee.
type Task struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	UserID      int64     `json:"user_id" gorm:"column:user_id;not null"`
	Description string    `json:"description" gorm:"column:task_description;not null"`
	DueDate     string    `json:"due_date" gorm:"column:due_date;not null"`
	Status      string    `json:"status" gorm:"column:status;not null;default:pending"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Task) TableName() string {
	return "tasks"
}

// Row is a task as surfaced to the dashboard: the username column is only
// populated for the admin (all-employees) listing.
type Row struct {
	ID          int64  `json:"id"`
	Username    string `json:"username,omitempty"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Status      string `json:"status"`
}
