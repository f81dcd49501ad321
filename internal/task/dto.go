package task

import "time"

// DateLayout is the ISO calendar-date form due dates are stored in.
const DateLayout = "2006-01-02"

// ValidationError marks input rejected before any storage call is attempted.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

// CreateTaskDTO is the admin payload for assigning a task to an employee.
type CreateTaskDTO struct {
	AssigneeID  int64  `json:"assignee_id"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
}

func (dto CreateTaskDTO) Validate() error {
	if dto.AssigneeID <= 0 {
		return ValidationError{Msg: "assignee_id is required"}
	}
	if dto.Description == "" {
		return ValidationError{Msg: "task description is required"}
	}
	if dto.DueDate == "" {
		return ValidationError{Msg: "due_date is required"}
	}
	if _, err := time.Parse(DateLayout, dto.DueDate); err != nil {
		return ValidationError{Msg: "due_date must be formatted as YYYY-MM-DD"}
	}
	return nil
}
