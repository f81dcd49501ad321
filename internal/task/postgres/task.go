package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/employee-management/internal"
	"github.com/employee-management/internal/task"
)

// TaskRepository implements task.Repository using GORM
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) task.Repository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(assigneeID int64, description, dueDate string) (*task.Task, error) {
	t := &task.Task{
		UserID:      assigneeID,
		Description: description,
		DueDate:     dueDate,
		Status:      task.StatusPending,
		CreatedAt:   time.Now(),
	}
	if err := r.db.Create(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

func (r *TaskRepository) GetByID(id int64) (*task.Task, error) {
	var t task.Task
	err := r.db.First(&t, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}

// ListFor returns one employee's tasks, pending before completed and then by
// due date, so the most urgent open work sorts to the top.
func (r *TaskRepository) ListFor(userID int64) ([]task.Row, error) {
	rows, err := r.db.Raw(`SELECT id, task_description, due_date, status
		FROM tasks
		WHERE user_id = ?
		ORDER BY CASE WHEN status = 'pending' THEN 0 ELSE 1 END, due_date ASC`, userID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []task.Row
	for rows.Next() {
		var rec task.Row
		if err := rows.Scan(&rec.ID, &rec.Description, &rec.DueDate, &rec.Status); err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}

// ListAll joins usernames for the admin view, same ordering as ListFor.
func (r *TaskRepository) ListAll() ([]task.Row, error) {
	rows, err := r.db.Raw(`SELECT t.id, u.username, t.task_description, t.due_date, t.status
		FROM tasks t
		JOIN users u ON t.user_id = u.id
		ORDER BY CASE WHEN t.status = 'pending' THEN 0 ELSE 1 END, t.due_date ASC`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []task.Row
	for rows.Next() {
		var rec task.Row
		if err := rows.Scan(&rec.ID, &rec.Username, &rec.Description, &rec.DueDate, &rec.Status); err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}

// Complete is an unconditional status update: running it against an already
// completed task changes nothing, and no statement here or anywhere else
// moves a task back to pending.
func (r *TaskRepository) Complete(id int64) error {
	return r.db.Exec(`UPDATE tasks SET status = ? WHERE id = ?`, task.StatusCompleted, id).Error
}
