package task

import (
	"log/slog"
	"time"

	"github.com/employee-management/internal"
)

// Repository defines the data access methods for tasks.
type Repository interface {
	Create(assigneeID int64, description, dueDate string) (*Task, error)
	GetByID(id int64) (*Task, error)
	// ListFor returns one employee's tasks, pending first then by due date.
	ListFor(userID int64) ([]Row, error)
	// ListAll returns every employee's tasks with usernames, same order.
	ListAll() ([]Row, error)
	// Complete marks the task completed. Completing an already-completed
	// task is a no-op; there is no way back to pending.
	Complete(id int64) error
}

// Service handles task assignment and completion.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Create assigns a new pending task. Due dates before today are rejected here
// so the repository never sees one.
func (s *Service) Create(dto CreateTaskDTO) (*Task, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("task validation failed", "error", err)
		return nil, err
	}

	if dto.DueDate < s.now().Format(DateLayout) {
		return nil, ValidationError{Msg: "due_date must not be in the past"}
	}

	created, err := s.repo.Create(dto.AssigneeID, dto.Description, dto.DueDate)
	if err != nil {
		s.logger.Error("failed to create task", "error", err, "assignee_id", dto.AssigneeID)
		return nil, err
	}

	s.logger.Info("task created", "task_id", created.ID, "assignee_id", created.UserID, "due_date", created.DueDate)
	return created, nil
}

// ListOwn returns the acting employee's tasks.
func (s *Service) ListOwn(userID int64) ([]Row, error) {
	rows, err := s.repo.ListFor(userID)
	if err != nil {
		s.logger.Error("failed to list tasks", "error", err, "user_id", userID)
		return nil, err
	}
	if rows == nil {
		rows = []Row{}
	}
	return rows, nil
}

// ListAll returns every employee's tasks for the admin view.
func (s *Service) ListAll() ([]Row, error) {
	rows, err := s.repo.ListAll()
	if err != nil {
		s.logger.Error("failed to list all tasks", "error", err)
		return nil, err
	}
	if rows == nil {
		rows = []Row{}
	}
	return rows, nil
}

// Complete marks one of the acting employee's own tasks completed. The
// ownership check lives here; the repository update itself is unconditional
// and idempotent.
func (s *Service) Complete(taskID, actingUserID int64) error {
	t, err := s.repo.GetByID(taskID)
	if err != nil {
		s.logger.Error("failed to load task", "error", err, "task_id", taskID)
		return err
	}

	if t.UserID != actingUserID {
		s.logger.Warn("task completion denied", "task_id", taskID, "user_id", actingUserID, "assignee_id", t.UserID)
		return internal.ErrUnauthorizedAccess
	}

	if err := s.repo.Complete(taskID); err != nil {
		s.logger.Error("failed to complete task", "error", err, "task_id", taskID)
		return err
	}

	s.logger.Info("task completed", "task_id", taskID, "user_id", actingUserID)
	return nil
}
