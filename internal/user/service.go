package user

import (
	"log/slog"

	"github.com/employee-management/internal"
	"github.com/employee-management/internal/auth"
)

// Repository defines the data access methods for accounts.
type Repository interface {
	Create(u *User) error
	GetByID(id int64) (*User, error)
	ListByRole(role string) ([]User, error)
	// DeleteCascade removes the user together with every report and task
	// referencing it, in one transaction.
	DeleteCascade(id int64) error
}

// Service handles employee account management.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateEmployee provisions an employee account. The password is digested
// before it reaches storage; a taken username surfaces as a conflict.
func (s *Service) CreateEmployee(dto CreateEmployeeDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("employee validation failed", "error", err)
		return nil, err
	}

	u := &User{
		Username:     dto.Username,
		PasswordHash: auth.HashPassword(dto.Password),
		Role:         RoleEmployee,
	}

	if err := s.repo.Create(u); err != nil {
		s.logger.Error("failed to create employee", "error", err, "username", dto.Username)
		return nil, err
	}

	s.logger.Info("employee created", "user_id", u.ID, "username", u.Username)
	return u, nil
}

// ListEmployees returns every employee account for the admin view.
func (s *Service) ListEmployees() ([]User, error) {
	users, err := s.repo.ListByRole(RoleEmployee)
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, err
	}
	if users == nil {
		users = []User{}
	}
	return users, nil
}

// RemoveEmployee deletes the account and everything referencing it. Only
// employee accounts are removable; the admin account stays.
func (s *Service) RemoveEmployee(id int64) error {
	u, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to load user", "error", err, "user_id", id)
		return err
	}

	if u.Role != RoleEmployee {
		s.logger.Warn("refused to remove non-employee account", "user_id", id, "role", u.Role)
		return internal.NewForbiddenError("only employee accounts can be removed", internal.ErrCodeUnauthorizedAccess)
	}

	if err := s.repo.DeleteCascade(id); err != nil {
		s.logger.Error("failed to remove employee", "error", err, "user_id", id)
		return err
	}

	s.logger.Info("employee removed", "user_id", id, "username", u.Username)
	return nil
}
