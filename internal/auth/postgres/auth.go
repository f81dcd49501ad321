package postgres

import (
	"errors"

	"github.com/employee-management/internal/auth"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByCredentials matches username and password digest in one query, so the
// caller cannot tell an unknown username from a wrong password.
func (r *Repository) FindByCredentials(username, passwordDigest string) (*auth.User, error) {
	var user auth.User
	query := `SELECT id, username, role FROM users WHERE username = ? AND password_hash = ?`

	row := r.db.Raw(query, username, passwordDigest).Row()
	if err := row.Scan(&user.ID, &user.Username, &user.Role); err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func (r *Repository) GetByID(userID int64) (*auth.User, error) {
	var user auth.User
	query := `SELECT id, username, role FROM users WHERE id = ?`

	row := r.db.Raw(query, userID).Row()
	if err := row.Scan(&user.ID, &user.Username, &user.Role); err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}
