package user

import "time"

// Account roles. The seeded admin is the only admin account; every account
// created through the dashboard is an employee.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// User is an account row. The password digest never leaves the server.
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"column:username;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	Role         string    `json:"role" gorm:"column:role;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
}

func (User) TableName() string {
	return "users"
}
