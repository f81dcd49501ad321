package report

import "time"

// WorkReport is one employee's report for one calendar date. At most one row
// exists per (user_id, report_date); the repository enforces this by reading
// before writing, not with a uniqueness constraint.
type WorkReport struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	UserID     int64     `json:"user_id" gorm:"column:user_id;not null"`
	ReportDate string    `json:"report_date" gorm:"column:report_date;not null"`
	Content    string    `json:"content" gorm:"column:report_content;not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:created_at"`
}

func (WorkReport) TableName() string {
	return "work_reports"
}

// Row is a report as surfaced to the dashboard: the username column is only
// populated for unscoped (all-employees) queries.
type Row struct {
	Username   string `json:"username,omitempty"`
	ReportDate string `json:"report_date"`
	Content    string `json:"content"`
}

// Filter scopes a report query. A nil UserID means all users, which only the
// admin view may request.
type Filter struct {
	UserID    *int64
	Predicate DatePredicate
}
