package postgres

import (
	"database/sql"
	"errors"
	"time"

	"github.com/employee-management/internal/report"
	"gorm.io/gorm"
)

// ReportRepository implements report.Repository using GORM
type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) report.Repository {
	return &ReportRepository{db: db}
}

// Upsert keeps the one-report-per-day invariant by reading before writing:
// select the existing id for (user, date), update it if found, insert
// otherwise. Two concurrent upserts for the same pair race and the later
// commit wins; that is an accepted limitation, not a bug.
func (r *ReportRepository) Upsert(userID int64, date, content string) (bool, error) {
	var existingID int64
	row := r.db.Raw(`SELECT id FROM work_reports WHERE user_id = ? AND report_date = ?`, userID, date).Row()

	err := row.Scan(&existingID)
	switch {
	case err == nil:
		update := r.db.Exec(`UPDATE work_reports SET report_content = ? WHERE id = ?`, content, existingID)
		return false, update.Error
	case errors.Is(err, sql.ErrNoRows):
		insert := &report.WorkReport{
			UserID:     userID,
			ReportDate: date,
			Content:    content,
			CreatedAt:  time.Now(),
		}
		return true, r.db.Create(insert).Error
	default:
		return false, err
	}
}

// Query translates the date predicate into its SQL condition and returns rows
// newest-first. Unscoped queries join users so the admin view can show who
// wrote each report.
func (r *ReportRepository) Query(f report.Filter) ([]report.Row, error) {
	query, args := buildQuery(f)

	rows, err := r.db.Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []report.Row
	for rows.Next() {
		var rec report.Row
		if f.UserID != nil {
			if err := rows.Scan(&rec.ReportDate, &rec.Content); err != nil {
				return nil, err
			}
		} else {
			if err := rows.Scan(&rec.Username, &rec.ReportDate, &rec.Content); err != nil {
				return nil, err
			}
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}

func buildQuery(f report.Filter) (string, []interface{}) {
	var query string
	var args []interface{}

	if f.UserID != nil {
		query = `SELECT report_date, report_content FROM work_reports WHERE user_id = ?`
		args = append(args, *f.UserID)
	} else {
		query = `SELECT u.username, wr.report_date, wr.report_content
			FROM work_reports wr
			JOIN users u ON wr.user_id = u.id
			WHERE 1=1`
	}

	column := "report_date"
	if f.UserID == nil {
		column = "wr.report_date"
	}

	if f.Predicate.Kind == report.PredicateDateEquals {
		query += ` AND ` + column + ` = ?`
		args = append(args, f.Predicate.Date)
	} else {
		start, end := f.Predicate.Bounds()
		query += ` AND ` + column + ` BETWEEN ? AND ?`
		args = append(args, start, end)
	}

	query += ` ORDER BY ` + column + ` DESC`
	return query, args
}
