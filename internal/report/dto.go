package report

import (
	"time"

	"github.com/employee-management/internal"
)

// ValidationError marks input rejected before any storage call is attempted.
// The code tells API clients which field failed without parsing the message.
type ValidationError struct {
	Msg  string
	Code internal.ErrorCode
}

func (v ValidationError) Error() string { return v.Msg }

func (v ValidationError) appError() *internal.AppError {
	code := v.Code
	if code == "" {
		code = internal.ErrCodeValidationFailed
	}
	return internal.NewValidationError(v.Msg, code)
}

// SubmitReportDTO is the payload for the daily report upsert. An empty date
// means today; the UI shell date picker defaults the same way.
type SubmitReportDTO struct {
	ReportDate string `json:"report_date"`
	Content    string `json:"content"`
}

func (dto SubmitReportDTO) Validate() error {
	if dto.Content == "" {
		return ValidationError{Msg: "report content is required", Code: internal.ErrCodeEmptyContent}
	}
	if dto.ReportDate != "" {
		if _, err := time.Parse(DateLayout, dto.ReportDate); err != nil {
			return ValidationError{Msg: "report_date must be formatted as YYYY-MM-DD", Code: internal.ErrCodeInvalidDate}
		}
	}
	return nil
}

// QueryDTO carries the filter selection: period kind, optional anchor date
// (defaults to today at the transport boundary) and, for the admin view, an
// optional employee scope.
type QueryDTO struct {
	Period     string `json:"period"`
	AnchorDate string `json:"anchor_date"`
	UserID     *int64 `json:"user_id,omitempty"`
}

func (dto QueryDTO) Validate() error {
	if _, err := ParsePeriodKind(dto.Period); err != nil {
		return ValidationError{Msg: "period must be one of daily, weekly, monthly, yearly", Code: internal.ErrCodeInvalidPeriod}
	}
	if dto.AnchorDate != "" {
		if _, err := time.Parse(DateLayout, dto.AnchorDate); err != nil {
			return ValidationError{Msg: "anchor_date must be formatted as YYYY-MM-DD", Code: internal.ErrCodeInvalidDate}
		}
	}
	return nil
}

// SubmitResult tells the caller which upsert branch ran, for user-facing
// messaging ("submitted" vs "updated").
type SubmitResult struct {
	Created bool   `json:"created"`
	Message string `json:"message"`
}
