package report

import (
	"log/slog"
	"time"
)

// Repository defines the data access methods for work reports.
type Repository interface {
	// Upsert replaces the content of the existing (userID, date) report or
	// inserts a new one. The returned flag is true when a row was created.
	Upsert(userID int64, date, content string) (created bool, err error)
	Query(filter Filter) ([]Row, error)
}

// Service handles report submission and filtered reads.
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

// Submit upserts the acting employee's report for the given date. Validation
// runs before any storage call; storage errors propagate untouched.
func (s *Service) Submit(userID int64, dto SubmitReportDTO) (*SubmitResult, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("report validation failed", "error", err, "user_id", userID)
		return nil, err
	}

	date := dto.ReportDate
	if date == "" {
		date = s.now().Format(DateLayout)
	}

	created, err := s.repo.Upsert(userID, date, dto.Content)
	if err != nil {
		s.logger.Error("failed to upsert report", "error", err, "user_id", userID, "date", date)
		return nil, err
	}

	message := "report updated successfully"
	if created {
		message = "report submitted successfully"
	}

	s.logger.Info("report upserted", "user_id", userID, "date", date, "created", created)

	return &SubmitResult{Created: created, Message: message}, nil
}

// QueryAll runs an admin-scoped query: a nil user id in the DTO means every
// employee, and rows then carry usernames.
func (s *Service) QueryAll(dto QueryDTO) ([]Row, error) {
	return s.query(dto, dto.UserID)
}

// QueryOwn runs an employee-scoped query, ignoring any user id in the DTO so
// an employee can never read another employee's reports.
func (s *Service) QueryOwn(userID int64, dto QueryDTO) ([]Row, error) {
	return s.query(dto, &userID)
}

func (s *Service) query(dto QueryDTO, scope *int64) ([]Row, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("report query validation failed", "error", err)
		return nil, err
	}

	kind, _ := ParsePeriodKind(dto.Period)

	anchor := s.now()
	if dto.AnchorDate != "" {
		anchor, _ = time.Parse(DateLayout, dto.AnchorDate)
	}
	if kind == PeriodWeekly {
		anchor = WeekStart(anchor)
	}

	rows, err := s.repo.Query(Filter{
		UserID:    scope,
		Predicate: ResolvePeriod(kind, anchor),
	})
	if err != nil {
		s.logger.Error("report query failed", "error", err, "period", dto.Period)
		return nil, err
	}

	// empty is a valid result, not an error
	if rows == nil {
		rows = []Row{}
	}
	return rows, nil
}
