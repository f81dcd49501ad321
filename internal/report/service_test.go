package report

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

// Mock repository for testing
type mockReportRepository struct {
	reports     map[string]string // "userID|date" -> content
	lastFilter  Filter
	upsertError error
	queryError  error
	queryRows   []Row
}

func newMockReportRepository() *mockReportRepository {
	return &mockReportRepository{
		reports: make(map[string]string),
	}
}

func (m *mockReportRepository) Upsert(userID int64, date, content string) (bool, error) {
	if m.upsertError != nil {
		return false, m.upsertError
	}
	mapKey := formatKey(userID, date)
	_, existed := m.reports[mapKey]
	m.reports[mapKey] = content
	return !existed, nil
}

func formatKey(userID int64, date string) string {
	return strconv.FormatInt(userID, 10) + "#" + date
}

func (m *mockReportRepository) Query(filter Filter) ([]Row, error) {
	m.lastFilter = filter
	if m.queryError != nil {
		return nil, m.queryError
	}
	return m.queryRows, nil
}

var _ = ginkgo.Describe("ReportService", func() {
	var (
		service  *Service
		mockRepo *mockReportRepository
		today    = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC) // a Friday
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockReportRepository()
		service = NewService(mockRepo, slog.New(slog.NewTextHandler(os.Stderr, nil)))
		service.now = func() time.Time { return today }
	})

	ginkgo.Describe("Submit", func() {
		ginkgo.It("should report created on the first submission", func() {
			result, err := service.Submit(1, SubmitReportDTO{ReportDate: "2024-03-15", Content: "wrote tests"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(result.Created).To(gomega.BeTrue())
			gomega.Expect(result.Message).To(gomega.ContainSubstring("submitted"))
		})

		ginkgo.It("should report updated on the second submission for the same date", func() {
			_, err := service.Submit(1, SubmitReportDTO{ReportDate: "2024-03-15", Content: "first"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			result, err := service.Submit(1, SubmitReportDTO{ReportDate: "2024-03-15", Content: "second"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(result.Created).To(gomega.BeFalse())
			gomega.Expect(result.Message).To(gomega.ContainSubstring("updated"))
		})

		ginkgo.It("should default the report date to today", func() {
			result, err := service.Submit(1, SubmitReportDTO{Content: "no date given"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(result.Created).To(gomega.BeTrue())

			gomega.Expect(mockRepo.reports).To(gomega.HaveKey(formatKey(1, "2024-03-15")))
		})

		ginkgo.It("should reject blank content before touching storage", func() {
			_, err := service.Submit(1, SubmitReportDTO{ReportDate: "2024-03-15"})
			gomega.Expect(err).To(gomega.BeAssignableToTypeOf(ValidationError{}))
			gomega.Expect(mockRepo.reports).To(gomega.BeEmpty())
		})

		ginkgo.It("should reject malformed dates before touching storage", func() {
			_, err := service.Submit(1, SubmitReportDTO{ReportDate: "15/03/2024", Content: "x"})
			gomega.Expect(err).To(gomega.BeAssignableToTypeOf(ValidationError{}))
		})

		ginkgo.It("should propagate storage errors untouched", func() {
			mockRepo.upsertError = errors.New("connection reset")
			_, err := service.Submit(1, SubmitReportDTO{ReportDate: "2024-03-15", Content: "x"})
			gomega.Expect(err).To(gomega.MatchError("connection reset"))
		})
	})

	ginkgo.Describe("QueryOwn", func() {
		ginkgo.It("should always scope to the acting user, ignoring any user_id in the DTO", func() {
			other := int64(42)
			_, err := service.QueryOwn(7, QueryDTO{Period: "daily", UserID: &other})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			gomega.Expect(mockRepo.lastFilter.UserID).ToNot(gomega.BeNil())
			gomega.Expect(*mockRepo.lastFilter.UserID).To(gomega.Equal(int64(7)))
		})

		ginkgo.It("should return an empty slice rather than nil when nothing matches", func() {
			rows, err := service.QueryOwn(7, QueryDTO{Period: "daily"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(rows).ToNot(gomega.BeNil())
			gomega.Expect(rows).To(gomega.BeEmpty())
		})
	})

	ginkgo.Describe("QueryAll", func() {
		ginkgo.It("should pass a nil scope through for the all-employees view", func() {
			_, err := service.QueryAll(QueryDTO{Period: "monthly"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(mockRepo.lastFilter.UserID).To(gomega.BeNil())
		})

		ginkgo.It("should default the anchor to today", func() {
			_, err := service.QueryAll(QueryDTO{Period: "daily"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(mockRepo.lastFilter.Predicate.Date).To(gomega.Equal("2024-03-15"))
		})

		ginkgo.It("should normalize weekly anchors to the Monday of the week", func() {
			_, err := service.QueryAll(QueryDTO{Period: "weekly", AnchorDate: "2024-03-15"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			gomega.Expect(mockRepo.lastFilter.Predicate.Kind).To(gomega.Equal(PredicateDateRange))
			gomega.Expect(mockRepo.lastFilter.Predicate.Start).To(gomega.Equal("2024-03-11"))
			gomega.Expect(mockRepo.lastFilter.Predicate.End).To(gomega.Equal("2024-03-17"))
		})

		ginkgo.It("should reject unknown period kinds", func() {
			_, err := service.QueryAll(QueryDTO{Period: "quarterly"})
			gomega.Expect(err).To(gomega.BeAssignableToTypeOf(ValidationError{}))
		})
	})
})
