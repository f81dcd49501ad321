package report

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

// Mock ServiceAPI for handler tests
type mockReportService struct {
	allRows    []Row
	scopedRows []Row
	lastDTO    QueryDTO
}

func (m *mockReportService) Submit(userID int64, dto SubmitReportDTO) (*SubmitResult, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	return &SubmitResult{Created: true, Message: "report submitted successfully"}, nil
}

func (m *mockReportService) QueryAll(dto QueryDTO) ([]Row, error) {
	m.lastDTO = dto
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	if dto.UserID != nil {
		return m.scopedRows, nil
	}
	return m.allRows, nil
}

func (m *mockReportService) QueryOwn(userID int64, dto QueryDTO) ([]Row, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	return m.scopedRows, nil
}

var _ = ginkgo.Describe("ReportHandler", func() {
	var (
		handler *Handler
		mock    *mockReportService
	)

	ginkgo.BeforeEach(func() {
		mock = &mockReportService{
			allRows: []Row{
				{Username: "dina", ReportDate: "2024-03-15", Content: "friday"},
				{Username: "bagus", ReportDate: "2024-03-15", Content: "friday too"},
			},
			scopedRows: []Row{
				{ReportDate: "2024-03-15", Content: "friday"},
			},
		}
		handler = NewHandler(mock)
	})

	ginkgo.Describe("ExportAll", func() {
		ginkgo.It("should include the username column when the export spans all employees", func() {
			req := httptest.NewRequest(http.MethodGet, "/reports/export?period=daily", nil)
			rec := httptest.NewRecorder()

			handler.ExportAll(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(rec.Header().Get("Content-Type")).To(gomega.Equal("text/csv"))
			gomega.Expect(rec.Header().Get("Content-Disposition")).To(gomega.ContainSubstring("reports_daily.csv"))

			body := rec.Body.String()
			gomega.Expect(body).To(gomega.HavePrefix("username,report_date,content\n"))
			gomega.Expect(body).To(gomega.ContainSubstring("dina,2024-03-15,friday\n"))
		})

		ginkgo.It("should drop the username column when the export is scoped to one employee", func() {
			req := httptest.NewRequest(http.MethodGet, "/reports/export?period=daily&user_id=7", nil)
			rec := httptest.NewRecorder()

			handler.ExportAll(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))

			body := rec.Body.String()
			gomega.Expect(body).To(gomega.HavePrefix("report_date,content\n"))
			gomega.Expect(body).To(gomega.ContainSubstring("2024-03-15,friday\n"))
			// no leading empty cell from a username that was never queried
			gomega.Expect(body).ToNot(gomega.ContainSubstring(",2024-03-15,friday"))
		})
	})

	ginkgo.Describe("QueryAll", func() {
		ginkgo.It("should answer an unknown period with a typed 400", func() {
			req := httptest.NewRequest(http.MethodGet, "/reports?period=quarterly", nil)
			rec := httptest.NewRecorder()

			handler.QueryAll(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusBadRequest))

			var resp struct {
				Error struct {
					Type string `json:"type"`
					Code string `json:"code"`
				} `json:"error"`
			}
			gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(gomega.Succeed())
			gomega.Expect(resp.Error.Type).To(gomega.Equal("VALIDATION_ERROR"))
			gomega.Expect(resp.Error.Code).To(gomega.Equal("INVALID_PERIOD"))
		})
	})
})
