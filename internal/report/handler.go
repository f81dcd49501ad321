package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/employee-management/internal/auth"
	"github.com/employee-management/internal/transport"
	"github.com/employee-management/pkg/logger"
)

type ServiceAPI interface {
	Submit(userID int64, dto SubmitReportDTO) (*SubmitResult, error)
	QueryAll(dto QueryDTO) ([]Row, error)
	QueryOwn(userID int64, dto QueryDTO) ([]Row, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

// Submit handles PUT /reports: the employee's daily report upsert.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto SubmitReportDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Submit: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.Service.Submit(user.ID, dto)
	if err != nil {
		h.Logger.Error("Submit: service error", "error", err, "user_id", user.ID)
		if v, ok := err.(ValidationError); ok {
			h.HandleServiceError(w, v.appError())
			return
		}
		h.HandleServiceError(w, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	h.WriteJSON(w, status, result)
}

// QueryAll handles GET /reports: the admin view across employees.
func (h *Handler) QueryAll(w http.ResponseWriter, r *http.Request) {
	dto := queryDTOFromRequest(r)

	rows, err := h.Service.QueryAll(dto)
	if err != nil {
		h.Logger.Error("QueryAll: service error", "error", err)
		if v, ok := err.(ValidationError); ok {
			h.HandleServiceError(w, v.appError())
			return
		}
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"reports": rows})
}

// QueryOwn handles GET /reports/mine.
func (h *Handler) QueryOwn(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	dto := queryDTOFromRequest(r)

	rows, err := h.Service.QueryOwn(user.ID, dto)
	if err != nil {
		h.Logger.Error("QueryOwn: service error", "error", err, "user_id", user.ID)
		if v, ok := err.(ValidationError); ok {
			h.HandleServiceError(w, v.appError())
			return
		}
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"reports": rows})
}

// ExportAll handles GET /reports/export: the admin result set as CSV.
func (h *Handler) ExportAll(w http.ResponseWriter, r *http.Request) {
	dto := queryDTOFromRequest(r)

	rows, err := h.Service.QueryAll(dto)
	if err != nil {
		h.Logger.Error("ExportAll: service error", "error", err)
		if v, ok := err.(ValidationError); ok {
			h.HandleServiceError(w, v.appError())
			return
		}
		h.HandleServiceError(w, err)
		return
	}

	// the username column only exists when the query spans all employees
	h.writeCSV(w, fmt.Sprintf("reports_%s.csv", dto.Period), rows, dto.UserID == nil)
}

// ExportOwn handles GET /reports/mine/export.
func (h *Handler) ExportOwn(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	dto := queryDTOFromRequest(r)

	rows, err := h.Service.QueryOwn(user.ID, dto)
	if err != nil {
		h.Logger.Error("ExportOwn: service error", "error", err, "user_id", user.ID)
		if v, ok := err.(ValidationError); ok {
			h.HandleServiceError(w, v.appError())
			return
		}
		h.HandleServiceError(w, err)
		return
	}

	h.writeCSV(w, fmt.Sprintf("my_reports_%s.csv", dto.Period), rows, false)
}

// writeCSV serializes the filtered rows as a downloadable CSV attachment, a
// stateless transform of the query result.
func (h *Handler) writeCSV(w http.ResponseWriter, filename string, rows []Row, withUsername bool) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"report_date", "content"}
	if withUsername {
		header = []string{"username", "report_date", "content"}
	}
	if err := cw.Write(header); err != nil {
		h.Logger.Error("csv export failed", "error", err)
		return
	}

	for _, row := range rows {
		record := []string{row.ReportDate, row.Content}
		if withUsername {
			record = []string{row.Username, row.ReportDate, row.Content}
		}
		if err := cw.Write(record); err != nil {
			h.Logger.Error("csv export failed", "error", err)
			return
		}
	}
}

func queryDTOFromRequest(r *http.Request) QueryDTO {
	q := r.URL.Query()

	dto := QueryDTO{
		Period:     q.Get("period"),
		AnchorDate: q.Get("anchor_date"),
	}
	if dto.Period == "" {
		dto.Period = string(PeriodDaily)
	}

	if idStr := q.Get("user_id"); idStr != "" {
		if id, err := strconv.ParseInt(idStr, 10, 64); err == nil {
			dto.UserID = &id
		}
	}

	return dto
}

