package task

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/employee-management/internal"
	"github.com/employee-management/internal/auth"
	"github.com/employee-management/internal/transport"
	"github.com/employee-management/pkg/logger"
)

type ServiceAPI interface {
	Create(dto CreateTaskDTO) (*Task, error)
	ListOwn(userID int64) ([]Row, error)
	ListAll() ([]Row, error)
	Complete(taskID, actingUserID int64) error
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

// Create handles POST /tasks: the admin assigns a task to an employee.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateTaskDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Create: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.Create(dto)
	if err != nil {
		h.Logger.Error("Create: service error", "error", err)
		if v, ok := err.(ValidationError); ok {
			h.HandleServiceError(w, internal.NewValidationError(v.Msg, internal.ErrCodeValidationFailed))
			return
		}
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, created)
}

// ListAll handles GET /tasks: every employee's tasks for the admin view.
func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.ListAll()
	if err != nil {
		h.Logger.Error("ListAll: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"tasks": rows})
}

// ListOwn handles GET /tasks/mine.
func (h *Handler) ListOwn(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	rows, err := h.Service.ListOwn(user.ID)
	if err != nil {
		h.Logger.Error("ListOwn: service error", "error", err, "user_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"tasks": rows})
}

// Complete handles PATCH /tasks/{id}/complete for the assigned employee.
func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	taskID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if err := h.Service.Complete(taskID, user.ID); err != nil {
		h.Logger.Error("Complete: service error", "error", err, "task_id", taskID, "user_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"message": "task completed"})
}
