package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/fitnova/central/internal/domain"
	"github.com/fitnova/central/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type TaskHandler struct {
	svc *service.TaskService
}

func NewTaskHandler(svc *service.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

type createTaskRequest struct {
	TaskType       string         `json:"task_type"`
	Status         string         `json:"status,omitempty"`
	ScheduledFor   string         `json:"scheduled_for"`
	PlannedPayload map[string]any `json:"planned_payload"`
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := currentUser(w, r)
	if user == nil {
		return
	}

	var req createTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	day, err := time.Parse(dateLayout, req.ScheduledFor)
	if err != nil {
		writeError(w, http.StatusBadRequest, "scheduled_for must be YYYY-MM-DD")
		return
	}

	task := &domain.Task{
		UserID:         user.ID,
		TaskType:       domain.TaskType(req.TaskType),
		Status:         domain.TaskStatus(req.Status),
		ScheduledFor:   day,
		PlannedPayload: req.PlannedPayload,
	}
	if err := h.svc.Create(r.Context(), task); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTaskType),
			errors.Is(err, service.ErrInvalidTaskStatus),
			errors.Is(err, service.ErrTaskDateMissing):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to create task")
		}
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

// List returns the tasks for ?date=YYYY-MM-DD, or today.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	user := currentUser(w, r)
	if user == nil {
		return
	}

	var day time.Time
	if s := r.URL.Query().Get("date"); s != "" {
		var err error
		day, err = time.Parse(dateLayout, s)
		if err != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
	}

	tasks, err := h.svc.ListForDay(r.Context(), user.ID, day)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list tasks")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"tasks": tasks})
}

type updateTaskStatusRequest struct {
	Status string `json:"status"`
}

func (h *TaskHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	user := currentUser(w, r)
	if user == nil {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var req updateTaskStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	task, err := h.svc.UpdateStatus(r.Context(), id, user.ID, domain.TaskStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTaskStatus):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrTaskNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to update task")
		}
		return
	}

	writeJSON(w, http.StatusOK, task)
}
