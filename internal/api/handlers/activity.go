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

type ActivityHandler struct {
	svc *service.ActivityService
}

func NewActivityHandler(svc *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

type logWorkoutRequest struct {
	WorkoutName     string         `json:"workout_name"`
	DurationMinutes int            `json:"duration_minutes"`
	Details         map[string]any `json:"details,omitempty"`
}

func (h *ActivityHandler) LogWorkout(w http.ResponseWriter, r *http.Request) {
	user := currentUser(w, r)
	if user == nil {
		return
	}

	var req logWorkoutRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.DurationMinutes < 0 {
		writeError(w, http.StatusBadRequest, "duration_minutes must not be negative")
		return
	}

	log := &domain.WorkoutLog{
		UserID:          user.ID,
		WorkoutName:     req.WorkoutName,
		DurationMinutes: req.DurationMinutes,
		Details:         req.Details,
	}
	if err := h.svc.LogWorkout(r.Context(), log); err != nil {
		if errors.Is(err, service.ErrWorkoutNameMissing) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to log workout")
		return
	}

	writeJSON(w, http.StatusCreated, log)
}

type logNutritionRequest struct {
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

func (h *ActivityHandler) LogNutrition(w http.ResponseWriter, r *http.Request) {
	user := currentUser(w, r)
	if user == nil {
		return
	}

	var req logNutritionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	m, err := h.svc.LogNutrition(r.Context(), user.ID, req.Description, req.Metadata)
	if err != nil {
		if errors.Is(err, service.ErrNutritionEmpty) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to log nutrition")
		return
	}

	writeJSON(w, http.StatusCreated, m)
}

type createReminderRequest struct {
	Title       string    `json:"title"`
	Kind        string    `json:"kind,omitempty"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

func (h *ActivityHandler) CreateReminder(w http.ResponseWriter, r *http.Request) {
	user := currentUser(w, r)
	if user == nil {
		return
	}

	var req createReminderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	reminder := &domain.Reminder{
		UserID:      user.ID,
		Title:       req.Title,
		Kind:        req.Kind,
		ScheduledAt: req.ScheduledAt,
	}
	if err := h.svc.CreateReminder(r.Context(), reminder); err != nil {
		switch {
		case errors.Is(err, service.ErrReminderTitleMissing),
			errors.Is(err, service.ErrReminderTimeMissing):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to create reminder")
		}
		return
	}

	writeJSON(w, http.StatusCreated, reminder)
}

type acknowledgeReminderRequest struct {
	Acknowledged *bool `json:"acknowledged"`
}

func (h *ActivityHandler) AcknowledgeReminder(w http.ResponseWriter, r *http.Request) {
	user := currentUser(w, r)
	if user == nil {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid reminder id")
		return
	}

	var req acknowledgeReminderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Acknowledged == nil {
		writeError(w, http.StatusBadRequest, "acknowledged is required")
		return
	}

	log, err := h.svc.AcknowledgeReminder(r.Context(), id, user.ID, *req.Acknowledged)
	if err != nil {
		if errors.Is(err, service.ErrReminderNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to record reminder response")
		return
	}

	writeJSON(w, http.StatusCreated, log)
}
