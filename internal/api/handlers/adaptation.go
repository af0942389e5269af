package handlers

import (
	"net/http"

	"github.com/fitnova/central/internal/domain"
	"github.com/fitnova/central/internal/service"
	"go.uber.org/zap"
)

type AdaptationHandler struct {
	svc    *service.AdaptationService
	logger *zap.Logger
}

func NewAdaptationHandler(svc *service.AdaptationService, logger *zap.Logger) *AdaptationHandler {
	return &AdaptationHandler{svc: svc, logger: logger}
}

type applyAdaptationsRequest struct {
	Decisions []domain.Decision `json:"decisions,omitempty"`
	Confirm   bool              `json:"confirm"`
}

// Preview returns the diffs today's tasks would receive.
func (h *AdaptationHandler) Preview(w http.ResponseWriter, r *http.Request) {
	user := currentUser(w, r)
	if user == nil {
		return
	}

	diffs, err := h.svc.Preview(r.Context(), user.ID, nil)
	if err != nil {
		h.logger.Error("adaptation preview failed", zap.String("user_id", user.ID.String()), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to plan adaptations")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"diffs": diffs})
}

// Apply persists today's adaptations. Extra decisions in the body are
// tried before the derived ones; confirm approves diffs that need it.
func (h *AdaptationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	user := currentUser(w, r)
	if user == nil {
		return
	}

	var req applyAdaptationsRequest
	if r.ContentLength != 0 {
		if !decodeJSON(w, r, &req) {
			return
		}
	}
	for _, d := range req.Decisions {
		if !domain.ValidAction(string(d.Action)) {
			writeError(w, http.StatusBadRequest, "invalid decision action: "+string(d.Action))
			return
		}
	}

	result, err := h.svc.Apply(r.Context(), user.ID, req.Decisions, req.Confirm)
	if err != nil {
		h.logger.Error("adaptation apply failed", zap.String("user_id", user.ID.String()), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to apply adaptations")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
