package handlers

import (
	"net/http"

	"github.com/fitnova/central/internal/domain"
)

type ExerciseHandler struct {
	store domain.ExerciseStore
}

func NewExerciseHandler(store domain.ExerciseStore) *ExerciseHandler {
	return &ExerciseHandler{store: store}
}

func (h *ExerciseHandler) List(w http.ResponseWriter, r *http.Request) {
	exercises, err := h.store.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list exercises")
		return
	}
	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"exercises": exercises})
}
