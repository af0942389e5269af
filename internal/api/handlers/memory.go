package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fitnova/central/internal/service"
)

type MemoryHandler struct {
	svc *service.MemoryService
}

func NewMemoryHandler(svc *service.MemoryService) *MemoryHandler {
	return &MemoryHandler{svc: svc}
}

// Recall returns the caller's memories nearest to ?query, up to ?top_k.
func (h *MemoryHandler) Recall(w http.ResponseWriter, r *http.Request) {
	user := currentUser(w, r)
	if user == nil {
		return
	}

	query := r.URL.Query().Get("query")
	topK := 0
	if s := r.URL.Query().Get("top_k"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "top_k must be a positive integer")
			return
		}
		topK = n
	}

	memories, err := h.svc.Recall(r.Context(), user.ID, query, topK)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecallQueryEmpty):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrRecallUnavailable):
			writeError(w, http.StatusServiceUnavailable, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to recall memories")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"memories": memories})
}
