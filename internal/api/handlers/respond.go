package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/fitnova/central/internal/api/middleware"
	"github.com/fitnova/central/internal/domain"
)

// maxBodyBytes caps request bodies; every payload here is small.
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// currentUser writes 401 and returns nil when the request is not
// authenticated.
func currentUser(w http.ResponseWriter, r *http.Request) *domain.User {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
	}
	return user
}
