package handlers

import (
	"errors"
	"net/http"

	"github.com/fitnova/central/internal/domain"
	"github.com/fitnova/central/internal/service"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type createUserResponse struct {
	*domain.User
	APIKey string `json:"api_key"`
}

// Create is the unauthenticated bootstrap endpoint. The API key is only
// ever returned here.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user := &domain.User{Name: req.Name, Email: req.Email}
	apiKey, err := h.svc.Create(r.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserEmailMissing):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrUserConflict):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to create user")
		}
		return
	}

	writeJSON(w, http.StatusCreated, createUserResponse{User: user, APIKey: apiKey})
}
