package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"exercise-tracker/internal/domain"
)

// userResponse is the public shape of a user.
type userResponse struct {
	ID       uuid.UUID `json:"_id"`
	Username string    `json:"username"`
}

// CreateUser handles POST /api/users.
func (s *Server) CreateUser(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	created, err := s.users.Create(r.Context(), domain.User{Username: body.Username})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			respondError(w, http.StatusConflict, "duplicate", "user already exists")
		case errors.Is(err, domain.ErrValidation):
			respondError(w, http.StatusUnprocessableEntity, "validation_error", validationMessage(err))
		default:
			respondInternal(w, err)
		}
		return
	}

	respondJSON(w, http.StatusCreated, userResponse{ID: created.ID, Username: created.Username})
}

// ListUsers handles GET /api/users.
func (s *Server) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "no users exist")
			return
		}
		respondInternal(w, err)
		return
	}

	resp := make([]userResponse, len(users))
	for i, u := range users {
		resp[i] = userResponse{ID: u.ID, Username: u.Username}
	}
	respondJSON(w, http.StatusOK, resp)
}
