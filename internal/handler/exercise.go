package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"exercise-tracker/internal/dates"
	"exercise-tracker/internal/domain"
)

// exerciseResponse is the public shape of a newly logged exercise. It echoes
// the owning user's id and username alongside the exercise fields.
type exerciseResponse struct {
	ID          uuid.UUID `json:"_id"`
	Username    string    `json:"username"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	Date        string    `json:"date"`
}

// logResponse is the public shape of a user's exercise log. From and To are
// pointers so they drop out of the payload entirely when the corresponding
// filter was not both supplied and valid.
type logResponse struct {
	ID       uuid.UUID         `json:"_id"`
	Username string            `json:"username"`
	From     *string           `json:"from,omitempty"`
	To       *string           `json:"to,omitempty"`
	Count    int               `json:"count"`
	Log      []domain.LogEntry `json:"log"`
}

// CreateExercise handles POST /api/users/{id}/exercises.
// An absent or empty date defaults to the moment of creation; a present but
// unparseable one is a validation error.
func (s *Server) CreateExercise(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "bad_request", "invalid user id")
		return
	}

	var body struct {
		Description string `json:"description"`
		Duration    int    `json:"duration"`
		Date        string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	exercise := domain.Exercise{
		UserID:      userID,
		Description: body.Description,
		Duration:    body.Duration,
	}
	if body.Date != "" {
		date, err := dates.Interpret(body.Date)
		if err != nil {
			respondError(w, http.StatusUnprocessableEntity, "validation_error", "date is not a recognized calendar date")
			return
		}
		exercise.Date = date
	}

	logged, err := s.exercises.Create(r.Context(), exercise)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			respondError(w, http.StatusNotFound, "not_found", fmt.Sprintf("no user with _id %s exists", userID))
		case errors.Is(err, domain.ErrDuplicate):
			respondError(w, http.StatusConflict, "duplicate", "exercise already exists")
		case errors.Is(err, domain.ErrValidation):
			respondError(w, http.StatusUnprocessableEntity, "validation_error", validationMessage(err))
		default:
			respondInternal(w, err)
		}
		return
	}

	respondJSON(w, http.StatusCreated, exerciseResponse{
		ID:          logged.User.ID,
		Username:    logged.User.Username,
		Description: logged.Exercise.Description,
		Duration:    logged.Exercise.Duration,
		Date:        logged.Exercise.DisplayDate(),
	})
}

// GetUserLogs handles GET /api/users/{id}/logs?from=&to=&limit=.
func (s *Server) GetUserLogs(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "bad_request", "invalid user id")
		return
	}

	params := r.URL.Query()
	q := domain.NewLogQuery(params.Get("from"), params.Get("to"), params.Get("limit"))

	log, err := s.exercises.Log(r.Context(), userID, q)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			respondError(w, http.StatusNotFound, "not_found", fmt.Sprintf("no user with _id %s exists", userID))
		case errors.Is(err, domain.ErrEmptyLog):
			respondError(w, http.StatusNotFound, "empty_log", "user has not added any exercises")
		default:
			respondInternal(w, err)
		}
		return
	}

	respondJSON(w, http.StatusOK, shapeLog(log))
}

// shapeLog assembles the log payload. The from/to keys are included
// independently of each other, each exactly when its filter was supplied and
// valid; the limit never changes the key set. Included bounds render the
// resolved date, not the raw query text.
func shapeLog(log domain.ExerciseLog) logResponse {
	resp := logResponse{
		ID:       log.UserID,
		Username: log.Username,
		Count:    log.Count,
		Log:      log.Entries,
	}
	if log.Query.IncludeFrom() {
		from := log.Query.From.Format(domain.DisplayDateLayout)
		resp.From = &from
	}
	if log.Query.IncludeTo() {
		to := log.Query.To.Format(domain.DisplayDateLayout)
		resp.To = &to
	}
	return resp
}
