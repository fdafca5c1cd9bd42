// Package handler implements the HTTP handlers for the Exercise Tracker API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (user.go, exercise.go, health.go) but all share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"exercise-tracker/internal/domain"
)

// UserServicer defines the business operations the user handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type UserServicer interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

// ExerciseServicer defines the business operations the exercise handlers
// depend on.
type ExerciseServicer interface {
	Create(ctx context.Context, exercise domain.Exercise) (domain.LoggedExercise, error)
	Log(ctx context.Context, userID uuid.UUID, q domain.LogQuery) (domain.ExerciseLog, error)
}

// Server holds the handler dependencies for all API endpoints.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	users     UserServicer
	exercises ExerciseServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(users UserServicer, exercises ExerciseServicer) *Server {
	return &Server{users: users, exercises: exercises}
}

// Routes returns the chi router with every API endpoint registered.
// Mount it at "/" in main.go and in handler tests so both exercise the same
// routing table.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/api/users", func(r chi.Router) {
		r.Get("/", s.ListUsers)
		r.Post("/", s.CreateUser)
		r.Post("/{id}/exercises", s.CreateExercise)
		r.Get("/{id}/logs", s.GetUserLogs)
	})

	return r
}
