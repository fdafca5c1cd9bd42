package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/repo"
)

// ExerciseService implements business logic for exercise operations.
// It holds both the user and exercise repos because every operation starts by
// verifying the target user exists.
type ExerciseService struct {
	users     repo.UserRepo
	exercises repo.ExerciseRepo
}

// NewExerciseService constructs an ExerciseService backed by the provided repos.
func NewExerciseService(users repo.UserRepo, exercises repo.ExerciseRepo) *ExerciseService {
	return &ExerciseService{users: users, exercises: exercises}
}

// Create validates the exercise, verifies the user exists, rejects an exact
// duplicate, then persists. An unset date defaults to the moment of creation.
// Returns domain.ErrNotFound if the user does not exist.
// Returns domain.ErrValidation if input violates business rules.
// Returns domain.ErrDuplicate if the user already logged the same exercise.
func (s *ExerciseService) Create(ctx context.Context, exercise domain.Exercise) (domain.LoggedExercise, error) {
	user, err := s.users.GetByID(ctx, exercise.UserID)
	if err != nil {
		return domain.LoggedExercise{}, fmt.Errorf("service.ExerciseService.Create: %w", err)
	}

	if err := checkStruct(exercise); err != nil {
		return domain.LoggedExercise{}, err
	}

	if exercise.Date.IsZero() {
		exercise.Date = time.Now()
	}

	exists, err := s.exercises.Exists(ctx, exercise.UserID, exercise.Description, exercise.Duration, exercise.Date)
	if err != nil {
		return domain.LoggedExercise{}, fmt.Errorf("service.ExerciseService.Create: %w", err)
	}
	if exists {
		return domain.LoggedExercise{}, fmt.Errorf("service.ExerciseService.Create: exercise already exists: %w", domain.ErrDuplicate)
	}

	created, err := s.exercises.Create(ctx, exercise)
	if err != nil {
		return domain.LoggedExercise{}, fmt.Errorf("service.ExerciseService.Create: %w", err)
	}
	return domain.LoggedExercise{User: user, Exercise: created}, nil
}

// Log fetches the user's exercise log bounded by q.
// The user lookup runs first so an unknown id fails with domain.ErrNotFound
// before any exercise query is attempted. An existing user with no entries in
// range fails with domain.ErrEmptyLog instead. Entries come back from the
// repo sorted by date descending and keep that order.
func (s *ExerciseService) Log(ctx context.Context, userID uuid.UUID, q domain.LogQuery) (domain.ExerciseLog, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.ExerciseLog{}, fmt.Errorf("service.ExerciseService.Log: %w", err)
	}

	exercises, err := s.exercises.ListByUser(ctx, userID, q)
	if err != nil {
		return domain.ExerciseLog{}, fmt.Errorf("service.ExerciseService.Log: %w", err)
	}
	if len(exercises) == 0 {
		return domain.ExerciseLog{}, fmt.Errorf("service.ExerciseService.Log: %w", domain.ErrEmptyLog)
	}

	entries := make([]domain.LogEntry, len(exercises))
	for i, e := range exercises {
		entries[i] = domain.LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        e.DisplayDate(),
		}
	}

	return domain.ExerciseLog{
		UserID:   user.ID,
		Username: user.Username,
		Count:    len(entries),
		Entries:  entries,
		Query:    q,
	}, nil
}
