package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"exercise-tracker/internal/domain"
)

// ExerciseRepo defines the persistence operations for Exercises.
type ExerciseRepo interface {
	// Create inserts a new exercise and returns the persisted record (with
	// DB-generated id and created_at populated).
	Create(ctx context.Context, exercise domain.Exercise) (domain.Exercise, error)

	// Exists reports whether the user already logged an identical exercise
	// (same description, duration, and date).
	Exists(ctx context.Context, userID uuid.UUID, description string, duration int, date time.Time) (bool, error)

	// ListByUser returns the user's exercises whose date falls in the
	// inclusive range [q.From, q.To], sorted by date descending, capped at
	// q.Limit rows (domain.UnboundedLimit returns all).
	ListByUser(ctx context.Context, userID uuid.UUID, q domain.LogQuery) ([]domain.Exercise, error)
}

// pgExerciseRepo is the Postgres implementation of ExerciseRepo.
type pgExerciseRepo struct {
	db db
}

// NewExerciseRepo constructs an ExerciseRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewExerciseRepo(db db) ExerciseRepo {
	return &pgExerciseRepo{db: db}
}

// Create inserts a new exercise row and returns the full persisted record.
func (r *pgExerciseRepo) Create(ctx context.Context, exercise domain.Exercise) (domain.Exercise, error) {
	const q = `
		INSERT INTO exercises (user_id, description, duration, date)
		VALUES (@user_id, @description, @duration, @date)
		RETURNING id, user_id, description, duration, date, created_at`

	args := pgx.NamedArgs{
		"user_id":     exercise.UserID,
		"description": exercise.Description,
		"duration":    exercise.Duration,
		"date":        exercise.Date,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanExercise(row)
	if err != nil {
		return domain.Exercise{}, fmt.Errorf("repo.ExerciseRepo.Create: %w", err)
	}
	return result, nil
}

// Exists checks for an identical exercise already logged by the user.
func (r *pgExerciseRepo) Exists(ctx context.Context, userID uuid.UUID, description string, duration int, date time.Time) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM exercises
			WHERE user_id = @user_id
			  AND description = @description
			  AND duration = @duration
			  AND date = @date
		)`

	args := pgx.NamedArgs{
		"user_id":     userID,
		"description": description,
		"duration":    duration,
		"date":        date,
	}

	var exists bool
	if err := r.db.QueryRow(ctx, q, args).Scan(&exists); err != nil {
		return false, fmt.Errorf("repo.ExerciseRepo.Exists: %w", err)
	}
	return exists, nil
}

// ListByUser returns the user's exercises in [q.From, q.To], newest first.
// NULLIF turns the zero sentinel limit into LIMIT NULL, i.e. no cap.
func (r *pgExerciseRepo) ListByUser(ctx context.Context, userID uuid.UUID, q domain.LogQuery) ([]domain.Exercise, error) {
	const query = `
		SELECT id, user_id, description, duration, date, created_at
		FROM exercises
		WHERE user_id = @user_id
		  AND date >= @from
		  AND date <= @to
		ORDER BY date DESC
		LIMIT NULLIF(@limit, 0)`

	args := pgx.NamedArgs{
		"user_id": userID,
		"from":    q.From,
		"to":      q.To,
		"limit":   q.Limit,
	}

	rows, err := r.db.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("repo.ExerciseRepo.ListByUser: %w", err)
	}
	defer rows.Close()

	var exercises []domain.Exercise
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ExerciseRepo.ListByUser: scan: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ExerciseRepo.ListByUser: rows: %w", err)
	}

	return exercises, nil
}

// scanExercise maps a single database row into a domain.Exercise.
// It handles the UUID and date conversions.
func scanExercise(s scanner) (domain.Exercise, error) {
	var (
		e      domain.Exercise
		id     pgtype.UUID
		userID pgtype.UUID
		date   pgtype.Date
	)

	err := s.Scan(&id, &userID, &e.Description, &e.Duration, &date, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Exercise{}, domain.ErrNotFound
		}
		return domain.Exercise{}, err
	}

	e.ID = uuid.UUID(id.Bytes)
	e.UserID = uuid.UUID(userID.Bytes)
	e.Date = date.Time
	return e, nil
}
