package domain

import (
	"time"

	"github.com/google/uuid"
)

// DisplayDateLayout renders a calendar date as weekday, month name,
// zero-padded day, and year, e.g. "Wed Jan 10 2024". All dates in API
// responses use this rendering.
const DisplayDateLayout = "Mon Jan 02 2006"

// Exercise is a single logged activity belonging to a user.
// Exercises are created once and never mutated; there is no delete path.
type Exercise struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Description string `validate:"required,max=150"`
	Duration    int    `validate:"required,min=1,max=180"` // minutes
	Date        time.Time
	CreatedAt   time.Time
}

// DisplayDate returns the exercise date in the human-readable layout used
// by all API responses.
func (e Exercise) DisplayDate() string {
	return e.Date.Format(DisplayDateLayout)
}

// LoggedExercise pairs a newly created exercise with its owning user so the
// handler can render the combined creation response.
type LoggedExercise struct {
	User     User
	Exercise Exercise
}
