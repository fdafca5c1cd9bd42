// Package domain contains the core data types for the Exercise Tracker API.
// It depends only on uuid and the dates catalog and is imported by every
// other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that exercises are logged against.
// Users are created once and never modified through this API.
type User struct {
	ID        uuid.UUID `json:"_id"`
	Username  string    `json:"username" validate:"required,max=25"`
	CreatedAt time.Time `json:"-"`
}
