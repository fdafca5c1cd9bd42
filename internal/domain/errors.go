package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing username, duration over 180 minutes).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrDuplicate is returned when creating a resource that already exists
// (username taken, or the same exercise logged twice for a user).
// Handlers should map this to HTTP 409 Conflict.
var ErrDuplicate = errors.New("already exists")

// ErrEmptyLog is returned by the log query path when the user exists but no
// exercises match the resolved bounds. Distinct from ErrNotFound so callers
// can tell "wrong id" from "no data yet".
// Handlers should map this to HTTP 404.
var ErrEmptyLog = errors.New("no exercises logged")
