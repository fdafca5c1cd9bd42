package domain

import "github.com/google/uuid"

// LogEntry is one exercise in a rendered log, with the date already formatted
// as display text.
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// ExerciseLog is the assembled result of a log query: the owning user, the
// matched entries in date-descending order, and the query whose flags decide
// which bounds the response echoes back.
type ExerciseLog struct {
	UserID   uuid.UUID
	Username string
	Count    int
	Entries  []LogEntry
	Query    LogQuery
}
