package domain

import (
	"strconv"
	"time"

	"exercise-tracker/internal/dates"
)

// EpochStart is the sentinel lower bound substituted when the `from` filter
// is absent or invalid. It acts as "no lower bound" for range queries.
var EpochStart = time.Unix(0, 0).UTC()

// UnboundedLimit is the sentinel limit meaning "return all matching rows".
const UnboundedLimit = 0

// LogQuery carries resolved exercise-log query bounds from the HTTP layer to
// the repo layer. From and To always hold concrete dates even when the raw
// inputs were absent or invalid — sentinels substitute — so range filtering
// never has to handle a missing bound.
type LogQuery struct {
	From         time.Time
	FromSupplied bool
	FromValid    bool

	To         time.Time
	ToSupplied bool
	ToValid    bool

	Limit         int
	LimitSupplied bool
}

// NewLogQuery resolves raw `from`, `to` and `limit` query parameters into a
// complete LogQuery. Malformed date filters degrade to their sentinel bound
// rather than failing the request; invalidity is recorded in the flags, never
// surfaced as an error. "Now" is captured once per call so the upper bound
// and any later timestamp use cannot skew apart.
func NewLogQuery(fromText, toText, limitText string) LogQuery {
	now := time.Now()
	q := LogQuery{From: EpochStart, To: now, Limit: UnboundedLimit}

	if fromText != "" {
		q.FromSupplied = true
		if from, err := dates.Interpret(fromText); err == nil {
			q.FromValid = true
			q.From = from
		}
	}

	if toText != "" {
		q.ToSupplied = true
		if to, err := dates.Interpret(toText); err == nil {
			q.ToValid = true
			q.To = to
		}
	}

	if limitText != "" {
		if limit, err := strconv.Atoi(limitText); err == nil && limit >= 0 {
			q.LimitSupplied = true
			q.Limit = limit
		}
	}

	return q
}

// IncludeFrom reports whether the resolved lower bound should be echoed in
// the response payload: the filter must have been both supplied and valid.
func (q LogQuery) IncludeFrom() bool {
	return q.FromSupplied && q.FromValid
}

// IncludeTo reports whether the resolved upper bound should be echoed in the
// response payload.
func (q LogQuery) IncludeTo() bool {
	return q.ToSupplied && q.ToValid
}
