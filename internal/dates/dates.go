// Package dates interprets free-text calendar dates against a fixed catalog
// of accepted layouts. It is not a general date-parsing library: exactly the
// layouts below are supported and nothing else.
package dates

import (
	"errors"
	"time"
)

// ErrInvalidFormat is returned by Interpret when the text matches none of the
// cataloged layouts, or matches one structurally but is not a real calendar
// date under it (e.g. month 13).
var ErrInvalidFormat = errors.New("invalid date format")

// layouts is the fixed catalog of accepted date layouts. Both year-first and
// day-first orderings are accepted, with `-`, `/`, space, `.` and `,` as
// separators. The padded and unpadded variants are listed separately because
// the padded form only matches two-digit months and days.
var layouts = [...]string{
	"2006-1-2",
	"2006-01-02",
	"02-01-2006",
	"2-1-2006",
	"02/01/2006",
	"2/1/2006",
	"2006/01/02",
	"2006/1/2",
	"2006 01 02",
	"2006 1 2",
	"02 01 2006",
	"2 1 2006",
	"2006.01.02",
	"2006.1.2",
	"02.01.2006",
	"2.1.2006",
	"02,01,2006",
	"2,1,2006",
	"2006,01,02",
	"2006,1,2",
}

// Interpret parses text against the catalog, first structural match wins.
// On success the returned time is the matched calendar date at midnight UTC.
// Interpret is pure: same input, same result, no side effects.
//
// Empty input is the caller's concern — callers treat it as "not supplied"
// before reaching Interpret, which will report it as ErrInvalidFormat.
func Interpret(text string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidFormat
}
