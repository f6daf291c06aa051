// Package validate provides input validation for candidate lessons.
//
// Field checks are independent of each other and of existing data; the
// Lesson helper accumulates every applicable message instead of stopping at
// the first failure, so callers can report all problems at once.
package validate

import (
	"errors"
	"regexp"
	"strings"
)

const (
	// MinDuration is the shortest allowed lesson, in minutes.
	MinDuration = 1
	// MaxDuration is the longest allowed lesson, in minutes (8 hours).
	MaxDuration = 480
)

// startRegex matches strict 24-hour HH:MM with leading zeros required.
var startRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// Validation messages, one per field rule.
const (
	MsgNameRequired    = "lesson name is required"
	MsgDayOutOfRange   = "day must be between 0 (Sunday) and 6 (Saturday)"
	MsgStartInvalid    = "start time must be in HH:MM format"
	MsgDurationInvalid = "duration must be between 1 and 480 minutes"
)

// Name validates the lesson name. Whitespace-only names are rejected.
func Name(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New(MsgNameRequired)
	}
	return nil
}

// Day validates the weekday index.
func Day(day int) error {
	if day < 0 || day > 6 {
		return errors.New(MsgDayOutOfRange)
	}
	return nil
}

// StartTime validates the start time string against strict HH:MM.
func StartTime(start string) error {
	if !startRegex.MatchString(start) {
		return errors.New(MsgStartInvalid)
	}
	return nil
}

// Duration validates the lesson length in minutes.
func Duration(minutes int) error {
	if minutes < MinDuration || minutes > MaxDuration {
		return errors.New(MsgDurationInvalid)
	}
	return nil
}

// Lesson validates all candidate fields and returns the accumulated error
// messages, in the fixed order name, day, start, duration. An empty slice
// means the candidate is valid. Lesson never panics and never consults
// existing data; overlap checking is the conflict detector's job.
func Lesson(name string, day int, start string, duration int) []string {
	var msgs []string
	for _, err := range []error{
		Name(name),
		Day(day),
		StartTime(start),
		Duration(duration),
	} {
		if err != nil {
			msgs = append(msgs, err.Error())
		}
	}
	return msgs
}
