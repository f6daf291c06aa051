package model

import (
	"fmt"

	"github.com/mbelotti-dev/orariodoc/internal/timeutil"
)

// Lesson represents a single scheduled timetable entry.
type Lesson struct {
	// ID is an opaque unique identifier, assigned at creation and immutable.
	ID string `json:"id"`
	// Name is the subject/lesson title.
	Name string `json:"name"`
	// Class is an optional free-text class/group label.
	Class string `json:"class,omitempty"`
	// Day is the weekday index, 0 = Sunday .. 6 = Saturday.
	Day int `json:"day"`
	// Start is the wall-clock start time in strict HH:MM form.
	Start string `json:"start"`
	// Duration is the lesson length in minutes, 1..480.
	Duration int `json:"duration"`
}

// StartMinutes returns the start time as minutes since midnight.
// The lesson must already be validated.
func (l *Lesson) StartMinutes() int {
	return timeutil.ToMinutes(l.Start)
}

// EndMinutes returns the exclusive end of the lesson interval in minutes
// since midnight.
func (l *Lesson) EndMinutes() int {
	return l.StartMinutes() + l.Duration
}

// EndTime returns the end of the lesson formatted as HH:MM. Lessons running
// past midnight wrap, matching the minute arithmetic used for conflicts.
func (l *Lesson) EndTime() string {
	end := l.EndMinutes() % (24 * 60)
	return fmt.Sprintf("%02d:%02d", end/60, end%60)
}

// Label returns a short human-readable description used in conflict and
// list output.
func (l *Lesson) Label() string {
	if l.Class != "" {
		return fmt.Sprintf("%s (%s)", l.Name, l.Class)
	}
	return l.Name
}
