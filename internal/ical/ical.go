// Package ical converts the weekly timetable into an iCalendar document.
//
// Lessons are placed as plain events in one concrete reference week; no
// recurrence rules are emitted.
package ical

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/mbelotti-dev/orariodoc/internal/model"
	"github.com/mbelotti-dev/orariodoc/internal/timeutil"
)

const productID = "-//orariodoc//timetable//EN"

// WeekAnchor returns the date of Sunday (day index 0) in the week
// containing ref, at midnight local time.
func WeekAnchor(ref time.Time) time.Time {
	midnight := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// BuildCalendar renders the lessons as events within the week containing
// ref. Each lesson becomes one VEVENT on its weekday at its wall-clock
// start, lasting its duration.
func BuildCalendar(lessons []model.Lesson, ref time.Time) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)

	anchor := WeekAnchor(ref)
	for i := range lessons {
		l := &lessons[i]
		startMin := timeutil.ToMinutes(l.Start)
		start := anchor.AddDate(0, 0, l.Day).Add(time.Duration(startMin) * time.Minute)
		end := start.Add(time.Duration(l.Duration) * time.Minute)

		event := cal.AddEvent(fmt.Sprintf("%s@orariodoc", l.ID))
		event.SetDtStampTime(ref)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(l.Name)
		if l.Class != "" {
			event.SetDescription("Class: " + l.Class)
		}
	}

	return cal
}
