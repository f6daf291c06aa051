package ical

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbelotti-dev/orariodoc/internal/model"
)

func TestWeekAnchor(t *testing.T) {
	// 2026-08-26 is a Wednesday; the week's Sunday is 2026-08-23.
	ref := time.Date(2026, 8, 26, 15, 30, 0, 0, time.UTC)
	anchor := WeekAnchor(ref)
	assert.Equal(t, time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC), anchor)
	assert.Equal(t, time.Sunday, anchor.Weekday())

	// A Sunday anchors to itself.
	sunday := time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, anchor, WeekAnchor(sunday))
}

func TestBuildCalendar(t *testing.T) {
	lessons := []model.Lesson{
		{ID: "a", Name: "Matematica", Class: "3A", Day: 1, Start: "08:00", Duration: 60},
		{ID: "b", Name: "Fisica", Day: 3, Start: "11:00", Duration: 90},
	}
	ref := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

	cal := BuildCalendar(lessons, ref)
	events := cal.Events()
	require.Len(t, events, 2)

	serialized := cal.Serialize()
	assert.Contains(t, serialized, "SUMMARY:Matematica")
	assert.Contains(t, serialized, "SUMMARY:Fisica")
	assert.Contains(t, serialized, "Class: 3A")
	// Monday lesson lands on 2026-08-24.
	assert.Contains(t, serialized, "20260824")
}

func TestBuildCalendarEmpty(t *testing.T) {
	cal := BuildCalendar(nil, time.Now())
	assert.Empty(t, cal.Events())
}
