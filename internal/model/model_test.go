package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppDataMarshalsEmptyCollections(t *testing.T) {
	raw, err := json.Marshal(NewAppData())
	require.NoError(t, err)
	assert.JSONEq(t, `{"lessons":[],"settings":{}}`, string(raw))
}

func TestNormalize(t *testing.T) {
	data := &AppData{}
	data.Normalize()
	assert.NotNil(t, data.Lessons)
	assert.NotNil(t, data.Settings)
	assert.Empty(t, data.Lessons)
}

func TestAppDataRoundTrip(t *testing.T) {
	doc := `{"lessons":[{"id":"x","name":"Storia","day":1,"start":"11:00","duration":60}],"settings":{"theme":"dark"}}`
	data := &AppData{}
	require.NoError(t, json.Unmarshal([]byte(doc), data))

	require.Len(t, data.Lessons, 1)
	l := data.Lessons[0]
	assert.Equal(t, "x", l.ID)
	assert.Equal(t, "Storia", l.Name)
	assert.Equal(t, 1, l.Day)
	assert.Equal(t, "11:00", l.Start)
	assert.Equal(t, 60, l.Duration)
	assert.Equal(t, "dark", data.Settings["theme"])
}

func TestFindLesson(t *testing.T) {
	data := &AppData{Lessons: []Lesson{
		{ID: "a", Name: "Matematica"},
		{ID: "b", Name: "Storia"},
	}}

	assert.Equal(t, 0, data.FindLesson("a"))
	assert.Equal(t, 1, data.FindLesson("b"))
	assert.Equal(t, -1, data.FindLesson("missing"))
}

func TestLessonsOnDay(t *testing.T) {
	data := &AppData{Lessons: []Lesson{
		{ID: "a", Day: 1},
		{ID: "b", Day: 2},
		{ID: "c", Day: 1},
	}}

	monday := data.LessonsOnDay(1)
	require.Len(t, monday, 2)
	// Insertion order is preserved.
	assert.Equal(t, "a", monday[0].ID)
	assert.Equal(t, "c", monday[1].ID)
	assert.Empty(t, data.LessonsOnDay(5))
}

func TestLessonTimes(t *testing.T) {
	l := Lesson{Start: "08:30", Duration: 90}
	assert.Equal(t, 510, l.StartMinutes())
	assert.Equal(t, 600, l.EndMinutes())
	assert.Equal(t, "10:00", l.EndTime())
}

func TestLessonLabel(t *testing.T) {
	assert.Equal(t, "Matematica", (&Lesson{Name: "Matematica"}).Label())
	assert.Equal(t, "Matematica (3A)", (&Lesson{Name: "Matematica", Class: "3A"}).Label())
}

func TestWeekdayName(t *testing.T) {
	assert.Equal(t, "Sunday", WeekdayName(0))
	assert.Equal(t, "Saturday", WeekdayName(6))
	assert.Equal(t, "?", WeekdayName(-1))
	assert.Equal(t, "?", WeekdayName(7))
}

func TestLessonJSONOmitsEmptyClass(t *testing.T) {
	raw, err := json.Marshal(Lesson{ID: "x", Name: "Storia", Day: 1, Start: "11:00", Duration: 60})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "class")
}
