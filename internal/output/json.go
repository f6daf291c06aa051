package output

import (
	"github.com/mbelotti-dev/orariodoc/internal/model"
)

// LessonOutput represents a lesson in JSON output.
type LessonOutput struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Class    string `json:"class,omitempty"`
	Day      int    `json:"day"`
	DayName  string `json:"day_name"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Duration int    `json:"duration_minutes"`
}

// NewLessonOutput creates a LessonOutput from a Lesson.
func NewLessonOutput(l *model.Lesson) *LessonOutput {
	return &LessonOutput{
		ID:       l.ID,
		Name:     l.Name,
		Class:    l.Class,
		Day:      l.Day,
		DayName:  model.WeekdayName(l.Day),
		Start:    l.Start,
		End:      l.EndTime(),
		Duration: l.Duration,
	}
}

// SaveResponse represents the add/edit command output in JSON.
type SaveResponse struct {
	Status string        `json:"status"`
	Lesson *LessonOutput `json:"lesson"`
}

// RemoveResponse represents the remove command output in JSON.
type RemoveResponse struct {
	Status string        `json:"status"`
	Lesson *LessonOutput `json:"lesson,omitempty"`
}

// WeekResponse represents the week command output in JSON.
type WeekResponse struct {
	Lessons    []*LessonOutput `json:"lessons"`
	TotalCount int             `json:"total_count"`
}

// NewWeekResponse creates a WeekResponse from lessons.
func NewWeekResponse(lessons []model.Lesson) *WeekResponse {
	outputs := make([]*LessonOutput, len(lessons))
	for i := range lessons {
		outputs[i] = NewLessonOutput(&lessons[i])
	}
	return &WeekResponse{Lessons: outputs, TotalCount: len(outputs)}
}

// SettingsResponse represents the settings command output in JSON.
type SettingsResponse struct {
	Settings model.Settings `json:"settings"`
}

// MigrateResponse represents the migrate command output in JSON.
type MigrateResponse struct {
	Status   string `json:"status"`
	Migrated bool   `json:"migrated"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status    string   `json:"status"`
	Error     string   `json:"error"`
	Details   []string `json:"details,omitempty"`
	Conflicts []string `json:"conflicts,omitempty"`
}
