package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbelotti-dev/orariodoc/internal/model"
)

func TestFormatterJSON(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter()
	f.Writer = &buf
	f.Format = FormatJSON

	require.NoError(t, f.JSON(map[string]string{"status": "ok"}))
	assert.JSONEq(t, `{"status":"ok"}`, buf.String())
}

func TestColorModeNever(t *testing.T) {
	f := NewFormatter()
	f.Writer = &bytes.Buffer{}
	f.ColorMode = ColorNever
	assert.False(t, f.IsColorEnabled())

	f.ColorMode = ColorAlways
	assert.True(t, f.IsColorEnabled())

	// Auto on a non-file writer is no color.
	f.ColorMode = ColorAuto
	assert.False(t, f.IsColorEnabled())
}

func TestNewLessonOutput(t *testing.T) {
	l := &model.Lesson{ID: "a", Name: "Matematica", Class: "3A", Day: 1, Start: "08:00", Duration: 90}
	out := NewLessonOutput(l)

	assert.Equal(t, "Monday", out.DayName)
	assert.Equal(t, "09:30", out.End)
	assert.Equal(t, 90, out.Duration)
}

func TestWeekResponseJSONShape(t *testing.T) {
	lessons := []model.Lesson{
		{ID: "a", Name: "Matematica", Day: 1, Start: "08:00", Duration: 60},
	}
	raw, err := json.Marshal(NewWeekResponse(lessons))
	require.NoError(t, err)

	assert.Contains(t, string(raw), `"total_count":1`)
	assert.Contains(t, string(raw), `"day_name":"Monday"`)
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    string
	}{
		{"under_hour", 45, "45m"},
		{"exact_hour", 60, "1h"},
		{"exact_hours", 120, "2h"},
		{"mixed", 90, "1h 30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMinutes(tt.minutes))
		})
	}
}

func TestCLIFormatterNoColorPlainText(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter()
	f.Writer = &buf
	f.ColorMode = ColorNever

	cli := NewCLIFormatter(f)
	cli.Success("saved %d", 3)
	assert.Equal(t, "saved 3\n", buf.String())
}

func TestLessonListGroupsByDay(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter()
	f.Writer = &buf
	f.ColorMode = ColorNever
	cli := NewCLIFormatter(f)

	data := model.NewAppData()
	data.Lessons = append(data.Lessons,
		model.Lesson{ID: "a", Name: "Matematica", Day: 1, Start: "08:00", Duration: 60},
		model.Lesson{ID: "b", Name: "Fisica", Day: 3, Start: "11:00", Duration: 60},
	)

	cli.LessonList(data, [7]int{1, 2, 3, 4, 5, 6, 0})
	out := buf.String()
	assert.Contains(t, out, "Monday")
	assert.Contains(t, out, "Wednesday")
	assert.Contains(t, out, "Matematica")
	assert.Contains(t, out, "Fisica")
}
