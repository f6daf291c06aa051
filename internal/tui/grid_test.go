package tui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"

	"github.com/mbelotti-dev/orariodoc/internal/model"
)

func testOpts() GridOptions {
	return GridOptions{
		Order:    [7]int{1, 2, 3, 4, 5, 6, 0},
		DayStart: "08:00",
		DayEnd:   "18:00",
		Width:    120,
	}
}

func TestRenderWeekShowsLessons(t *testing.T) {
	data := model.NewAppData()
	data.Lessons = append(data.Lessons,
		model.Lesson{ID: "a", Name: "Matematica", Class: "3A", Day: 1, Start: "08:00", Duration: 60},
		model.Lesson{ID: "b", Name: "Fisica", Day: 3, Start: "11:00", Duration: 60},
	)

	out := RenderWeek(data, testOpts())
	assert.Contains(t, out, "Monday")
	assert.Contains(t, out, "Matematica")
	assert.Contains(t, out, "Fisica")
	assert.Contains(t, out, "08:00-09:00")
	assert.Contains(t, out, "11:00-12:00")
}

func TestRenderWeekEmpty(t *testing.T) {
	out := RenderWeek(model.NewAppData(), testOpts())
	assert.Contains(t, out, "(free)")
}

func TestRenderWeekHideEmpty(t *testing.T) {
	opts := testOpts()
	opts.HideEmpty = true

	out := RenderWeek(model.NewAppData(), opts)
	assert.Contains(t, out, "No lessons scheduled")
}

func TestRenderDaySortsByStart(t *testing.T) {
	data := model.NewAppData()
	data.Lessons = append(data.Lessons,
		model.Lesson{ID: "late", Name: "Arte", Day: 1, Start: "11:00", Duration: 60},
		model.Lesson{ID: "early", Name: "Storia", Day: 1, Start: "08:00", Duration: 60},
	)

	out := RenderDay(data, 1, testOpts())
	storia := strings.Index(out, "Storia")
	arte := strings.Index(out, "Arte")
	assert.True(t, storia >= 0 && arte >= 0)
	assert.Less(t, storia, arte)
}

func TestRenderDayFlagsOutsideHours(t *testing.T) {
	data := model.NewAppData()
	data.Lessons = append(data.Lessons,
		model.Lesson{ID: "a", Name: "Recupero", Day: 1, Start: "19:00", Duration: 60},
	)

	out := RenderDay(data, 1, testOpts())
	assert.Contains(t, out, "19:00-20:00 !")
}

func TestWindowMinutes(t *testing.T) {
	lo, hi := windowMinutes("08:00", "18:00")
	assert.Equal(t, 480, lo)
	assert.Equal(t, 1080, hi)

	// Malformed bounds fall back to the whole day.
	lo, hi = windowMinutes("", "not-a-time")
	assert.Equal(t, 0, lo)
	assert.Equal(t, 24*60, hi)
}

func TestTruncateMultibyte(t *testing.T) {
	got := truncate("Français avancé", 8)
	assert.True(t, utf8.ValidString(got))
	assert.LessOrEqual(t, runewidth.StringWidth(got), 8)
	assert.True(t, strings.HasSuffix(got, "…"))

	// Fits by display width even though it is longer in bytes.
	assert.Equal(t, "Français", truncate("Français", 10))
}

func TestCenterPlainMultibyte(t *testing.T) {
	assert.Equal(t, "  Français", centerPlain("Français", 12))
}
