package tui

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/mbelotti-dev/orariodoc/internal/config"
	"github.com/mbelotti-dev/orariodoc/internal/model"
	"github.com/mbelotti-dev/orariodoc/internal/timeutil"
	"github.com/mbelotti-dev/orariodoc/internal/validate"
)

// minDayColumnWidth keeps cells readable on narrow terminals.
const minDayColumnWidth = 14

// GridOptions controls the weekly grid rendering.
type GridOptions struct {
	// Order is the weekday display order (config.WeekdayOrder).
	Order [7]int
	// DayStart/DayEnd are the configured school hours (HH:MM). Lessons
	// outside the window are still shown, but flagged.
	DayStart string
	DayEnd   string
	// Width is the target terminal width; 0 auto-detects.
	Width int
	// Color toggles styling.
	Color bool
	// HideEmpty skips days without lessons entirely.
	HideEmpty bool
}

// GridOptionsFromConfig derives rendering options from the app config.
func GridOptionsFromConfig(cfg *config.Config, color bool) GridOptions {
	return GridOptions{
		Order:    cfg.WeekdayOrder(),
		DayStart: cfg.DayStart,
		DayEnd:   cfg.DayEnd,
		Color:    color,
	}
}

// dayCell carries everything renderDay needs for one column.
type dayCell struct {
	day      int
	lessons  []model.Lesson
	width    int
	color    bool
	selected bool
	today    bool
	winStart int // minutes
	winEnd   int // minutes
}

// windowMinutes converts the configured HH:MM school hours into minutes,
// falling back to the whole day when a bound is unset or malformed.
func windowMinutes(start, end string) (int, int) {
	lo, hi := 0, 24*60
	if validate.StartTime(start) == nil {
		lo = timeutil.ToMinutes(start)
	}
	if validate.StartTime(end) == nil {
		if v := timeutil.ToMinutes(end); v > lo {
			hi = v
		}
	}
	return lo, hi
}

// RenderWeek renders the whole timetable as side-by-side day columns.
// Days that do not fit the terminal width wrap onto the next row.
func RenderWeek(data *model.AppData, opts GridOptions) string {
	width := opts.Width
	if width == 0 {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		} else {
			width = 80
		}
	}

	colWidth := minDayColumnWidth
	perRow := width / (colWidth + 4) // borders and padding
	if perRow < 1 {
		perRow = 1
	}

	today := int(time.Now().Weekday())
	winStart, winEnd := windowMinutes(opts.DayStart, opts.DayEnd)

	var columns []string
	for _, day := range opts.Order {
		lessons := data.LessonsOnDay(day)
		if opts.HideEmpty && len(lessons) == 0 {
			continue
		}
		columns = append(columns, renderDay(dayCell{
			day:      day,
			lessons:  lessons,
			width:    colWidth,
			color:    opts.Color,
			today:    day == today,
			winStart: winStart,
			winEnd:   winEnd,
		}))
	}
	if len(columns) == 0 {
		return "No lessons scheduled.\n"
	}

	var rows []string
	for start := 0; start < len(columns); start += perRow {
		end := start + perRow
		if end > len(columns) {
			end = len(columns)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, columns[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

// RenderDay renders a single day column, used by `week --day`.
func RenderDay(data *model.AppData, day int, opts GridOptions) string {
	winStart, winEnd := windowMinutes(opts.DayStart, opts.DayEnd)
	return renderDay(dayCell{
		day:      day,
		lessons:  data.LessonsOnDay(day),
		width:    minDayColumnWidth * 2,
		color:    opts.Color,
		today:    day == int(time.Now().Weekday()),
		winStart: winStart,
		winEnd:   winEnd,
	}) + "\n"
}

func renderDay(cell dayCell) string {
	sorted := make([]model.Lesson, len(cell.lessons))
	copy(sorted, cell.lessons)
	sort.SliceStable(sorted, func(i, j int) bool {
		return timeutil.ToMinutes(sorted[i].Start) < timeutil.ToMinutes(sorted[j].Start)
	})

	var b strings.Builder
	header := model.WeekdayName(cell.day)
	if cell.color {
		headerStyle := StyleDayHeader
		if cell.today {
			headerStyle = StyleDayToday
		}
		b.WriteString(headerStyle.Width(cell.width).Render(header))
	} else {
		b.WriteString(centerPlain(header, cell.width))
	}
	b.WriteString("\n")

	if len(sorted) == 0 {
		if cell.color {
			b.WriteString(StyleEmptyDay.Render("(free)"))
		} else {
			b.WriteString("(free)")
		}
	}
	for i := range sorted {
		l := &sorted[i]
		timeLine := fmt.Sprintf("%s-%s", l.Start, l.EndTime())
		outside := l.StartMinutes() < cell.winStart || l.EndMinutes() > cell.winEnd
		name := truncate(l.Label(), cell.width)
		if cell.color {
			timeStyle := StyleLessonTime
			if outside {
				timeStyle = StyleOutsideHours
			}
			b.WriteString(timeStyle.Render(timeLine))
			b.WriteString("\n")
			b.WriteString(StyleLessonName.Render(name))
		} else {
			if outside {
				timeLine += " !"
			}
			b.WriteString(timeLine + "\n" + name)
		}
		if i < len(sorted)-1 {
			b.WriteString("\n")
		}
	}

	box := StyleDayBox
	if cell.selected {
		box = StyleSelectedBox
	}
	return box.Width(cell.width + 2).Render(b.String())
}

func centerPlain(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	pad := (width - w) / 2
	return strings.Repeat(" ", pad) + s
}

func truncate(s string, width int) string {
	if width <= 1 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
