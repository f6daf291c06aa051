package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/mbelotti-dev/orariodoc/internal/model"
)

// Styles for CLI output.
var (
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBold = lipgloss.NewStyle().
			Bold(true)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

// render applies a style only when color is enabled.
func (c *CLIFormatter) render(style lipgloss.Style, s string) string {
	if !c.IsColorEnabled() {
		return s
	}
	return style.Render(s)
}

// Title prints a section title.
func (c *CLIFormatter) Title(s string) {
	c.Println(c.render(styleTitle, s))
}

// Success prints a success message.
func (c *CLIFormatter) Success(format string, a ...interface{}) {
	c.Println(c.render(styleSuccess, fmt.Sprintf(format, a...)))
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(format string, a ...interface{}) {
	c.Println(c.render(styleWarning, fmt.Sprintf(format, a...)))
}

// Error prints an error message.
func (c *CLIFormatter) Error(format string, a ...interface{}) {
	c.Println(c.render(styleError, fmt.Sprintf(format, a...)))
}

// Muted prints de-emphasized text.
func (c *CLIFormatter) Muted(format string, a ...interface{}) {
	c.Println(c.render(styleMuted, fmt.Sprintf(format, a...)))
}

// Lesson prints a one-line lesson summary.
func (c *CLIFormatter) Lesson(l *model.Lesson) {
	line := fmt.Sprintf("%-9s %s-%s  %s",
		model.WeekdayName(l.Day), l.Start, l.EndTime(), c.render(styleBold, l.Label()))
	c.Println(line)
	c.Muted("  id: %s  duration: %s", l.ID, FormatMinutes(l.Duration))
}

// LessonList prints lessons grouped under day headings, in the given day
// order.
func (c *CLIFormatter) LessonList(data *model.AppData, dayOrder [7]int) {
	if len(data.Lessons) == 0 {
		c.Muted("No lessons scheduled.")
		return
	}
	for _, day := range dayOrder {
		lessons := data.LessonsOnDay(day)
		if len(lessons) == 0 {
			continue
		}
		c.Title(model.WeekdayName(day))
		for i := range lessons {
			c.Lesson(&lessons[i])
		}
	}
}
