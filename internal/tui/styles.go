// Package tui provides the terminal rendering for the weekly timetable:
// the static lipgloss grid used by `orariodoc week` and the interactive
// bubbletea viewer behind `orariodoc view`.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette.
var (
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple
	ColorAccent  = lipgloss.Color("#3B82F6") // Blue
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorBorder  = lipgloss.Color("#4B5563") // Dark gray
	ColorWarning = lipgloss.Color("#F59E0B") // Yellow
	ColorLesson  = lipgloss.Color("#10B981") // Green
)

// Base styles.
var (
	// StyleDayHeader is used for weekday column headings.
	StyleDayHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Align(lipgloss.Center)

	// StyleDayToday highlights the current weekday heading.
	StyleDayToday = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			Align(lipgloss.Center)

	// StyleLessonName is used for lesson titles inside cells.
	StyleLessonName = lipgloss.NewStyle().
			Foreground(ColorLesson)

	// StyleLessonTime is used for the time range line of a cell.
	StyleLessonTime = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleOutsideHours flags time ranges outside the configured
	// school hours.
	StyleOutsideHours = lipgloss.NewStyle().
				Foreground(ColorWarning)

	// StyleEmptyDay is used for days without lessons.
	StyleEmptyDay = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	// StyleDayBox frames one day column.
	StyleDayBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	// StyleSelectedBox frames the selected day in the interactive viewer.
	StyleSelectedBox = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorAccent).
				Padding(0, 1)

	// StyleHelp is used for the key help line.
	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)
)
