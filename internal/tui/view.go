package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mbelotti-dev/orariodoc/internal/model"
	"github.com/mbelotti-dev/orariodoc/internal/schedule"
)

// dataMsg carries a freshly loaded document into the update loop.
type dataMsg struct {
	data *model.AppData
}

// errMsg carries a load failure into the update loop.
type errMsg struct {
	err error
}

// ViewerModel is the bubbletea model for the read-only week viewer.
type ViewerModel struct {
	service *schedule.Service

	data     *model.AppData
	order    [7]int
	winStart int
	winEnd   int
	selected int // index into order

	width  int
	height int
	err    error
}

// NewViewer creates the interactive week viewer.
func NewViewer(service *schedule.Service, opts GridOptions) *ViewerModel {
	winStart, winEnd := windowMinutes(opts.DayStart, opts.DayEnd)
	return &ViewerModel{
		service:  service,
		data:     model.NewAppData(),
		order:    opts.Order,
		winStart: winStart,
		winEnd:   winEnd,
	}
}

// Init implements tea.Model.
func (m *ViewerModel) Init() tea.Cmd {
	return m.refresh
}

// refresh loads the document off the event loop. It only returns the
// result as a message; the model itself changes in Update.
func (m *ViewerModel) refresh() tea.Msg {
	data, err := m.service.Get()
	if err != nil {
		return errMsg{err: err}
	}
	return dataMsg{data: data}
}

// Update implements tea.Model.
func (m *ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case errMsg:
		m.err = msg.err
	case dataMsg:
		m.data = msg.data
		m.err = nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.selected = (m.selected + 6) % 7
		case "right", "l", "tab":
			m.selected = (m.selected + 1) % 7
		case "r":
			return m, m.refresh
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *ViewerModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("error: %v\n(press q to quit, r to retry)\n", m.err)
	}

	colWidth := minDayColumnWidth
	if m.width > 0 {
		if w := m.width/7 - 4; w > colWidth {
			colWidth = w
		}
	}

	today := int(time.Now().Weekday())
	var columns []string
	for i, day := range m.order {
		columns = append(columns, renderDay(dayCell{
			day:      day,
			lessons:  m.data.LessonsOnDay(day),
			width:    colWidth,
			color:    true,
			selected: i == m.selected,
			today:    day == today,
			winStart: m.winStart,
			winEnd:   m.winEnd,
		}))
	}
	grid := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	detail := m.renderSelected()
	help := StyleHelp.Render("←/→ select day · r refresh · q quit")

	return strings.Join([]string{grid, detail, help}, "\n")
}

// renderSelected lists the selected day's lessons with ids, so the user
// can copy one into `orariodoc edit` or `orariodoc remove`.
func (m *ViewerModel) renderSelected() string {
	day := m.order[m.selected]
	lessons := m.data.LessonsOnDay(day)
	if len(lessons) == 0 {
		return StyleEmptyDay.Render(fmt.Sprintf("%s: no lessons", model.WeekdayName(day)))
	}

	var b strings.Builder
	b.WriteString(StyleDayHeader.Render(model.WeekdayName(day)))
	for i := range lessons {
		l := &lessons[i]
		b.WriteString(fmt.Sprintf("\n%s %s-%s  %s",
			StyleLessonTime.Render(l.ID),
			l.Start, l.EndTime(),
			StyleLessonName.Render(l.Label())))
	}
	return b.String()
}
