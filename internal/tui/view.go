package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/nmoreras/ganttboard/internal/dateutil"
	"github.com/nmoreras/ganttboard/internal/feature"
	"github.com/nmoreras/ganttboard/internal/timeline"
)

// View renders the TUI.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Loading..."
	}

	if m.mode == ModeModal && m.modalType != ModalNone {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderModal())
	}

	var b strings.Builder
	b.WriteString(m.renderTitle())
	b.WriteByte('\n')
	b.WriteString(m.renderWeekHeader())
	b.WriteByte('\n')
	b.WriteString(m.renderDayHeader())
	b.WriteByte('\n')
	b.WriteString(m.renderRows())
	b.WriteString(m.renderFooter())
	return b.String()
}

// visibleRows returns how many row lines fit in the current viewport.
func (m Model) visibleRows() int {
	if m.height <= 0 {
		return len(m.rows)
	}
	v := m.height - headerHeight - footerHeight
	if v < 1 {
		v = 1
	}
	return v
}

func (m Model) renderTitle() string {
	name := m.project
	if m.readOnly {
		name = "shared snapshot (read-only)"
	}
	grouping := "by feature"
	if m.grouping == timeline.ByRole {
		grouping = "by role"
	}

	title := m.styles.TitleStyle.Render("ganttboard · "+name) +
		m.styles.TitleModeStyle.Render("  ["+grouping+"]")
	return ansi.Truncate(title, m.width, "…")
}

func (m Model) renderWeekHeader() string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", labelWidth))
	for _, c := range m.chunks {
		cell := fmt.Sprintf("W%02d", c.Week)
		b.WriteString(m.styles.WeekHeaderStyle.Render(padCell(cell, c.DayCount*m.geom.DayWidth)))
	}
	return ansi.Truncate(b.String(), m.width, "")
}

func (m Model) renderDayHeader() string {
	today := m.today()
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", labelWidth))
	for _, d := range m.dates {
		style := m.styles.DayHeaderStyle
		switch {
		case dateutil.SameDay(d, today):
			style = m.styles.DayTodayStyle
		case !dateutil.IsWorkingDay(d):
			style = m.styles.DayWeekendStyle
		}
		b.WriteString(style.Render(padCell(fmt.Sprintf("%d", d.Day()), m.geom.DayWidth)))
	}
	return ansi.Truncate(b.String(), m.width, "")
}

func (m Model) renderRows() string {
	if m.loading {
		return "Loading...\n"
	}
	if len(m.rows) == 0 {
		return m.styles.HelpStyle.Render("Empty board. Press n to add a feature, i to import.") + "\n"
	}

	visible := m.visibleRows()
	end := m.scroll + visible
	if end > len(m.rows) {
		end = len(m.rows)
	}

	var b strings.Builder
	for i := m.scroll; i < end; i++ {
		b.WriteString(ansi.Truncate(m.renderRow(i), m.width, ""))
		b.WriteByte('\n')
	}
	for i := end - m.scroll; i < visible; i++ {
		b.WriteByte('\n')
	}
	return b.String()
}

func (m Model) renderRow(i int) string {
	row := m.rows[i]
	label := m.renderLabel(row, i == m.cursor)
	if row.Kind == timeline.RowHeader {
		return label
	}
	return label + m.renderBar(row)
}

func (m Model) renderLabel(row timeline.Row, selected bool) string {
	var text string
	var style lipgloss.Style

	switch {
	case row.Kind == timeline.RowHeader && m.grouping == timeline.ByRole:
		text = fmt.Sprintf("%s (%s)", row.Label, row.SubLabel)
		style = m.styles.RoleHeaderStyle
	case row.Kind == timeline.RowHeader:
		text = "▸ " + row.Label
		style = m.styles.FeatureHeaderStyle
	default:
		text = "  " + row.Label
		if row.SubLabel != "" {
			text += " · " + row.SubLabel
		}
		style = m.styles.LeafLabelStyle
	}

	if m.grabbed(row) {
		style = m.styles.GrabbedStyle
	}
	if selected {
		style = style.Background(m.styles.colorBgSelection)
	}

	return style.Render(padCell(ansi.Truncate(text, labelWidth-1, "…"), labelWidth))
}

// grabbed reports whether the row is the one held by a reorder session.
func (m Model) grabbed(row timeline.Row) bool {
	if !m.reorder.Active() {
		return false
	}
	switch {
	case row.Kind == timeline.RowHeader:
		return row.FeatureID == m.reorder.DragID()
	default:
		return row.AssignmentID == m.reorder.DragID()
	}
}

func (m Model) renderBar(row timeline.Row) string {
	totalW := len(m.dates) * m.geom.DayWidth
	offset := m.geom.BarOffset(row.Start)
	width := m.geom.BarWidth(row.Start, row.End)

	if offset < 0 {
		width += offset
		offset = 0
	}
	if offset >= totalW || width <= 0 {
		return ""
	}
	if offset+width > totalW {
		width = totalW - offset
	}

	filled := width * row.Progress / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("▒", width-filled)

	color := row.Color
	if color == "" {
		color = feature.RoleColor(row.Label)
	}

	return strings.Repeat(" ", offset) + m.styles.BarStyle(color).Render(bar)
}

func (m Model) renderFooter() string {
	status := m.statusMsg
	style := m.styles.StatusStyle
	switch {
	case status == "":
		status = fmt.Sprintf("%d features · %d bars", len(m.features), timeline.LeafCount(m.rows))
		style = m.styles.HelpStyle
	case strings.HasPrefix(status, "Error"):
		style = m.styles.ErrorStyle
	}

	help := "q quit · g group · j/k move · h/l shift · J/K reorder · n/a new · d delete · i import · s share"
	if m.readOnly {
		help = "q quit · g group · j/k move · enter detail"
	}
	if m.mode == ModePrompt {
		return ansi.Truncate(style.Render(status), m.width, "…") + "\n" +
			ansi.Truncate("import> "+m.prompt.View(), m.width, "…")
	}

	return ansi.Truncate(style.Render(status), m.width, "…") + "\n" +
		ansi.Truncate(m.styles.HelpStyle.Render(help), m.width, "…")
}

// padCell pads or trims a cell's text to an exact width.
func padCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := lipgloss.Width(s)
	if w >= width {
		return ansi.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-w)
}
