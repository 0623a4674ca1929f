package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nmoreras/ganttboard/internal/drag"
	"github.com/nmoreras/ganttboard/internal/feature"
	"github.com/nmoreras/ganttboard/internal/timeline"
)

// handleMouseMsg handles pointer input on the timeline.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != ModeNormal {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if m.scroll > 0 {
			m.scroll--
		}
		return m, nil
	case tea.MouseButtonWheelDown:
		if m.scroll < len(m.rows)-m.visibleRows() {
			m.scroll++
		}
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			return m.mouseDown(msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		return m.mouseMove(msg.X)
	case tea.MouseActionRelease:
		return m.mouseUp(msg.X, msg.Y)
	}

	return m, nil
}

// rowIndexAt maps a terminal line to a row index, or -1 outside the list.
func (m Model) rowIndexAt(y int) int {
	idx := y - headerHeight + m.scroll
	if idx < 0 || idx >= len(m.rows) {
		return -1
	}
	return idx
}

func (m Model) mouseDown(x, y int) (tea.Model, tea.Cmd) {
	// Only one session of either protocol may run at a time. A press while
	// one is still live means its release was lost (the pointer left the
	// terminal); drop the stray press and let the next release resolve the
	// session already in flight.
	if m.session.Active() || m.reorder.Active() {
		return m, nil
	}

	idx := m.rowIndexAt(y)
	if idx < 0 {
		return m, nil
	}
	row := m.rows[idx]
	m.cursor = idx
	m.clampScroll()

	// Presses on the label column grab the row for reordering; presses on
	// the timeline area grab the bar itself.
	if x < labelWidth {
		if m.readOnly || m.grouping != timeline.ByFeature {
			return m, nil
		}
		if row.Kind == timeline.RowHeader {
			_ = m.reorder.GrabFeature(row.FeatureID)
		} else if !row.ReadOnly {
			_ = m.reorder.GrabAssignment(row.FeatureID, row.AssignmentID)
		}
		return m, nil
	}

	if row.Kind != timeline.RowLeaf {
		return m, nil
	}

	// The session needs the stored dates, not the row's rendered ones.
	a, found := feature.FindAssignment(m.features, row.FeatureID, row.AssignmentID)
	if !found {
		return m, nil
	}
	_ = m.session.PointerDown(drag.Target{
		FeatureID:    row.FeatureID,
		AssignmentID: row.AssignmentID,
		Start:        a.Start,
		End:          a.End,
		ReadOnly:     row.ReadOnly || m.readOnly,
	}, x)
	return m, nil
}

func (m Model) mouseMove(x int) (tea.Model, tea.Cmd) {
	if !m.session.Active() {
		return m, nil
	}
	m.session.PointerMove(x, m.geom)
	// Re-project rows so the dragged bar previews its new dates.
	m.rows = timeline.Rows(m.features, m.grouping, m.session.Override())
	return m, nil
}

func (m Model) mouseUp(x, y int) (tea.Model, tea.Cmd) {
	if m.reorder.Active() {
		return m.dropReorder(y)
	}
	if !m.session.Active() {
		return m, nil
	}

	drop := m.session.PointerUp()
	switch {
	case drop.Moved:
		if updated, ok := feature.CommitDates(m.features, drop.FeatureID, drop.AssignmentID, drop.Start, drop.End); ok {
			m.setFeatures(updated)
		} else {
			m.recompute()
		}
	case drop.Clicked:
		m.recompute()
		m.openDetail(drop.FeatureID, drop.AssignmentID)
	default:
		m.recompute()
	}
	return m, nil
}

func (m Model) dropReorder(y int) (tea.Model, tea.Cmd) {
	idx := m.rowIndexAt(y)
	if idx < 0 {
		m.reorder.Cancel()
		return m, nil
	}
	row := m.rows[idx]

	dropID := row.FeatureID
	if m.reorder.Kind() == drag.ReorderAssignments {
		dropID = row.AssignmentID
	}

	if updated, ok := m.reorder.Drop(m.features, row.FeatureID, dropID); ok {
		m.setFeatures(updated)
	}
	return m, nil
}
