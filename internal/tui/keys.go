package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nmoreras/ganttboard/internal/dateutil"
	"github.com/nmoreras/ganttboard/internal/feature"
	"github.com/nmoreras/ganttboard/internal/scheduler"
	"github.com/nmoreras/ganttboard/internal/timeline"
	"github.com/nmoreras/ganttboard/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModePrompt:
		return m.handlePromptKeys(msg)
	case ModeModal:
		return m.handleModalKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "esc":
		m.session.Cancel()
		m.reorder.Cancel()
		m.recompute()

	// Navigation
	case "j", "down":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
			m.clampScroll()
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
			m.clampScroll()
		}
	case "pgdown", "ctrl+d":
		m.cursor = min(len(m.rows)-1, m.cursor+m.visibleRows())
		m.clampScroll()
	case "pgup", "ctrl+u":
		m.cursor = max(0, m.cursor-m.visibleRows())
		m.clampScroll()

	// Grouping
	case "g":
		if m.grouping == timeline.ByFeature {
			m.grouping = timeline.ByRole
		} else {
			m.grouping = timeline.ByFeature
		}
		m.session.Cancel()
		m.reorder.Cancel()
		m.cursor = 0
		m.scroll = 0
		m.recompute()

	// Bar nudging
	case "h", "left":
		return m.nudge(-1)
	case "l", "right":
		return m.nudge(1)

	// Row reordering
	case "J", "shift+down":
		return m.reorderCursorRow(1)
	case "K", "shift+up":
		return m.reorderCursorRow(-1)

	// Creation
	case "n":
		if m.readOnly {
			break
		}
		m.mode = ModeModal
		m.modalType = ModalFeatureForm
		m.nameIn.SetValue("")
		m.nameIn.Focus()
		return m, textinput.Blink
	case "a":
		if m.readOnly {
			break
		}
		row, ok := m.currentRow()
		if !ok || row.FeatureID == "" {
			m.setStatus("Select a feature first")
			break
		}
		m.mode = ModeModal
		m.modalType = ModalAssignmentForm
		m.formFeatureID = row.FeatureID
		m.formFocus = formFieldRole
		slot := scheduler.Slot{Start: m.today(), End: m.today()}
		if fi := feature.FindFeature(m.features, row.FeatureID); fi >= 0 {
			slot = scheduler.NextSlot(m.features[fi], m.today(), scheduler.DefaultSpanDays)
		}
		defaults := [formFieldCount]string{
			"", "", dateutil.FormatDate(slot.Start), dateutil.FormatDate(slot.End),
		}
		for i := range m.form {
			m.form[i].SetValue(defaults[i])
			m.form[i].Blur()
		}
		m.form[m.formFocus].Focus()
		return m, textinput.Blink

	// Deletion
	case "d":
		if m.readOnly {
			break
		}
		row, ok := m.currentRow()
		if !ok {
			break
		}
		switch {
		case row.Kind == timeline.RowLeaf && !row.ReadOnly:
			m.deleteFeatureID = row.FeatureID
			m.deleteAssignmentID = row.AssignmentID
			m.confirmMessage = fmt.Sprintf("Delete assignment %q?", row.Label)
		case row.Kind == timeline.RowHeader && m.grouping == timeline.ByFeature:
			m.deleteFeatureID = row.FeatureID
			m.deleteAssignmentID = ""
			m.confirmMessage = fmt.Sprintf("Delete feature %q and all its assignments?", row.Label)
		}
		if m.confirmMessage != "" {
			m.mode = ModeModal
			m.modalType = ModalConfirmDelete
		}

	// Detail
	case "enter":
		row, ok := m.currentRow()
		if ok && row.Kind == timeline.RowLeaf {
			m.openDetail(row.FeatureID, row.AssignmentID)
		}

	// Import prompt
	case "i", "/":
		if m.readOnly {
			break
		}
		m.mode = ModePrompt
		m.prompt.SetValue("")
		m.prompt.Focus()
		return m, textinput.Blink

	// Share
	case "s":
		return m, commands.Share(m.config, m.features)

	// Reload
	case "r":
		if m.repo == nil {
			break
		}
		m.loading = true
		return m, commands.LoadProject(m.repo, m.project)
	}

	return m, nil
}

// nudge shifts the selected bar by whole calendar days, re-projecting its
// end so the working-day span survives the move.
func (m Model) nudge(days int) (tea.Model, tea.Cmd) {
	row, ok := m.currentRow()
	if !ok || row.Kind != timeline.RowLeaf || row.ReadOnly || m.readOnly {
		return m, nil
	}
	a, found := feature.FindAssignment(m.features, row.FeatureID, row.AssignmentID)
	if !found {
		return m, nil
	}

	start := dateutil.AddDays(a.Start, days)
	var end time.Time
	if span := a.WorkingDays(); span > 0 {
		end = dateutil.ProjectEndFromWorkingDays(start, span)
	} else {
		end = dateutil.AddDays(a.End, days)
	}

	if updated, ok := feature.CommitDates(m.features, row.FeatureID, row.AssignmentID, start, end); ok {
		m.setFeatures(updated)
	}
	return m, nil
}

// reorderCursorRow moves the row under the cursor past its nearest sibling
// in the given direction. Only meaningful in feature grouping, where row
// order mirrors stored order.
func (m Model) reorderCursorRow(dir int) (tea.Model, tea.Cmd) {
	if m.readOnly || m.grouping != timeline.ByFeature {
		return m, nil
	}
	row, ok := m.currentRow()
	if !ok {
		return m, nil
	}

	sibling, found := m.findSibling(row, dir)
	if !found {
		return m, nil
	}

	var updated []feature.Feature
	var moved bool
	if row.Kind == timeline.RowHeader {
		updated, moved = feature.ReorderFeatures(m.features, row.FeatureID, sibling.FeatureID)
	} else {
		updated, moved = feature.ReorderAssignments(m.features, row.FeatureID, row.AssignmentID, sibling.AssignmentID)
	}
	if !moved {
		return m, nil
	}

	m.setFeatures(updated)
	m.cursor = m.findRowIndex(row)
	m.clampScroll()
	return m, nil
}

// findSibling scans from the cursor for the next row of the same kind that
// is a valid reorder target: another feature header, or another assignment
// of the same feature.
func (m Model) findSibling(row timeline.Row, dir int) (timeline.Row, bool) {
	for i := m.cursor + dir; i >= 0 && i < len(m.rows); i += dir {
		cand := m.rows[i]
		if cand.Kind != row.Kind {
			if row.Kind == timeline.RowLeaf {
				break // left the feature's section
			}
			continue
		}
		if row.Kind == timeline.RowLeaf && cand.FeatureID != row.FeatureID {
			break
		}
		return cand, true
	}
	return timeline.Row{}, false
}

// findRowIndex locates a row by its ids after the list was rebuilt.
func (m Model) findRowIndex(row timeline.Row) int {
	for i, r := range m.rows {
		if r.Kind == row.Kind && r.FeatureID == row.FeatureID && r.AssignmentID == row.AssignmentID {
			return i
		}
	}
	return m.cursor
}

func (m *Model) openDetail(featureID, assignmentID string) {
	m.detailFeatureID = featureID
	m.detailAssignmentID = assignmentID
	m.mode = ModeModal
	m.modalType = ModalDetail
}

func (m *Model) closeModal() {
	m.mode = ModeNormal
	m.modalType = ModalNone
	m.confirmMessage = ""
	m.nameIn.Blur()
	for i := range m.form {
		m.form[i].Blur()
	}
}

// handlePromptKeys handles keys while the import prompt is focused.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.prompt.Blur()
		return m, nil
	case "enter":
		text := strings.TrimSpace(m.prompt.Value())
		m.mode = ModeNormal
		m.prompt.Blur()
		if text == "" {
			return m, nil
		}
		return m, tea.Batch(
			func() tea.Msg { return commands.ImportStartedMsg{} },
			commands.Import(m.config, text),
		)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// handleModalKeys handles keys while a modal is open.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modalType {
	case ModalDetail:
		switch msg.String() {
		case "esc", "enter", "q":
			m.closeModal()
		}
		return m, nil

	case ModalConfirmDelete:
		switch msg.String() {
		case "y", "enter":
			return m.confirmDelete()
		case "n", "esc":
			m.closeModal()
		}
		return m, nil

	case ModalFeatureForm:
		switch msg.String() {
		case "esc":
			m.closeModal()
			return m, nil
		case "enter":
			return m.submitFeatureForm()
		}
		var cmd tea.Cmd
		m.nameIn, cmd = m.nameIn.Update(msg)
		return m, cmd

	case ModalAssignmentForm:
		switch msg.String() {
		case "esc":
			m.closeModal()
			return m, nil
		case "enter":
			return m.submitAssignmentForm()
		case "tab", "down":
			m.focusFormField((m.formFocus + 1) % formFieldCount)
			return m, textinput.Blink
		case "shift+tab", "up":
			m.focusFormField((m.formFocus + formFieldCount - 1) % formFieldCount)
			return m, textinput.Blink
		}
		var cmd tea.Cmd
		m.form[m.formFocus], cmd = m.form[m.formFocus].Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) focusFormField(i int) {
	m.form[m.formFocus].Blur()
	m.formFocus = i
	m.form[m.formFocus].Focus()
}

func (m Model) confirmDelete() (tea.Model, tea.Cmd) {
	var updated []feature.Feature
	var ok bool
	if m.deleteAssignmentID != "" {
		updated, ok = feature.DeleteAssignment(m.features, m.deleteFeatureID, m.deleteAssignmentID)
	} else {
		updated, ok = feature.DeleteFeature(m.features, m.deleteFeatureID)
	}
	m.closeModal()
	if ok {
		m.setFeatures(updated)
		m.setStatus("Deleted")
		return m, clearStatusAfter(3 * time.Second)
	}
	return m, nil
}

func (m Model) submitFeatureForm() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.nameIn.Value())
	f, err := feature.NewFeature(name)
	if err != nil {
		m.setStatus(fmt.Sprintf("Error: %v", err))
		return m, nil
	}
	m.closeModal()
	m.setFeatures(append(feature.Clone(m.features), f))
	return m, nil
}

func (m Model) submitAssignmentForm() (tea.Model, tea.Cmd) {
	role := strings.TrimSpace(m.form[formFieldRole].Value())
	label := strings.TrimSpace(m.form[formFieldLabel].Value())
	start := strings.TrimSpace(m.form[formFieldStart].Value())
	end := strings.TrimSpace(m.form[formFieldEnd].Value())

	a, err := feature.NewAssignment(role, label, start, end, 0)
	if err != nil {
		m.setStatus(fmt.Sprintf("Error: %v", err))
		return m, nil
	}

	fi := feature.FindFeature(m.features, m.formFeatureID)
	if fi < 0 {
		m.closeModal()
		return m, nil
	}

	updated := feature.Clone(m.features)
	updated[fi].Assignments = append(updated[fi].Assignments, a)
	m.closeModal()
	m.setFeatures(updated)
	return m, nil
}
