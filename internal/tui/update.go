package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nmoreras/ganttboard/internal/feature"
	"github.com/nmoreras/ganttboard/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampScroll()
		return m, nil

	case commands.ProjectLoadedMsg:
		m.loading = false
		m.features = msg.Features
		m.recompute()
		return m, nil

	case commands.ImportedMsg:
		if len(msg.Features) == 0 {
			m.setStatus("Nothing to import")
			return m, nil
		}
		merged := append(feature.Clone(m.features), msg.Features...)
		m.setFeatures(feature.SyncColors(merged))
		m.setStatus(fmt.Sprintf("Imported %d features", len(msg.Features)))
		return m, clearStatusAfter(3 * time.Second)

	case commands.SharedMsg:
		m.setStatus("Share link copied to clipboard")
		return m, clearStatusAfter(3 * time.Second)

	case commands.ImportStartedMsg:
		m.setStatus("Importing...")
		return m, nil

	case commands.ErrMsg:
		m.err = msg.Err
		m.setStatus(fmt.Sprintf("Error: %v", msg.Err))
		m.statusTime = m.nowFunc().Add(5 * time.Second)
		return m, clearStatusAfter(5 * time.Second)

	case commands.StatusMsgCmd:
		m.setStatus(msg.Msg)
		return m, clearStatusAfter(3 * time.Second)

	case commands.ClearStatusMsg:
		if m.nowFunc().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	// Text input components consume everything else in their modes.
	switch m.mode {
	case ModePrompt:
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	case ModeModal:
		return m.updateModalInputs(msg)
	}

	return m, nil
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}

func (m Model) updateModalInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.modalType {
	case ModalFeatureForm:
		m.nameIn, cmd = m.nameIn.Update(msg)
	case ModalAssignmentForm:
		m.form[m.formFocus], cmd = m.form[m.formFocus].Update(msg)
	}
	return m, cmd
}
