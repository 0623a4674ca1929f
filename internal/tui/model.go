// Package tui provides the terminal user interface for ganttboard.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nmoreras/ganttboard/internal/config"
	"github.com/nmoreras/ganttboard/internal/dateutil"
	"github.com/nmoreras/ganttboard/internal/drag"
	"github.com/nmoreras/ganttboard/internal/feature"
	"github.com/nmoreras/ganttboard/internal/store"
	"github.com/nmoreras/ganttboard/internal/timeline"
	"github.com/nmoreras/ganttboard/internal/tui/commands"
	"github.com/nmoreras/ganttboard/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt      // Import prompt is focused
	ModeModal
)

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone ModalType = iota
	ModalDetail
	ModalFeatureForm
	ModalAssignmentForm
	ModalConfirmDelete
)

// Assignment form field order.
const (
	formFieldRole = iota
	formFieldLabel
	formFieldStart
	formFieldEnd
	formFieldCount
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   feature.Repository
	config *config.Config
	saver  *store.DebouncedSaver

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Board state
	project  string
	features []feature.Feature
	readOnly bool
	loading  bool

	// Derived timeline state, rebuilt by recompute
	grouping   timeline.GroupMode
	rows       []timeline.Row
	rangeStart time.Time
	dates      []time.Time
	chunks     []timeline.WeekChunk
	geom       timeline.Geometry

	// Pointer sessions
	session drag.Session
	reorder drag.ReorderSession

	// Cursor and viewport
	cursor int // index into rows
	scroll int
	width  int
	height int

	// Modal state
	mode      Mode
	modalType ModalType

	detailFeatureID    string
	detailAssignmentID string

	confirmMessage     string
	deleteFeatureID    string
	deleteAssignmentID string

	// Components
	prompt textinput.Model
	form   [formFieldCount]textinput.Model
	nameIn textinput.Model

	formFocus     int
	formFeatureID string // target feature for a new assignment

	// Messages
	statusMsg  string
	statusTime time.Time

	// Error state
	err error

	nowFunc func() time.Time
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithFeatures preloads a feature collection and makes the board read-only.
// Used for viewing shared snapshots without a database.
func WithFeatures(features []feature.Feature) ModelOption {
	return func(m *Model) {
		m.features = features
		m.readOnly = true
		m.loading = false
	}
}

// WithNow overrides the clock, pinning the visible range in tests.
func WithNow(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.nowFunc = now
	}
}

// New creates a new TUI model.
func New(repo feature.Repository, cfg *config.Config, projectID string, opts ...ModelOption) Model {
	prompt := textinput.New()
	prompt.Placeholder = "paste meeting notes, a task list, anything..."
	prompt.CharLimit = 2000

	nameIn := textinput.New()
	nameIn.Placeholder = "Feature name"
	nameIn.CharLimit = 128
	nameIn.Width = 32

	t := theme.Load(cfg.UI.Theme)
	styles := NewStyles(t)

	m := Model{
		repo:    repo,
		config:  cfg,
		theme:   t,
		styles:  styles,
		project: projectID,
		loading: repo != nil,
		prompt:  prompt,
		nameIn:  nameIn,
		nowFunc: time.Now,
	}

	placeholders := [formFieldCount]string{"FE", "optional note", "2025-01-06", "2025-01-10"}
	for i := range m.form {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 64
		in.Width = 24
		m.form[i] = in
	}

	if repo != nil {
		delay := time.Duration(cfg.Board.SaveDebounceMS) * time.Millisecond
		m.saver = store.NewDebouncedSaver(repo, delay, func(err error) {
			logEvent("SAVE_ERROR", map[string]any{"err": err.Error()})
		})
	}

	for _, opt := range opts {
		opt(&m)
	}

	m.recompute()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.repo == nil {
		return nil
	}
	return commands.LoadProject(m.repo, m.project)
}

// today returns the current date truncated to midnight.
func (m Model) today() time.Time {
	return dateutil.TruncateToDay(m.nowFunc())
}

// recompute rebuilds every derived timeline artifact from the collection:
// the visible range, the week header chunks, the geometry, and the row list
// (with the in-flight drag override applied, when any).
func (m *Model) recompute() {
	m.rangeStart, m.dates = timeline.VisibleRange(m.features, m.today())
	m.geom = timeline.NewGeometry(m.rangeStart, m.config.UI.DayWidth)
	m.chunks = timeline.WeekChunks(m.dates)
	m.rows = timeline.Rows(m.features, m.grouping, m.session.Override())
	m.clampCursor()
}

// setFeatures replaces the whole collection, rebuilds the view, and queues a
// debounced save. Every mutation goes through here.
func (m *Model) setFeatures(features []feature.Feature) {
	m.features = features
	m.recompute()
	if m.saver != nil && !m.readOnly {
		m.saver.Schedule(m.project, features)
	}
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.clampScroll()
}

func (m *Model) clampScroll() {
	visible := m.visibleRows()
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if visible > 0 && m.cursor >= m.scroll+visible {
		m.scroll = m.cursor - visible + 1
	}
	if max := len(m.rows) - visible; m.scroll > max {
		m.scroll = max
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

// currentRow returns the row under the cursor, if any.
func (m Model) currentRow() (timeline.Row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return timeline.Row{}, false
	}
	return m.rows[m.cursor], true
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusTime = m.nowFunc().Add(3 * time.Second)
}

// Run starts the TUI against a stored project.
func Run(repo feature.Repository, cfg *config.Config, projectID string, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(repo, cfg, projectID)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	finalModel, err := p.Run()

	// A quit can race a pending debounced write; push it through before
	// the process exits.
	if m, ok := finalModel.(Model); ok && m.saver != nil {
		if ferr := m.saver.Flush(context.Background()); ferr != nil && err == nil {
			err = ferr
		}
	}
	return err
}

// RunSnapshot starts the TUI on a decoded snapshot, read-only.
func RunSnapshot(features []feature.Feature, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(nil, cfg, "", WithFeatures(features))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
