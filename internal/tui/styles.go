package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nmoreras/ganttboard/internal/tui/theme"
)

// Layout constants. The label column sits left of the timeline; the header
// takes the title line plus the two-line calendar header.
const (
	labelWidth   = 24
	headerHeight = 3
	footerHeight = 2
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorWeekend     lipgloss.Color
	colorToday       lipgloss.Color
	colorWarning     lipgloss.Color

	// Title bar
	TitleStyle     lipgloss.Style
	TitleModeStyle lipgloss.Style

	// Calendar header
	WeekHeaderStyle lipgloss.Style
	DayHeaderStyle  lipgloss.Style
	DayWeekendStyle lipgloss.Style
	DayTodayStyle   lipgloss.Style

	// Rows
	FeatureHeaderStyle lipgloss.Style
	RoleHeaderStyle    lipgloss.Style
	LeafLabelStyle     lipgloss.Style
	SubLabelStyle      lipgloss.Style
	SelectedStyle      lipgloss.Style
	GrabbedStyle       lipgloss.Style

	// Footer
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style
	HelpStyle   lipgloss.Style

	// Modals
	ModalStyle       lipgloss.Style
	ModalTitleStyle  lipgloss.Style
	ModalLabelStyle  lipgloss.Style
	ModalValueStyle  lipgloss.Style
	ModalHintStyle   lipgloss.Style
	ModalActiveStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{
		colorBg:          theme.Color(t.Bg),
		colorBgHighlight: theme.Color(t.BgHighlight),
		colorBgSelection: theme.Color(t.BgSelection),
		colorFg:          theme.Color(t.Fg),
		colorFgMuted:     theme.Color(t.FgMuted),
		colorAccent:      theme.Color(t.Accent),
		colorWeekend:     theme.Color(t.Weekend),
		colorToday:       theme.Color(t.Today),
		colorWarning:     theme.Color(t.Warning),
	}

	s.TitleStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true)
	s.TitleModeStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.WeekHeaderStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent)
	s.DayHeaderStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)
	s.DayWeekendStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)
	s.DayTodayStyle = lipgloss.NewStyle().
		Foreground(s.colorToday).
		Bold(true)

	s.FeatureHeaderStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true)
	s.RoleHeaderStyle = lipgloss.NewStyle().
		Foreground(s.colorToday).
		Bold(true)
	s.LeafLabelStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)
	s.SubLabelStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)
	s.SelectedStyle = lipgloss.NewStyle().
		Background(s.colorBgSelection)
	s.GrabbedStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Bold(true)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)
	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning)
	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Color(t.ModalBorder)).
		Background(theme.Color(t.ModalBg)).
		Padding(1, 2)
	s.ModalTitleStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true)
	s.ModalLabelStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)
	s.ModalValueStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)
	s.ModalHintStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Italic(true)
	s.ModalActiveStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent)

	return s
}

// BarStyle returns the style for a timeline bar in the given palette color.
func (s *Styles) BarStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Color(hex))
}
