// Package theme provides color themes for the TUI.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string
	Bg          string // Base background
	BgHighlight string // Row stripes, subtle highlight
	BgSelection string // Cursor row
	Fg          string // Primary foreground
	FgMuted     string // Off-range days, muted elements
	Accent      string // Title, borders
	Weekend     string // Weekend/holiday column shading
	Today       string // Today marker column
	Warning     string // Warnings, drag state
	ModalBorder string
	ModalBg     string
}

// Catppuccin variants, plus latte for light terminals.
var themes = map[string]Theme{
	"mocha": {
		Name:        "mocha",
		Bg:          "#1e1e2e",
		BgHighlight: "#313244",
		BgSelection: "#45475a",
		Fg:          "#cdd6f4",
		FgMuted:     "#6c7086",
		Accent:      "#89b4fa",
		Weekend:     "#181825",
		Today:       "#f9e2af",
		Warning:     "#fab387",
		ModalBorder: "#89b4fa",
		ModalBg:     "#313244",
	},
	"macchiato": {
		Name:        "macchiato",
		Bg:          "#24273a",
		BgHighlight: "#363a4f",
		BgSelection: "#494d64",
		Fg:          "#cad3f5",
		FgMuted:     "#6e738d",
		Accent:      "#8aadf4",
		Weekend:     "#1e2030",
		Today:       "#eed49f",
		Warning:     "#f5a97f",
		ModalBorder: "#8aadf4",
		ModalBg:     "#363a4f",
	},
	"frappe": {
		Name:        "frappe",
		Bg:          "#303446",
		BgHighlight: "#414559",
		BgSelection: "#51576d",
		Fg:          "#c6d0f5",
		FgMuted:     "#737994",
		Accent:      "#8caaee",
		Weekend:     "#292c3c",
		Today:       "#e5c890",
		Warning:     "#ef9f76",
		ModalBorder: "#8caaee",
		ModalBg:     "#414559",
	},
	"latte": {
		Name:        "latte",
		Bg:          "#eff1f5",
		BgHighlight: "#e6e9ef",
		BgSelection: "#ccd0da",
		Fg:          "#4c4f69",
		FgMuted:     "#9ca0b0",
		Accent:      "#1e66f5",
		Weekend:     "#dce0e8",
		Today:       "#df8e1d",
		Warning:     "#fe640b",
		ModalBorder: "#1e66f5",
		ModalBg:     "#e6e9ef",
	},
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load returns the theme with the given name, falling back to frappe.
func Load(name string) *Theme {
	t, ok := themes[strings.ToLower(name)]
	if !ok {
		t = themes["frappe"]
	}
	return &t
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"mocha", "macchiato", "frappe", "latte"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	_, ok := themes[strings.ToLower(name)]
	return ok
}
