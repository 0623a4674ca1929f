package timeline

import "testing"

func TestBarOffsetAndWidth(t *testing.T) {
	g := NewGeometry(date(2025, 1, 5), 4)

	tests := []struct {
		name       string
		start, end int // day of January
		offset     int
		width      int
	}{
		{"at range start", 5, 5, 0, 4},
		{"two days in", 7, 8, 8, 8},
		{"five day span", 10, 14, 20, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := date(2025, 1, tt.start)
			end := date(2025, 1, tt.end)
			if got := g.BarOffset(start); got != tt.offset {
				t.Errorf("BarOffset = %d, want %d", got, tt.offset)
			}
			if got := g.BarWidth(start, end); got != tt.width {
				t.Errorf("BarWidth = %d, want %d", got, tt.width)
			}
		})
	}
}

func TestBarWidth_DegenerateRange(t *testing.T) {
	g := NewGeometry(date(2025, 1, 5), 4)
	// An inverted range still draws a one-day bar.
	if got := g.BarWidth(date(2025, 1, 10), date(2025, 1, 8)); got != 4 {
		t.Errorf("BarWidth = %d, want 4", got)
	}
}

func TestDeltaDays(t *testing.T) {
	g := NewGeometry(date(2025, 1, 5), 4)

	tests := []struct {
		deltaX int
		want   int
	}{
		{0, 0},
		{1, 0},
		{2, 1}, // half rounds away from zero
		{4, 1},
		{7, 2},
		{-2, -1},
		{-4, -1},
		{-7, -2},
		{20, 5},
	}

	for _, tt := range tests {
		if got := g.DeltaDays(tt.deltaX); got != tt.want {
			t.Errorf("DeltaDays(%d) = %d, want %d", tt.deltaX, got, tt.want)
		}
	}
}

func TestNewGeometry_DefaultWidth(t *testing.T) {
	g := NewGeometry(date(2025, 1, 5), 0)
	if g.DayWidth != DefaultDayWidth {
		t.Errorf("DayWidth = %d, want %d", g.DayWidth, DefaultDayWidth)
	}
}
