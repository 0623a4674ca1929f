package timeline

import (
	"math"
	"time"

	"github.com/nmoreras/ganttboard/internal/dateutil"
)

// DefaultDayWidth is the horizontal size of one calendar day, in cells.
const DefaultDayWidth = 4

// Geometry converts between calendar dates and horizontal cell positions.
type Geometry struct {
	RangeStart time.Time
	DayWidth   int
}

// NewGeometry builds a Geometry for the given visible range start.
func NewGeometry(rangeStart time.Time, dayWidth int) Geometry {
	if dayWidth <= 0 {
		dayWidth = DefaultDayWidth
	}
	return Geometry{RangeStart: rangeStart, DayWidth: dayWidth}
}

// BarOffset returns the horizontal offset of a bar starting on the given date.
func (g Geometry) BarOffset(start time.Time) int {
	return dateutil.DaysBetween(g.RangeStart, start) * g.DayWidth
}

// BarWidth returns the horizontal size of a bar spanning start..end inclusive.
func (g Geometry) BarWidth(start, end time.Time) int {
	span := dateutil.DaysBetween(start, end) + 1
	if span < 1 {
		span = 1
	}
	return span * g.DayWidth
}

// DeltaDays converts a horizontal pointer movement into whole days, rounding
// to the nearest day so a drag snaps to the day grid.
func (g Geometry) DeltaDays(deltaX int) int {
	return int(math.Round(float64(deltaX) / float64(g.DayWidth)))
}
