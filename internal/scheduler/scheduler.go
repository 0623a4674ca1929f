// Package scheduler suggests placement dates for new bars on the board.
package scheduler

import (
	"time"

	"github.com/nmoreras/ganttboard/internal/dateutil"
	"github.com/nmoreras/ganttboard/internal/feature"
)

// DefaultSpanDays is the working-day span suggested for a new assignment.
const DefaultSpanDays = 3

// Slot is a suggested date range for a new assignment.
type Slot struct {
	Start time.Time
	End   time.Time
}

// NextSlot suggests where a new assignment in the given feature should land:
// the first working day after the feature's latest bar, never earlier than
// today, spanning the requested working days. An empty feature starts on the
// next working day from today.
func NextSlot(f feature.Feature, today time.Time, workingDays int) Slot {
	if workingDays <= 0 {
		workingDays = DefaultSpanDays
	}

	start := dateutil.TruncateToDay(today)
	if latest, ok := latestEnd(f); ok {
		if after := dateutil.AddDays(latest, 1); after.After(start) {
			start = after
		}
	}
	start = nextWorkingDay(start)

	return Slot{
		Start: start,
		End:   dateutil.ProjectEndFromWorkingDays(start, workingDays),
	}
}

// latestEnd returns the latest assignment end in the feature.
func latestEnd(f feature.Feature) (time.Time, bool) {
	var latest time.Time
	found := false
	for _, a := range f.Assignments {
		if !found || a.End.After(latest) {
			latest = a.End
			found = true
		}
	}
	return latest, found
}

// nextWorkingDay returns d itself when it is a working day, otherwise the
// first working day after it. The scan is bounded like the projection in
// dateutil; a full year without a working day cannot happen with the fixed
// holiday table.
func nextWorkingDay(d time.Time) time.Time {
	d = dateutil.TruncateToDay(d)
	for i := 0; i < 365; i++ {
		if dateutil.IsWorkingDay(d) {
			return d
		}
		d = d.AddDate(0, 0, 1)
	}
	return d
}
