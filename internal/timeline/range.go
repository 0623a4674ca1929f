// Package timeline derives the renderable calendar view from a feature
// collection: the visible date span, its ISO-week header buckets, and the
// flattened row list for either grouping mode.
package timeline

import (
	"time"

	"github.com/nmoreras/ganttboard/internal/dateutil"
	"github.com/nmoreras/ganttboard/internal/feature"
)

// Visible-range buffers, in calendar days.
const (
	leadBufferDays  = 3
	trailBufferDays = 7

	// Default window around today when the collection has no assignments.
	emptyLeadDays  = 2
	emptyTrailDays = 14
)

// VisibleRange returns the first visible date and the full inclusive date
// sequence covering every assignment plus lead/trail buffers. An empty
// collection yields a window around today.
func VisibleRange(features []feature.Feature, today time.Time) (time.Time, []time.Time) {
	var earliest, latest time.Time
	found := false

	for _, f := range features {
		for _, a := range f.Assignments {
			if !found {
				earliest, latest = a.Start, a.End
				found = true
				continue
			}
			if a.Start.Before(earliest) {
				earliest = a.Start
			}
			if a.End.After(latest) {
				latest = a.End
			}
		}
	}

	var start, end time.Time
	if !found {
		start = dateutil.AddDays(today, -emptyLeadDays)
		end = dateutil.AddDays(today, emptyTrailDays)
	} else {
		start = dateutil.AddDays(earliest, -leadBufferDays)
		end = dateutil.AddDays(latest, trailBufferDays)
	}

	n := dateutil.DaysBetween(start, end) + 1
	dates := make([]time.Time, 0, n)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return start, dates
}

// WeekChunk is one run of consecutive dates sharing an ISO week, used to
// size a header cell proportionally to the days it covers.
type WeekChunk struct {
	Week     int // ISO-8601 week number
	Year     int // ISO week year (may differ from the calendar year at edges)
	DayCount int
}

// WeekChunks groups an ordered date sequence into ISO week runs.
func WeekChunks(dates []time.Time) []WeekChunk {
	var chunks []WeekChunk
	for _, d := range dates {
		year, week := d.ISOWeek()
		if n := len(chunks); n > 0 && chunks[n-1].Week == week && chunks[n-1].Year == year {
			chunks[n-1].DayCount++
			continue
		}
		chunks = append(chunks, WeekChunk{Week: week, Year: year, DayCount: 1})
	}
	return chunks
}
