package scheduler

import (
	"testing"
	"time"

	"github.com/nmoreras/ganttboard/internal/feature"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextSlotEmptyFeature(t *testing.T) {
	f := feature.Feature{ID: "f1", Name: "登入"}

	// Monday: starts the same day.
	slot := NextSlot(f, date(2025, 1, 6), 3)
	if !slot.Start.Equal(date(2025, 1, 6)) {
		t.Errorf("start = %s, want 2025-01-06", slot.Start)
	}
	if !slot.End.Equal(date(2025, 1, 8)) {
		t.Errorf("end = %s, want 2025-01-08 (three working days)", slot.End)
	}
}

func TestNextSlotSkipsWeekend(t *testing.T) {
	f := feature.Feature{ID: "f1", Name: "登入"}

	// Saturday rolls forward to Monday.
	slot := NextSlot(f, date(2025, 1, 4), 2)
	if !slot.Start.Equal(date(2025, 1, 6)) {
		t.Errorf("start = %s, want Monday 2025-01-06", slot.Start)
	}
	if !slot.End.Equal(date(2025, 1, 7)) {
		t.Errorf("end = %s, want 2025-01-07", slot.End)
	}
}

func TestNextSlotAfterLatestBar(t *testing.T) {
	f := feature.Feature{
		ID:   "f1",
		Name: "登入",
		Assignments: []feature.Assignment{
			{ID: "a1", Role: "FE", Start: date(2025, 1, 6), End: date(2025, 1, 10)},
			{ID: "a2", Role: "BE", Start: date(2025, 1, 6), End: date(2025, 1, 8)},
		},
	}

	// Friday 1/10 is the latest end; the next working day is Monday 1/13.
	slot := NextSlot(f, date(2025, 1, 6), 1)
	if !slot.Start.Equal(date(2025, 1, 13)) {
		t.Errorf("start = %s, want 2025-01-13", slot.Start)
	}
	if !slot.End.Equal(date(2025, 1, 13)) {
		t.Errorf("end = %s, want same day for a one-day span", slot.End)
	}
}

func TestNextSlotNeverBeforeToday(t *testing.T) {
	f := feature.Feature{
		ID:   "f1",
		Name: "舊功能",
		Assignments: []feature.Assignment{
			{ID: "a1", Role: "FE", Start: date(2024, 12, 2), End: date(2024, 12, 6)},
		},
	}

	slot := NextSlot(f, date(2025, 1, 6), 2)
	if !slot.Start.Equal(date(2025, 1, 6)) {
		t.Errorf("start = %s, want today 2025-01-06, not after the stale bar", slot.Start)
	}
}

func TestNextSlotSkipsHoliday(t *testing.T) {
	f := feature.Feature{
		ID:   "f1",
		Name: "端午",
		Assignments: []feature.Assignment{
			// Ends Thursday 2025-05-29; Friday 5/30 is a holiday.
			{ID: "a1", Role: "FE", Start: date(2025, 5, 26), End: date(2025, 5, 29)},
		},
	}

	slot := NextSlot(f, date(2025, 5, 26), 1)
	if !slot.Start.Equal(date(2025, 6, 2)) {
		t.Errorf("start = %s, want Monday 2025-06-02 past the holiday weekend", slot.Start)
	}
}

func TestNextSlotDefaultSpan(t *testing.T) {
	f := feature.Feature{ID: "f1", Name: "登入"}

	slot := NextSlot(f, date(2025, 1, 6), 0)
	if !slot.End.Equal(date(2025, 1, 8)) {
		t.Errorf("end = %s, want the default three-working-day span", slot.End)
	}
}
