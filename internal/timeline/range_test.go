package timeline

import (
	"testing"
	"time"

	"github.com/nmoreras/ganttboard/internal/feature"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestVisibleRange_Empty(t *testing.T) {
	today := date(2025, 1, 15)
	start, dates := VisibleRange(nil, today)

	if !start.Equal(date(2025, 1, 13)) {
		t.Errorf("start = %v, want 2025-01-13", start)
	}
	// 2 days before through 14 days after, inclusive.
	if len(dates) != 17 {
		t.Errorf("len(dates) = %d, want 17", len(dates))
	}
	if !dates[len(dates)-1].Equal(date(2025, 1, 29)) {
		t.Errorf("last date = %v, want 2025-01-29", dates[len(dates)-1])
	}
}

func TestVisibleRange_Buffers(t *testing.T) {
	features := []feature.Feature{
		{
			ID:   "f1",
			Name: "登入",
			Assignments: []feature.Assignment{
				{ID: "a1", Start: date(2025, 1, 10), End: date(2025, 1, 14)},
				{ID: "a2", Start: date(2025, 1, 8), End: date(2025, 1, 9)},
			},
		},
	}

	start, dates := VisibleRange(features, date(2025, 3, 1))
	if !start.Equal(date(2025, 1, 5)) {
		t.Errorf("start = %v, want 2025-01-05 (earliest minus 3)", start)
	}
	last := dates[len(dates)-1]
	if !last.Equal(date(2025, 1, 21)) {
		t.Errorf("last = %v, want 2025-01-21 (latest plus 7)", last)
	}
	// Sequence is contiguous.
	for i := 1; i < len(dates); i++ {
		if !dates[i].Equal(dates[i-1].AddDate(0, 0, 1)) {
			t.Fatalf("gap in date sequence at %d", i)
		}
	}
}

func TestWeekChunks(t *testing.T) {
	// Thursday 2025-01-02 through Tuesday 2025-01-07 crosses an ISO week
	// boundary: W1 holds Thu-Sun (4 days), W2 holds Mon-Tue (2 days).
	var dates []time.Time
	for d := date(2025, 1, 2); !d.After(date(2025, 1, 7)); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}

	chunks := WeekChunks(dates)
	if len(chunks) != 2 {
		t.Fatalf("len(chunks) = %d, want 2", len(chunks))
	}
	if chunks[0].Week != 1 || chunks[0].DayCount != 4 {
		t.Errorf("chunk 0 = %+v, want week 1 with 4 days", chunks[0])
	}
	if chunks[1].Week != 2 || chunks[1].DayCount != 2 {
		t.Errorf("chunk 1 = %+v, want week 2 with 2 days", chunks[1])
	}

	total := 0
	for _, c := range chunks {
		total += c.DayCount
	}
	if total != len(dates) {
		t.Errorf("chunk day counts sum to %d, want %d", total, len(dates))
	}
}

func TestWeekChunks_YearBoundary(t *testing.T) {
	// 2024-12-30 (Mon) through 2025-01-05 (Sun) is a single ISO week (2025 W1).
	var dates []time.Time
	for d := date(2024, 12, 30); !d.After(date(2025, 1, 5)); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}

	chunks := WeekChunks(dates)
	if len(chunks) != 1 {
		t.Fatalf("len(chunks) = %d, want 1", len(chunks))
	}
	if chunks[0].Year != 2025 || chunks[0].Week != 1 || chunks[0].DayCount != 7 {
		t.Errorf("chunk = %+v, want 2025 W1 with 7 days", chunks[0])
	}
}

func TestWeekChunks_Empty(t *testing.T) {
	if chunks := WeekChunks(nil); chunks != nil {
		t.Errorf("expected nil chunks, got %v", chunks)
	}
}
