package feature

import (
	"sort"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testFeatures() []Feature {
	return []Feature{
		{
			ID:   "f1",
			Name: "登入",
			Assignments: []Assignment{
				{ID: "a1", Role: "FE", Start: date(2025, 1, 2), End: date(2025, 1, 3)},
				{ID: "a2", Role: "BE", Start: date(2025, 1, 2), End: date(2025, 1, 6)},
				{ID: "a3", Role: "UI", Start: date(2025, 1, 6), End: date(2025, 1, 7)},
			},
		},
		{
			ID:   "f2",
			Name: "報表",
			Assignments: []Assignment{
				{ID: "b1", Role: "RD", Start: date(2025, 1, 8), End: date(2025, 1, 10)},
			},
		},
	}
}

func TestNewAssignment_ClampsEndToStart(t *testing.T) {
	a, err := NewAssignment("FE", "", "2025-01-10", "2025-01-08", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.End.Equal(a.Start) {
		t.Errorf("end %v not clamped to start %v", a.End, a.Start)
	}
}

func TestNewAssignment_Validation(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		start    string
		end      string
		progress int
		wantErr  bool
	}{
		{name: "valid", role: "FE", start: "2025-01-02", end: "2025-01-03"},
		{name: "bad start", role: "FE", start: "01/02", end: "2025-01-03", wantErr: true},
		{name: "bad end", role: "FE", start: "2025-01-02", end: "soon", wantErr: true},
		{name: "progress too high", role: "FE", start: "2025-01-02", end: "2025-01-03", progress: 101, wantErr: true},
		{name: "progress negative", role: "FE", start: "2025-01-02", end: "2025-01-03", progress: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAssignment(tt.role, "", tt.start, tt.end, tt.progress)
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewAssignment_DerivesColor(t *testing.T) {
	a, err := NewAssignment("FE", "", "2025-01-02", "2025-01-03", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Color == "" {
		t.Error("expected derived color")
	}
	if a.Color != RoleColor("FE") {
		t.Errorf("color %q does not match RoleColor(\"FE\") %q", a.Color, RoleColor("FE"))
	}
}

func TestReorderFeatures(t *testing.T) {
	features := testFeatures()

	out, ok := ReorderFeatures(features, "f2", "f1")
	if !ok {
		t.Fatal("expected reorder to succeed")
	}
	if out[0].ID != "f2" || out[1].ID != "f1" {
		t.Errorf("unexpected order: %s, %s", out[0].ID, out[1].ID)
	}
	// Original untouched.
	if features[0].ID != "f1" {
		t.Error("input collection was mutated")
	}
}

func TestReorderFeatures_UnknownID(t *testing.T) {
	features := testFeatures()
	out, ok := ReorderFeatures(features, "f1", "missing")
	if ok {
		t.Error("expected reorder to fail")
	}
	if len(out) != len(features) || out[0].ID != "f1" {
		t.Error("failed reorder must leave collection unchanged")
	}
}

func TestReorderAssignments_IsPermutation(t *testing.T) {
	features := testFeatures()
	before := AssignmentIDs(features[0])

	out, ok := ReorderAssignments(features, "f1", "a3", "a1")
	if !ok {
		t.Fatal("expected reorder to succeed")
	}

	got := AssignmentIDs(out[0])
	if got[0] != "a3" || got[1] != "a1" || got[2] != "a2" {
		t.Errorf("unexpected order: %v", got)
	}

	// The multiset of ids is unchanged by any reorder.
	sortedBefore := append([]string(nil), before...)
	sortedAfter := append([]string(nil), got...)
	sort.Strings(sortedBefore)
	sort.Strings(sortedAfter)
	for i := range sortedBefore {
		if sortedBefore[i] != sortedAfter[i] {
			t.Fatalf("id multiset changed: %v vs %v", sortedBefore, sortedAfter)
		}
	}
}

func TestReorderAssignments_CrossFeatureRejected(t *testing.T) {
	features := testFeatures()
	// b1 belongs to f2; dropping onto f1's list must be a silent no-op.
	out, ok := ReorderAssignments(features, "f1", "b1", "a1")
	if ok {
		t.Error("expected cross-feature reorder to fail")
	}
	if len(out[0].Assignments) != 3 {
		t.Error("collection changed on rejected reorder")
	}
}

func TestCommitDates(t *testing.T) {
	features := testFeatures()

	out, ok := CommitDates(features, "f1", "a1", date(2025, 1, 7), date(2025, 1, 8))
	if !ok {
		t.Fatal("expected commit to succeed")
	}

	a, found := FindAssignment(out, "f1", "a1")
	if !found {
		t.Fatal("assignment missing after commit")
	}
	if !a.Start.Equal(date(2025, 1, 7)) || !a.End.Equal(date(2025, 1, 8)) {
		t.Errorf("dates not committed: %v..%v", a.Start, a.End)
	}

	// Original untouched.
	orig, _ := FindAssignment(features, "f1", "a1")
	if !orig.Start.Equal(date(2025, 1, 2)) {
		t.Error("input collection was mutated")
	}
}

func TestCommitDates_MissingFeatureIsNoOp(t *testing.T) {
	features := testFeatures()
	out, ok := CommitDates(features, "gone", "a1", date(2025, 1, 7), date(2025, 1, 8))
	if ok {
		t.Error("expected commit to report failure")
	}
	a, _ := FindAssignment(out, "f1", "a1")
	if !a.Start.Equal(date(2025, 1, 2)) {
		t.Error("collection changed on missing feature")
	}
}

func TestCommitDates_ClampsInvertedRange(t *testing.T) {
	features := testFeatures()
	out, ok := CommitDates(features, "f1", "a1", date(2025, 1, 10), date(2025, 1, 8))
	if !ok {
		t.Fatal("expected commit to succeed")
	}
	a, _ := FindAssignment(out, "f1", "a1")
	if !a.End.Equal(a.Start) {
		t.Errorf("inverted range not clamped: %v..%v", a.Start, a.End)
	}
}

func TestDeleteAssignment(t *testing.T) {
	features := testFeatures()
	out, ok := DeleteAssignment(features, "f1", "a2")
	if !ok {
		t.Fatal("expected delete to succeed")
	}
	if len(out[0].Assignments) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(out[0].Assignments))
	}
	if _, found := FindAssignment(out, "f1", "a2"); found {
		t.Error("deleted assignment still present")
	}
}

func TestDeleteFeature(t *testing.T) {
	features := testFeatures()
	out, ok := DeleteFeature(features, "f1")
	if !ok {
		t.Fatal("expected delete to succeed")
	}
	if FindFeature(out, "f1") >= 0 {
		t.Error("deleted feature still present")
	}
	if FindFeature(features, "f1") < 0 {
		t.Error("original collection mutated")
	}

	if _, ok := DeleteFeature(features, "missing"); ok {
		t.Error("deleting an unknown feature should report false")
	}
}

func TestSyncColors(t *testing.T) {
	features := testFeatures()
	features[0].Assignments[0].Color = "#000000"

	out := SyncColors(features)
	a, _ := FindAssignment(out, "f1", "a1")
	if a.Color != RoleColor("FE") {
		t.Errorf("color not re-derived: %q", a.Color)
	}

	// Same role in different features agrees.
	b, _ := FindAssignment(out, "f2", "b1")
	if b.Color != RoleColor("RD") {
		t.Errorf("RD color mismatch: %q", b.Color)
	}
}

func TestWorkingDays(t *testing.T) {
	// Thu..Fri, both working days.
	a := Assignment{Start: date(2025, 1, 2), End: date(2025, 1, 3)}
	if got := a.WorkingDays(); got != 2 {
		t.Errorf("WorkingDays = %d, want 2", got)
	}
}
