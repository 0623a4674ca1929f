package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/nmoreras/ganttboard/internal/feature"
)

// recordingRepo captures SaveTasks calls for debounce assertions.
type recordingRepo struct {
	mu    sync.Mutex
	saves []savedState
}

type savedState struct {
	projectID string
	features  []feature.Feature
}

func (r *recordingRepo) SaveTasks(_ context.Context, projectID string, features []feature.Feature) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves = append(r.saves, savedState{projectID: projectID, features: features})
	return nil
}

func (r *recordingRepo) LoadTasks(context.Context, string) ([]feature.Feature, error) {
	return nil, feature.ErrProjectNotFound
}

func (r *recordingRepo) ListProjects(context.Context) ([]feature.ProjectInfo, error) {
	return nil, nil
}

func (r *recordingRepo) DeleteProject(context.Context, string) error { return nil }
func (r *recordingRepo) Close() error                                { return nil }

func (r *recordingRepo) saved() []savedState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]savedState(nil), r.saves...)
}

func TestDebouncedSaver_CoalescesRapidSchedules(t *testing.T) {
	repo := &recordingRepo{}
	saver := NewDebouncedSaver(repo, 30*time.Millisecond, nil)

	saver.Schedule("p1", []feature.Feature{{ID: "f1", Name: "one"}})
	saver.Schedule("p1", []feature.Feature{{ID: "f2", Name: "two"}})
	saver.Schedule("p1", []feature.Feature{{ID: "f3", Name: "three"}})

	time.Sleep(150 * time.Millisecond)

	saves := repo.saved()
	if len(saves) != 1 {
		t.Fatalf("save count = %d, want 1", len(saves))
	}
	if saves[0].features[0].ID != "f3" {
		t.Errorf("saved %q, want the last scheduled collection", saves[0].features[0].ID)
	}
}

func TestDebouncedSaver_Flush(t *testing.T) {
	repo := &recordingRepo{}
	saver := NewDebouncedSaver(repo, time.Hour, nil)

	saver.Schedule("p1", []feature.Feature{{ID: "f1", Name: "one"}})
	if err := saver.Flush(context.Background()); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	saves := repo.saved()
	if len(saves) != 1 {
		t.Fatalf("save count = %d, want 1", len(saves))
	}

	// The pending write is consumed; a second flush is a no-op.
	if err := saver.Flush(context.Background()); err != nil {
		t.Fatalf("second Flush failed: %v", err)
	}
	if len(repo.saved()) != 1 {
		t.Error("second flush wrote again")
	}
}

func TestDebouncedSaver_Stop(t *testing.T) {
	repo := &recordingRepo{}
	saver := NewDebouncedSaver(repo, 20*time.Millisecond, nil)

	saver.Schedule("p1", []feature.Feature{{ID: "f1", Name: "one"}})
	saver.Stop()

	time.Sleep(100 * time.Millisecond)
	if len(repo.saved()) != 0 {
		t.Error("stopped saver still wrote")
	}
}

func TestDebouncedSaver_ScheduleClonesCollection(t *testing.T) {
	repo := &recordingRepo{}
	saver := NewDebouncedSaver(repo, time.Hour, nil)

	features := []feature.Feature{{ID: "f1", Name: "one"}}
	saver.Schedule("p1", features)
	features[0].Name = "mutated"

	if err := saver.Flush(context.Background()); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if got := repo.saved()[0].features[0].Name; got != "one" {
		t.Errorf("saved name = %q, want the value at schedule time", got)
	}
}
