package store

import (
	"context"
	"sync"
	"time"

	"github.com/nmoreras/ganttboard/internal/feature"
)

// DefaultSaveDelay is the quiet period before a scheduled save fires.
const DefaultSaveDelay = 2 * time.Second

// DebouncedSaver coalesces rapid collection replacements into a single
// write: each Schedule supersedes any still-pending one, and the save runs
// only after the quiet period elapses without another replacement.
type DebouncedSaver struct {
	repo    feature.Repository
	delay   time.Duration
	onError func(error)

	mu        sync.Mutex
	timer     *time.Timer
	projectID string
	pending   []feature.Feature
	hasWork   bool
}

// NewDebouncedSaver creates a saver. onError receives failures from
// background saves; pass nil to drop them.
func NewDebouncedSaver(repo feature.Repository, delay time.Duration, onError func(error)) *DebouncedSaver {
	if delay <= 0 {
		delay = DefaultSaveDelay
	}
	if onError == nil {
		onError = func(error) {}
	}
	return &DebouncedSaver{repo: repo, delay: delay, onError: onError}
}

// Schedule records the collection as the pending write and restarts the
// quiet period. The slice is cloned so later edits cannot race the save.
func (d *DebouncedSaver) Schedule(projectID string, features []feature.Feature) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.projectID = projectID
	d.pending = feature.Clone(features)
	d.hasWork = true

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

func (d *DebouncedSaver) fire() {
	d.mu.Lock()
	projectID, features, ok := d.take()
	d.mu.Unlock()
	if !ok {
		return
	}

	if err := d.repo.SaveTasks(context.Background(), projectID, features); err != nil {
		d.onError(err)
	}
}

// take returns and clears the pending write. Caller holds the lock.
func (d *DebouncedSaver) take() (string, []feature.Feature, bool) {
	if !d.hasWork {
		return "", nil, false
	}
	projectID, features := d.projectID, d.pending
	d.pending = nil
	d.hasWork = false
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	return projectID, features, true
}

// Flush writes any pending collection immediately. Safe to call with
// nothing scheduled.
func (d *DebouncedSaver) Flush(ctx context.Context) error {
	d.mu.Lock()
	projectID, features, ok := d.take()
	d.mu.Unlock()
	if !ok {
		return nil
	}

	return d.repo.SaveTasks(ctx, projectID, features)
}

// Stop discards any pending write without saving.
func (d *DebouncedSaver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.take()
}
