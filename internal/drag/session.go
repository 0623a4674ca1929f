// Package drag implements the pointer interaction state machine for the
// timeline: bar reschedules and row reorders both run as short-lived
// sessions between a press and a release.
package drag

import (
	"errors"
	"time"

	"github.com/nmoreras/ganttboard/internal/dateutil"
	"github.com/nmoreras/ganttboard/internal/timeline"
)

// Session errors.
var (
	ErrAlreadyDragging = errors.New("a drag session is already active")
	ErrNotDragging     = errors.New("no drag session is active")
)

// Phase is the lifecycle stage of a bar session.
type Phase int

const (
	// Idle means no pointer is down.
	Idle Phase = iota
	// Armed means the pointer went down on a bar but has not crossed a day
	// boundary yet; releasing now is a click.
	Armed
	// Moving means the bar has been displaced by at least one day. Once
	// entered the session stays in Moving even if the pointer returns to
	// its origin, so the release commits instead of clicking.
	Moving
)

// Target identifies the bar a session operates on.
type Target struct {
	FeatureID    string
	AssignmentID string
	Start        time.Time
	End          time.Time

	// ReadOnly bars (fan-out duplicates, shared-view mode) arm so that a
	// release still registers as a click, but never move or commit.
	ReadOnly bool
}

// Drop is the outcome of a released session. Exactly one of Clicked and
// Moved is set when Valid is true.
type Drop struct {
	Valid   bool
	Clicked bool
	Moved   bool

	FeatureID    string
	AssignmentID string
	Start        time.Time
	End          time.Time
}

// Session tracks one press-to-release interaction with a bar. The zero
// value is an idle session ready for use.
type Session struct {
	phase  Phase
	target Target

	originX  int
	spanDays int // working days of the original bar

	curStart time.Time
	curEnd   time.Time
}

// Phase returns the current lifecycle stage.
func (s *Session) Phase() Phase {
	return s.phase
}

// Active reports whether a pointer is currently held down.
func (s *Session) Active() bool {
	return s.phase != Idle
}

// PointerDown arms a session on the given bar. Only one session can be
// active at a time.
func (s *Session) PointerDown(t Target, x int) error {
	if s.phase != Idle {
		return ErrAlreadyDragging
	}

	s.phase = Armed
	s.target = t
	s.originX = x
	s.spanDays = dateutil.WorkingDaysBetween(t.Start, t.End)
	s.curStart = t.Start
	s.curEnd = t.End
	return nil
}

// PointerMove updates the session with a new pointer position. The offset
// from the press point is snapped to whole days; once the bar displaces by
// at least one day the session latches into Moving. Read-only targets
// ignore movement entirely.
func (s *Session) PointerMove(x int, geom timeline.Geometry) {
	if s.phase == Idle || s.target.ReadOnly {
		return
	}

	deltaDays := geom.DeltaDays(x - s.originX)
	if deltaDays != 0 {
		s.phase = Moving
	}

	s.curStart = dateutil.AddDays(s.target.Start, deltaDays)
	if s.spanDays > 0 {
		// Shifting preserves the effort, not the calendar footprint: the
		// bar re-projects over working days from its new start.
		s.curEnd = dateutil.ProjectEndFromWorkingDays(s.curStart, s.spanDays)
	} else {
		s.curEnd = dateutil.AddDays(s.target.End, deltaDays)
	}
}

// Override returns the live date substitution for rendering the in-flight
// frame, or nil when the bar has not been displaced.
func (s *Session) Override() *timeline.LiveOverride {
	if s.phase != Moving {
		return nil
	}
	return &timeline.LiveOverride{
		AssignmentID: s.target.AssignmentID,
		Start:        s.curStart,
		End:          s.curEnd,
	}
}

// PointerUp releases the session. An armed session that never moved
// reports a click; a moving session reports the dates to commit. The
// session returns to Idle either way.
func (s *Session) PointerUp() Drop {
	if s.phase == Idle {
		return Drop{}
	}

	drop := Drop{
		Valid:        true,
		FeatureID:    s.target.FeatureID,
		AssignmentID: s.target.AssignmentID,
	}
	if s.phase == Moving && !s.target.ReadOnly {
		drop.Moved = true
		drop.Start = s.curStart
		drop.End = s.curEnd
	} else {
		drop.Clicked = true
		drop.Start = s.target.Start
		drop.End = s.target.End
	}

	s.reset()
	return drop
}

// Cancel abandons the session without producing a drop.
func (s *Session) Cancel() {
	s.reset()
}

func (s *Session) reset() {
	*s = Session{}
}
