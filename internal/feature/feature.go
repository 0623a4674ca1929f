// Package feature defines the core domain types for ganttboard.
package feature

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nmoreras/ganttboard/internal/dateutil"
)

// Validation errors.
var (
	ErrEmptyName          = errors.New("feature name cannot be empty")
	ErrInvalidProgress    = errors.New("progress must be between 0 and 100")
	ErrEndBeforeStart     = errors.New("end date must be on or after start date")
	ErrFeatureNotFound    = errors.New("feature not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
)

// Assignment is one role's dated, progress-tracked slice of a Feature.
type Assignment struct {
	ID       string
	Role     string
	Label    string // optional work-item description
	Start    time.Time
	End      time.Time
	Progress int    // 0-100
	Color    string // palette token, derived from Role when empty
}

// Feature is a named unit of work holding an ordered list of assignments.
// The assignment order is meaningful: it is the default row order on the
// timeline and is user-reorderable.
type Feature struct {
	ID          string
	Name        string
	Assignments []Assignment
}

// NewFeature creates a Feature with a fresh identifier.
func NewFeature(name string) (Feature, error) {
	if name == "" {
		return Feature{}, ErrEmptyName
	}
	return Feature{ID: uuid.NewString(), Name: name}, nil
}

// NewAssignment creates an Assignment with validation.
// start and end are YYYY-MM-DD strings; an end before start is clamped to
// start rather than rejected, so the invariant holds at the edit boundary.
func NewAssignment(role, label, start, end string, progress int) (Assignment, error) {
	startDate, err := dateutil.ParseDate(start)
	if err != nil {
		return Assignment{}, fmt.Errorf("start date: %w", err)
	}
	endDate, err := dateutil.ParseDate(end)
	if err != nil {
		return Assignment{}, fmt.Errorf("end date: %w", err)
	}
	if endDate.Before(startDate) {
		endDate = startDate
	}
	if progress < 0 || progress > 100 {
		return Assignment{}, ErrInvalidProgress
	}

	return Assignment{
		ID:       uuid.NewString(),
		Role:     NormalizeRole(role),
		Label:    label,
		Start:    startDate,
		End:      endDate,
		Progress: progress,
		Color:    RoleColor(role),
	}, nil
}

// WorkingDays returns the assignment's effort span in working days.
func (a Assignment) WorkingDays() int {
	return dateutil.WorkingDaysBetween(a.Start, a.End)
}

// ClampDates enforces end >= start, pulling end up to start when violated.
func (a *Assignment) ClampDates() {
	if a.End.Before(a.Start) {
		a.End = a.Start
	}
}

// Clone returns a deep copy of the feature list. Mutating operations work on
// a clone and republish the whole collection; the original is never touched.
func Clone(features []Feature) []Feature {
	out := make([]Feature, len(features))
	for i, f := range features {
		out[i] = f
		out[i].Assignments = append([]Assignment(nil), f.Assignments...)
	}
	return out
}

// FindFeature returns the index of the feature with the given id, or -1.
func FindFeature(features []Feature, featureID string) int {
	for i := range features {
		if features[i].ID == featureID {
			return i
		}
	}
	return -1
}

// FindAssignment returns a copy of the assignment with the given id inside
// the given feature. The second return value reports whether it was found.
func FindAssignment(features []Feature, featureID, assignmentID string) (Assignment, bool) {
	fi := FindFeature(features, featureID)
	if fi < 0 {
		return Assignment{}, false
	}
	for _, a := range features[fi].Assignments {
		if a.ID == assignmentID {
			return a, true
		}
	}
	return Assignment{}, false
}

// ReorderFeatures moves the feature dragID to the position of dropID and
// returns the replacement collection. Unknown ids leave the collection
// unchanged and report false.
func ReorderFeatures(features []Feature, dragID, dropID string) ([]Feature, bool) {
	from := FindFeature(features, dragID)
	to := FindFeature(features, dropID)
	if from < 0 || to < 0 || from == to {
		return features, false
	}

	out := Clone(features)
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]Feature{moved}, out[to:]...)...)
	return out, true
}

// ReorderAssignments moves assignment dragID to the position of dropID within
// the feature that owns both. Drops whose target lives in a different feature
// are rejected; the collection is returned unchanged with false.
func ReorderAssignments(features []Feature, featureID, dragID, dropID string) ([]Feature, bool) {
	fi := FindFeature(features, featureID)
	if fi < 0 {
		return features, false
	}

	from, to := -1, -1
	for i, a := range features[fi].Assignments {
		switch a.ID {
		case dragID:
			from = i
		case dropID:
			to = i
		}
	}
	if from < 0 || to < 0 || from == to {
		return features, false
	}

	out := Clone(features)
	list := out[fi].Assignments
	moved := list[from]
	list = append(list[:from], list[from+1:]...)
	list = append(list[:to], append([]Assignment{moved}, list[to:]...)...)
	out[fi].Assignments = list
	return out, true
}

// CommitDates writes new start/end dates into one assignment and returns the
// replacement collection. A missing feature or assignment is a silent no-op:
// the collection may have changed underneath an in-flight drag.
func CommitDates(features []Feature, featureID, assignmentID string, start, end time.Time) ([]Feature, bool) {
	fi := FindFeature(features, featureID)
	if fi < 0 {
		return features, false
	}
	ai := -1
	for i, a := range features[fi].Assignments {
		if a.ID == assignmentID {
			ai = i
			break
		}
	}
	if ai < 0 {
		return features, false
	}

	out := Clone(features)
	a := &out[fi].Assignments[ai]
	a.Start = dateutil.TruncateToDay(start)
	a.End = dateutil.TruncateToDay(end)
	a.ClampDates()
	return out, true
}

// UpdateAssignment replaces one assignment's editable fields and returns the
// replacement collection.
func UpdateAssignment(features []Feature, featureID string, updated Assignment) ([]Feature, bool) {
	fi := FindFeature(features, featureID)
	if fi < 0 {
		return features, false
	}
	for i, a := range features[fi].Assignments {
		if a.ID == updated.ID {
			out := Clone(features)
			updated.ClampDates()
			out[fi].Assignments[i] = updated
			return out, true
		}
	}
	return features, false
}

// DeleteFeature removes one feature and all its assignments, returning the
// replacement collection.
func DeleteFeature(features []Feature, featureID string) ([]Feature, bool) {
	fi := FindFeature(features, featureID)
	if fi < 0 {
		return features, false
	}
	out := Clone(features)
	out = append(out[:fi], out[fi+1:]...)
	return out, true
}

// DeleteAssignment removes one assignment and returns the replacement
// collection.
func DeleteAssignment(features []Feature, featureID, assignmentID string) ([]Feature, bool) {
	fi := FindFeature(features, featureID)
	if fi < 0 {
		return features, false
	}
	for i, a := range features[fi].Assignments {
		if a.ID == assignmentID {
			out := Clone(features)
			out[fi].Assignments = append(out[fi].Assignments[:i], out[fi].Assignments[i+1:]...)
			return out, true
		}
	}
	return features, false
}

// SyncColors re-derives every assignment's color from its role so that
// same-named roles agree across features. Returns the replacement collection.
func SyncColors(features []Feature) []Feature {
	out := Clone(features)
	for fi := range out {
		for ai := range out[fi].Assignments {
			out[fi].Assignments[ai].Color = RoleColor(out[fi].Assignments[ai].Role)
		}
	}
	return out
}

// AssignmentIDs returns the ids of a feature's assignments in stored order.
func AssignmentIDs(f Feature) []string {
	ids := make([]string, len(f.Assignments))
	for i, a := range f.Assignments {
		ids[i] = a.ID
	}
	return ids
}
