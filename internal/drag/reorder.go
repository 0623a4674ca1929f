package drag

import "github.com/nmoreras/ganttboard/internal/feature"

// ReorderKind selects which list a reorder session operates on.
type ReorderKind int

const (
	// ReorderFeatures moves a whole feature within the board.
	ReorderFeatures ReorderKind = iota
	// ReorderAssignments moves an assignment within its owning feature.
	ReorderAssignments
)

// ReorderSession tracks a grab-and-drop row move. Unlike bar sessions it
// has no intermediate preview: the list only changes when the drop lands
// on a valid sibling.
type ReorderSession struct {
	active    bool
	kind      ReorderKind
	featureID string // owning feature, for assignment moves
	dragID    string
}

// Active reports whether a row is currently grabbed.
func (r *ReorderSession) Active() bool {
	return r.active
}

// Kind returns what the grabbed row is. Only meaningful while active.
func (r *ReorderSession) Kind() ReorderKind {
	return r.kind
}

// DragID returns the id of the grabbed row. Only meaningful while active.
func (r *ReorderSession) DragID() string {
	return r.dragID
}

// GrabFeature starts moving a feature row.
func (r *ReorderSession) GrabFeature(featureID string) error {
	if r.active {
		return ErrAlreadyDragging
	}
	r.active = true
	r.kind = ReorderFeatures
	r.dragID = featureID
	return nil
}

// GrabAssignment starts moving an assignment row within its feature.
func (r *ReorderSession) GrabAssignment(featureID, assignmentID string) error {
	if r.active {
		return ErrAlreadyDragging
	}
	r.active = true
	r.kind = ReorderAssignments
	r.featureID = featureID
	r.dragID = assignmentID
	return nil
}

// Drop lands the grabbed row on the row identified by dropFeatureID and
// dropID, producing the replacement collection. Invalid drops (unknown
// target, assignment dropped into a different feature, drop on itself)
// are silent no-ops: the collection comes back unchanged with false. The
// session ends either way.
func (r *ReorderSession) Drop(features []feature.Feature, dropFeatureID, dropID string) ([]feature.Feature, bool) {
	if !r.active {
		return features, false
	}
	defer r.reset()

	switch r.kind {
	case ReorderFeatures:
		return feature.ReorderFeatures(features, r.dragID, dropFeatureID)
	case ReorderAssignments:
		if dropFeatureID != r.featureID {
			return features, false
		}
		return feature.ReorderAssignments(features, r.featureID, r.dragID, dropID)
	}
	return features, false
}

// Cancel abandons the grab without moving anything.
func (r *ReorderSession) Cancel() {
	r.reset()
}

func (r *ReorderSession) reset() {
	*r = ReorderSession{}
}
