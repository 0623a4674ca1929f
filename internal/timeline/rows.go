package timeline

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/nmoreras/ganttboard/internal/feature"
)

// GroupMode selects how the feature collection is flattened into rows.
type GroupMode int

const (
	ByFeature GroupMode = iota
	ByRole
)

// RowKind distinguishes section headers from timeline bars.
type RowKind int

const (
	RowHeader RowKind = iota
	RowLeaf
)

// Row is one renderable line of the timeline. Rows are rebuilt from the
// collection on every render pass and never persisted; the Feature and
// Assignment ids are lookup keys into the collection, not owning handles.
type Row struct {
	Kind     RowKind
	Label    string
	SubLabel string

	FeatureID    string
	AssignmentID string

	Start    time.Time
	End      time.Time
	Color    string
	Progress int

	// ReadOnly marks fan-out duplicates in role grouping; their bars are
	// projections of a single assignment and are not individually editable.
	ReadOnly bool
}

// LiveOverride substitutes one assignment's dates for the frame currently
// being drawn, letting an in-flight drag preview a move without touching
// the underlying collection.
type LiveOverride struct {
	AssignmentID string
	Start        time.Time
	End          time.Time
}

// collator orders role bucket names the way a zh-TW reader expects.
var collator = collate.New(language.Chinese)

// Rows flattens the collection into an ordered row list for one render pass.
func Rows(features []feature.Feature, mode GroupMode, live *LiveOverride) []Row {
	if mode == ByRole {
		return roleRows(features, live)
	}
	return featureRows(features, live)
}

func featureRows(features []feature.Feature, live *LiveOverride) []Row {
	var rows []Row
	for _, f := range features {
		rows = append(rows, Row{
			Kind:      RowHeader,
			Label:     f.Name,
			FeatureID: f.ID,
		})
		for _, a := range f.Assignments {
			label := a.Role
			if label == "" {
				label = feature.RoleUnassigned
			}
			start, end := liveDates(a, live)
			rows = append(rows, Row{
				Kind:         RowLeaf,
				Label:        label,
				SubLabel:     a.Label,
				FeatureID:    f.ID,
				AssignmentID: a.ID,
				Start:        start,
				End:          end,
				Color:        a.Color,
				Progress:     a.Progress,
			})
		}
	}
	return rows
}

// roleItem is one assignment occurrence inside a role bucket. A fan-out
// role (RD/ALL) contributes one item per bucket it duplicates into.
type roleItem struct {
	featureID   string
	featureName string
	assignment  feature.Assignment
	fannedOut   bool
	originRole  string
}

func roleRows(features []feature.Feature, live *LiveOverride) []Row {
	buckets := make(map[string][]roleItem)
	for _, f := range features {
		for _, a := range f.Assignments {
			fanned := feature.IsFanOutToken(a.Role)
			for _, bucket := range feature.FanOut(a.Role) {
				buckets[bucket] = append(buckets[bucket], roleItem{
					featureID:   f.ID,
					featureName: f.Name,
					assignment:  a,
					fannedOut:   fanned,
					originRole:  a.Role,
				})
			}
		}
	}

	names := make([]string, 0, len(buckets))
	for name := range buckets {
		names = append(names, name)
	}
	sortBuckets(names)

	var rows []Row
	for _, name := range names {
		items := buckets[name]
		rows = append(rows, Row{
			Kind:     RowHeader,
			Label:    name,
			SubLabel: fmt.Sprintf("%d", len(items)),
		})
		for _, it := range items {
			label := it.featureName
			if it.fannedOut {
				label = "[" + strings.ToUpper(feature.NormalizeRole(it.originRole)) + "] " + label
			}
			start, end := liveDates(it.assignment, live)
			rows = append(rows, Row{
				Kind:         RowLeaf,
				Label:        label,
				SubLabel:     it.assignment.Label,
				FeatureID:    it.featureID,
				AssignmentID: it.assignment.ID,
				Start:        start,
				End:          end,
				Color:        it.assignment.Color,
				Progress:     it.assignment.Progress,
				ReadOnly:     it.fannedOut,
			})
		}
	}
	return rows
}

// sortBuckets orders role bucket names: well-known roles first in their
// fixed priority order, then numeric-leading names ascending, then the rest
// under locale-aware comparison.
func sortBuckets(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		pi, pj := feature.PriorityIndex(names[i]), feature.PriorityIndex(names[j])
		switch {
		case pi >= 0 && pj >= 0:
			return pi < pj
		case pi >= 0:
			return true
		case pj >= 0:
			return false
		}

		ni, iOK := leadingNumber(names[i])
		nj, jOK := leadingNumber(names[j])
		switch {
		case iOK && jOK:
			if ni != nj {
				return ni < nj
			}
		case iOK:
			return true
		case jOK:
			return false
		}

		return collator.CompareString(names[i], names[j]) < 0
	})
}

// leadingNumber extracts a decimal prefix from a bucket name ("2線" -> 2).
func leadingNumber(s string) (int, bool) {
	end := 0
	for _, r := range s {
		if !unicode.IsDigit(r) {
			break
		}
		end += len(string(r))
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// liveDates returns the assignment's dates, substituting the live override
// when it targets this assignment.
func liveDates(a feature.Assignment, live *LiveOverride) (time.Time, time.Time) {
	if live != nil && live.AssignmentID == a.ID {
		return live.Start, live.End
	}
	return a.Start, a.End
}

// LeafCount returns the number of leaf rows in a projection.
func LeafCount(rows []Row) int {
	n := 0
	for _, r := range rows {
		if r.Kind == RowLeaf {
			n++
		}
	}
	return n
}
