// Package snapshot encodes a feature collection into a compact string that
// can travel inside a URL query parameter, and decodes it back. Snapshots
// are read-only views: the decoder never mutates and never fails hard.
package snapshot

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/nmoreras/ganttboard/internal/dateutil"
	"github.com/nmoreras/ganttboard/internal/feature"
)

// shortDoc is the wire layout. Keys are single letters to keep the encoded
// string short enough for a URL.
type shortDoc struct {
	V int            `json:"v"`
	F []shortFeature `json:"f"`
}

type shortFeature struct {
	ID   string            `json:"i"`
	Name string            `json:"n"`
	A    []shortAssignment `json:"a,omitempty"`
}

type shortAssignment struct {
	ID       string `json:"i"`
	Role     string `json:"r"`
	Label    string `json:"l,omitempty"`
	Start    string `json:"s"`
	End      string `json:"e"`
	Progress int    `json:"p,omitempty"`
	Color    string `json:"c,omitempty"`
}

// legacyDoc is the older full-key layout, still accepted on decode.
type legacyDoc struct {
	Features []legacyFeature `json:"features"`
}

type legacyFeature struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Assignments []legacyAssignment `json:"assignments"`
}

type legacyAssignment struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	Label    string `json:"label"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Progress int    `json:"progress"`
	Color    string `json:"color"`
}

// Encode serializes the collection into a URL-safe snapshot string.
func Encode(features []feature.Feature) string {
	doc := shortDoc{V: 1, F: make([]shortFeature, len(features))}
	for i, f := range features {
		sf := shortFeature{ID: f.ID, Name: f.Name}
		for _, a := range f.Assignments {
			sf.A = append(sf.A, shortAssignment{
				ID:       a.ID,
				Role:     a.Role,
				Label:    a.Label,
				Start:    dateutil.FormatDate(a.Start),
				End:      dateutil.FormatDate(a.End),
				Progress: a.Progress,
				Color:    a.Color,
			})
		}
		doc.F[i] = sf
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}

// Decode parses a snapshot string. The second return value reports whether
// a snapshot was present; any malformed input decodes to (nil, false) so
// callers fall back to a normal load.
func Decode(s string) ([]feature.Feature, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}

	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
	if err != nil {
		// Older encoders used the standard alphabet.
		raw, err = base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, false
		}
	}

	var short shortDoc
	if err := json.Unmarshal(raw, &short); err == nil && short.F != nil {
		return fromShort(short)
	}

	var legacy legacyDoc
	if err := json.Unmarshal(raw, &legacy); err == nil && legacy.Features != nil {
		return fromLegacy(legacy)
	}

	return nil, false
}

func fromShort(doc shortDoc) ([]feature.Feature, bool) {
	out := make([]feature.Feature, 0, len(doc.F))
	for _, sf := range doc.F {
		f := feature.Feature{ID: sf.ID, Name: sf.Name}
		for _, sa := range sf.A {
			a, ok := assignmentFromWire(sa.ID, sa.Role, sa.Label, sa.Start, sa.End, sa.Progress, sa.Color)
			if !ok {
				return nil, false
			}
			f.Assignments = append(f.Assignments, a)
		}
		out = append(out, f)
	}
	return out, true
}

func fromLegacy(doc legacyDoc) ([]feature.Feature, bool) {
	out := make([]feature.Feature, 0, len(doc.Features))
	for _, lf := range doc.Features {
		f := feature.Feature{ID: lf.ID, Name: lf.Name}
		for _, la := range lf.Assignments {
			a, ok := assignmentFromWire(la.ID, la.Role, la.Label, la.Start, la.End, la.Progress, la.Color)
			if !ok {
				return nil, false
			}
			f.Assignments = append(f.Assignments, a)
		}
		out = append(out, f)
	}
	return out, true
}

func assignmentFromWire(id, role, label, start, end string, progress int, color string) (feature.Assignment, bool) {
	startDate, err := dateutil.ParseDate(start)
	if err != nil {
		return feature.Assignment{}, false
	}
	endDate, err := dateutil.ParseDate(end)
	if err != nil {
		return feature.Assignment{}, false
	}
	if color == "" {
		color = feature.RoleColor(role)
	}

	a := feature.Assignment{
		ID:       id,
		Role:     role,
		Label:    label,
		Start:    startDate,
		End:      endDate,
		Progress: progress,
		Color:    color,
	}
	a.ClampDates()
	return a, true
}
