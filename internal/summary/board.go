// Package summary aggregates board workload statistics.
package summary

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/nmoreras/ganttboard/internal/feature"
)

// RoleLoad is one role's aggregated workload across the board.
type RoleLoad struct {
	Role        string
	Bars        int
	WorkingDays int
}

// BoardSummary holds aggregated board data.
type BoardSummary struct {
	Features    int
	Assignments int
	Start       time.Time // earliest bar start, zero when the board is empty
	End         time.Time // latest bar end
	Roles       []RoleLoad
}

// Summarize aggregates a feature collection into per-role workload.
// Well-known roles fold case-insensitively, so "fe" and "FE" land in one
// bucket; fan-out tokens (RD, ALL) are counted as their own row rather than
// duplicated, matching how effort is actually staffed.
func Summarize(features []feature.Feature) *BoardSummary {
	s := &BoardSummary{Features: len(features)}
	loads := make(map[string]*RoleLoad)

	for _, f := range features {
		for _, a := range f.Assignments {
			s.Assignments++
			if s.Start.IsZero() || a.Start.Before(s.Start) {
				s.Start = a.Start
			}
			if a.End.After(s.End) {
				s.End = a.End
			}

			role := feature.CanonicalBucket(a.Role)
			if role == "" {
				role = feature.RoleUnassigned
			}
			load, ok := loads[role]
			if !ok {
				load = &RoleLoad{Role: role}
				loads[role] = load
			}
			load.Bars++
			load.WorkingDays += a.WorkingDays()
		}
	}

	s.Roles = make([]RoleLoad, 0, len(loads))
	for _, load := range loads {
		s.Roles = append(s.Roles, *load)
	}
	sortRoles(s.Roles)
	return s
}

// Build loads a project and summarizes it.
func Build(ctx context.Context, repo feature.Repository, projectID string) (*BoardSummary, error) {
	features, err := repo.LoadTasks(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading project: %w", err)
	}
	return Summarize(features), nil
}

// sortRoles orders well-known roles first in priority order, the rest by
// name, mirroring the board's bucket ordering.
func sortRoles(roles []RoleLoad) {
	sort.SliceStable(roles, func(i, j int) bool {
		pi, pj := feature.PriorityIndex(roles[i].Role), feature.PriorityIndex(roles[j].Role)
		switch {
		case pi >= 0 && pj >= 0:
			return pi < pj
		case pi >= 0:
			return true
		case pj >= 0:
			return false
		}
		return roles[i].Role < roles[j].Role
	})
}
