package feature

import "strings"

// RoleUnassigned is the display placeholder for an assignment with no role.
const RoleUnassigned = "未指派"

// Fan-out tokens. In the role grouping an "RD" assignment belongs to both
// engineering buckets, and an "ALL" assignment to every core role.
const (
	RoleTokenRD  = "RD"
	RoleTokenAll = "ALL"
)

// CoreRoles is the fixed role set an "ALL" assignment fans out into.
var CoreRoles = []string{"FE", "BE", "UI", "UX", "PM"}

// rolePriority is the well-known role ordering used when sorting role
// buckets: listed buckets come first, in this order.
var rolePriority = []string{"FE", "BE", "UI", "UX", "PM", "QA", "Data"}

// NormalizeRole trims surrounding whitespace from a role label.
func NormalizeRole(role string) string {
	return strings.TrimSpace(role)
}

// IsFanOutToken reports whether the role duplicates into multiple buckets
// (case-insensitive). "全部" is the localized spelling of ALL.
func IsFanOutToken(role string) bool {
	switch strings.ToUpper(NormalizeRole(role)) {
	case RoleTokenRD, RoleTokenAll, "全部":
		return true
	default:
		return false
	}
}

// FanOut returns the bucket names an assignment's role maps to in role
// grouping. A plain role maps to itself (trimmed); RD fans into FE and BE;
// ALL fans into the full core role set. An empty role maps to the
// unassigned placeholder.
func FanOut(role string) []string {
	r := NormalizeRole(role)
	if r == "" {
		return []string{RoleUnassigned}
	}
	switch strings.ToUpper(r) {
	case RoleTokenRD:
		return []string{"FE", "BE"}
	case RoleTokenAll, "全部":
		return append([]string(nil), CoreRoles...)
	default:
		return []string{r}
	}
}

// CanonicalBucket returns the well-known spelling of a role when it matches
// the priority list case-insensitively, otherwise the trimmed role unchanged.
func CanonicalBucket(role string) string {
	r := NormalizeRole(role)
	if i := PriorityIndex(r); i >= 0 {
		return rolePriority[i]
	}
	return r
}

// PriorityIndex returns the position of a bucket in the well-known role
// ordering, or -1 when the bucket is not a well-known role. Comparison is
// case-insensitive.
func PriorityIndex(bucket string) int {
	for i, r := range rolePriority {
		if strings.EqualFold(r, bucket) {
			return i
		}
	}
	return -1
}
