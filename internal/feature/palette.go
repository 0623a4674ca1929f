package feature

import (
	"hash/fnv"
	"strings"
)

// Palette is the fixed set of bar color tokens. Hash fallback indexes into
// this slice, so its order is part of the stable color contract.
var Palette = []string{
	"#f38ba8", // pink
	"#fab387", // peach
	"#f9e2af", // yellow
	"#a6e3a1", // green
	"#94e2d5", // teal
	"#89b4fa", // blue
	"#b4befe", // lavender
	"#cba6f7", // mauve
}

// roleKeyword maps a set of role substrings to a fixed palette token.
// The table is scanned in order; the first match wins.
type roleKeyword struct {
	keys  []string
	color string
}

var roleKeywords = []roleKeyword{
	{keys: []string{"design", "ui"}, color: "#cba6f7"},
	{keys: []string{"frontend", "fe"}, color: "#89b4fa"},
	{keys: []string{"backend", "be"}, color: "#a6e3a1"},
	{keys: []string{"pm"}, color: "#f9e2af"},
	{keys: []string{"qa", "test"}, color: "#fab387"},
	{keys: []string{"ux", "research"}, color: "#f38ba8"},
	{keys: []string{"data"}, color: "#94e2d5"},
	{keys: []string{"rd", "all", "全部"}, color: "#b4befe"},
}

// RoleColor maps a role label to a palette token. Keyword matches are tried
// in table order against the lowercased role; anything else falls back to a
// stable string hash over the palette. Same role in, same color out, always.
func RoleColor(role string) string {
	r := strings.ToLower(NormalizeRole(role))
	for _, kw := range roleKeywords {
		for _, key := range kw.keys {
			if strings.Contains(r, key) {
				return kw.color
			}
		}
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(r))
	return Palette[h.Sum32()%uint32(len(Palette))]
}
