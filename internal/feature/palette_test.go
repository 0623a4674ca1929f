package feature

import "testing"

func TestRoleColor_Keywords(t *testing.T) {
	tests := []struct {
		role string
		want string
	}{
		{"FE", "#89b4fa"},
		{"Frontend", "#89b4fa"},
		{"BE", "#a6e3a1"},
		{"backend dev", "#a6e3a1"},
		{"UI Design", "#cba6f7"},
		{"PM", "#f9e2af"},
		{"QA", "#fab387"},
		{"testing", "#fab387"},
		{"UX Research", "#f38ba8"},
		{"Data", "#94e2d5"},
		{"RD", "#b4befe"},
		{"ALL", "#b4befe"},
	}

	for _, tt := range tests {
		if got := RoleColor(tt.role); got != tt.want {
			t.Errorf("RoleColor(%q) = %q, want %q", tt.role, got, tt.want)
		}
	}
}

func TestRoleColor_HashFallbackIsStable(t *testing.T) {
	role := "行銷企劃"
	first := RoleColor(role)
	for i := 0; i < 10; i++ {
		if got := RoleColor(role); got != first {
			t.Fatalf("RoleColor(%q) unstable: %q vs %q", role, got, first)
		}
	}

	inPalette := false
	for _, c := range Palette {
		if c == first {
			inPalette = true
			break
		}
	}
	if !inPalette {
		t.Errorf("fallback color %q not in palette", first)
	}
}

func TestRoleColor_CaseInsensitive(t *testing.T) {
	if RoleColor("fe") != RoleColor("FE") {
		t.Error("case must not affect the derived color")
	}
}
