package theme

import "testing"

func TestLoad(t *testing.T) {
	for _, name := range Available() {
		th := Load(name)
		if th.Name != name {
			t.Errorf("Load(%q).Name = %q", name, th.Name)
		}
		if th.Bg == "" || th.Fg == "" || th.Accent == "" {
			t.Errorf("theme %q has empty core colors", name)
		}
	}
}

func TestLoad_FallsBackToFrappe(t *testing.T) {
	th := Load("does-not-exist")
	if th.Name != "frappe" {
		t.Errorf("fallback theme = %q, want frappe", th.Name)
	}
	if th := Load(""); th.Name != "frappe" {
		t.Errorf("empty name theme = %q, want frappe", th.Name)
	}
}

func TestLoad_ReturnsCopy(t *testing.T) {
	a := Load("mocha")
	a.Accent = "#000000"
	if Load("mocha").Accent == "#000000" {
		t.Error("mutating a loaded theme changed the shared table")
	}
}

func TestIsAvailable(t *testing.T) {
	if !IsAvailable("Mocha") {
		t.Error("IsAvailable should be case-insensitive")
	}
	if IsAvailable("solarized") {
		t.Error("unknown theme reported available")
	}
}
