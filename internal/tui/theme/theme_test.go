package theme

import (
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		themeName string
		wantName  string
	}{
		{name: "mocha", themeName: "mocha", wantName: "mocha"},
		{name: "macchiato", themeName: "macchiato", wantName: "macchiato"},
		{name: "frappe", themeName: "frappe", wantName: "frappe"},
		{name: "latte", themeName: "latte", wantName: "latte"},
		{name: "light", themeName: "light", wantName: "light"},
		{name: "mixed case", themeName: "Latte", wantName: "latte"},
		{name: "empty name uses default", themeName: "", wantName: DefaultName},
		{name: "unknown name uses default", themeName: "solarized", wantName: DefaultName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th, err := Load(tt.themeName)
			if err != nil {
				t.Fatalf("Load(%q) unexpected error: %v", tt.themeName, err)
			}
			if th.Name != tt.wantName {
				t.Errorf("Load(%q).Name = %q, want %q", tt.themeName, th.Name, tt.wantName)
			}
		})
	}
}

func TestLoad_AllThemesHaveColors(t *testing.T) {
	for _, name := range Available() {
		th, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%q) unexpected error: %v", name, err)
		}

		colors := map[string]string{
			"Bg":          th.Bg,
			"BgHighlight": th.BgHighlight,
			"BgSelection": th.BgSelection,
			"Fg":          th.Fg,
			"FgMuted":     th.FgMuted,
			"Accent":      th.Accent,
			"Warning":     th.Warning,
			"Cursor":      th.Cursor,
		}
		for field, hex := range colors {
			if _, ok := parseRGB(hex); !ok {
				t.Errorf("%s.%s = %q, want #rrggbb", name, field, hex)
			}
		}
	}
}

func TestApplyDefaults(t *testing.T) {
	th := &Theme{Bg: "#000000", Fg: "#ffffff", Accent: "#ff0000"}
	th.applyDefaults()

	if th.BgHighlight != "#000000" || th.BgSelection != "#000000" {
		t.Errorf("background fallbacks = %q/%q, want Bg", th.BgHighlight, th.BgSelection)
	}
	if th.FgMuted != "#ffffff" {
		t.Errorf("FgMuted = %q, want Fg", th.FgMuted)
	}
	if th.Cursor != "#ff0000" || th.Warning != "#ff0000" {
		t.Errorf("accent fallbacks = %q/%q, want Accent", th.Cursor, th.Warning)
	}
}

func TestIsAvailable(t *testing.T) {
	tests := []struct {
		theme    string
		expected bool
	}{
		{theme: "mocha", expected: true},
		{theme: "Frappe", expected: true},
		{theme: "unknown", expected: false},
		{theme: "", expected: false},
	}

	for _, tt := range tests {
		if got := IsAvailable(tt.theme); got != tt.expected {
			t.Errorf("IsAvailable(%q) = %t, want %t", tt.theme, got, tt.expected)
		}
	}
}
