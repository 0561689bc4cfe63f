package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func darkTheme() *Theme {
	return &Theme{
		Bg:          "#101010",
		BgHighlight: "#202020",
		BgSelection: "#303030",
		Fg:          "#ffffff",
		FgMuted:     "#aaaaaa",
		Accent:      "#ff0000",
		Warning:     "#888888",
		Cursor:      "#777777",
	}
}

func TestPalette_BlockDarkTheme(t *testing.T) {
	palette := NewPalette(darkTheme())

	block := palette.Block("#89B4FA")
	if block.Swatch != lipgloss.Color("#89b4fa") {
		t.Errorf("Swatch = %q, want lowercase activity color", block.Swatch)
	}
	if want := lipgloss.Color(scaleColor("#89b4fa", 0.5, 40)); block.Bg != want {
		t.Errorf("Bg = %q, want %q", block.Bg, want)
	}
	if block.Bg == block.BgAlt {
		t.Error("expected alternate shade to differ from Bg")
	}
	if block.Fg != lipgloss.Color("#101010") && block.Fg != lipgloss.Color("#ffffff") {
		t.Errorf("Fg = %q, want one of the theme text colors", block.Fg)
	}
}

func TestPalette_BlockFallsBackToAccent(t *testing.T) {
	palette := NewPalette(darkTheme())

	for _, color := range []string{"", "blue", "#12345"} {
		if got, want := palette.Block(color), palette.Block("#ff0000"); got != want {
			t.Errorf("Block(%q) = %+v, want accent block %+v", color, got, want)
		}
	}
}

func TestPalette_BlockLightTheme(t *testing.T) {
	th := darkTheme()
	th.Bg = "#ffffff"
	th.Fg = "#000000"
	palette := NewPalette(th)

	block := palette.Block("#000000")
	if want := lipgloss.Color(blendColors("#000000", "#ffffff", 0.70)); block.Bg != want {
		t.Errorf("Bg = %q, want %q", block.Bg, want)
	}
	if block.OnSwatch != lipgloss.Color("#ffffff") {
		t.Errorf("OnSwatch = %q, want white text on black", block.OnSwatch)
	}
}

func TestScaleColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#ffffff", "#7f7f7f"},
		{"#000000", "#282828"},
		{"#ff2000", "#7f2828"},
		{"red", "red"},
	}
	for _, tt := range tests {
		if got := scaleColor(tt.in, 0.5, 40); got != tt.want {
			t.Errorf("scaleColor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBlendColors(t *testing.T) {
	if got := blendColors("#000000", "#ffffff", 0.5); got != "#7f7f7f" {
		t.Errorf("blend = %q, want #7f7f7f", got)
	}
	if got := blendColors("#000000", "#ffffff", 2); got != "#ffffff" {
		t.Errorf("blend clamps ratio, got %q", got)
	}
	if got := blendColors("bad", "#ffffff", 0.5); got != "bad" {
		t.Errorf("blend of invalid color = %q, want input", got)
	}
}

func TestChooseTextColor(t *testing.T) {
	if got := chooseTextColor("#000000", "#ffffff", "#111111"); got != "#ffffff" {
		t.Errorf("text on black = %q, want #ffffff", got)
	}
	if got := chooseTextColor("#ffffff", "#eeeeee", "#000000"); got != "#000000" {
		t.Errorf("text on white = %q, want #000000", got)
	}
}
