package theme

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds colors derived from a Theme, plus per-activity block colors
// computed on first use.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Warning     lipgloss.Color
	Cursor      lipgloss.Color

	TextOnAccent  lipgloss.Color
	TextOnWarning lipgloss.Color

	theme   Theme
	isLight bool
	blocks  map[string]BlockColors
}

// BlockColors are the colors used to draw one activity group.
type BlockColors struct {
	Bg       lipgloss.Color // Group body
	BgAlt    lipgloss.Color // Adjacent group of the same activity
	Fg       lipgloss.Color // Text on Bg
	Swatch   lipgloss.Color // The activity color itself
	OnSwatch lipgloss.Color // Text on Swatch
}

// NewPalette derives a Palette from the provided Theme.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load(DefaultName)
	}

	return &Palette{
		Bg:          lipgloss.Color(t.Bg),
		BgHighlight: lipgloss.Color(t.BgHighlight),
		BgSelection: lipgloss.Color(t.BgSelection),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Warning:     lipgloss.Color(t.Warning),
		Cursor:      lipgloss.Color(t.Cursor),

		TextOnAccent:  lipgloss.Color(chooseTextColor(t.Accent, t.Bg, t.Fg)),
		TextOnWarning: lipgloss.Color(chooseTextColor(t.Warning, t.Bg, t.Fg)),

		theme:   *t,
		isLight: isLightTheme(t.Bg),
		blocks:  make(map[string]BlockColors),
	}
}

// Block returns the colors for an activity with the given hex color.
// Activities without a usable color are drawn with the theme accent.
func (p *Palette) Block(color string) BlockColors {
	hex := strings.ToLower(color)
	if _, ok := parseRGB(hex); !ok {
		hex = p.theme.Accent
	}
	if b, ok := p.blocks[hex]; ok {
		return b
	}

	var bg string
	if p.isLight {
		bg = blendColors(hex, p.theme.Bg, 0.70)
	} else {
		bg = scaleColor(hex, 0.5, 40)
	}
	alt := blendColors(bg, "#ffffff", 0.25)
	if p.isLight {
		alt = blendColors(bg, "#000000", 0.10)
	}

	b := BlockColors{
		Bg:       lipgloss.Color(bg),
		BgAlt:    lipgloss.Color(alt),
		Fg:       lipgloss.Color(chooseTextColor(bg, p.theme.Bg, p.theme.Fg)),
		Swatch:   lipgloss.Color(hex),
		OnSwatch: lipgloss.Color(chooseTextColor(hex, p.theme.Bg, p.theme.Fg)),
	}
	p.blocks[hex] = b
	return b
}

func isLightTheme(bg string) bool {
	return relativeLuminance(bg) > 0.55
}

// parseRGB decodes a #rrggbb color.
func parseRGB(hex string) ([3]int, bool) {
	var rgb [3]int
	if len(hex) != 7 || hex[0] != '#' {
		return rgb, false
	}
	for i := range rgb {
		v, err := strconv.ParseUint(hex[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return rgb, false
		}
		rgb[i] = int(v)
	}
	return rgb, true
}

func formatRGB(rgb [3]int) string {
	for i, v := range rgb {
		rgb[i] = min(max(v, 0), 255)
	}
	return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])
}

// scaleColor darkens hex by factor with a per-channel floor so blocks stay
// visible on dark backgrounds.
func scaleColor(hex string, factor float64, floor int) string {
	rgb, ok := parseRGB(hex)
	if !ok {
		return hex
	}
	for i, v := range rgb {
		rgb[i] = max(int(float64(v)*factor), floor)
	}
	return formatRGB(rgb)
}

func blendColors(a, b string, ratio float64) string {
	ca, okA := parseRGB(a)
	cb, okB := parseRGB(b)
	if !okA || !okB {
		return a
	}
	ratio = math.Min(math.Max(ratio, 0), 1)

	var out [3]int
	for i := range out {
		out[i] = int(float64(ca[i])*(1-ratio) + float64(cb[i])*ratio)
	}
	return formatRGB(out)
}

func chooseTextColor(bg, lightText, darkText string) string {
	if contrastRatio(bg, lightText) >= contrastRatio(bg, darkText) {
		return lightText
	}
	return darkText
}

func contrastRatio(a, b string) float64 {
	l1 := relativeLuminance(a)
	l2 := relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

func relativeLuminance(hex string) float64 {
	rgb, ok := parseRGB(hex)
	if !ok {
		return 0
	}
	return 0.2126*srgbToLinear(rgb[0]) + 0.7152*srgbToLinear(rgb[1]) + 0.0722*srgbToLinear(rgb[2])
}

func srgbToLinear(c int) float64 {
	v := float64(c) / 255.0
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}
