package term

import (
	"github.com/charmbracelet/lipgloss"
)

const paletteShadeCount = 10

// PaletteShades represents a Tailwind-style color scale with 10 shades from lightest to darkest.
// Shades are indexed from 50 (lightest) to 900 (darkest), matching Tailwind's numbering.
type PaletteShades struct {
	colors [paletteShadeCount]lipgloss.Color
}

// NewPaletteShades creates a palette shade scale from the provided colors.
// Colors should be ordered from lightest to darkest. Accepts up to 10 colors.
func NewPaletteShades(colors ...lipgloss.Color) PaletteShades {
	var shades PaletteShades
	for i := 0; i < paletteShadeCount && i < len(colors); i++ {
		shades.colors[i] = colors[i]
	}
	return shades
}

// Color returns the color at the specified shade level, or "" when out of bounds.
func (ps PaletteShades) Color(shade PaletteShade) lipgloss.Color {
	index := int(shade)
	if index < 0 || index >= paletteShadeCount {
		return ""
	}
	return ps.colors[index]
}

// PaletteFamily names a color family of the palette.
type PaletteFamily int

const (
	PaletteSlate PaletteFamily = iota
	PaletteGray
	PaletteBlue
	PaletteGreen
	PaletteRed
	PaletteYellow
	PalettePurple
	PaletteCyan
)

var familyNames = map[string]PaletteFamily{
	"slate":  PaletteSlate,
	"gray":   PaletteGray,
	"blue":   PaletteBlue,
	"green":  PaletteGreen,
	"red":    PaletteRed,
	"yellow": PaletteYellow,
	"purple": PalettePurple,
	"cyan":   PaletteCyan,
}

// PaletteShade indexes a PaletteShades scale.
type PaletteShade int

const (
	PaletteShade50 PaletteShade = iota
	PaletteShade100
	PaletteShade200
	PaletteShade300
	PaletteShade400
	PaletteShade500
	PaletteShade600
	PaletteShade700
	PaletteShade800
	PaletteShade900
)

var shadeNames = map[string]PaletteShade{
	"50":  PaletteShade50,
	"100": PaletteShade100,
	"200": PaletteShade200,
	"300": PaletteShade300,
	"400": PaletteShade400,
	"500": PaletteShade500,
	"600": PaletteShade600,
	"700": PaletteShade700,
	"800": PaletteShade800,
	"900": PaletteShade900,
}

// ColorPalette holds every family the utility mapper understands.
type ColorPalette struct {
	Slate  PaletteShades
	Gray   PaletteShades
	Blue   PaletteShades
	Green  PaletteShades
	Red    PaletteShades
	Yellow PaletteShades
	Purple PaletteShades
	Cyan   PaletteShades
}

// Shades returns the scale of family.
func (cp ColorPalette) Shades(family PaletteFamily) PaletteShades {
	switch family {
	case PaletteGray:
		return cp.Gray
	case PaletteBlue:
		return cp.Blue
	case PaletteGreen:
		return cp.Green
	case PaletteRed:
		return cp.Red
	case PaletteYellow:
		return cp.Yellow
	case PalettePurple:
		return cp.Purple
	case PaletteCyan:
		return cp.Cyan
	default:
		return cp.Slate
	}
}

// BorderSet groups the borders selected by border utilities.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// Theme maps utility classes onto terminal styling.
type Theme struct {
	Colors  ColorPalette
	White   lipgloss.Color
	Black   lipgloss.Color
	Borders BorderSet
}

// DefaultTheme returns the Tailwind palette.
func DefaultTheme() Theme {
	return Theme{
		White: lipgloss.Color("#ffffff"),
		Black: lipgloss.Color("#000000"),
		Borders: BorderSet{
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
			Double:  lipgloss.DoubleBorder(),
		},
		Colors: ColorPalette{
			Slate: NewPaletteShades(
				lipgloss.Color("#f8fafc"),
				lipgloss.Color("#f1f5f9"),
				lipgloss.Color("#e2e8f0"),
				lipgloss.Color("#cbd5e1"),
				lipgloss.Color("#94a3b8"),
				lipgloss.Color("#64748b"),
				lipgloss.Color("#475569"),
				lipgloss.Color("#334155"),
				lipgloss.Color("#1e293b"),
				lipgloss.Color("#0f172a"),
			),
			Gray: NewPaletteShades(
				lipgloss.Color("#f9fafb"),
				lipgloss.Color("#f3f4f6"),
				lipgloss.Color("#e5e7eb"),
				lipgloss.Color("#d1d5db"),
				lipgloss.Color("#9ca3af"),
				lipgloss.Color("#6b7280"),
				lipgloss.Color("#4b5563"),
				lipgloss.Color("#374151"),
				lipgloss.Color("#1f2937"),
				lipgloss.Color("#111827"),
			),
			Blue: NewPaletteShades(
				lipgloss.Color("#eff6ff"),
				lipgloss.Color("#dbeafe"),
				lipgloss.Color("#bfdbfe"),
				lipgloss.Color("#93c5fd"),
				lipgloss.Color("#60a5fa"),
				lipgloss.Color("#3b82f6"),
				lipgloss.Color("#2563eb"),
				lipgloss.Color("#1d4ed8"),
				lipgloss.Color("#1e40af"),
				lipgloss.Color("#1e3a8a"),
			),
			Green: NewPaletteShades(
				lipgloss.Color("#f0fdf4"),
				lipgloss.Color("#dcfce7"),
				lipgloss.Color("#bbf7d0"),
				lipgloss.Color("#86efac"),
				lipgloss.Color("#4ade80"),
				lipgloss.Color("#22c55e"),
				lipgloss.Color("#16a34a"),
				lipgloss.Color("#15803d"),
				lipgloss.Color("#166534"),
				lipgloss.Color("#14532d"),
			),
			Red: NewPaletteShades(
				lipgloss.Color("#fef2f2"),
				lipgloss.Color("#fee2e2"),
				lipgloss.Color("#fecaca"),
				lipgloss.Color("#fca5a5"),
				lipgloss.Color("#f87171"),
				lipgloss.Color("#ef4444"),
				lipgloss.Color("#dc2626"),
				lipgloss.Color("#b91c1c"),
				lipgloss.Color("#991b1b"),
				lipgloss.Color("#7f1d1d"),
			),
			Yellow: NewPaletteShades(
				lipgloss.Color("#fefce8"),
				lipgloss.Color("#fef3c7"),
				lipgloss.Color("#fde68a"),
				lipgloss.Color("#fcd34d"),
				lipgloss.Color("#fbbf24"),
				lipgloss.Color("#eab308"),
				lipgloss.Color("#ca8a04"),
				lipgloss.Color("#a16207"),
				lipgloss.Color("#854d0e"),
				lipgloss.Color("#713f12"),
			),
			Purple: NewPaletteShades(
				lipgloss.Color("#faf5ff"),
				lipgloss.Color("#f3e8ff"),
				lipgloss.Color("#e9d5ff"),
				lipgloss.Color("#d8b4fe"),
				lipgloss.Color("#c084fc"),
				lipgloss.Color("#a855f7"),
				lipgloss.Color("#9333ea"),
				lipgloss.Color("#7c3aed"),
				lipgloss.Color("#6b21a8"),
				lipgloss.Color("#581c87"),
			),
			Cyan: NewPaletteShades(
				lipgloss.Color("#ecfeff"),
				lipgloss.Color("#cffafe"),
				lipgloss.Color("#a5f3fc"),
				lipgloss.Color("#67e8f9"),
				lipgloss.Color("#22d3ee"),
				lipgloss.Color("#06b6d4"),
				lipgloss.Color("#0891b2"),
				lipgloss.Color("#0e7490"),
				lipgloss.Color("#155e75"),
				lipgloss.Color("#164e63"),
			),
		},
	}
}

// PaletteColor resolves a color token such as "blue-500", "white" or "[#ff00aa]".
func (t Theme) PaletteColor(token string) (lipgloss.Color, bool) {
	switch token {
	case "white":
		return t.White, true
	case "black":
		return t.Black, true
	}
	if len(token) > 2 && token[0] == '[' && token[len(token)-1] == ']' {
		return lipgloss.Color(token[1 : len(token)-1]), true
	}

	for i := len(token) - 1; i > 0; i-- {
		if token[i] != '-' {
			continue
		}
		family, ok := familyNames[token[:i]]
		if !ok {
			return "", false
		}
		shade, ok := shadeNames[token[i+1:]]
		if !ok {
			return "", false
		}
		color := t.Colors.Shades(family).Color(shade)
		return color, color != ""
	}
	return "", false
}
