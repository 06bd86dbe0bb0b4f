package term

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/classmate/pkg/cm"
)

// StyleFunc applies one styling transformation using data from a Theme.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// transform applies a text case mapping. Casers are stateful, so one is built per render.
func transform(caser func() cases.Caser) StyleFunc {
	return func(s lipgloss.Style, _ Theme) lipgloss.Style {
		return s.Transform(func(text string) string {
			c := caser()
			return c.String(text)
		})
	}
}

// Tailwind spacing units are a quarter rem. A cell is about half a rem wide and one rem tall.
func columns(units int) int {
	if units <= 0 {
		return 0
	}
	if units < 2 {
		return 1
	}
	return units / 2
}

func lines(units int) int {
	return units / 4
}

var alignments = map[string]lipgloss.Position{
	"left":   lipgloss.Left,
	"center": lipgloss.Center,
	"right":  lipgloss.Right,
}

// Utility returns the styling for a single utility class. Responsive and state prefixes
// ("md:", "hover:") and classes without a terminal meaning are not recognised.
func Utility(class string, theme Theme) (StyleFunc, bool) {
	if class == "" || strings.Contains(class, ":") {
		return nil, false
	}

	switch class {
	case "font-bold", "font-semibold", "font-extrabold", "font-black":
		return func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.Bold(true) }, true
	case "italic":
		return func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.Italic(true) }, true
	case "underline":
		return func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.Underline(true) }, true
	case "line-through":
		return func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.Strikethrough(true) }, true
	case "uppercase":
		return transform(func() cases.Caser { return cases.Upper(language.Und) }), true
	case "lowercase":
		return transform(func() cases.Caser { return cases.Lower(language.Und) }), true
	case "capitalize":
		return transform(func() cases.Caser { return cases.Title(language.Und, cases.NoLower) }), true
	case "normal-case":
		return func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.UnsetTransform() }, true
	case "border":
		return func(s lipgloss.Style, t Theme) lipgloss.Style { return s.Border(t.Borders.Normal) }, true
	case "border-2", "border-4":
		return func(s lipgloss.Style, t Theme) lipgloss.Style { return s.Border(t.Borders.Thick) }, true
	case "border-double":
		return func(s lipgloss.Style, t Theme) lipgloss.Style { return s.Border(t.Borders.Double) }, true
	}

	if strings.HasPrefix(class, "opacity-") {
		if n, err := strconv.Atoi(strings.TrimPrefix(class, "opacity-")); err == nil && n < 100 {
			return func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.Faint(true) }, true
		}
		return nil, false
	}

	if strings.HasPrefix(class, "text-") {
		rest := strings.TrimPrefix(class, "text-")
		if pos, ok := alignments[rest]; ok {
			return func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.Align(pos) }, true
		}
		if color, ok := theme.PaletteColor(rest); ok {
			return func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.Foreground(color) }, true
		}
		return nil, false
	}

	if strings.HasPrefix(class, "bg-") {
		if color, ok := theme.PaletteColor(strings.TrimPrefix(class, "bg-")); ok {
			return func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.Background(color) }, true
		}
		return nil, false
	}

	if strings.HasPrefix(class, "border-") {
		if color, ok := theme.PaletteColor(strings.TrimPrefix(class, "border-")); ok {
			return func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.BorderForeground(color) }, true
		}
		return nil, false
	}

	return spacing(class)
}

func spacing(class string) (StyleFunc, bool) {
	prefix, value, ok := strings.Cut(class, "-")
	if !ok {
		return nil, false
	}
	units, err := strconv.Atoi(value)
	if err != nil || units < 0 {
		return nil, false
	}
	x, y := columns(units), lines(units)

	switch prefix {
	case "p":
		return func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.Padding(y, x) }, true
	case "px":
		return func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.PaddingLeft(x).PaddingRight(x) }, true
	case "py":
		return func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.PaddingTop(y).PaddingBottom(y) }, true
	case "pl":
		return func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.PaddingLeft(x) }, true
	case "pr":
		return func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.PaddingRight(x) }, true
	case "m":
		return func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.Margin(y, x) }, true
	case "mx":
		return func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.MarginLeft(x).MarginRight(x) }, true
	case "my":
		return func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.MarginTop(y).MarginBottom(y) }, true
	case "w":
		return func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.Width(x) }, true
	}
	return nil, false
}

// FromClasses builds a style from a class string. Later classes override earlier ones.
func FromClasses(className string, theme Theme) lipgloss.Style {
	style := lipgloss.NewStyle()
	rounded := false
	for _, class := range strings.Fields(className) {
		if class == "rounded" || strings.HasPrefix(class, "rounded-") {
			rounded = true
			continue
		}
		if fn, ok := Utility(class, theme); ok {
			style = fn(style, theme)
		}
	}
	if rounded && style.GetBorderStyle() == theme.Borders.Normal {
		style = style.Border(theme.Borders.Rounded)
	}
	return style
}

// FromStyleMap applies inline style declarations on top of base.
func FromStyleMap(base lipgloss.Style, styles cm.StyleMap, theme Theme) lipgloss.Style {
	style := base
	for key, raw := range styles {
		value := strings.TrimSpace(fmt.Sprint(raw))
		switch key {
		case "color":
			style = style.Foreground(cssColor(value, theme))
		case "background", "background-color":
			style = style.Background(cssColor(value, theme))
		case "border-color":
			style = style.BorderForeground(cssColor(value, theme))
		case "font-weight":
			style = style.Bold(value == "bold" || value == "bolder" || atLeast(value, 600))
		case "font-style":
			style = style.Italic(value == "italic" || value == "oblique")
		case "text-decoration", "text-decoration-line":
			style = style.Underline(strings.Contains(value, "underline")).
				Strikethrough(strings.Contains(value, "line-through"))
		case "text-align":
			if pos, ok := alignments[value]; ok {
				style = style.Align(pos)
			}
		case "opacity":
			if f, err := strconv.ParseFloat(value, 64); err == nil {
				style = style.Faint(f < 1)
			}
		case "width":
			if n, ok := cells(value); ok {
				style = style.Width(n)
			}
		case "padding-left":
			if n, ok := cells(value); ok {
				style = style.PaddingLeft(n)
			}
		case "padding-right":
			if n, ok := cells(value); ok {
				style = style.PaddingRight(n)
			}
		case "padding-top":
			if n, ok := cells(value); ok {
				style = style.PaddingTop(n)
			}
		case "padding-bottom":
			if n, ok := cells(value); ok {
				style = style.PaddingBottom(n)
			}
		}
	}
	return style
}

// cssColor accepts hex and ANSI values directly and palette tokens such as "blue-500".
func cssColor(value string, theme Theme) lipgloss.Color {
	if color, ok := theme.PaletteColor(value); ok {
		return color
	}
	return lipgloss.Color(value)
}

// cells parses "3", "3px" or "3ch" as a cell count.
func cells(value string) (int, bool) {
	value = strings.TrimSuffix(strings.TrimSuffix(value, "px"), "ch")
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func atLeast(value string, floor int) bool {
	n, err := strconv.Atoi(value)
	return err == nil && n >= floor
}
