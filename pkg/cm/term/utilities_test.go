package term

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/classmate/pkg/cm"
)

func TestPaletteColor(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	tests := []struct {
		token string
		want  lipgloss.Color
		ok    bool
	}{
		{token: "blue-500", want: lipgloss.Color("#3b82f6"), ok: true},
		{token: "red-50", want: lipgloss.Color("#fef2f2"), ok: true},
		{token: "slate-900", want: lipgloss.Color("#0f172a"), ok: true},
		{token: "white", want: lipgloss.Color("#ffffff"), ok: true},
		{token: "[#ff00aa]", want: lipgloss.Color("#ff00aa"), ok: true},
		{token: "blue-550", ok: false},
		{token: "teal-500", ok: false},
		{token: "sm", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			t.Parallel()

			got, ok := theme.PaletteColor(tt.token)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFromClasses(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	s := FromClasses("font-bold italic text-blue-500 bg-slate-900 px-4 py-4 text-sm hover:underline", theme)

	assert.True(t, s.GetBold())
	assert.True(t, s.GetItalic())
	assert.False(t, s.GetUnderline())
	assert.Equal(t, lipgloss.Color("#3b82f6"), s.GetForeground())
	assert.Equal(t, lipgloss.Color("#0f172a"), s.GetBackground())
	assert.Equal(t, 2, s.GetPaddingLeft())
	assert.Equal(t, 2, s.GetPaddingRight())
	assert.Equal(t, 1, s.GetPaddingTop())
}

func TestFromClassesLaterWins(t *testing.T) {
	t.Parallel()

	s := FromClasses("text-red-500 text-green-500", DefaultTheme())
	assert.Equal(t, lipgloss.Color("#22c55e"), s.GetForeground())
}

func TestFromClassesBorders(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()

	assert.Equal(t, lipgloss.RoundedBorder(), FromClasses("border rounded-lg", theme).GetBorderStyle())
	assert.Equal(t, lipgloss.ThickBorder(), FromClasses("border-2 rounded", theme).GetBorderStyle())
	assert.Equal(t, lipgloss.Border{}, FromClasses("rounded", theme).GetBorderStyle())
}

func TestFromStyleMap(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	base := FromClasses("text-blue-500", theme)
	s := FromStyleMap(base, cm.StyleMap{
		"color":           "#123456",
		"font-weight":     700,
		"text-decoration": "underline",
		"padding-left":    "3px",
		"width":           20,
	}, theme)

	assert.Equal(t, lipgloss.Color("#123456"), s.GetForeground())
	assert.True(t, s.GetBold())
	assert.True(t, s.GetUnderline())
	assert.Equal(t, 3, s.GetPaddingLeft())
	assert.Equal(t, 20, s.GetWidth())
}

func TestUtilityIgnoresUnknownClasses(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	for _, class := range []string{"flex", "text-lg", "md:p-4", "p-x", "shadow", ""} {
		_, ok := Utility(class, theme)
		assert.False(t, ok, class)
	}
}

func TestFromClassesTextCase(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()

	assert.Equal(t, "Save Draft", FromClasses("capitalize", theme).GetTransform()("save draft"))
	assert.Equal(t, "McDonald Farm", FromClasses("capitalize", theme).GetTransform()("mcDonald farm"))
	assert.Equal(t, "SAVE", FromClasses("uppercase", theme).GetTransform()("save"))
	assert.Equal(t, "save", FromClasses("uppercase lowercase", theme).GetTransform()("SaVe"))
	assert.Nil(t, FromClasses("uppercase normal-case", theme).GetTransform())
}
