package cm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKebabCase(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"color":           "color",
		"backgroundColor": "background-color",
		"outlineColor":    "outline-color",
		"WebkitTransform": "webkit-transform",
		"--brand-Color":   "--brand-Color",
		"font-size":       "font-size",
	}
	for in, want := range cases {
		require.Equal(t, want, KebabCase(in), in)
	}
}

func TestStyleMapCSSIsSorted(t *testing.T) {
	t.Parallel()

	s := StyleMap{"z-index": 2, "color": "red", "--gap": "4px"}
	require.Equal(t, "--gap: 4px; color: red; z-index: 2;", s.CSS())
	require.Equal(t, "", StyleMap{}.CSS())
}

func TestStyleOverrideOrderThroughExtension(t *testing.T) {
	t.Parallel()

	base := Button().Template("text-blue ", func(a Args) string {
		color := "blue"
		if a.Bool("$disabled") {
			color = "gray"
		}
		return a.Style(StyleMap{"color": color})
	})
	outlined := Extend(base).Template(Style(StyleMap{"outlineColor": "red"}))
	recolored := Extend(outlined).Template(Style(StyleMap{"color": "black"}))

	require.Equal(t, StyleMap{"color": "gray"}, base.ComputeStyles(Props{"$disabled": true}))
	require.Equal(t, StyleMap{"color": "gray", "outline-color": "red"}, outlined.ComputeStyles(Props{"$disabled": true}))
	require.Equal(t, StyleMap{"color": "black", "outline-color": "red"}, recolored.ComputeStyles(Props{"$disabled": true}))
	require.Equal(t, "text-blue", recolored.ComputeClassName(nil))
}

func TestStylesAreNotSharedBetweenRenders(t *testing.T) {
	t.Parallel()

	c := Div().Template(func(a Args) string {
		if a.Bool("$a") {
			a.Style(StyleMap{"color": "red"})
		}
		return ""
	})

	require.Equal(t, StyleMap{"color": "red"}, c.ComputeStyles(Props{"$a": true}))
	require.Empty(t, c.ComputeStyles(Props{}))
}

func TestNormalizeStyleResolvesFunctions(t *testing.T) {
	t.Parallel()

	got := normalizeStyle(StyleMap{
		"backgroundColor": func(p Props) any { return p.String("$bg") },
		"margin":          nil,
		"opacity":         func(Props) any { return nil },
	}, Props{"$bg": "teal"})

	require.Equal(t, StyleMap{"background-color": "teal"}, got)
}

func TestLaterLayerWinsAcrossKeySpellings(t *testing.T) {
	t.Parallel()

	base := Div().Template(Style(StyleMap{"backgroundColor": "red"}))
	recolored := Extend(base).Template(Style(StyleMap{"background-color": "blue"}))
	reverted := Extend(recolored).Template(Style(StyleMap{"backgroundColor": "green"}))

	for i := 0; i < 50; i++ {
		require.Equal(t, StyleMap{"background-color": "blue"}, recolored.Prepare(nil).Style)
		require.Equal(t, StyleMap{"background-color": "green"}, reverted.Prepare(nil).Style)
	}
	require.Equal(t, StyleMap{"background-color": "blue"}, recolored.ComputeStyles(nil))
}
