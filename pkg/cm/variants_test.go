package cm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sizeConfig() VariantsConfig {
	return VariantsConfig{
		Base: Class("inline-flex"),
		Variants: []VariantGroup{
			Group("$size", Options{"sm": Class("text-sm"), "lg": Class("text-lg")}),
		},
		DefaultVariants: map[string]any{"$size": "sm"},
	}
}

func TestVariantsScenario(t *testing.T) {
	t.Parallel()

	c := Button().Variants(sizeConfig())

	require.Equal(t, "inline-flex text-sm", c.ComputeClassName(nil))
	require.Equal(t, "inline-flex text-lg", c.ComputeClassName(Props{"$size": "lg"}))
	require.Equal(t, "Variants(button)", c.DisplayName())
}

func TestDefaultVariantMatchesExplicitValue(t *testing.T) {
	t.Parallel()

	cfg := sizeConfig()
	require.Equal(t, ResolveVariants(cfg, Props{"$size": "sm"}), ResolveVariants(cfg, Props{}))
	require.Equal(t, ResolveVariants(cfg, Props{"$size": "sm"}), ResolveVariants(cfg, Props{"$size": nil}))
}

func TestVariantMissesAreSilent(t *testing.T) {
	t.Parallel()

	cfg := sizeConfig()

	require.Equal(t, "inline-flex", ResolveVariants(cfg, Props{"$size": "xl"}))
	require.Equal(t, "inline-flex", ResolveVariants(cfg, Props{"$size": false}))
	// an explicit empty value does not fall back to the default
	require.Equal(t, "inline-flex", ResolveVariants(cfg, Props{"$size": ""}))
	require.Equal(t, "inline-flex text-sm", ResolveVariants(cfg, Props{"$unknown": "x"}))
	require.Equal(t, "", ResolveVariants(VariantsConfig{}, Props{"$size": "lg"}))
}

func TestVariantsKeepDeclarationOrder(t *testing.T) {
	t.Parallel()

	cfg := VariantsConfig{
		Variants: []VariantGroup{
			Group("z", Options{"on": Class("zz")}),
			Group("a", Options{"on": Class("aa")}),
			Group("m", Options{"on": Class("mm")}),
		},
	}

	for i := 0; i < 20; i++ {
		require.Equal(t, "zz aa mm", ResolveVariants(cfg, Props{"z": "on", "a": "on", "m": "on"}))
	}
}

func TestVariantValuesAreFormatted(t *testing.T) {
	t.Parallel()

	cfg := VariantsConfig{
		Variants: []VariantGroup{
			Group("$disabled", Options{"true": Class("opacity-50")}),
			Group("$level", Options{"2": Class("shadow-md")}),
		},
	}

	require.Equal(t, "opacity-50 shadow-md", ResolveVariants(cfg, Props{"$disabled": true, "$level": 2}))
	require.Equal(t, "", ResolveVariants(cfg, Props{"$disabled": false, "$level": 0}))
}

func TestVariantOptionsCollectStyles(t *testing.T) {
	t.Parallel()

	c := Button().Variants(VariantsConfig{
		Base: Derived(func(a Args) string {
			border := "1px solid blue"
			if a.Bool("$disabled") {
				border = "1px solid gray"
			}
			return "test-class color-black " + a.Style(StyleMap{"border": border})
		}),
		Variants: []VariantGroup{
			Group("$size", Options{
				"small": Style(StyleMap{"font-size": "12px"}),
				"large": Style(StyleMap{"font-size": "18px"}),
			}),
		},
		DefaultVariants: map[string]any{"$size": "small"},
	})

	require.Equal(t, "test-class color-black", c.ComputeClassName(Props{"$size": "large"}))
	require.Equal(t, StyleMap{"border": "1px solid blue", "font-size": "18px"}, c.ComputeStyles(Props{"$size": "large"}))
	require.Equal(t, StyleMap{"border": "1px solid gray", "font-size": "12px"}, c.ComputeStyles(Props{"$disabled": true}))
}

func TestConfigKeys(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"$size"}, sizeConfig().Keys())
	require.Empty(t, VariantsConfig{}.Keys())
}
