// Package cm composes class names and inline styles for components built on utility-class CSS.
//
// # Overview
//
// A Component is an immutable descriptor produced by one of three constructors:
//
//  1. Base - a template of literal class fragments and interpolations
//  2. Variants - a declarative variant table with default selections
//  3. Extend - a new layer on top of an existing component
//
// Rendering is left to a host renderer (see the html, factory and term subpackages). The core
// only prepares what the host needs: forwarded props, the final class string and the final style.
//
//	Card := cm.Div().Template(
//		"p-4 rounded ",
//		cm.Toggle("$active", "text-blue", "text-gray"),
//	)
//
//	Button := cm.Button().Variants(cm.VariantsConfig{
//		Base: cm.Class("inline-flex"),
//		Variants: []cm.VariantGroup{
//			cm.Group("$size", cm.Options{"sm": cm.Class("text-sm"), "lg": cm.Class("text-lg")}),
//		},
//		DefaultVariants: map[string]any{"$size": "sm"},
//	})
//
//	Danger := cm.Extend(Button).Template("bg-red-600 text-white")
//
// # Composition rules
//
// Extension always places ancestor classes before the new layer's, at any depth. Style
// declarations collected through Args.Style are merged the same way, so later layers override
// earlier keys. Variant keys accumulate and logic handlers run oldest ancestor first.
//
// # Prop filtering
//
// Props named children, class, className, style or __rcOmit, variant keys, props starting with
// "$" and props omitted by a logic handler for the current render never reach the host.
//
// # Failure posture
//
// Unknown variant values and nil interpolations contribute nothing. The only construction-time
// failure is a duplicate element passed to BuildVariantMap.
package cm
