package cm

import (
	"fmt"

	"github.com/alexisbeaulieu97/classmate/pkg/cm/classname"
)

// Options maps an option value of a variant group to its classes.
type Options map[string]Interpolation

// VariantGroup is one named axis of mutually exclusive options, e.g. "$size".
type VariantGroup struct {
	Name    string
	Options Options
}

// Group is shorthand for a VariantGroup literal.
func Group(name string, options Options) VariantGroup {
	return VariantGroup{Name: name, Options: options}
}

// VariantsConfig is a declarative variant table. Groups are resolved in slice order.
type VariantsConfig struct {
	Base            Interpolation
	Variants        []VariantGroup
	DefaultVariants map[string]any
}

// Keys returns the group names in declaration order.
func (c VariantsConfig) Keys() []string {
	keys := make([]string, 0, len(c.Variants))
	for _, g := range c.Variants {
		keys = append(keys, g.Name)
	}
	return keys
}

// variantMiss describes a group whose resolved value had no option.
type variantMiss struct {
	Group string
	Value string
}

// ResolveVariants computes the class string for props. Unknown groups and values contribute
// nothing.
func ResolveVariants(cfg VariantsConfig, props Props) string {
	return resolveVariants(cfg, Args{Props: props, pass: newPass()})
}

func resolveVariants(cfg VariantsConfig, a Args) string {
	parts := make([]string, 0, len(cfg.Variants)+1)
	if cfg.Base != nil {
		parts = append(parts, cfg.Base.Interpolate(a))
	}

	for _, group := range cfg.Variants {
		value, ok := a.Props[group.Name]
		if !ok || value == nil {
			value = cfg.DefaultVariants[group.Name]
		}
		if !Truthy(value) {
			continue
		}

		key := fmt.Sprint(value)
		option, ok := group.Options[key]
		if !ok || option == nil {
			if a.pass != nil {
				a.pass.misses = append(a.pass.misses, variantMiss{Group: group.Name, Value: key})
			}
			continue
		}
		parts = append(parts, option.Interpolate(a))
	}

	return classname.Join(parts...)
}
