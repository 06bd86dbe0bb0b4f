// Package catalog turns validated catalog documents into runtime components.
package catalog

import (
	"fmt"

	"github.com/alexisbeaulieu97/classmate/internal/config"
	"github.com/alexisbeaulieu97/classmate/pkg/cm"
	"github.com/alexisbeaulieu97/classmate/pkg/cm/classname"
	cmerrors "github.com/alexisbeaulieu97/classmate/pkg/errors"
)

// Library holds the components built from one catalog.
type Library struct {
	Name       string
	settings   config.Settings
	reporter   cm.Reporter
	resolver   cm.ConflictResolver
	order      []string
	defs       map[string]config.Component
	components map[string]*cm.Component
}

// Load parses the catalog at path and builds it.
func Load(path string, reporter cm.Reporter) (*Library, error) {
	cat, err := config.ParseCatalog(path)
	if err != nil {
		return nil, err
	}
	return Build(cat, reporter)
}

// Build constructs every component of cat, ancestors first. cat must have passed
// config.ValidateCatalog.
func Build(cat *config.Catalog, reporter cm.Reporter) (*Library, error) {
	if cat == nil {
		return nil, cmerrors.NewValidationError("catalog", "catalog is nil", nil)
	}
	if reporter == nil {
		reporter = cm.NopReporter
	}

	resolver, ok := cm.ResolverByName(cat.Settings.Resolver)
	if !ok {
		return nil, cmerrors.NewValidationError("settings.resolver", fmt.Sprintf("unknown resolver %q", cat.Settings.Resolver), nil)
	}

	lib := &Library{
		Name:       cat.Name,
		settings:   cat.Settings,
		reporter:   reporter,
		resolver:   resolver,
		order:      cat.IDs(),
		defs:       config.ComponentMap(cat.Components),
		components: make(map[string]*cm.Component, len(cat.Components)),
	}

	for _, id := range config.BuildOrder(cat.Components) {
		def := lib.defs[id]
		c, err := lib.build(def)
		if err != nil {
			return nil, err
		}
		lib.components[id] = c
	}

	return lib, nil
}

func (l *Library) build(def config.Component) (*cm.Component, error) {
	logic := LogicHandlers(def.Logic)
	layer := Layer(def)
	hasVariants := len(def.Variants) > 0

	if def.Extends == "" {
		tag := cm.Element(def.Tag)
		if hasVariants {
			return cm.NewVariants(tag, layer, logic...), nil
		}
		return cm.NewBase(tag, cm.T(layer.Base), logic...), nil
	}

	base, ok := l.components[def.Extends]
	if !ok {
		return nil, cmerrors.NewReferenceError(def.ID, def.Extends)
	}
	if hasVariants {
		return cm.NewExtendedVariants(base, layer, logic...), nil
	}
	return cm.NewExtended(base, cm.T(layer.Base), logic...), nil
}

// Layer returns the class layer a definition contributes on top of its ancestor: class rules
// and inline styles as the base, followed by the variant groups.
func Layer(def config.Component) cm.VariantsConfig {
	cfg := cm.VariantsConfig{Base: classRules(def.Classes, def.Style)}

	for _, group := range def.Variants {
		options := make(cm.Options, len(group.Options))
		for _, option := range group.Options {
			options[option.Value] = cm.Class(option.Class)
		}
		cfg.Variants = append(cfg.Variants, cm.Group(group.Name, options))
	}

	if len(def.DefaultVariants) > 0 {
		cfg.DefaultVariants = make(map[string]any, len(def.DefaultVariants))
		for k, v := range def.DefaultVariants {
			cfg.DefaultVariants[k] = v
		}
	}
	return cfg
}

func classRules(rules []config.ClassRule, style map[string]string) cm.Interpolation {
	parts := make([]cm.Interpolation, 0, len(rules)+1)
	for _, rule := range rules {
		if !rule.Conditional() {
			parts = append(parts, cm.Class(rule.Class))
			continue
		}
		prop, negated := rule.Condition()
		if negated {
			parts = append(parts, cm.Toggle(prop, rule.Else, rule.Class))
		} else {
			parts = append(parts, cm.Toggle(prop, rule.Class, rule.Else))
		}
	}

	if len(style) > 0 {
		decl := make(cm.StyleMap, len(style))
		for k, v := range style {
			decl[k] = v
		}
		parts = append(parts, cm.Style(decl))
	}

	return cm.Derived(func(a cm.Args) string {
		out := make([]string, 0, len(parts))
		for _, part := range parts {
			out = append(out, part.Interpolate(a))
		}
		return classname.Join(out...)
	})
}

// LogicHandlers converts logic rules into handlers, preserving order.
func LogicHandlers(rules []config.LogicRule) []cm.LogicHandler {
	handlers := make([]cm.LogicHandler, 0, len(rules))
	for _, rule := range rules {
		rule := rule
		handlers = append(handlers, func(props cm.Props) cm.Patch {
			v, ok := props[rule.From]
			if !ok {
				return cm.Patch{}
			}

			var patch cm.Patch
			switch {
			case rule.Value == "":
				patch.Props = cm.Props{rule.To: v}
			case cm.Truthy(v):
				patch.Props = cm.Props{rule.To: rule.Value}
			}
			if rule.OmitSource {
				patch.Omit = []string{rule.From}
			}
			return patch
		})
	}
	return handlers
}

// Component returns the built component with the given id.
func (l *Library) Component(id string) (*cm.Component, bool) {
	if l == nil {
		return nil, false
	}
	c, ok := l.components[id]
	return c, ok
}

// Definition returns the catalog entry with the given id.
func (l *Library) Definition(id string) (config.Component, bool) {
	if l == nil {
		return config.Component{}, false
	}
	def, ok := l.defs[id]
	return def, ok
}

// IDs returns component ids in catalog order.
func (l *Library) IDs() []string {
	if l == nil {
		return nil
	}
	return append([]string(nil), l.order...)
}

// Options returns the render options implied by the catalog settings.
func (l *Library) Options() []cm.RenderOption {
	if l == nil {
		return nil
	}
	return []cm.RenderOption{
		cm.WithResolver(l.resolver),
		cm.WithReporter(l.reporter),
		cm.WithStrictVariants(l.settings.StrictVariants),
	}
}

// VariantMap builds one component per element from the layer of the given definition.
func (l *Library) VariantMap(id string, elements []string) (map[string]*cm.Component, error) {
	def, ok := l.Definition(id)
	if !ok {
		return nil, cmerrors.NewReferenceError("map", id)
	}

	fallback := l.settings.FallbackTag
	if fallback == "" {
		fallback = cm.DefaultFallbackTag
	}

	return cm.BuildVariantMap(cm.VariantMapOptions{
		Registry:    cm.DefaultRegistry(),
		Elements:    elements,
		Config:      Layer(def),
		FallbackTag: fallback,
		Reporter:    l.reporter,
	})
}
