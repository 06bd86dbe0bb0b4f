package cm

import (
	"github.com/alexisbeaulieu97/classmate/pkg/cm/classname"
)

const unnamedComponent = "Component"

// Tag is what a component ultimately renders: an intrinsic element or an external renderable
// understood by the host renderer.
type Tag struct {
	element string
	host    any
}

// Element returns the tag of an intrinsic element such as "div".
func Element(name string) Tag {
	return Tag{element: name}
}

// Host returns a tag wrapping an external renderable.
func Host(h any) Tag {
	return Tag{host: h}
}

// Name returns the element name, or "" for host tags.
func (t Tag) Name() string { return t.element }

// Renderable returns the wrapped external renderable, or nil for element tags.
func (t Tag) Renderable() any { return t.host }

// IsZero reports whether the tag names nothing.
func (t Tag) IsZero() bool { return t.element == "" && t.host == nil }

func (t Tag) String() string {
	if t.element != "" {
		return t.element
	}
	return unnamedComponent
}

// Component is the immutable descriptor produced by every constructor. It is safe to share
// across any number of concurrent renders.
type Component struct {
	displayName string
	tag         Tag
	classes     func(a Args) string
	variantKeys []string
	logic       []LogicHandler
}

// DisplayName returns the human-readable identity, e.g. "Extended(Variants(button))".
func (c *Component) DisplayName() string {
	if c == nil {
		return ""
	}
	return c.displayName
}

// Tag returns the host tag.
func (c *Component) Tag() Tag {
	if c == nil {
		return Tag{}
	}
	return c.tag
}

// VariantKeys returns the accumulated prop names withheld from the host.
func (c *Component) VariantKeys() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.variantKeys...)
}

// Logic returns the composed logic handlers in execution order.
func (c *Component) Logic() []LogicHandler {
	if c == nil {
		return nil
	}
	return append([]LogicHandler(nil), c.logic...)
}

// ComputeClassName runs the component's logic handlers and returns its normalized class string,
// before conflict resolution.
func (c *Component) ComputeClassName(props Props) string {
	resolved, _ := applyLogic(props, c.Logic())
	classes, _ := c.compute(resolved)
	return classes
}

// ComputeStyles runs the component's logic handlers and returns the inline styles contributed by
// its whole chain. Later layers override earlier ones. Keys are kebab-cased.
func (c *Component) ComputeStyles(props Props) StyleMap {
	resolved, _ := applyLogic(props, c.Logic())
	_, p := c.compute(resolved)
	return p.styles
}

// compute runs a single class pass; ancestors are evaluated before the newest layer so their
// style declarations are overridden by it.
func (c *Component) compute(props Props) (string, *pass) {
	p := newPass()
	if c == nil || c.classes == nil {
		return "", p
	}
	return c.classes(Args{Props: props, pass: p}), p
}

// Wrap turns any renderable into a tag-only component so it can be extended. Wrapping a
// *Component returns it unchanged.
func Wrap(h any) *Component {
	if c, ok := h.(*Component); ok {
		return c
	}
	return &Component{tag: Host(h)}
}

// NewBase builds a component from a template.
func NewBase(tag Tag, tpl Template, logic ...LogicHandler) *Component {
	tpl = tpl.clone()
	return &Component{
		displayName: "Base(" + tag.String() + ")",
		tag:         tag,
		classes:     tpl.className,
		logic:       append([]LogicHandler(nil), logic...),
	}
}

// NewVariants builds a component from a variant table. Every group name becomes a variant key.
func NewVariants(tag Tag, cfg VariantsConfig, logic ...LogicHandler) *Component {
	cfg = cloneConfig(cfg)
	return &Component{
		displayName: "Variants(" + tag.String() + ")",
		tag:         tag,
		classes: func(a Args) string {
			return resolveVariants(cfg, a)
		},
		variantKeys: unionKeys(nil, cfg.Keys()),
		logic:       append([]LogicHandler(nil), logic...),
	}
}

// NewExtended layers a template on top of base. Base classes always come first.
func NewExtended(base *Component, tpl Template, logic ...LogicHandler) *Component {
	tpl = tpl.clone()
	return extend(base, "Extended", nil, tpl.className, logic)
}

// NewExtendedVariants layers a variant table on top of base.
func NewExtendedVariants(base *Component, cfg VariantsConfig, logic ...LogicHandler) *Component {
	cfg = cloneConfig(cfg)
	return extend(base, "ExtendedVariants", cfg.Keys(), func(a Args) string {
		return resolveVariants(cfg, a)
	}, logic)
}

func extend(base *Component, kind string, keys []string, layer func(Args) string, logic []LogicHandler) *Component {
	name := base.DisplayName()
	if name == "" {
		name = unnamedComponent
	}

	tag := base.Tag()
	if tag.IsZero() && base != nil {
		tag = Host(base)
	}

	combined := make([]LogicHandler, 0, len(base.Logic())+len(logic))
	combined = append(combined, base.Logic()...)
	combined = append(combined, logic...)

	return &Component{
		displayName: kind + "(" + name + ")",
		tag:         tag,
		classes: func(a Args) string {
			var inherited string
			if base != nil && base.classes != nil {
				inherited = base.classes(a)
			}
			return classname.Join(inherited, layer(a))
		},
		variantKeys: unionKeys(base.VariantKeys(), keys),
		logic:       combined,
	}
}

func unionKeys(existing, added []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(added))
	out := make([]string, 0, len(existing)+len(added))
	for _, list := range [][]string{existing, added} {
		for _, k := range list {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}
	return out
}

func cloneConfig(cfg VariantsConfig) VariantsConfig {
	out := VariantsConfig{Base: cfg.Base}
	out.Variants = make([]VariantGroup, len(cfg.Variants))
	for i, g := range cfg.Variants {
		opts := make(Options, len(g.Options))
		for k, v := range g.Options {
			opts[k] = v
		}
		out.Variants[i] = VariantGroup{Name: g.Name, Options: opts}
	}
	out.DefaultVariants = make(map[string]any, len(cfg.DefaultVariants))
	for k, v := range cfg.DefaultVariants {
		out.DefaultVariants[k] = v
	}
	return out
}
