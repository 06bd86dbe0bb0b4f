// Package factory exposes cm components as plain class-string processors for code that has no
// element tree, such as server templates or string builders.
package factory

import (
	"github.com/alexisbeaulieu97/classmate/pkg/cm"
)

// Tag is the display tag of processors built by this package.
const Tag = "cm"

// Processor computes final class strings for a component.
type Processor struct {
	component *cm.Component
	opts      []cm.RenderOption
}

// Host returns a host renderer that keeps only the final class string.
func Host() cm.HostRenderer[string] {
	return func(r cm.Rendered) string { return r.ClassName }
}

// Wrap returns a Processor for an existing component.
func Wrap(c *cm.Component, opts ...cm.RenderOption) *Processor {
	return &Processor{component: c, opts: opts}
}

// Template builds a processor from template parts, see cm.T.
func Template(parts ...any) *Processor {
	return Wrap(cm.New(Tag).Template(parts...))
}

// Variants builds a processor from a variant table.
func Variants(cfg cm.VariantsConfig) *Processor {
	return Wrap(cm.New(Tag).Variants(cfg))
}

// Classes returns the final class string for props.
func (p *Processor) Classes(props cm.Props) string {
	if p == nil {
		return ""
	}
	return cm.Render(p.component, props, Host(), p.opts...)
}

// Func returns Classes as a plain function value.
func (p *Processor) Func() func(cm.Props) string {
	return p.Classes
}

// Component exposes the underlying component.
func (p *Processor) Component() *cm.Component {
	if p == nil {
		return nil
	}
	return p.component
}

// Extend layers a template on top of p.
func (p *Processor) Extend(parts ...any) *Processor {
	return &Processor{
		component: cm.Extend(p.Component()).Template(parts...),
		opts:      p.options(),
	}
}

// ExtendVariants layers a variant table on top of p.
func (p *Processor) ExtendVariants(cfg cm.VariantsConfig) *Processor {
	return &Processor{
		component: cm.Extend(p.Component()).Variants(cfg),
		opts:      p.options(),
	}
}

func (p *Processor) options() []cm.RenderOption {
	if p == nil {
		return nil
	}
	return append([]cm.RenderOption(nil), p.opts...)
}
