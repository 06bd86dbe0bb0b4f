package cm

import (
	"strings"

	"github.com/alexisbeaulieu97/classmate/pkg/cm/classname"
)

// Rendered is everything a host renderer needs to instantiate a component.
type Rendered struct {
	DisplayName string
	Tag         Tag
	// Props are the forwarded props, safe to spread onto the host.
	Props     Props
	ClassName string
	// Style holds kebab-cased declarations; caller-supplied ones win. Nil when empty.
	Style    StyleMap
	Children any
}

// HostRenderer instantiates a prepared component for one UI target.
type HostRenderer[T any] func(r Rendered) T

// RenderOption configures a single Prepare call.
type RenderOption func(*renderOptions)

type renderOptions struct {
	resolver ConflictResolver
	reporter Reporter
	strict   bool
}

// WithResolver overrides the conflict resolver. The default is TailwindResolver.
func WithResolver(r ConflictResolver) RenderOption {
	return func(o *renderOptions) {
		if r != nil {
			o.resolver = r
		}
	}
}

// WithReporter routes render-time advisories to r.
func WithReporter(r Reporter) RenderOption {
	return func(o *renderOptions) {
		o.reporter = r
	}
}

// WithStrictVariants reports variant values that match no option. Rendering still proceeds.
func WithStrictVariants(strict bool) RenderOption {
	return func(o *renderOptions) {
		o.strict = strict
	}
}

// Prepare runs the full pipeline for one render: logic handlers, class and style computation,
// conflict resolution and prop filtering.
func (c *Component) Prepare(props Props, opts ...RenderOption) Rendered {
	o := renderOptions{resolver: TailwindResolver}
	for _, opt := range opts {
		opt(&o)
	}

	resolved, omit := applyLogic(props, c.Logic())
	if resolved == nil {
		resolved = Props{}
	}

	generated, p := c.compute(resolved)
	if o.strict {
		for _, miss := range p.misses {
			o.reporter.warnf("classmate: %s has no option %q for variant %q", c.DisplayName(), miss.Value, miss.Group)
		}
	}

	className := o.resolver.Resolve(generated, incomingClasses(resolved))

	style := normalizeStyle(p.styles, resolved).Merge(normalizeStyle(styleFromProps(resolved), resolved))
	if len(style) == 0 {
		style = nil
	}

	return Rendered{
		DisplayName: c.DisplayName(),
		Tag:         c.Tag(),
		Props:       Forward(resolved, c.VariantKeys(), omit),
		ClassName:   classname.Normalize(className),
		Style:       style,
		Children:    resolved[ChildrenProp],
	}
}

// Render prepares c and hands the result to host.
func Render[T any](c *Component, props Props, host HostRenderer[T], opts ...RenderOption) T {
	return host(c.Prepare(props, opts...))
}

func incomingClasses(props Props) string {
	parts := make([]string, 0, 2)
	for _, key := range []string{ClassProp, ClassNameProp} {
		if s, ok := props[key].(string); ok && strings.TrimSpace(s) != "" {
			parts = append(parts, s)
		}
	}
	return classname.Join(parts...)
}
